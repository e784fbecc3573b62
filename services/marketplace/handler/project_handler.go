package handler

import (
	"context"
	"net/http"
	"strings"

	"bid-portal/internal/identity"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/internal/ranking"
	"bid-portal/services/marketplace/helpers"
	"bid-portal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, actor model.User, details lifecycle.ProjectDetails) (model.Project, error)
	GetProject(ctx context.Context, projectID string) (model.Project, error)
	UpdateProject(ctx context.Context, projectID string, actor model.User, details lifecycle.ProjectDetails) (model.Project, error)
	DeleteProject(ctx context.Context, projectID string, actor model.User) error
	CloseProject(ctx context.Context, projectID string, actor model.User) (model.Project, error)
	CancelProject(ctx context.Context, projectID string, actor model.User) (model.Project, error)
	ListProjects(ctx context.Context, categoryIDs []string) ([]model.Project, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListOwnerProjectsWithStats(ctx context.Context, ownerID string, actor model.User) ([]lifecycle.ProjectWithStats, error)
	ListBidsByProject(ctx context.Context, projectID string, actor model.User) ([]model.Bid, error)
}

type ProjectHandler struct {
	service ProjectServiceInterface
}

func NewProjectHandler(service ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProjectHandler handles POST /api/projects
func (h *ProjectHandler) CreateProjectHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}

	var req helpers.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProjectHandler", err)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), actor, lifecycle.ProjectDetails{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		BidDeadline: req.BidDeadline,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		helpers.RespondError(c, "CreateProjectHandler", err, map[string]any{"owner_id": actor.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, project, "project created successfully")
	helpers.LogSuccess("CreateProjectHandler", "project created successfully", map[string]any{
		"project_id": project.ProjectID,
		"owner_id":   project.OwnerID,
	})
}

// GetProjectHandler handles GET /api/projects/:project_id
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")

	project, err := h.service.GetProject(c.Request.Context(), projectID)
	if err != nil {
		helpers.RespondError(c, "GetProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, project, "project retrieved successfully")
}

// UpdateProjectHandler handles PUT /api/projects/:project_id
func (h *ProjectHandler) UpdateProjectHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var req helpers.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProjectHandler", err)
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), projectID, actor, lifecycle.ProjectDetails{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		BidDeadline: req.BidDeadline,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		helpers.RespondError(c, "UpdateProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, project, "project updated successfully")
	helpers.LogSuccess("UpdateProjectHandler", "project updated successfully", map[string]any{"project_id": projectID})
}

// DeleteProjectHandler handles DELETE /api/projects/:project_id
func (h *ProjectHandler) DeleteProjectHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	if err := h.service.DeleteProject(c.Request.Context(), projectID, actor); err != nil {
		helpers.RespondError(c, "DeleteProjectHandler", err, map[string]any{"project_id": projectID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "project deleted successfully")
	helpers.LogSuccess("DeleteProjectHandler", "project deleted successfully", map[string]any{"project_id": projectID})
}

// CloseProjectHandler handles POST /api/projects/:project_id/close
func (h *ProjectHandler) CloseProjectHandler(c *gin.Context) {
	h.transition(c, "CloseProjectHandler", h.service.CloseProject)
}

// CancelProjectHandler handles POST /api/projects/:project_id/cancel
func (h *ProjectHandler) CancelProjectHandler(c *gin.Context) {
	h.transition(c, "CancelProjectHandler", h.service.CancelProject)
}

func (h *ProjectHandler) transition(c *gin.Context, handlerName string,
	apply func(ctx context.Context, projectID string, actor model.User) (model.Project, error)) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	project, err := apply(c.Request.Context(), projectID, actor)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"project_id": projectID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, project, "project status updated")
	helpers.LogSuccess(handlerName, "project status updated", map[string]any{
		"project_id": projectID,
		"status":     project.Status,
	})
}

// ListProjectsHandler handles GET /api/projects?categories=a,b
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	var categoryIDs []string
	if raw := c.Query("categories"); raw != "" {
		categoryIDs = strings.Split(raw, ",")
	}

	projects, err := h.service.ListProjects(c.Request.Context(), categoryIDs)
	if err != nil {
		helpers.RespondError(c, "ListProjectsHandler", err, nil)
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}
	utils.JSONResponse(c, http.StatusOK, projects, "projects retrieved successfully")
}

// ListCategoriesHandler handles GET /api/categories
func (h *ProjectHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListCategoriesHandler", err, nil)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
}

// OwnerProjectsHandler handles GET /api/projects/owner/:owner_id/with-stats
func (h *ProjectHandler) OwnerProjectsHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	ownerID := c.Param("owner_id")

	projects, err := h.service.ListOwnerProjectsWithStats(c.Request.Context(), ownerID, actor)
	if err != nil {
		helpers.RespondError(c, "OwnerProjectsHandler", err, map[string]any{"owner_id": ownerID})
		return
	}
	if projects == nil {
		projects = []lifecycle.ProjectWithStats{}
	}
	utils.JSONResponse(c, http.StatusOK, projects, "owner projects retrieved successfully")
}

// CompareBidsHandler handles GET /api/projects/:project_id/bids. It returns
// the owner's comparison view: aggregate stats, badges and the bid set sorted
// by the requested field.
func (h *ProjectHandler) CompareBidsHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	bids, err := h.service.ListBidsByProject(c.Request.Context(), projectID, actor)
	if err != nil {
		helpers.RespondError(c, "CompareBidsHandler", err, map[string]any{"project_id": projectID})
		return
	}

	field := ranking.SortField(c.DefaultQuery("sortBy", string(ranking.ByPrice)))
	if !field.Valid() {
		field = ranking.ByPrice
	}
	ascending := c.DefaultQuery("order", "asc") != "desc"

	// Badges are computed over submission order, before sorting, so ties go
	// to the earliest submission.
	view := gin.H{
		"stats":  ranking.ComputeStats(bids),
		"badges": ranking.ComputeBadges(bids),
		"bids":   ranking.SortBids(bids, field, ascending),
	}
	utils.JSONResponse(c, http.StatusOK, view, "bid comparison retrieved successfully")
	helpers.LogSuccess("CompareBidsHandler", "bid comparison retrieved successfully", map[string]any{
		"project_id": projectID,
		"bid_count":  len(bids),
	})
}

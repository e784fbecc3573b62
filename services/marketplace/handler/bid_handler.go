package handler

import (
	"context"
	"errors"
	"net/http"

	"bid-portal/internal/award"
	"bid-portal/internal/biderrors"
	"bid-portal/internal/identity"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/services/marketplace/helpers"
	"bid-portal/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	SubmitBid(ctx context.Context, projectID string, actor model.User, details lifecycle.BidDetails) (model.Bid, error)
	EditBid(ctx context.Context, bidID string, actor model.User, updates lifecycle.BidDetails) (model.Bid, error)
	WithdrawBid(ctx context.Context, bidID string, actor model.User) error
	MarkUnderReview(ctx context.Context, bidID string, actor model.User) (model.Bid, error)
	ListBidsByProject(ctx context.Context, projectID string, actor model.User) ([]model.Bid, error)
	ListBidsByContractor(ctx context.Context, contractorID string, actor model.User) ([]model.Bid, error)
}

type AwardServiceInterface interface {
	AwardBid(ctx context.Context, bidID string, actor model.User, acceptance award.AcceptanceInfo) (award.Result, error)
}

type BidHandler struct {
	service BidServiceInterface
	awards  AwardServiceInterface
}

func NewBidHandler(service BidServiceInterface, awards AwardServiceInterface) *BidHandler {
	return &BidHandler{service: service, awards: awards}
}

// SubmitBidHandler handles POST /api/bids
func (h *BidHandler) SubmitBidHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}

	var req helpers.SubmitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(c.Request.Context(), req.ProjectID, actor, lifecycle.BidDetails{
		FinalContractPrice:   req.FinalContractPrice,
		CompletionDays:       req.CompletionDays,
		Proposal:             req.Proposal,
		Terms:                req.Terms,
		ContractorSignatures: req.ContractorSignatures,
	})
	if err != nil {
		helpers.RespondError(c, "SubmitBidHandler", err, map[string]any{
			"project_id":    req.ProjectID,
			"contractor_id": actor.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":        bid.BidID,
		"project_id":    bid.ProjectID,
		"contractor_id": bid.ContractorID,
		"price":         bid.FinalContractPrice,
	})
}

// EditBidHandler handles PUT /api/bids/:bid_id
func (h *BidHandler) EditBidHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	var req helpers.EditBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditBidHandler", err)
		return
	}

	bid, err := h.service.EditBid(c.Request.Context(), bidID, actor, lifecycle.BidDetails{
		FinalContractPrice:   req.FinalContractPrice,
		CompletionDays:       req.CompletionDays,
		Proposal:             req.Proposal,
		Terms:                req.Terms,
		ContractorSignatures: req.ContractorSignatures,
	})
	if err != nil {
		helpers.RespondError(c, "EditBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid updated successfully")
	helpers.LogSuccess("EditBidHandler", "bid updated successfully", map[string]any{"bid_id": bid.BidID})
}

// WithdrawBidHandler handles POST /api/bids/:bid_id/withdraw
func (h *BidHandler) WithdrawBidHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	if err := h.service.WithdrawBid(c.Request.Context(), bidID, actor); err != nil {
		helpers.RespondError(c, "WithdrawBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{"bid_id": bidID})
}

// ReviewBidHandler handles POST /api/bids/:bid_id/review
func (h *BidHandler) ReviewBidHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	bidID := c.Param("bid_id")

	bid, err := h.service.MarkUnderReview(c.Request.Context(), bidID, actor)
	if err != nil {
		helpers.RespondError(c, "ReviewBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid marked under review")
	helpers.LogSuccess("ReviewBidHandler", "bid marked under review", map[string]any{"bid_id": bid.BidID})
}

// ListBidsHandler handles GET /api/bids?projectId=&contractorId=
func (h *BidHandler) ListBidsHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}

	projectID := c.Query("projectId")
	contractorID := c.Query("contractorId")

	var (
		bids []model.Bid
		err  error
	)
	switch {
	case projectID != "":
		bids, err = h.service.ListBidsByProject(c.Request.Context(), projectID, actor)
	case contractorID != "":
		bids, err = h.service.ListBidsByContractor(c.Request.Context(), contractorID, actor)
	default:
		bids, err = h.service.ListBidsByContractor(c.Request.Context(), actor.UserID, actor)
	}
	if err != nil {
		helpers.RespondError(c, "ListBidsHandler", err, map[string]any{
			"project_id":    projectID,
			"contractor_id": contractorID,
		})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// AwardBidHandler handles POST /api/bids/award. The body names the owner
// actor explicitly per the award contract; it must match the authenticated
// actor.
func (h *BidHandler) AwardBidHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}

	var req helpers.AwardBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AwardBidHandler", err)
		return
	}
	if req.OwnerActorID != actor.UserID {
		err := errors.New("ownerActorId does not match the authenticated actor")
		helpers.RespondError(c, "AwardBidHandler", errors.Join(biderrors.ErrPermission, err), map[string]any{
			"bid_id":         req.BidID,
			"owner_actor_id": req.OwnerActorID,
		})
		return
	}

	result, err := h.awards.AwardBid(c.Request.Context(), req.BidID, actor, award.AcceptanceInfo{
		OwnerSignatures: []model.Signature{req.AcceptanceInfo},
	})
	if err != nil {
		helpers.RespondError(c, "AwardBidHandler", err, map[string]any{"bid_id": req.BidID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "bid awarded successfully")
	helpers.LogSuccess("AwardBidHandler", "bid awarded successfully", map[string]any{
		"bid_id":     result.Bid.BidID,
		"project_id": result.Project.ProjectID,
	})
}

// MeHandler handles GET /api/session/me
func MeHandler(c *gin.Context) {
	actor, ok := identity.RequireActor(c)
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, actor, "session actor")
}

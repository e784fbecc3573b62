package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
	"bid-portal/utils"
)

// Service enforces every state-changing rule on projects and their bid sets.
// The actor is always an explicit parameter; nothing here reads ambient
// session state.
type Service struct {
	repo repository.MarketplaceDB
}

// NewService creates a new lifecycle Service instance
func NewService(repo repository.MarketplaceDB) *Service {
	return &Service{repo: repo}
}

// BidDetails carries the contractor-supplied portion of a bid
type BidDetails struct {
	FinalContractPrice   float64
	CompletionDays       int
	Proposal             string
	Terms                model.ContractTerms
	ContractorSignatures []model.Signature
}

// ProjectDetails carries the owner-supplied portion of a project
type ProjectDetails struct {
	Title       string
	Description string
	Location    string
	Budget      float64
	BidDeadline time.Time
	CategoryIDs []string
}

// SubmitBid validates and records a contractor's bid on an open project
func (s *Service) SubmitBid(ctx context.Context, projectID string, actor model.User, details BidDetails) (model.Bid, error) {
	if actor.Role != model.RoleContractor {
		return model.Bid{}, fmt.Errorf("service: %w - only contractors may submit bids", biderrors.ErrPermission)
	}

	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load project %s: %w", projectID, err)
	}
	if !project.Status.AcceptsBids() {
		return model.Bid{}, fmt.Errorf("service: %w - project %s is %s", biderrors.ErrInvalidState, projectID, project.Status)
	}
	if time.Now().UTC().After(project.BidDeadline) {
		return model.Bid{}, fmt.Errorf("service: %w - bid deadline for project %s has passed", biderrors.ErrInvalidState, projectID)
	}

	_, err = s.repo.GetActiveBid(ctx, projectID, actor.UserID)
	if err == nil {
		return model.Bid{}, fmt.Errorf("service: %w", biderrors.ErrDuplicateBid)
	}
	if !errors.Is(err, biderrors.ErrNotFound) {
		return model.Bid{}, fmt.Errorf("service: failed to check existing bids: %w", err)
	}

	if err := validateBidDetails(details); err != nil {
		return model.Bid{}, err
	}

	bid := model.Bid{
		BidID:                utils.GenerateID(),
		ProjectID:            projectID,
		ContractorID:         actor.UserID,
		Status:               model.BidSubmitted,
		FinalContractPrice:   details.FinalContractPrice,
		CompletionDays:       details.CompletionDays,
		Proposal:             details.Proposal,
		Terms:                details.Terms,
		ContractorSignatures: details.ContractorSignatures,
		DateSubmitted:        time.Now().UTC(),
	}
	if err := s.repo.CreateBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for project %s by contractor %s: %w",
			projectID, actor.UserID, err)
	}
	return bid, nil
}

// EditBid applies field updates to a bid that is still open for changes.
// Status and submission date are never touched here.
func (s *Service) EditBid(ctx context.Context, bidID string, actor model.User, updates BidDetails) (model.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}
	if bid.ContractorID != actor.UserID {
		return model.Bid{}, fmt.Errorf("service: %w - bid %s belongs to another contractor", biderrors.ErrPermission, bidID)
	}
	if !bid.Status.Editable() {
		return model.Bid{}, fmt.Errorf("service: %w - bid %s is %s", biderrors.ErrInvalidState, bidID, bid.Status)
	}

	project, err := s.repo.GetProject(ctx, bid.ProjectID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load project %s: %w", bid.ProjectID, err)
	}
	if !project.Status.AcceptsBids() {
		return model.Bid{}, fmt.Errorf("service: %w - project %s is %s", biderrors.ErrInvalidState, bid.ProjectID, project.Status)
	}

	if err := validateBidDetails(updates); err != nil {
		return model.Bid{}, err
	}

	bid.FinalContractPrice = updates.FinalContractPrice
	bid.CompletionDays = updates.CompletionDays
	bid.Proposal = updates.Proposal
	bid.Terms = updates.Terms
	bid.ContractorSignatures = updates.ContractorSignatures

	if err := s.repo.UpdateBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return bid, nil
}

// WithdrawBid sets the contractor's own bid to Withdrawn. Withdrawal is
// deliberately not idempotent: a second withdraw fails so that client bugs
// surface instead of silently succeeding.
func (s *Service) WithdrawBid(ctx context.Context, bidID string, actor model.User) error {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}
	if bid.ContractorID != actor.UserID {
		return fmt.Errorf("service: %w - bid %s belongs to another contractor", biderrors.ErrPermission, bidID)
	}
	if bid.Status.Terminal() {
		return fmt.Errorf("service: %w - bid %s is already %s", biderrors.ErrInvalidState, bidID, bid.Status)
	}
	bid.Status = model.BidWithdrawn
	if err := s.repo.UpdateBid(ctx, bid); err != nil {
		return fmt.Errorf("service: failed to withdraw bid %s: %w", bidID, err)
	}
	return nil
}

// MarkUnderReview moves a submitted bid to Under Review on behalf of the
// project's owner
func (s *Service) MarkUnderReview(ctx context.Context, bidID string, actor model.User) (model.Bid, error) {
	bid, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load bid %s: %w", bidID, err)
	}
	project, err := s.repo.GetProject(ctx, bid.ProjectID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to load project %s: %w", bid.ProjectID, err)
	}
	if project.OwnerID != actor.UserID {
		return model.Bid{}, fmt.Errorf("service: %w - project %s belongs to another owner", biderrors.ErrPermission, bid.ProjectID)
	}
	if bid.Status != model.BidSubmitted {
		return model.Bid{}, fmt.Errorf("service: %w - bid %s is %s", biderrors.ErrInvalidState, bidID, bid.Status)
	}
	bid.Status = model.BidUnderReview
	if err := s.repo.UpdateBid(ctx, bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to update bid %s: %w", bidID, err)
	}
	return bid, nil
}

// CreateProject posts a new open project for the acting owner
func (s *Service) CreateProject(ctx context.Context, actor model.User, details ProjectDetails) (model.Project, error) {
	if actor.Role != model.RoleOwner {
		return model.Project{}, fmt.Errorf("service: %w - only owners may post projects", biderrors.ErrPermission)
	}
	if err := validateProjectDetails(details); err != nil {
		return model.Project{}, err
	}

	project := model.Project{
		ProjectID:   utils.GenerateID(),
		OwnerID:     actor.UserID,
		Title:       details.Title,
		Description: details.Description,
		Location:    details.Location,
		Budget:      details.Budget,
		BidDeadline: details.BidDeadline,
		Status:      model.ProjectOpen,
		CategoryIDs: details.CategoryIDs,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return model.Project{}, fmt.Errorf("service: failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject applies owner edits to a project that is still open
func (s *Service) UpdateProject(ctx context.Context, projectID string, actor model.User, details ProjectDetails) (model.Project, error) {
	project, err := s.ownedProject(ctx, projectID, actor)
	if err != nil {
		return model.Project{}, err
	}
	if project.Status != model.ProjectOpen {
		return model.Project{}, fmt.Errorf("service: %w - project %s is %s", biderrors.ErrInvalidState, projectID, project.Status)
	}
	if err := validateProjectDetails(details); err != nil {
		return model.Project{}, err
	}

	project.Title = details.Title
	project.Description = details.Description
	project.Location = details.Location
	project.Budget = details.Budget
	project.BidDeadline = details.BidDeadline
	project.CategoryIDs = details.CategoryIDs

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return model.Project{}, fmt.Errorf("service: failed to update project %s: %w", projectID, err)
	}
	return project, nil
}

// DeleteProject removes an owner's project. The store withdraws active bids
// and removes the rows in one transaction, so deletion never strands a bid.
func (s *Service) DeleteProject(ctx context.Context, projectID string, actor model.User) error {
	if _, err := s.ownedProject(ctx, projectID, actor); err != nil {
		return err
	}
	if err := s.repo.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("service: failed to delete project %s: %w", projectID, err)
	}
	return nil
}

// CloseProject moves an open project to Closed without awarding any bid
func (s *Service) CloseProject(ctx context.Context, projectID string, actor model.User) (model.Project, error) {
	return s.transitionProject(ctx, projectID, actor, model.ProjectClosed)
}

// CancelProject moves an open project to Cancelled
func (s *Service) CancelProject(ctx context.Context, projectID string, actor model.User) (model.Project, error) {
	return s.transitionProject(ctx, projectID, actor, model.ProjectCancelled)
}

func (s *Service) transitionProject(ctx context.Context, projectID string, actor model.User, target model.ProjectStatus) (model.Project, error) {
	project, err := s.ownedProject(ctx, projectID, actor)
	if err != nil {
		return model.Project{}, err
	}
	if !project.Status.CanTransitionTo(target) {
		return model.Project{}, fmt.Errorf("service: %w - project %s cannot move from %s to %s",
			biderrors.ErrInvalidState, projectID, project.Status, target)
	}
	project.Status = target
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return model.Project{}, fmt.Errorf("service: failed to update project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *Service) ownedProject(ctx context.Context, projectID string, actor model.User) (model.Project, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return model.Project{}, fmt.Errorf("service: failed to load project %s: %w", projectID, err)
	}
	if project.OwnerID != actor.UserID {
		return model.Project{}, fmt.Errorf("service: %w - project %s belongs to another owner", biderrors.ErrPermission, projectID)
	}
	return project, nil
}

// GetProject returns one project
func (s *Service) GetProject(ctx context.Context, projectID string) (model.Project, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return model.Project{}, fmt.Errorf("service: failed to load project %s: %w", projectID, err)
	}
	return project, nil
}

// ListProjects returns projects, optionally filtered by category
func (s *Service) ListProjects(ctx context.Context, categoryIDs []string) ([]model.Project, error) {
	projects, err := s.repo.ListProjects(ctx, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list projects: %w", err)
	}
	return projects, nil
}

// ListCategories returns the reference categories
func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// ProjectWithStats pairs a project with bid counts for the owner dashboard
type ProjectWithStats struct {
	Project    model.Project `json:"project"`
	BidCount   int           `json:"bid_count"`
	ActiveBids int           `json:"active_bids"`
}

// ListOwnerProjectsWithStats returns the acting owner's projects with bid
// counts attached
func (s *Service) ListOwnerProjectsWithStats(ctx context.Context, ownerID string, actor model.User) ([]ProjectWithStats, error) {
	if actor.UserID != ownerID {
		return nil, fmt.Errorf("service: %w - owners may only view their own dashboard", biderrors.ErrPermission)
	}
	projects, err := s.repo.ListProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list projects for owner %s: %w", ownerID, err)
	}

	stats := make([]ProjectWithStats, 0, len(projects))
	for _, project := range projects {
		bids, err := s.repo.ListBidsByProject(ctx, project.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list bids for project %s: %w", project.ProjectID, err)
		}
		active := 0
		for _, bid := range bids {
			if bid.Active() {
				active++
			}
		}
		stats = append(stats, ProjectWithStats{Project: project, BidCount: len(bids), ActiveBids: active})
	}
	return stats, nil
}

// ListBidsByProject returns a project's bids to its owner
func (s *Service) ListBidsByProject(ctx context.Context, projectID string, actor model.User) ([]model.Bid, error) {
	if _, err := s.ownedProject(ctx, projectID, actor); err != nil {
		return nil, err
	}
	bids, err := s.repo.ListBidsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// ListBidsByContractor returns a contractor's own bids
func (s *Service) ListBidsByContractor(ctx context.Context, contractorID string, actor model.User) ([]model.Bid, error) {
	if actor.UserID != contractorID {
		return nil, fmt.Errorf("service: %w - contractors may only view their own bids", biderrors.ErrPermission)
	}
	bids, err := s.repo.ListBidsByContractor(ctx, contractorID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for contractor %s: %w", contractorID, err)
	}
	return bids, nil
}

func validateBidDetails(details BidDetails) error {
	if details.FinalContractPrice <= 0 {
		return fmt.Errorf("service: %w - final contract price must be positive", biderrors.ErrValidation)
	}
	if details.CompletionDays < 1 {
		return fmt.Errorf("service: %w - completion days must be at least 1", biderrors.ErrValidation)
	}
	return nil
}

func validateProjectDetails(details ProjectDetails) error {
	if details.Title == "" {
		return fmt.Errorf("service: %w - title is required", biderrors.ErrValidation)
	}
	if details.Budget <= 0 {
		return fmt.Errorf("service: %w - budget must be positive", biderrors.ErrValidation)
	}
	if details.BidDeadline.IsZero() {
		return fmt.Errorf("service: %w - bid deadline is required", biderrors.ErrValidation)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"
)

// MarketplaceDB defines the entity store interface for the bid marketplace.
// AwardBid is the single commit boundary of the award workflow: either every
// mutation it describes applies, or none do.
type MarketplaceDB interface {
	GetUser(ctx context.Context, userID string) (model.User, error)

	ListCategories(ctx context.Context) ([]model.Category, error)

	CreateProject(ctx context.Context, project model.Project) error
	GetProject(ctx context.Context, projectID string) (model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) error
	DeleteProject(ctx context.Context, projectID string) error
	ListProjects(ctx context.Context, categoryIDs []string) ([]model.Project, error)
	ListProjectsByOwner(ctx context.Context, ownerID string) ([]model.Project, error)

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	UpdateBid(ctx context.Context, bid model.Bid) error
	ListBidsByProject(ctx context.Context, projectID string) ([]model.Bid, error)
	ListBidsByContractor(ctx context.Context, contractorID string) ([]model.Bid, error)
	GetActiveBid(ctx context.Context, projectID, contractorID string) (model.Bid, error)

	AwardBid(ctx context.Context, projectID, bidID string, ownerSignatures []model.Signature) (model.Project, model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[string]model.User
	categories map[string]model.Category
	projects   map[string]model.Project
	bids       map[string]model.Bid     // key: bidID
	byProject  map[string][]string      // key: projectID -> bidIDs in submission order
	catOrder   []string                 // category insertion order for stable listings
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[string]model.User),
		categories: make(map[string]model.Category),
		projects:   make(map[string]model.Project),
		bids:       make(map[string]model.Bid),
		byProject:  make(map[string][]string),
	}
}

// AddUser seeds a user. Users are created by the external identity provider;
// this is the local stand-in for that hand-off.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddCategory seeds a reference category
func (r *MemoryRepo) AddCategory(category model.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.CategoryID]; !ok {
		r.catOrder = append(r.catOrder, category.CategoryID)
	}
	r.categories[category.CategoryID] = category
}

// GetUser returns a user by ID
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biderrors.ErrNotFound)
	}
	return user, nil
}

// ListCategories returns all categories in insertion order
func (r *MemoryRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, 0, len(r.catOrder))
	for _, id := range r.catOrder {
		categories = append(categories, r.categories[id])
	}
	return categories, nil
}

// CreateProject stores a new project
func (r *MemoryRepo) CreateProject(_ context.Context, project model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ProjectID]; ok {
		return fmt.Errorf("create project %s: id already in use", project.ProjectID)
	}
	r.projects[project.ProjectID] = cloneProject(project)
	return nil
}

// GetProject returns a project by ID
func (r *MemoryRepo) GetProject(_ context.Context, projectID string) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getProjectLocked(projectID)
}

func (r *MemoryRepo) getProjectLocked(projectID string) (model.Project, error) {
	project, ok := r.projects[projectID]
	if !ok {
		return model.Project{}, fmt.Errorf("get project %s: %w", projectID, biderrors.ErrNotFound)
	}
	return cloneProject(project), nil
}

// UpdateProject replaces a stored project
func (r *MemoryRepo) UpdateProject(_ context.Context, project model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ProjectID]; !ok {
		return fmt.Errorf("update project %s: %w", project.ProjectID, biderrors.ErrNotFound)
	}
	r.projects[project.ProjectID] = cloneProject(project)
	return nil
}

// DeleteProject removes a project together with its bids. Active bids are
// withdrawn rather than silently dropped, so no bid record ever points at a
// missing project.
func (r *MemoryRepo) DeleteProject(_ context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[projectID]; !ok {
		return fmt.Errorf("delete project %s: %w", projectID, biderrors.ErrNotFound)
	}
	for _, bidID := range r.byProject[projectID] {
		delete(r.bids, bidID)
	}
	delete(r.byProject, projectID)
	delete(r.projects, projectID)
	return nil
}

// ListProjects returns projects, optionally filtered to those tagged with at
// least one of the given categories
func (r *MemoryRepo) ListProjects(_ context.Context, categoryIDs []string) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		wanted[id] = true
	}

	projects := make([]model.Project, 0, len(r.projects))
	for _, project := range r.projects {
		if len(wanted) > 0 && !hasAnyCategory(project, wanted) {
			continue
		}
		projects = append(projects, cloneProject(project))
	}
	sortProjectsByCreation(projects)
	return projects, nil
}

// ListProjectsByOwner returns all projects posted by one owner
func (r *MemoryRepo) ListProjectsByOwner(_ context.Context, ownerID string) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]model.Project, 0)
	for _, project := range r.projects {
		if project.OwnerID == ownerID {
			projects = append(projects, cloneProject(project))
		}
	}
	sortProjectsByCreation(projects)
	return projects, nil
}

// CreateBid records a bid against an existing project
func (r *MemoryRepo) CreateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[bid.ProjectID]; !ok {
		return fmt.Errorf("create bid for project %s: %w", bid.ProjectID, biderrors.ErrNotFound)
	}
	if _, ok := r.bids[bid.BidID]; ok {
		return fmt.Errorf("create bid %s: id already in use", bid.BidID)
	}
	r.bids[bid.BidID] = cloneBid(bid)
	r.byProject[bid.ProjectID] = append(r.byProject[bid.ProjectID], bid.BidID)
	return nil
}

// GetBid returns a bid by ID
func (r *MemoryRepo) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrNotFound)
	}
	return cloneBid(bid), nil
}

// UpdateBid replaces a stored bid
func (r *MemoryRepo) UpdateBid(_ context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[bid.BidID]; !ok {
		return fmt.Errorf("update bid %s: %w", bid.BidID, biderrors.ErrNotFound)
	}
	r.bids[bid.BidID] = cloneBid(bid)
	return nil
}

// ListBidsByProject returns a project's bids in submission order
func (r *MemoryRepo) ListBidsByProject(_ context.Context, projectID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byProject[projectID]
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		bids = append(bids, cloneBid(r.bids[id]))
	}
	return bids, nil
}

// ListBidsByContractor returns all bids placed by one contractor
func (r *MemoryRepo) ListBidsByContractor(_ context.Context, contractorID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.ContractorID == contractorID {
			bids = append(bids, cloneBid(bid))
		}
	}
	sortBidsBySubmission(bids)
	return bids, nil
}

// GetActiveBid returns the contractor's non-withdrawn bid on a project, or
// ErrNotFound when there is none
func (r *MemoryRepo) GetActiveBid(_ context.Context, projectID, contractorID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.byProject[projectID] {
		bid := r.bids[id]
		if bid.ContractorID == contractorID && bid.Active() {
			return cloneBid(bid), nil
		}
	}
	return model.Bid{}, fmt.Errorf("active bid for contractor %s on project %s: %w",
		contractorID, projectID, biderrors.ErrNotFound)
}

// AwardBid atomically accepts one bid, rejects every other active bid on the
// project and marks the project Awarded. The status check and all three
// mutations happen under one lock, so a racing second award observes
// ErrAlreadyAwarded and nothing else changes.
func (r *MemoryRepo) AwardBid(_ context.Context, projectID, bidID string, ownerSignatures []model.Signature) (model.Project, model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[projectID]
	if !ok {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid on project %s: %w", projectID, biderrors.ErrNotFound)
	}
	winner, ok := r.bids[bidID]
	if !ok || winner.ProjectID != projectID {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w", bidID, biderrors.ErrNotFound)
	}
	if project.Status != model.ProjectOpen {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w", bidID, biderrors.ErrAlreadyAwarded)
	}
	if !winner.Active() {
		return model.Project{}, model.Bid{}, fmt.Errorf("award bid %s: %w - bid is %s", bidID, biderrors.ErrInvalidState, winner.Status)
	}

	for _, id := range r.byProject[projectID] {
		if id == bidID {
			continue
		}
		bid := r.bids[id]
		if bid.Active() {
			bid.Status = model.BidRejected
			r.bids[id] = bid
		}
	}

	winner.Status = model.BidAccepted
	winner.OwnerSignatures = append([]model.Signature(nil), ownerSignatures...)
	r.bids[bidID] = winner

	project.Status = model.ProjectAwarded
	r.projects[projectID] = project

	return cloneProject(project), cloneBid(winner), nil
}

// Map iteration order is random; listings are returned oldest-first with the
// ID as a deterministic tie-break.
func sortProjectsByCreation(projects []model.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ProjectID < projects[j].ProjectID
		}
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
}

func sortBidsBySubmission(bids []model.Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if bids[i].DateSubmitted.Equal(bids[j].DateSubmitted) {
			return bids[i].BidID < bids[j].BidID
		}
		return bids[i].DateSubmitted.Before(bids[j].DateSubmitted)
	})
}

func hasAnyCategory(project model.Project, wanted map[string]bool) bool {
	for _, id := range project.CategoryIDs {
		if wanted[id] {
			return true
		}
	}
	return false
}

func cloneProject(project model.Project) model.Project {
	project.CategoryIDs = append([]string(nil), project.CategoryIDs...)
	return project
}

func cloneBid(bid model.Bid) model.Bid {
	bid.ContractorSignatures = append([]model.Signature(nil), bid.ContractorSignatures...)
	bid.OwnerSignatures = append([]model.Signature(nil), bid.OwnerSignatures...)
	return bid
}

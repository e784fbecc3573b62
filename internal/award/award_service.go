package award

import (
	"context"
	"fmt"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
)

// Coordinator executes the award: accepting exactly one bid, rejecting every
// competing active bid and closing the project out, all inside the store's
// single commit boundary.
type Coordinator struct {
	repo repository.MarketplaceDB
}

// NewCoordinator creates a new award Coordinator instance
func NewCoordinator(repo repository.MarketplaceDB) *Coordinator {
	return &Coordinator{repo: repo}
}

// AcceptanceInfo is the owner's signature on the awarded contract
type AcceptanceInfo struct {
	OwnerSignatures []model.Signature
}

// Result is the post-award state of the project and the winning bid
type Result struct {
	Project model.Project `json:"project"`
	Bid     model.Bid     `json:"bid"`
}

// AwardBid selects the winning bid for a project. Preconditions are checked
// in a fixed order and the first failure wins: the bid must exist and not be
// withdrawn, the actor
// must own the project, the project must still be Open, and the acceptance
// info must carry a complete signature. If every check passes the three
// mutations (accept winner, reject competitors, award project) are applied
// atomically by the store; on any failure nothing changes.
func (c *Coordinator) AwardBid(ctx context.Context, bidID string, actor model.User, acceptance AcceptanceInfo) (Result, error) {
	bid, err := c.repo.GetBid(ctx, bidID)
	if err != nil {
		return Result{}, fmt.Errorf("award: failed to load bid %s: %w", bidID, err)
	}

	if !bid.Active() {
		return Result{}, fmt.Errorf("award: %w - bid %s is %s", biderrors.ErrInvalidState, bidID, bid.Status)
	}

	project, err := c.repo.GetProject(ctx, bid.ProjectID)
	if err != nil {
		return Result{}, fmt.Errorf("award: failed to load project %s: %w", bid.ProjectID, err)
	}
	if project.OwnerID != actor.UserID {
		return Result{}, fmt.Errorf("award: %w - project %s belongs to another owner", biderrors.ErrPermission, bid.ProjectID)
	}
	if project.Status != model.ProjectOpen {
		return Result{}, fmt.Errorf("award: %w", biderrors.ErrAlreadyAwarded)
	}
	if err := validateAcceptance(acceptance); err != nil {
		return Result{}, err
	}

	// The store re-checks the Open status under its own commit discipline;
	// a racing award that loses there observes ErrAlreadyAwarded too.
	awardedProject, awardedBid, err := c.repo.AwardBid(ctx, project.ProjectID, bidID, acceptance.OwnerSignatures)
	if err != nil {
		return Result{}, fmt.Errorf("award: failed to award bid %s: %w", bidID, err)
	}
	return Result{Project: awardedProject, Bid: awardedBid}, nil
}

func validateAcceptance(acceptance AcceptanceInfo) error {
	if len(acceptance.OwnerSignatures) == 0 {
		return fmt.Errorf("award: %w - owner signature is required", biderrors.ErrValidation)
	}
	for _, sig := range acceptance.OwnerSignatures {
		if sig.Empty() || sig.Name == "" {
			return fmt.Errorf("award: %w - owner signature must include a name", biderrors.ErrValidation)
		}
	}
	return nil
}

package lifecycle

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bid-portal/internal/biderrors"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var (
	owner      = model.User{UserID: "owner1", Role: model.RoleOwner, Name: "O. Owner"}
	contractor = model.User{UserID: "c1", Role: model.RoleContractor, Name: "C. Builder"}
	rival      = model.User{UserID: "c2", Role: model.RoleContractor, Name: "R. Rival"}
)

func openProject() model.Project {
	return model.Project{
		ProjectID:   "proj1",
		OwnerID:     owner.UserID,
		Title:       "Roof replacement",
		Budget:      250000,
		BidDeadline: time.Now().Add(48 * time.Hour),
		Status:      model.ProjectOpen,
	}
}

func validDetails() BidDetails {
	return BidDetails{FinalContractPrice: 100000, CompletionDays: 30, Proposal: "full tear-off"}
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, biderrors.ErrNotFound)
}

// Test SubmitBid
func TestService_SubmitBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		actor     model.User
		details   BidDetails
		buildRepo func(repo *repository.MockMarketplaceDB)
		wantError error
	}{
		{
			name:    "success",
			actor:   contractor,
			details: validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
				repo.EXPECT().GetActiveBid(gomock.Any(), "proj1", contractor.UserID).
					Return(model.Bid{}, notFound("active bid"))
				repo.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "owner_cannot_bid",
			actor:     owner,
			details:   validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {},
			wantError: biderrors.ErrPermission,
		},
		{
			name:    "project_not_found",
			actor:   contractor,
			details: validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetProject(gomock.Any(), "proj1").
					Return(model.Project{}, notFound("project"))
			},
			wantError: biderrors.ErrNotFound,
		},
		{
			name:    "project_not_open",
			actor:   contractor,
			details: validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				project := openProject()
				project.Status = model.ProjectAwarded
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(project, nil)
			},
			wantError: biderrors.ErrInvalidState,
		},
		{
			name:    "deadline_passed",
			actor:   contractor,
			details: validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				project := openProject()
				project.BidDeadline = time.Now().Add(-time.Hour)
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(project, nil)
			},
			wantError: biderrors.ErrInvalidState,
		},
		{
			name:    "duplicate_active_bid",
			actor:   contractor,
			details: validDetails(),
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
				repo.EXPECT().GetActiveBid(gomock.Any(), "proj1", contractor.UserID).
					Return(model.Bid{BidID: "existing"}, nil)
			},
			wantError: biderrors.ErrDuplicateBid,
		},
		{
			name:    "non_positive_price",
			actor:   contractor,
			details: BidDetails{FinalContractPrice: 0, CompletionDays: 30},
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
				repo.EXPECT().GetActiveBid(gomock.Any(), "proj1", contractor.UserID).
					Return(model.Bid{}, notFound("active bid"))
			},
			wantError: biderrors.ErrValidation,
		},
		{
			name:    "zero_completion_days",
			actor:   contractor,
			details: BidDetails{FinalContractPrice: 100000, CompletionDays: 0},
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
				repo.EXPECT().GetActiveBid(gomock.Any(), "proj1", contractor.UserID).
					Return(model.Bid{}, notFound("active bid"))
			},
			wantError: biderrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)
			tc.buildRepo(repo)

			bid, err := NewService(repo).SubmitBid(context.Background(), "proj1", tc.actor, tc.details)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, bid.BidID)
			require.Equal(t, model.BidSubmitted, bid.Status)
			require.Equal(t, tc.actor.UserID, bid.ContractorID)
			require.False(t, bid.DateSubmitted.IsZero())
		})
	}
}

// Test EditBid
func TestService_EditBid(t *testing.T) {
	t.Parallel()

	submitted := time.Now().Add(-time.Hour).UTC()
	baseBid := func(status model.BidStatus) model.Bid {
		return model.Bid{
			BidID:              "bid1",
			ProjectID:          "proj1",
			ContractorID:       contractor.UserID,
			Status:             status,
			FinalContractPrice: 100000,
			CompletionDays:     30,
			DateSubmitted:      submitted,
		}
	}

	tests := []struct {
		name      string
		actor     model.User
		buildRepo func(repo *repository.MockMarketplaceDB)
		wantError error
	}{
		{
			name:  "success_keeps_status_and_date",
			actor: contractor,
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(baseBid(model.BidSubmitted), nil)
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
				repo.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:  "other_contractors_bid",
			actor: rival,
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(baseBid(model.BidSubmitted), nil)
			},
			wantError: biderrors.ErrPermission,
		},
		{
			name:  "accepted_bid_is_frozen",
			actor: contractor,
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(baseBid(model.BidAccepted), nil)
			},
			wantError: biderrors.ErrInvalidState,
		},
		{
			name:  "withdrawn_bid_is_frozen",
			actor: contractor,
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(baseBid(model.BidWithdrawn), nil)
			},
			wantError: biderrors.ErrInvalidState,
		},
		{
			name:  "project_no_longer_open",
			actor: contractor,
			buildRepo: func(repo *repository.MockMarketplaceDB) {
				repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(baseBid(model.BidSubmitted), nil)
				project := openProject()
				project.Status = model.ProjectClosed
				repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(project, nil)
			},
			wantError: biderrors.ErrInvalidState,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)
			tc.buildRepo(repo)

			updates := BidDetails{FinalContractPrice: 95000, CompletionDays: 25, Proposal: "revised"}
			bid, err := NewService(repo).EditBid(context.Background(), "bid1", tc.actor, updates)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 95000.0, bid.FinalContractPrice)
			require.Equal(t, 25, bid.CompletionDays)
			require.Equal(t, model.BidSubmitted, bid.Status)
			require.Equal(t, submitted, bid.DateSubmitted)
		})
	}
}

// Test WithdrawBid
func TestService_WithdrawBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    model.BidStatus
		actor     model.User
		wantError error
	}{
		{name: "submitted", status: model.BidSubmitted, actor: contractor},
		{name: "under_review", status: model.BidUnderReview, actor: contractor},
		{name: "second_withdraw_fails", status: model.BidWithdrawn, actor: contractor, wantError: biderrors.ErrInvalidState},
		{name: "accepted_cannot_withdraw", status: model.BidAccepted, actor: contractor, wantError: biderrors.ErrInvalidState},
		{name: "rejected_cannot_withdraw", status: model.BidRejected, actor: contractor, wantError: biderrors.ErrInvalidState},
		{name: "not_the_bidder", status: model.BidSubmitted, actor: rival, wantError: biderrors.ErrPermission},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)

			bid := model.Bid{BidID: "bid1", ProjectID: "proj1", ContractorID: contractor.UserID, Status: tc.status}
			repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)
			if tc.wantError == nil {
				repo.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, updated model.Bid) error {
						require.Equal(t, model.BidWithdrawn, updated.Status)
						return nil
					})
			}

			err := NewService(repo).WithdrawBid(context.Background(), "bid1", tc.actor)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Test MarkUnderReview
func TestService_MarkUnderReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    model.BidStatus
		actor     model.User
		wantError error
	}{
		{name: "success", status: model.BidSubmitted, actor: owner},
		{name: "not_the_project_owner", status: model.BidSubmitted, actor: rival, wantError: biderrors.ErrPermission},
		{name: "already_under_review", status: model.BidUnderReview, actor: owner, wantError: biderrors.ErrInvalidState},
		{name: "withdrawn", status: model.BidWithdrawn, actor: owner, wantError: biderrors.ErrInvalidState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)

			bid := model.Bid{BidID: "bid1", ProjectID: "proj1", ContractorID: contractor.UserID, Status: tc.status}
			repo.EXPECT().GetBid(gomock.Any(), "bid1").Return(bid, nil)
			repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)
			if tc.wantError == nil {
				repo.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).Return(nil)
			}

			reviewed, err := NewService(repo).MarkUnderReview(context.Background(), "bid1", tc.actor)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.BidUnderReview, reviewed.Status)
		})
	}
}

// Test CreateProject
func TestService_CreateProject(t *testing.T) {
	t.Parallel()

	valid := ProjectDetails{
		Title:       "Warehouse build-out",
		Budget:      500000,
		BidDeadline: time.Now().Add(72 * time.Hour),
		CategoryIDs: []string{"cat-commercial"},
	}

	tests := []struct {
		name      string
		actor     model.User
		details   ProjectDetails
		wantError error
	}{
		{name: "success", actor: owner, details: valid},
		{name: "contractor_cannot_post", actor: contractor, details: valid, wantError: biderrors.ErrPermission},
		{name: "missing_title", actor: owner, details: ProjectDetails{Budget: 1, BidDeadline: time.Now()}, wantError: biderrors.ErrValidation},
		{name: "non_positive_budget", actor: owner, details: ProjectDetails{Title: "t", BidDeadline: time.Now()}, wantError: biderrors.ErrValidation},
		{name: "missing_deadline", actor: owner, details: ProjectDetails{Title: "t", Budget: 1}, wantError: biderrors.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)
			if tc.wantError == nil {
				repo.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil)
			}

			project, err := NewService(repo).CreateProject(context.Background(), tc.actor, tc.details)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, project.ProjectID)
			require.Equal(t, model.ProjectOpen, project.Status)
			require.Equal(t, owner.UserID, project.OwnerID)
		})
	}
}

// Test project status transitions through Close and Cancel
func TestService_ProjectTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      model.ProjectStatus
		close     bool
		wantError error
	}{
		{name: "close_open", from: model.ProjectOpen, close: true},
		{name: "cancel_open", from: model.ProjectOpen, close: false},
		{name: "close_awarded", from: model.ProjectAwarded, close: true, wantError: biderrors.ErrInvalidState},
		{name: "cancel_closed", from: model.ProjectClosed, close: false, wantError: biderrors.ErrInvalidState},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repository.NewMockMarketplaceDB(ctrl)

			project := openProject()
			project.Status = tc.from
			repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(project, nil)
			if tc.wantError == nil {
				repo.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).Return(nil)
			}

			service := NewService(repo)
			var (
				updated model.Project
				err     error
			)
			if tc.close {
				updated, err = service.CloseProject(context.Background(), "proj1", owner)
			} else {
				updated, err = service.CancelProject(context.Background(), "proj1", owner)
			}
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			if tc.close {
				require.Equal(t, model.ProjectClosed, updated.Status)
			} else {
				require.Equal(t, model.ProjectCancelled, updated.Status)
			}
		})
	}
}

// Test owner dashboard stats
func TestService_ListOwnerProjectsWithStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repository.NewMockMarketplaceDB(ctrl)

	project := openProject()
	repo.EXPECT().ListProjectsByOwner(gomock.Any(), owner.UserID).Return([]model.Project{project}, nil)
	repo.EXPECT().ListBidsByProject(gomock.Any(), project.ProjectID).Return([]model.Bid{
		{BidID: "b1", Status: model.BidSubmitted},
		{BidID: "b2", Status: model.BidWithdrawn},
		{BidID: "b3", Status: model.BidUnderReview},
	}, nil)

	stats, err := NewService(repo).ListOwnerProjectsWithStats(context.Background(), owner.UserID, owner)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, 3, stats[0].BidCount)
	require.Equal(t, 2, stats[0].ActiveBids)

	// Someone else's dashboard is off limits
	_, err = NewService(repo).ListOwnerProjectsWithStats(context.Background(), owner.UserID, contractor)
	require.ErrorIs(t, err, biderrors.ErrPermission)
}

// Test bid listings scoped to the right actor
func TestService_BidListings(t *testing.T) {
	t.Parallel()

	t.Run("project_bids_owner_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repository.NewMockMarketplaceDB(ctrl)
		repo.EXPECT().GetProject(gomock.Any(), "proj1").Return(openProject(), nil)

		_, err := NewService(repo).ListBidsByProject(context.Background(), "proj1", contractor)
		require.ErrorIs(t, err, biderrors.ErrPermission)
	})

	t.Run("contractor_bids_self_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repository.NewMockMarketplaceDB(ctrl)

		_, err := NewService(repo).ListBidsByContractor(context.Background(), contractor.UserID, rival)
		require.ErrorIs(t, err, biderrors.ErrPermission)
	})
}

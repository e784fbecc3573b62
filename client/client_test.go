package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"bid-portal/internal/award"
	"bid-portal/internal/biderrors"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
	"bid-portal/internal/server"
	"bid-portal/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	testOwner      = model.User{UserID: "owner1", Role: model.RoleOwner, Name: "Olive Owner"}
	testContractor = model.User{UserID: "c1", Role: model.RoleContractor, Name: "Casey Builder"}
	testRival      = model.User{UserID: "c2", Role: model.RoleContractor, Name: "Riley Rival"}
)

// startTestServer runs the full router over an in-memory store
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, user := range []model.User{testOwner, testContractor, testRival} {
		repo.AddUser(user)
	}
	repo.AddCategory(model.Category{CategoryID: "cat-roofing", Name: "Roofing"})

	router := server.SetupRouter(repo, lifecycle.NewService(repo), award.NewCoordinator(repo))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func projectRequest() helpers.ProjectRequest {
	return helpers.ProjectRequest{
		Title:       "Roof replacement, Building C",
		Budget:      250000,
		BidDeadline: time.Now().Add(48 * time.Hour).UTC(),
		CategoryIDs: []string{"cat-roofing"},
	}
}

// The typed client walks the whole flow end to end
func TestClient_FullFlow(t *testing.T) {
	srv := startTestServer(t)
	ctx := context.Background()

	ownerClient := New(srv.URL, testOwner.UserID)
	contractorClient := New(srv.URL, testContractor.UserID)
	rivalClient := New(srv.URL, testRival.UserID)

	categories, err := ownerClient.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	project, err := ownerClient.CreateProject(ctx, projectRequest())
	require.NoError(t, err)
	require.Equal(t, model.ProjectOpen, project.Status)
	require.Equal(t, testOwner.UserID, project.OwnerID)

	listed, err := contractorClient.GetProjects(ctx, []string{"cat-roofing"})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	bid1, err := contractorClient.CreateBid(ctx, helpers.SubmitBidRequest{
		ProjectID: project.ProjectID, FinalContractPrice: 100000, CompletionDays: 30,
	})
	require.NoError(t, err)
	require.Equal(t, model.BidSubmitted, bid1.Status)

	bid2, err := rivalClient.CreateBid(ctx, helpers.SubmitBidRequest{
		ProjectID: project.ProjectID, FinalContractPrice: 90000, CompletionDays: 45,
	})
	require.NoError(t, err)

	ownBids, err := contractorClient.GetBidsByContractor(ctx, testContractor.UserID)
	require.NoError(t, err)
	require.Len(t, ownBids, 1)

	result, err := ownerClient.AwardBid(ctx, bid2.BidID, testOwner.UserID,
		model.Signature{Name: testOwner.Name, Title: "Owner", Date: "2024-06-01"})
	require.NoError(t, err)
	require.Equal(t, model.ProjectAwarded, result.Project.Status)
	require.Equal(t, model.BidAccepted, result.Bid.Status)

	// The loser sees a rejected bid
	ownBids, err = contractorClient.GetBidsByContractor(ctx, testContractor.UserID)
	require.NoError(t, err)
	require.Equal(t, model.BidRejected, ownBids[0].Status)
}

// Server failures come back as the matching sentinel errors
func TestClient_ErrorMapping(t *testing.T) {
	srv := startTestServer(t)
	ctx := context.Background()

	ownerClient := New(srv.URL, testOwner.UserID)
	contractorClient := New(srv.URL, testContractor.UserID)
	rivalClient := New(srv.URL, testRival.UserID)

	project, err := ownerClient.CreateProject(ctx, projectRequest())
	require.NoError(t, err)

	t.Run("not_found", func(t *testing.T) {
		_, err := ownerClient.GetProject(ctx, "nonexistent")
		require.ErrorIs(t, err, biderrors.ErrNotFound)
	})

	t.Run("duplicate_bid", func(t *testing.T) {
		_, err := contractorClient.CreateBid(ctx, helpers.SubmitBidRequest{
			ProjectID: project.ProjectID, FinalContractPrice: 100000, CompletionDays: 30,
		})
		require.NoError(t, err)
		_, err = contractorClient.CreateBid(ctx, helpers.SubmitBidRequest{
			ProjectID: project.ProjectID, FinalContractPrice: 95000, CompletionDays: 25,
		})
		require.ErrorIs(t, err, biderrors.ErrDuplicateBid)
	})

	t.Run("permission", func(t *testing.T) {
		_, err := rivalClient.GetBidsByProject(ctx, project.ProjectID)
		require.ErrorIs(t, err, biderrors.ErrPermission)
	})

	t.Run("already_awarded", func(t *testing.T) {
		bid, err := rivalClient.CreateBid(ctx, helpers.SubmitBidRequest{
			ProjectID: project.ProjectID, FinalContractPrice: 90000, CompletionDays: 45,
		})
		require.NoError(t, err)

		_, err = ownerClient.AwardBid(ctx, bid.BidID, testOwner.UserID, model.Signature{Name: testOwner.Name})
		require.NoError(t, err)

		// The bids endpoint still knows the losing bid's ID
		bids, err := ownerClient.GetBidsByProject(ctx, project.ProjectID)
		require.NoError(t, err)
		var losingID string
		for _, b := range bids {
			if b.Status == model.BidRejected {
				losingID = b.BidID
			}
		}
		require.NotEmpty(t, losingID)

		_, err = ownerClient.AwardBid(ctx, losingID, testOwner.UserID, model.Signature{Name: testOwner.Name})
		require.ErrorIs(t, err, biderrors.ErrAlreadyAwarded)
	})

	t.Run("unknown_actor_rejected", func(t *testing.T) {
		ghost := New(srv.URL, "ghost")
		_, err := ghost.GetProjects(ctx, nil)
		require.Error(t, err)
		require.NotErrorIs(t, err, biderrors.ErrTransport)
	})
}

// A dead server surfaces as a transport error
func TestClient_TransportError(t *testing.T) {
	srv := startTestServer(t)
	srv.Close()

	c := New(srv.URL, testOwner.UserID)
	_, err := c.GetCategories(context.Background())
	require.ErrorIs(t, err, biderrors.ErrTransport)
}

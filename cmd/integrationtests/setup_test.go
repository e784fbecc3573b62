package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"bid-portal/internal/award"
	"bid-portal/internal/identity"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
	"bid-portal/internal/server"

	"github.com/gin-gonic/gin"
)

// Well-known test actors seeded into every test router
var (
	owner       = model.User{UserID: "owner1", Role: model.RoleOwner, Name: "Olive Owner", CompanyName: "Owner Holdings LLC"}
	secondOwner = model.User{UserID: "owner2", Role: model.RoleOwner, Name: "Oscar Other"}
	contractor  = model.User{UserID: "c1", Role: model.RoleContractor, Name: "Casey Builder", LicenseNumber: "TN-12345"}
	rival       = model.User{UserID: "c2", Role: model.RoleContractor, Name: "Riley Rival", LicenseNumber: "TN-67890"}
)

// SetupTestRouter initializes the router with an in-memory store seeded with
// the well-known actors and any given projects.
func SetupTestRouter(projects ...model.Project) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, user := range []model.User{owner, secondOwner, contractor, rival} {
		repo.AddUser(user)
	}
	repo.AddCategory(model.Category{CategoryID: "cat-roofing", Name: "Roofing"})
	repo.AddCategory(model.Category{CategoryID: "cat-commercial", Name: "Commercial"})

	for _, project := range projects {
		if err := repo.CreateProject(context.Background(), project); err != nil {
			panic(err)
		}
	}

	lifecycleService := lifecycle.NewService(repo)
	awardService := award.NewCoordinator(repo)
	return server.SetupRouter(repo, lifecycleService, awardService)
}

// ExecuteRequestAndParse executes an HTTP request as the given actor and
// parses the response envelope. A 201 response is unwrapped to its data.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, actorID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.Header.Set(identity.HeaderActorID, actorID)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}
	return resp, w
}

func openProject(projectID string) model.Project {
	return model.Project{
		ProjectID:   projectID,
		OwnerID:     owner.UserID,
		Title:       "Roof replacement, Building C",
		Description: "Full tear-off and re-deck",
		Location:    "Nashville, TN",
		Budget:      250000,
		BidDeadline: time.Now().Add(48 * time.Hour).UTC(),
		Status:      model.ProjectOpen,
		CategoryIDs: []string{"cat-roofing"},
		CreatedAt:   time.Now().UTC(),
	}
}

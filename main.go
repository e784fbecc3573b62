package main

import (
	"fmt"
	"os"

	"bid-portal/internal/award"
	"bid-portal/internal/config"
	"bid-portal/internal/db"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/internal/repository"
	"bid-portal/internal/server"
	"bid-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repo, cleanup := buildRepo(cfg)
	defer cleanup()

	lifecycleService := lifecycle.NewService(repo)
	awardService := award.NewCoordinator(repo)

	router := server.SetupRouter(repo, lifecycleService, awardService)

	fmt.Printf("Starting bid portal on %s...\n", cfg.ServerAddress)
	if err := router.Run(cfg.ServerAddress); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the Postgres store when a connection string is
// configured and falls back to the seeded in-memory store for local runs
func buildRepo(cfg config.Config) (repository.MarketplaceDB, func()) {
	if cfg.PostgresConn == "" {
		utils.Warn("POSTGRES_CONN not set, using in-memory store", nil)
		repo := repository.NewMemoryRepo()
		prepopulate(repo)
		return repo, func() {}
	}

	runDBMigration(cfg.MigrationURL, cfg.PostgresConn)

	dbPool, err := db.InitDb(cfg)
	if err != nil {
		utils.Fatal("error initializing database", map[string]any{"error": err.Error()})
	}
	return repository.NewPostgresRepo(dbPool), dbPool.Close
}

func runDBMigration(migrationURL, dbSource string) {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		utils.Fatal("cannot create migrate instance", map[string]any{"error": err.Error()})
	}
	if err = migration.Up(); err != nil && err != migrate.ErrNoChange {
		utils.Fatal("failed to run migrate up", map[string]any{"error": err.Error()})
	}
	utils.Info("db migrated successfully", nil)
}

// prepopulate seeds reference data and sample users into the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	categories := []model.Category{
		{CategoryID: "cat-residential", Name: "Residential", Description: "Homes and remodels"},
		{CategoryID: "cat-commercial", Name: "Commercial", Description: "Office and retail construction"},
		{CategoryID: "cat-roofing", Name: "Roofing", Description: "Roof repair and replacement"},
	}
	for _, category := range categories {
		repo.AddCategory(category)
	}

	users := []model.User{
		{UserID: "owner1", Role: model.RoleOwner, Name: "Pat Byrne", Email: "pat@example.com"},
		{UserID: "contractor1", Role: model.RoleContractor, Name: "Lindqvist Builders", Email: "info@lindqvist.example.com", LicenseNumber: "TN-48112"},
		{UserID: "contractor2", Role: model.RoleContractor, Name: "Carver & Sons", Email: "office@carver.example.com", LicenseNumber: "TN-50930"},
	}
	for _, user := range users {
		repo.AddUser(user)
	}
}

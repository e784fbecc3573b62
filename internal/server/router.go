package server

import (
	"net/http"

	"bid-portal/internal/award"
	"bid-portal/internal/identity"
	"bid-portal/internal/lifecycle"
	"bid-portal/internal/repository"
	handler "bid-portal/services/marketplace/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(repo repository.MarketplaceDB, lifecycleService *lifecycle.Service, awardService *award.Coordinator) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())           // recover from panics
	router.Use(RequestLoggerMiddleware)  // custom request logging
	router.Use(identity.Resolve(repo))   // resolve the acting user from the session header

	projectHandler := handler.NewProjectHandler(lifecycleService)
	bidHandler := handler.NewBidHandler(lifecycleService, awardService)

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		api.GET("/categories", projectHandler.ListCategoriesHandler)
		api.GET("/session/me", handler.MeHandler)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjectsHandler)
			projects.POST("", projectHandler.CreateProjectHandler)
			projects.GET("/owner/:owner_id/with-stats", projectHandler.OwnerProjectsHandler)
			projects.GET("/:project_id", projectHandler.GetProjectHandler)
			projects.PUT("/:project_id", projectHandler.UpdateProjectHandler)
			projects.DELETE("/:project_id", projectHandler.DeleteProjectHandler)
			projects.POST("/:project_id/close", projectHandler.CloseProjectHandler)
			projects.POST("/:project_id/cancel", projectHandler.CancelProjectHandler)
			projects.GET("/:project_id/bids", projectHandler.CompareBidsHandler)
		}

		bids := api.Group("/bids")
		{
			bids.GET("", bidHandler.ListBidsHandler)
			bids.POST("", bidHandler.SubmitBidHandler)
			bids.POST("/award", bidHandler.AwardBidHandler)
			bids.PUT("/:bid_id", bidHandler.EditBidHandler)
			bids.POST("/:bid_id/withdraw", bidHandler.WithdrawBidHandler)
			bids.POST("/:bid_id/review", bidHandler.ReviewBidHandler)
		}
	}

	return router
}

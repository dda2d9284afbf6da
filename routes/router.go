package routes // Router setup layer.

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Acr0no/fcg-users-app/global"
	"github.com/Acr0no/fcg-users-app/handlers"
	"github.com/Acr0no/fcg-users-app/middlewares"
)

// Setup attaches middlewares and registers all dashboard endpoints.
func Setup(r *gin.Engine, h *handlers.DashboardHandler) {
	r.Use(middlewares.RequestLogger(), middlewares.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	api := r.Group("/api")

	// Listing surface: snapshot + the three change sources + CSV import.
	api.GET("/dashboard", h.GetDashboard)
	api.POST("/dashboard/sort", h.ChangeSort)
	api.POST("/dashboard/page", h.ChangePage)
	api.POST("/dashboard/filters", h.ChangeFilters)
	api.POST("/dashboard/upload-csv", h.UploadCSV)

	// Dialog surface: prefill + the three submit kinds.
	api.POST("/users", h.AddUser)
	api.GET("/users/:id", h.GetUserForEdit)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)
}

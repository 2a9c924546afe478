package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes mounts the API under /api/v1 in three tiers: public,
// authenticated (token + live suspension check), and admin (additionally a
// live role check).
func RegisterRoutes(
	router *gin.Engine,
	h *handlers.AppHandlers,
	authenticate gin.HandlerFunc,
	requireAdmin gin.HandlerFunc,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	public := api.Group("")
	{
		h.Auth.RegisterPublicRoutes(public)
		h.Job.RegisterPublicRoutes(public)
		h.Upload.RegisterPublicRoutes(public)
	}

	protected := api.Group("")
	protected.Use(authenticate)
	{
		h.Auth.RegisterProtectedRoutes(protected)
		h.Profile.RegisterRoutes(protected)
		h.Job.RegisterProtectedRoutes(protected)
		h.Upload.RegisterProtectedRoutes(protected)
	}

	admin := api.Group("/admin")
	admin.Use(authenticate, requireAdmin)
	{
		h.Admin.RegisterRoutes(admin)
	}
}

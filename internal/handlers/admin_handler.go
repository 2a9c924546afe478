package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

// AdminHandler exposes the moderation endpoints. The route group it is
// mounted on carries the admin gate, so every handler here can assume the
// caller's admin role was just re-checked.
type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.PUT("/:id/suspend", h.ToggleSuspend)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/reset-password", h.ResetPassword)
		users.PUT("/:id/clear-profile", h.ClearProfile)
		users.PUT("/:id/clear-socials", h.ClearSocials)
	}

	rg.DELETE("/jobs/:id", h.DeleteJob)
	rg.GET("/stats", h.Stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.adminService.ListUsers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ToggleSuspend(c *gin.Context) {
	resp, err := h.adminService.ToggleSuspend(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.adminService.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.adminService.ResetPassword(c.Param("id"), req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

func (h *AdminHandler) ClearProfile(c *gin.Context) {
	if err := h.adminService.ClearProfile(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile cleared"})
}

func (h *AdminHandler) ClearSocials(c *gin.Context) {
	if err := h.adminService.ClearSocials(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Social links cleared"})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.adminService.DeleteJob(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

package httpserver

import (
	"net/http"

	"assistmenow/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type userHandler struct {
	svc    UserService
	logger *zap.Logger
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Routes on userHandler sit behind requireUser, so currentUser is never nil here.

func (h *userHandler) profile(c *gin.Context) {
	u, err := h.svc.Profile(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *userHandler) updateProfile(c *gin.Context) {
	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), currentUser(c).ID, patch)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *userHandler) changePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), currentUser(c).ID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

func (h *userHandler) notifications(c *gin.Context) {
	n, err := h.svc.Notifications(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *userHandler) updateNotifications(c *gin.Context) {
	var patch domain.NotificationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}
	n, err := h.svc.UpdateNotifications(c.Request.Context(), currentUser(c).ID, patch)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

package httpserver

import (
	"net/http"

	"assistmenow/internal/domain"
	authsvc "assistmenow/internal/service/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userEntity = "User"

type authHandler struct {
	svc    AuthService
	logger *zap.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	u, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, token, int(h.svc.SessionTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, loginResponse{User: u, Token: token})
}

func (h *authHandler) logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), requestToken(c)); err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, logoutResponse{Success: true, Message: "Logged out successfully"})
}

func (h *authHandler) register(c *gin.Context) {
	var req authsvc.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, userEntity, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

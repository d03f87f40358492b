package httpserver

import (
	"errors"
	"net/http"

	"assistmenow/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInvalidBody = "Invalid request body"
	msgInternal    = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func abortWithError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}

func badBody(c *gin.Context) {
	abortWithError(c, http.StatusBadRequest, "invalid_body", msgInvalidBody)
}

// writeError maps a service error onto the JSON envelope. entity names the resource in not-found
// messages, e.g. "Recipient not found".
func writeError(c *gin.Context, logger *zap.Logger, entity string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		abortWithError(c, http.StatusBadRequest, "validation", verr.Message)
	case errors.Is(err, domain.ErrInvalidStatus):
		abortWithError(c, http.StatusBadRequest, "invalid_status", "Invalid status")
	case errors.Is(err, domain.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "not_found", entity+" not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		abortWithError(c, http.StatusConflict, "invalid_transition", "Status transition not allowed")
	case errors.Is(err, domain.ErrAlreadyExists):
		abortWithError(c, http.StatusConflict, "already_exists", entity+" already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
	case errors.Is(err, domain.ErrUnauthenticated):
		abortWithError(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		abortWithError(c, http.StatusInternalServerError, "internal", msgInternal)
	}
}

func deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, messageResponse{Message: entity + " deleted successfully"})
}

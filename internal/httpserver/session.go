package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"assistmenow/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ctxKey string

const (
	userCtxKey  ctxKey = "user"
	tokenCookie        = "token"
	systemActor        = "system"
)

// sessionMiddleware attaches the signed-in user to the request context when the request carries a
// live token. Requests without one pass through untouched. A failing session lookup ends the
// request with 500.
func sessionMiddleware(auth AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := requestToken(c)
		if token == "" || auth == nil {
			c.Next()
			return
		}
		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				logger.Warn("session lookup failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
				abortWithError(c, http.StatusInternalServerError, "internal", msgInternal)
				return
			}
			c.Next()
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// requireUser rejects requests without a signed-in user.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			abortWithError(c, http.StatusUnauthorized, "unauthenticated", "Authentication required")
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	u, _ := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u
}

// actor is the id recorded as createdBy.
func actor(c *gin.Context) string {
	if u := currentUser(c); u != nil {
		return u.ID
	}
	return systemActor
}

func requestToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(tokenCookie); err == nil {
		return token
	}
	return ""
}

package httpserver

import (
	"context"
	"net/http"
	"time"

	"assistmenow/internal/domain"
	authsvc "assistmenow/internal/service/auth"
	deliverysvc "assistmenow/internal/service/delivery"
	hampersvc "assistmenow/internal/service/hamper"
	recipientsvc "assistmenow/internal/service/recipient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecipientService interface {
	Create(ctx context.Context, createdBy string, in recipientsvc.CreateInput) (*domain.Recipient, error)
	List(ctx context.Context) ([]domain.Recipient, error)
	Get(ctx context.Context, id string) (*domain.Recipient, error)
	Update(ctx context.Context, id string, patch domain.RecipientPatch) (*domain.Recipient, error)
	Delete(ctx context.Context, id string) error
}

type HamperService interface {
	Create(ctx context.Context, createdBy string, in hampersvc.CreateInput) (*domain.Hamper, error)
	List(ctx context.Context) ([]domain.Hamper, error)
	Get(ctx context.Context, id string) (*domain.Hamper, error)
	Update(ctx context.Context, id string, patch domain.HamperPatch) (*domain.Hamper, error)
	Delete(ctx context.Context, id string) error
}

type DeliveryService interface {
	Create(ctx context.Context, createdBy string, in deliverysvc.CreateInput) (*domain.Delivery, error)
	List(ctx context.Context) ([]domain.Delivery, error)
	Get(ctx context.Context, id string) (*domain.Delivery, error)
	Update(ctx context.Context, id string, patch domain.DeliveryPatch) (*domain.Delivery, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id, status string) (*domain.Delivery, error)
	Assign(ctx context.Context, id, userID string) (*domain.Delivery, error)
}

type ReportService interface {
	Deliveries(ctx context.Context) (*domain.DeliveryReport, error)
	Recipients(ctx context.Context) (*domain.RecipientReport, error)
	Hampers(ctx context.Context) (*domain.HamperReport, error)
	Summary(ctx context.Context) (*domain.SummaryReport, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	SessionTTL() time.Duration
}

type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	Notifications(ctx context.Context, userID string) (*domain.NotificationSettings, error)
	UpdateNotifications(ctx context.Context, userID string, patch domain.NotificationPatch) (*domain.NotificationSettings, error)
}

// Deps carries the services the router dispatches to.
type Deps struct {
	RecipientSvc RecipientService
	HamperSvc    HamperService
	DeliverySvc  DeliveryService
	ReportSvc    ReportService
	AuthSvc      AuthService
	UserSvc      UserService
	// Ready reports whether the backing store is reachable. Nil means always ready.
	Ready func(ctx context.Context) error
	// AllowedOrigins for CORS; empty or "*" allows any origin.
	AllowedOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.LoggerWithWriter(zap.NewStdLog(logger).Writer()),
		gin.CustomRecovery(func(c *gin.Context, rec any) {
			logger.Error("panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
			abortWithError(c, http.StatusInternalServerError, "internal", msgInternal)
		}),
		cors.New(corsConfig(deps.AllowedOrigins)),
		sessionMiddleware(deps.AuthSvc, logger),
	)
	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "not_found", "Not found")
	})

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Ready))

	rh := &recipientHandler{svc: deps.RecipientSvc, logger: logger}
	recipients := router.Group("/recipients")
	recipients.GET("", rh.list)
	recipients.POST("", rh.create)
	recipients.GET("/:id", rh.get)
	recipients.PUT("/:id", rh.update)
	recipients.DELETE("/:id", rh.delete)

	hh := &hamperHandler{svc: deps.HamperSvc, logger: logger}
	hampers := router.Group("/hampers")
	hampers.GET("", hh.list)
	hampers.POST("", hh.create)
	hampers.GET("/:id", hh.get)
	hampers.PUT("/:id", hh.update)
	hampers.DELETE("/:id", hh.delete)

	dh := &deliveryHandler{svc: deps.DeliverySvc, logger: logger}
	deliveries := router.Group("/deliveries")
	deliveries.GET("", dh.list)
	deliveries.POST("", dh.create)
	deliveries.GET("/:id", dh.get)
	deliveries.PUT("/:id", dh.update)
	deliveries.DELETE("/:id", dh.delete)
	deliveries.PUT("/:id/status", dh.updateStatus)
	deliveries.PUT("/:id/assign", dh.assign)

	reh := &reportHandler{svc: deps.ReportSvc, logger: logger}
	reports := router.Group("/reports")
	reports.GET("/deliveries", reh.deliveries)
	reports.GET("/recipients", reh.recipients)
	reports.GET("/hampers", reh.hampers)
	reports.GET("/summary", reh.summary)

	ah := &authHandler{svc: deps.AuthSvc, logger: logger}
	auth := router.Group("/auth")
	auth.POST("/login", ah.login)
	auth.POST("/logout", ah.logout)
	auth.POST("/register", ah.register)

	uh := &userHandler{svc: deps.UserSvc, logger: logger}
	users := router.Group("/users", requireUser())
	users.GET("/profile", uh.profile)
	users.PUT("/profile", uh.updateProfile)
	users.PUT("/password", uh.changePassword)
	users.GET("/notifications", uh.notifications)
	users.PUT("/notifications", uh.updateNotifications)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

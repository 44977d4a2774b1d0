package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/compasshq/erp-api/internal/config"
	domainRepo "github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/internal/presentation/http/handler"
	"github.com/compasshq/erp-api/internal/presentation/http/middleware"
	"github.com/compasshq/erp-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Finance   *handler.FinanceHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Customers and segments
	registerCustomerRoutes(protected, h)

	// Invoices and payments
	registerInvoiceRoutes(protected, h, deps)

	// Finance transactions
	registerTransactionRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/interactions", h.Customer.ListInteractions)
		customers.POST("/:id/interactions", h.Customer.CreateInteraction)
	}

	segments := protected.Group("/segments")
	{
		segments.GET("", h.Customer.ListSegments)
		segments.POST("", h.Customer.CreateSegment)
		segments.GET("/:id/customers", h.Customer.ListSegmentCustomers)
		segments.POST("/:id/customers/:customer_id", h.Customer.AssignToSegment)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequireRole("admin", "manager"))
	{
		invoices.GET("", h.Finance.ListInvoices)
		// Invoice and payment creation use idempotency middleware to
		// prevent duplicates on client retries
		invoices.POST("", idempotency, h.Finance.CreateInvoice)
		invoices.GET("/:id", h.Finance.GetInvoice)
		invoices.PUT("/:id/status", h.Finance.UpdateInvoiceStatus)
		invoices.GET("/:id/payments", h.Finance.ListInvoicePayments)
		invoices.POST("/:id/payments", idempotency, h.Finance.CreatePayment)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	transactions.Use(middleware.RequireRole("admin", "manager"))
	{
		transactions.GET("", h.Finance.ListTransactions)
		transactions.POST("", h.Finance.CreateTransaction)
		transactions.GET("/:id", h.Finance.GetTransaction)
		transactions.PUT("/:id", h.Finance.UpdateTransaction)
		transactions.DELETE("/:id", h.Finance.DeleteTransaction)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
		users.GET("/:id/activities", h.User.ListActivities)
	}
}

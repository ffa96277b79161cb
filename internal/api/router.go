package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mercatto/commerce-api/internal/api/handler"
	"github.com/mercatto/commerce-api/internal/api/middleware"
	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
	"github.com/mercatto/commerce-api/internal/core/service"
	"github.com/mercatto/commerce-api/internal/infrastructure/config"
	"github.com/mercatto/commerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/mercatto/commerce-api/internal/infrastructure/db/redis"
	"github.com/mercatto/commerce-api/internal/infrastructure/hash"
	"github.com/mercatto/commerce-api/internal/infrastructure/http/handlers"
	"github.com/mercatto/commerce-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The guard chain on protected routes is explicit and ordered: authenticate,
// then authorize by role or ownership.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	hasher := hash.NewBcryptHasher(0)
	tokens := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	denylist := redisdb.NewDenylist(rdb)

	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	authService := service.NewAuthService(userRepo, hasher, tokens, tokens, denylist, audit, log)
	userService := service.NewUserService(userRepo, hasher, log)
	customerService := service.NewCustomerService(customerRepo, hasher, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	productHandler := handler.NewProductHandler(productService)
	auditHandler := handler.NewAuditHandler(auditRepo)

	authn := middleware.Auth(tokens, denylist)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	ownerOrAdmin := middleware.RequireOwner("id")

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authn)
	e.GET("/auth/activity", auditHandler.Activity, authn)

	// --- Users ---
	users := e.Group("/users")
	users.POST("", userHandler.Create, authn, adminOnly)
	users.GET("", userHandler.List, authn, adminOnly)
	users.GET("/me", userHandler.Me, authn)
	users.GET("/:id", userHandler.Get, authn, ownerOrAdmin)
	users.PATCH("/:id", userHandler.Update, authn, ownerOrAdmin)
	users.DELETE("/:id", userHandler.Delete, authn, ownerOrAdmin)

	// --- Customers ---
	customers := e.Group("/customers")
	customers.POST("", customerHandler.Create) // public self-registration
	customers.GET("", customerHandler.List, authn, adminOnly)
	customers.GET("/:id", customerHandler.Get, authn, ownerOrAdmin)
	customers.PATCH("/:id", customerHandler.Update, authn, ownerOrAdmin)
	customers.DELETE("/:id", customerHandler.Delete, authn, ownerOrAdmin)

	// --- Products (catalog management is admin-only) ---
	products := e.Group("/products", authn, adminOnly)
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.PATCH("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

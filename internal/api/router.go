package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/amanj01/catalog-admin/docs"
	"github.com/amanj01/catalog-admin/internal/api/handler"
	"github.com/amanj01/catalog-admin/internal/api/middleware"
	"github.com/amanj01/catalog-admin/internal/core/domain"
	"github.com/amanj01/catalog-admin/internal/core/service"
	mongodb "github.com/amanj01/catalog-admin/internal/infrastructure/db/mongo"
	"github.com/amanj01/catalog-admin/internal/pkg/config"
	"github.com/amanj01/catalog-admin/internal/pkg/token"
)

// RouterDeps carries everything the router needs to wire handlers.
type RouterDeps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Cfg    *config.Config
	Issuer *token.Issuer
	Auth   *service.AuthService
	Files  handler.FileSaver
	Audit  handler.AuditRecorder
	Log    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	productRepo := mongodb.NewProductRepository(deps.DB)
	categoryRepo := mongodb.NewCategoryRepository(deps.DB)
	galleryRepo := mongodb.NewGalleryRepository(deps.DB)
	feedbackRepo := mongodb.NewFeedbackRepository(deps.DB)

	userService := service.NewUserService(userRepo, deps.Log)
	productService := service.NewProductService(productRepo, deps.Log)
	categoryService := service.NewCategoryService(categoryRepo, deps.Log)
	galleryService := service.NewGalleryService(galleryRepo, deps.Log)
	feedbackService := service.NewFeedbackService(feedbackRepo, deps.Log)

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(userService, deps.Audit)
	productHandler := handler.NewProductHandler(productService, deps.Files, deps.Audit)
	categoryHandler := handler.NewCategoryHandler(categoryService, deps.Audit)
	galleryHandler := handler.NewGalleryHandler(galleryService, deps.Files, deps.Audit)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, deps.Audit)

	authRequired := middleware.Auth(deps.Issuer, deps.Log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Stored images are served directly off disk.
	e.Static("/uploads", deps.Cfg.Upload.Dir)

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/login", authHandler.Login)

	// --- Products (reads public, writes admin) ---
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("/add", productHandler.Create, authRequired, adminOnly)
	products.PUT("/update/:id", productHandler.Update, authRequired, adminOnly)
	products.DELETE("/soft-delete/:id", productHandler.SoftDelete, authRequired, adminOnly)

	// --- Categories ---
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("/add", categoryHandler.Create, authRequired, adminOnly)
	categories.PUT("/update/:id", categoryHandler.Update, authRequired, adminOnly)
	categories.DELETE("/soft-delete/:id", categoryHandler.SoftDelete, authRequired, adminOnly)
	categories.DELETE("/permanent-delete/:id", categoryHandler.HardDelete, authRequired, adminOnly)

	// --- Galleries ---
	galleries := api.Group("/galleries")
	galleries.GET("", galleryHandler.List)
	galleries.GET("/:id", galleryHandler.Get)
	galleries.POST("/add", galleryHandler.Create, authRequired, adminOnly)
	galleries.PUT("/update/:id", galleryHandler.Update, authRequired, adminOnly)
	galleries.DELETE("/delete/:id", galleryHandler.Delete, authRequired, adminOnly)

	// --- Feedbacks (submission public, management admin) ---
	feedbacks := api.Group("/feedbacks")
	feedbacks.POST("/add", feedbackHandler.Submit)
	feedbacks.GET("", feedbackHandler.List, authRequired, adminOnly)
	feedbacks.GET("/:id", feedbackHandler.Get, authRequired, adminOnly)
	feedbacks.PUT("/resolve/:id", feedbackHandler.Resolve, authRequired, adminOnly)
	feedbacks.DELETE("/delete/:id", feedbackHandler.Delete, authRequired, adminOnly)

	// --- Users (admin only, except self-lookup) ---
	users := api.Group("/users", authRequired)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.POST("/add", userHandler.Create, adminOnly)
	users.DELETE("/soft-delete/:id", userHandler.SoftDelete, adminOnly)
	users.DELETE("/permanent-delete/:id", userHandler.HardDelete, adminOnly)

	return e
}

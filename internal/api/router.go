package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/southtrails/tours-api/docs"
	"github.com/southtrails/tours-api/internal/api/handler"
	"github.com/southtrails/tours-api/internal/api/middleware"
	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/service"
	"github.com/southtrails/tours-api/internal/infrastructure/config"
	mongodb "github.com/southtrails/tours-api/internal/infrastructure/db/mongo"
	redisdb "github.com/southtrails/tours-api/internal/infrastructure/db/redis"
	"github.com/southtrails/tours-api/internal/infrastructure/storage"
	"github.com/southtrails/tours-api/internal/token"
	"github.com/southtrails/tours-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, error) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("tours"))

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	userRepo := mongodb.NewUserRepository(db)
	packageRepo := mongodb.NewPackageRepository(db)
	vehicleRepo := mongodb.NewVehicleRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	statsCache := redisdb.NewStatsCache(rdb, log)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	packageService := service.NewPackageService(packageRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	bookingService := service.NewBookingService(bookingRepo, packageRepo)
	dashboardService := service.NewDashboardService(userRepo, packageRepo, bookingRepo, statsCache)

	uploadStore, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	packageHandler := handler.NewPackageHandler(packageService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	uploadHandler := handler.NewUploadHandler(uploadStore)

	authRequired := middleware.Auth(tokens)
	userOnly := middleware.RBAC(domain.RoleUser)
	adminOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/profile", authHandler.Profile, authRequired)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Public catalogue ---
	e.GET("/packages", packageHandler.List)
	e.GET("/packages/featured", packageHandler.Featured)
	e.GET("/packages/region/:region", packageHandler.ByRegion)
	e.GET("/packages/:slug", packageHandler.BySlug)
	e.GET("/vehicles", vehicleHandler.List)
	e.GET("/vehicles/:id", vehicleHandler.Get)
	e.Static(cfg.Upload.URLPrefix, uploadStore.Dir())

	// --- Self-service (role user) ---
	e.GET("/bookings", bookingHandler.ListMine, authRequired, userOnly)
	e.POST("/bookings", bookingHandler.Create, authRequired, userOnly)
	e.PUT("/users/passengers", userHandler.AddPassenger, authRequired, userOnly)
	e.DELETE("/users/passengers/:index", userHandler.RemovePassenger, authRequired, userOnly)

	// --- Back office ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/dashboard", dashboardHandler.Stats)

	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PATCH("/users/:id/activate", userHandler.Activate)
	admin.PATCH("/users/:id/deactivate", userHandler.Deactivate)

	admin.GET("/packages", packageHandler.AdminList)
	admin.POST("/packages", packageHandler.Create)
	admin.GET("/packages/:id", packageHandler.AdminGet)
	admin.PUT("/packages/:id", packageHandler.Update)
	admin.DELETE("/packages/:id", packageHandler.Delete)

	admin.GET("/bookings", bookingHandler.AdminList)
	admin.POST("/bookings", bookingHandler.AdminCreate)
	admin.GET("/bookings/:id", bookingHandler.AdminGet)
	admin.PUT("/bookings/:id", bookingHandler.AdminUpdate)
	admin.DELETE("/bookings/:id", bookingHandler.AdminDelete)

	admin.POST("/vehicles", vehicleHandler.Create)
	admin.PUT("/vehicles/:id", vehicleHandler.Update)
	admin.DELETE("/vehicles/:id", vehicleHandler.Delete)
	admin.PATCH("/vehicles/:id/toggle", vehicleHandler.ToggleAvailability)

	e.POST("/uploads", uploadHandler.Upload, authRequired, adminOnly)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e, nil
}

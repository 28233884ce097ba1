package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vetclinic/vetclinic-api/internal/api/handler"
	"github.com/vetclinic/vetclinic-api/internal/api/middleware"
	"github.com/vetclinic/vetclinic-api/internal/core/domain"
	"github.com/vetclinic/vetclinic-api/internal/core/ports"
	"github.com/vetclinic/vetclinic-api/internal/core/service"
	mongodb "github.com/vetclinic/vetclinic-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vetclinic/vetclinic-api/internal/infrastructure/db/redis"
	"github.com/vetclinic/vetclinic-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, queue ports.NotificationQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vetclinic"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	petRepo := mongodb.NewPetRepository(db)
	apptRepo := mongodb.NewAppointmentRepository(db)
	denylist := redisdb.NewDenylist(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, denylist, log)
	userService := service.NewUserService(userRepo, log)
	petService := service.NewPetService(petRepo, log)
	apptService := service.NewAppointmentService(apptRepo, queue, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	apptHandler := handler.NewAppointmentHandler(apptService)
	petHandler := handler.NewPetHandler(petService, apptService)

	auth := middleware.Auth(tokenService, denylist)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleVet)
	anyRole := middleware.RequireRoles(domain.RoleAdmin, domain.RoleVet, domain.RoleOwner)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)

	// --- Users ---
	users := e.Group("/v1/users", auth)
	users.GET("", userHandler.List, staff)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/:id", userHandler.Get, anyRole)          // self-access enforced in handler
	users.PUT("/:id", userHandler.Update, adminOnly)
	users.PUT("/:id/password", userHandler.ChangePassword, anyRole) // self-access enforced in handler
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Pets ---
	pets := e.Group("/v1/pets", auth)
	pets.GET("", petHandler.List, anyRole)
	pets.POST("", petHandler.Create, staff)
	pets.GET("/:id", petHandler.Get, anyRole)
	pets.PUT("/:id", petHandler.Update, staff)
	pets.DELETE("/:id", petHandler.Delete, staff)
	pets.GET("/:id/appointments", petHandler.Appointments, anyRole)

	// --- Appointments ---
	appts := e.Group("/v1/appointments", auth)
	appts.GET("", apptHandler.List, anyRole)
	appts.POST("", apptHandler.Create, anyRole)
	appts.GET("/:id", apptHandler.Get, anyRole)
	appts.PUT("/:id", apptHandler.Update, anyRole)
	appts.DELETE("/:id", apptHandler.Delete, anyRole)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

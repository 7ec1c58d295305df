package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"github.com/uptrace/bun"

	_ "github.com/skillsetu/marketplace-api/docs"
	"github.com/skillsetu/marketplace-api/internal/api/handler"
	"github.com/skillsetu/marketplace-api/internal/api/middleware"
	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
	"github.com/skillsetu/marketplace-api/internal/core/service"
	redisinfra "github.com/skillsetu/marketplace-api/internal/infrastructure/db/redis"
	"github.com/skillsetu/marketplace-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle is then disabled.
func NewRouter(db *bun.DB, rdb *goredis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	users := sqlite.NewUserRepository(db)
	courses := sqlite.NewCourseRepository(db)
	enrollments := sqlite.NewEnrollmentRepository(db)
	jobs := sqlite.NewJobRepository(db)
	applications := sqlite.NewApplicationRepository(db)

	// --- Services ---
	tokens := service.NewTokenService(jwtSecret, 24*time.Hour)
	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisinfra.NewLoginLimiter(rdb)
	}
	authService := service.NewAuthService(users, tokens, limiter, log)
	courseService := service.NewCourseService(courses, enrollments, log)
	jobService := service.NewJobService(jobs, applications, log)
	dashboardService := service.NewDashboardService(courses, enrollments, jobs, applications)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	jobHandler := handler.NewJobHandler(jobService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authGate := middleware.Auth(tokens)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authGate)

	// --- Course routes (listing is public) ---
	api.GET("/courses", courseHandler.List)
	api.GET("/courses/:id", courseHandler.Get)
	api.POST("/courses", courseHandler.Create, authGate, middleware.RequireAction(domain.ActionCreateCourse))
	api.POST("/courses/:id/enroll", courseHandler.Enroll, authGate, middleware.RequireAction(domain.ActionEnroll))
	api.GET("/enrollments", courseHandler.MyEnrollments, authGate)

	// --- Job routes (listing is public) ---
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)
	api.POST("/jobs", jobHandler.Create, authGate, middleware.RequireAction(domain.ActionCreateJob))
	api.PATCH("/jobs/:id/status", jobHandler.UpdateStatus, authGate, middleware.RequireAction(domain.ActionUpdateJobStatus))
	api.POST("/jobs/:id/apply", jobHandler.Apply, authGate, middleware.RequireAction(domain.ActionApply))
	api.GET("/applications", jobHandler.MyApplications, authGate)
	api.PATCH("/applications/:id", jobHandler.Decide, authGate, middleware.RequireAction(domain.ActionDecideApplication))

	// --- Dashboard ---
	api.GET("/dashboard/stats", dashboardHandler.Stats, authGate)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

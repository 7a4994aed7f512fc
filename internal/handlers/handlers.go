package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"courseroom/api/internal/cache"
	"courseroom/api/internal/config"
	"courseroom/api/internal/content"
	"courseroom/api/internal/middleware"
	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
	"courseroom/api/internal/service"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	auth        *service.AuthService
	progress    *service.ProgressService
	assignments *service.AssignmentService
	users       *repository.UserRepository
	sessions    *repository.SessionRepository
	courses     *repository.CourseRepository
	content     *content.Store
	db          *pgxpool.Pool
	cache       *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, contentStore *content.Store, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	accessRepo := repository.NewLessonAccessRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	catalog := cache.NewCatalog(courseRepo, redisClient, cfg.Redis.CatalogTTL, log)

	auth := service.NewAuthService(userRepo, enrollRepo, accessRepo, sessionRepo, cfg.Session.TTL, log)
	progress := service.NewProgressService(catalog, accessRepo, log)

	runTx := func(ctx context.Context, fn func(stores service.AssignmentStores) error) error {
		return repository.WithinTx(ctx, db, func(tx pgx.Tx) error {
			return fn(service.AssignmentStores{
				Users:       repository.NewUserRepository(tx),
				Enrollments: repository.NewEnrollmentRepository(tx),
				Access:      repository.NewLessonAccessRepository(tx),
			})
		})
	}
	assignments := service.NewAssignmentService(runTx, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		auth:        auth,
		progress:    progress,
		assignments: assignments,
		users:       userRepo,
		sessions:    sessionRepo,
		courses:     courseRepo,
		content:     contentStore,
		db:          db,
		cache:       redisClient,
	}
}

// Auth exposes the auth service for startup tasks (admin bootstrap).
func (h HandlerSet) Auth() *service.AuthService {
	return h.auth
}

// Sessions exposes the session repository for the purge job.
func (h HandlerSet) Sessions() *repository.SessionRepository {
	return h.sessions
}

func (h HandlerSet) Register(router *gin.Engine) {
	router.GET("/health", h.Health)

	router.GET("/", h.Root)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.RegisterSubmit)

	authed := router.Group("/", middleware.Session(h.cfg.Session.CookieName, h.sessions))
	authed.GET("/logout", h.Logout)
	authed.GET("/cabinet", h.Cabinet)
	authed.GET("/lesson/:course/:lesson/*filepath", h.LessonFile)

	admin := authed.Group("/admin", middleware.RequireRole(models.UserRoleAdmin))
	admin.GET("", h.AdminPage)
	admin.POST("", h.AdminSubmit)
}

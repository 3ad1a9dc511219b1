package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"relecloud-backend/internal/config"
	infraCache "relecloud-backend/internal/infrastructure/cache"
	"relecloud-backend/internal/infrastructure/database"
	"relecloud-backend/internal/infrastructure/email"
	"relecloud-backend/pkg/cache"
	"relecloud-backend/pkg/jwt"

	cruiseHandler "relecloud-backend/internal/domains/cruise/handler"
	cruiseRepo "relecloud-backend/internal/domains/cruise/repository"
	cruiseService "relecloud-backend/internal/domains/cruise/service"
	destinationHandler "relecloud-backend/internal/domains/destination/handler"
	destinationRepo "relecloud-backend/internal/domains/destination/repository"
	destinationService "relecloud-backend/internal/domains/destination/service"
	inforequestHandler "relecloud-backend/internal/domains/inforequest/handler"
	inforequestRepo "relecloud-backend/internal/domains/inforequest/repository"
	inforequestService "relecloud-backend/internal/domains/inforequest/service"
	reviewHandler "relecloud-backend/internal/domains/review/handler"
	reviewRepo "relecloud-backend/internal/domains/review/repository"
	reviewService "relecloud-backend/internal/domains/review/service"
	userHandler "relecloud-backend/internal/domains/user/handler"
	userRepo "relecloud-backend/internal/domains/user/repository"
	userService "relecloud-backend/internal/domains/user/service"
)

// =====================================================
// CONTAINER
// =====================================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config       *config.Config
	DB           *database.PostgresDB
	Cache        cache.Cache
	JWTManager   *jwt.Manager
	EmailService email.EmailService

	DestinationRepo destinationRepo.DestinationRepository
	CruiseRepo      cruiseRepo.CruiseRepository
	InfoRequestRepo inforequestRepo.InfoRequestRepository
	ReviewRepo      reviewRepo.ReviewRepository
	UserRepo        userRepo.UserRepository

	DestinationService destinationService.ServiceInterface
	CruiseService      cruiseService.ServiceInterface
	InfoRequestService inforequestService.ServiceInterface
	ReviewService      reviewService.ServiceInterface
	UserService        userService.ServiceInterface

	DestinationHandler *destinationHandler.DestinationHandler
	CruiseHandler      *cruiseHandler.CruiseHandler
	InfoRequestHandler *inforequestHandler.InfoRequestHandler
	ReviewHandler      *reviewHandler.ReviewHandler
	UserHandler        *userHandler.UserHandler
}

// NewContainer builds the dependency graph in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Configuration loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// Redis is non-critical: without it login lockout tracking is off,
	// everything else works.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed, continuing without cache")
			redisCache = nil
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.EmailService = email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.From,
		cfg.Email.NotifyEmail,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.DestinationRepo = destinationRepo.NewPostgresDestinationRepository(pool)
	c.CruiseRepo = cruiseRepo.NewPostgresCruiseRepository(pool)
	c.InfoRequestRepo = inforequestRepo.NewPostgresInfoRequestRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
}

func (c *Container) initServices() {
	c.DestinationService = destinationService.NewDestinationService(c.DestinationRepo)
	c.CruiseService = cruiseService.NewCruiseService(c.CruiseRepo)
	c.InfoRequestService = inforequestService.NewInfoRequestService(c.InfoRequestRepo, c.CruiseRepo, c.EmailService)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.DestinationRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Cache)
}

func (c *Container) initHandlers() {
	c.DestinationHandler = destinationHandler.NewDestinationHandler(c.DestinationService)
	c.CruiseHandler = cruiseHandler.NewCruiseHandler(c.CruiseService)
	c.InfoRequestHandler = inforequestHandler.NewInfoRequestHandler(c.InfoRequestService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources in reverse order
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close Redis connection")
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("Container cleaned up")
}

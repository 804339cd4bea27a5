package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/database"
	"career-guide/internal/database/migration"
	dbpostgres "career-guide/internal/database/postgres"
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	v1 "career-guide/internal/delivery/http/routes/v1"
	"career-guide/internal/domain/matching"
	"career-guide/internal/infrastructure/cache"
	"career-guide/internal/infrastructure/llm"
	"career-guide/internal/infrastructure/mail"
	"career-guide/internal/infrastructure/storage"
	"career-guide/internal/pkg/jwt"
	"career-guide/internal/pkg/logger"
	"career-guide/internal/repository"
	"career-guide/internal/usecase"
	"career-guide/internal/ws"
	"career-guide/migrations"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Health   *handler.HealthHandler
	WS       *ws.Handler
	Handlers v1.Handlers
	AuthMw   *middleware.AuthMiddleware
}

// NewContainer connects to storage, applies pending migrations and wires
// every handler. The generator, object storage and mailer are optional and
// stay nil when their configuration is absent.
func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{FS: migrations.FS, Logger: log}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	weights, err := matching.LoadWeights(cfg.Matching.WeightsFile)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load matching weights: %w", err)
	}
	engine := matching.NewEngine(weights)

	redisCache := cache.NewRedis(cfg.Redis, log)
	hub := ws.NewHub(log)

	var generator usecase.Generator
	if g, err := llm.NewGemini(ctx, cfg.Gemini, log); err == nil {
		generator = g
	} else if !errors.Is(err, llm.ErrNotConfigured) {
		log.Warn("gemini disabled", zap.Error(err))
	}

	var objects usecase.ObjectStorage
	if s, err := storage.NewS3(ctx, cfg.Storage); err == nil {
		objects = s
	} else if !errors.Is(err, storage.ErrNotConfigured) {
		log.Warn("object storage disabled", zap.Error(err))
	}

	var mailer usecase.Mailer
	if m, err := mail.NewSES(ctx, cfg.Mail); err == nil {
		mailer = m
	} else if !errors.Is(err, mail.ErrNotConfigured) {
		log.Warn("verification mail disabled", zap.Error(err))
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	resourceRepo := repository.NewPostgresResourceRepository(db)
	markRepo := repository.NewPostgresMarkRepository(db)
	roadmapRepo := repository.NewPostgresRoadmapRepository(db)

	recommendUC := usecase.NewRecommendationUsecase(engine, profileRepo, jobRepo, resourceRepo, redisCache, usecase.RecommendationConfig{
		CandidateCap: cfg.Matching.CandidateCap,
		DefaultLimit: cfg.Matching.DefaultLimit,
		TTL:          cfg.Matching.RecommendTTL,
	}, log)
	notifier := ws.NewNotifier(hub)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, mailer, log)
	userUC := usecase.NewUserUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, recommendUC, log)
	jobUC := usecase.NewJobUsecase(jobRepo, applicationRepo, notifier, recommendUC, log)
	resourceUC := usecase.NewResourceUsecase(resourceRepo, markRepo, notifier, recommendUC, log)
	aiUC := usecase.NewAIUsecase(generator, profileUC, jobRepo, roadmapRepo, engine, log)
	uploadUC := usecase.NewUploadUsecase(objects)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Health: handler.NewHealthHandler(map[string]handler.Pinger{"database": db, "redis": redisCache}),
		WS:     ws.NewHandler(hub, log),
		Handlers: v1.Handlers{
			Auth:      handler.NewAuthHandler(authUC),
			User:      handler.NewUserHandler(userUC),
			Profile:   handler.NewProfileHandler(profileUC),
			Jobs:      handler.NewJobsHandler(jobUC, recommendUC),
			Resources: handler.NewResourcesHandler(resourceUC, recommendUC),
			AI:        handler.NewAIHandler(aiUC),
			Upload:    handler.NewUploadHandler(uploadUC),
		},
		AuthMw: middleware.NewAuthMiddleware(jwtSvc),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	instrumentUsecases "github.com/hsaberwal/serunner/internal/application/instrument/usecases"
	locationUsecases "github.com/hsaberwal/serunner/internal/application/location/usecases"
	setupUsecases "github.com/hsaberwal/serunner/internal/application/setup/usecases"
	subscriptionUsecases "github.com/hsaberwal/serunner/internal/application/subscription/usecases"
	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/infrastructure/auth"
	"github.com/hsaberwal/serunner/internal/infrastructure/config"
	"github.com/hsaberwal/serunner/internal/infrastructure/generator"
	"github.com/hsaberwal/serunner/internal/infrastructure/permission"
	"github.com/hsaberwal/serunner/internal/infrastructure/ratelimit"
	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers"
	adminHandlers "github.com/hsaberwal/serunner/internal/interfaces/http/handlers/admin"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
	sharedConfig "github.com/hsaberwal/serunner/internal/shared/config"
	shareddb "github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
// ============================================================

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)
	c.txMgr = shareddb.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	// Rate limiting is the only Redis consumer; without it no connection is made.
	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
		limiter = ratelimit.NewRedisRateLimiter(client)
	}
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, log)

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		c.Shutdown()
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return client, nil
}

// ============================================================
// Section 2: Subscription - Plan catalog, QuotaGate, Usage
// ============================================================

func (c *Container) initSubscription() {
	c.catalog = planCatalog(c.cfg.Subscription)

	c.ucs.quotaGate = subscriptionUsecases.NewQuotaGate(c.repos.quotaRepo, c.catalog, c.txMgr, c.log)
	c.ucs.getUsageUC = subscriptionUsecases.NewGetUsageUseCase(c.repos.quotaRepo, c.catalog, c.log)
	c.ucs.setPlanUC = subscriptionUsecases.NewSetPlanUseCase(c.repos.quotaRepo, c.catalog, c.log)
}

// planCatalog overlays configured plan limits on the built-in table.
// Unknown plan names are ignored.
func planCatalog(cfg sharedConfig.SubscriptionConfig) subscription.Catalog {
	catalog := subscription.DefaultCatalog()
	for name, limits := range cfg.Plans {
		plan := subscription.Plan(strings.ToLower(strings.TrimSpace(name)))
		if !plan.IsValid() {
			continue
		}
		catalog[plan] = subscription.Limits{
			Generations: limits.Generations,
			Learning:    limits.Learning,
		}
	}
	return catalog
}

// ============================================================
// Section 3: Generator
// ============================================================

func (c *Container) initGenerator() error {
	gcfg := c.cfg.Generator

	knowledge, err := generator.LoadKnowledge(gcfg.KnowledgePath)
	if err != nil {
		return fmt.Errorf("failed to load knowledge pack: %w", err)
	}
	if gcfg.APIKey == "" {
		c.log.Warnw("generator API key is not configured, generation calls will fail")
	}

	client := generator.NewClient(generator.Config{
		APIKey:         gcfg.APIKey,
		BaseURL:        gcfg.BaseURL,
		Model:          gcfg.Model,
		MaxTokens:      gcfg.MaxTokens,
		TimeoutSeconds: gcfg.TimeoutSeconds,
	})
	c.generator = generator.NewService(client, knowledge, c.markdown, c.log)
	return nil
}

// ============================================================
// Section 4: Setups, Locations, Instruments
// ============================================================

func (c *Container) matchingSettings() setupUsecases.Settings {
	m := c.cfg.Matching
	return setupUsecases.Settings{
		LookbackLimit:        m.LookbackLimit,
		LearningContextLimit: m.LearningContextLimit,
		PastSetupsLimit:      m.PastSetupsLimit,
		PastSetupMinRating:   m.PastSetupMinRating,
	}
}

func (c *Container) initSetup() {
	r := c.repos
	log := c.log
	settings := c.matchingSettings()

	c.ucs.checkMatchUC = setupUsecases.NewCheckMatchUseCase(r.setupRepo, settings, log)
	c.ucs.reuseSetupUC = setupUsecases.NewReuseSetupUseCase(r.setupRepo, r.locationRepo, c.enforcer, log)
	c.ucs.generateSetupUC = setupUsecases.NewGenerateSetupUseCase(
		r.setupRepo, r.correctionRepo, r.locationRepo, r.instrumentRepo,
		c.ucs.quotaGate, c.generator, settings, log,
	)
	c.ucs.refreshSetupUC = setupUsecases.NewRefreshSetupUseCase(
		r.setupRepo, r.correctionRepo, r.locationRepo, r.instrumentRepo,
		c.enforcer, c.ucs.quotaGate, c.generator, settings, log,
	)
	c.ucs.updateSetupUC = setupUsecases.NewUpdateSetupUseCase(r.setupRepo, r.correctionRepo, c.enforcer, c.markdown, c.txMgr, log)
	c.ucs.recordCorrectionUC = setupUsecases.NewRecordCorrectionUseCase(r.setupRepo, r.correctionRepo, c.enforcer, c.markdown, log)
	c.ucs.listCorrectionsUC = setupUsecases.NewListCorrectionsUseCase(r.setupRepo, r.correctionRepo, c.enforcer, log)
	c.ucs.learningContextUC = setupUsecases.NewLearningContextUseCase(r.correctionRepo, r.locationRepo, settings, log)
	c.ucs.getSetupUC = setupUsecases.NewGetSetupUseCase(r.setupRepo, r.correctionRepo, c.enforcer, log)
	c.ucs.listSetupsUC = setupUsecases.NewListSetupsUseCase(r.setupRepo, log)
	c.ucs.deleteSetupUC = setupUsecases.NewDeleteSetupUseCase(r.setupRepo, r.correctionRepo, c.txMgr, log)
}

func (c *Container) initLocation() {
	c.ucs.createLocationUC = locationUsecases.NewCreateLocationUseCase(c.repos.locationRepo, c.markdown, c.log)
	c.ucs.getLocationUC = locationUsecases.NewGetLocationUseCase(c.repos.locationRepo, c.log)
	c.ucs.listLocationsUC = locationUsecases.NewListLocationsUseCase(c.repos.locationRepo, c.log)
}

func (c *Container) initInstrument() {
	c.ucs.learnInstrumentUC = instrumentUsecases.NewLearnInstrumentUseCase(
		c.repos.instrumentRepo, c.ucs.quotaGate, c.generator, c.markdown, c.log,
	)
	c.ucs.listInstrumentsUC = instrumentUsecases.NewListInstrumentsUseCase(c.repos.instrumentRepo, c.log)
}

// ============================================================
// Section 5: Handlers
// ============================================================

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	checks := map[string]handlers.HealthCheckFunc{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}
	c.hdlrs.healthHandler = handlers.NewHealthHandler(checks, log)

	c.hdlrs.setupHandler = handlers.NewSetupHandler(
		u.checkMatchUC, u.reuseSetupUC, u.generateSetupUC, u.refreshSetupUC, u.updateSetupUC,
		u.recordCorrectionUC, u.listCorrectionsUC, u.getSetupUC, u.listSetupsUC, u.deleteSetupUC,
		log,
	)
	c.hdlrs.locationHandler = handlers.NewLocationHandler(
		u.createLocationUC, u.getLocationUC, u.listLocationsUC, u.learningContextUC, log,
	)
	c.hdlrs.subscriptionHandler = handlers.NewSubscriptionHandler(u.getUsageUC, log)
	c.hdlrs.instrumentHandler = handlers.NewInstrumentHandler(u.learnInstrumentUC, u.listInstrumentsUC, log)
	c.hdlrs.adminSubscriptionHandler = adminHandlers.NewSubscriptionHandler(u.setPlanUC, log)
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/domain/subscription"
	"github.com/hsaberwal/serunner/internal/infrastructure/auth"
	"github.com/hsaberwal/serunner/internal/infrastructure/config"
	"github.com/hsaberwal/serunner/internal/infrastructure/generator"
	"github.com/hsaberwal/serunner/internal/infrastructure/permission"
	"github.com/hsaberwal/serunner/internal/interfaces/http/middleware"
	shareddb "github.com/hsaberwal/serunner/internal/shared/db"
	"github.com/hsaberwal/serunner/internal/shared/logger"
	"github.com/hsaberwal/serunner/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers, wires them together and releases them on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware

	// Shared services
	jwtSvc    *auth.JWTService
	enforcer  *permission.Enforcer
	txMgr     shareddb.Transactor
	markdown  markdown.MarkdownService
	catalog   subscription.Catalog
	generator *generator.Service
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		ucs:    &allUseCases{},
		hdlrs:  &allHandlers{},
	}

	// Section 1: Infrastructure - Redis, Repositories, Auth, Permissions
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Subscription - Plan catalog, QuotaGate, Usage
	c.initSubscription()

	// Section 3: Generator - Knowledge pack, model client
	if err := c.initGenerator(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 4: Setups, Locations, Instruments
	c.initSetup()
	c.initLocation()
	c.initInstrument()

	// Section 5: Handlers
	c.initHandlers()

	return c, nil
}

// Shutdown releases connections owned by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}

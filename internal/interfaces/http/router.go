package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hsaberwal/serunner/internal/infrastructure/config"
	"github.com/hsaberwal/serunner/internal/shared/logger"
)

// Router owns the gin engine and the wired container behind it. Call
// SetupRoutes once before serving.
type Router struct {
	*Container
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// GetEngine exposes the engine as the server handler.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

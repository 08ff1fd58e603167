package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/api"
	"github.com/pageza/skinroutine/backend/internal/middleware"
)

// SetupRouter configures the middleware chain and the application routes
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	api.RegisterRoutes(router, deps)
	return router
}

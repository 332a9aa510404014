package handler

import (
	"net/http"

	"ondc-seller-bridge/internal/handler/api"
	"ondc-seller-bridge/internal/handler/middleware"
	"ondc-seller-bridge/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and the action routes onto the engine. Every
// action is a POST with a full protocol envelope; health is the only bare
// endpoint.
func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	ondcHandler *api.ONDCHandler,
) *gin.Engine {
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	actions := engine.Group("/api/ondc")
	{
		actions.POST("/search", ondcHandler.Search)
		actions.POST("/select", ondcHandler.Select)
		actions.POST("/init", ondcHandler.Init)
		actions.POST("/confirm", ondcHandler.Confirm)
		actions.POST("/status", ondcHandler.Status)
		actions.POST("/cancel", ondcHandler.Cancel)
		actions.POST("/rating", ondcHandler.Rating)
		actions.POST("/support", ondcHandler.Support)
	}

	return engine
}

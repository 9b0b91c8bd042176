package restapi

import (
	"net/http"

	"github.com/shkkonda/solana-portfolio/internal/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns the Gin router.
func SetupRouter(portfolioHandler *PortfolioHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // Adjust for production
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(utils.ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/portfolio/:walletAddress", portfolioHandler.GetPortfolioHandler)
		v1.POST("/cache/refresh", portfolioHandler.RefreshCacheHandler)
	}

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	return router
}

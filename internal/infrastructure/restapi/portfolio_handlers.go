package restapi

import (
	"net/http"

	"github.com/shkkonda/solana-portfolio/internal/domain/entity"
	"github.com/shkkonda/solana-portfolio/internal/pkg/metrics"
	"github.com/shkkonda/solana-portfolio/internal/pkg/utils"
	"github.com/shkkonda/solana-portfolio/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIPortfolioResponse defines the response shape of the portfolio endpoint.
type APIPortfolioResponse struct {
	Data struct {
		Portfolio *entity.PortfolioView `json:"portfolio"`
	} `json:"data"`
	StatusMessage string `json:"status_message"`
}

// APIErrorResponse is the shape of every error answer.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// PortfolioHandler handles portfolio-related HTTP requests.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
	logger           *zap.Logger
}

// NewPortfolioHandler creates a new instance of PortfolioHandler.
func NewPortfolioHandler(ps service.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: ps,
		logger:           logger.Named("PortfolioHandler"),
	}
}

// GetPortfolioHandler returns the normalized, aggregated portfolio of a
// single wallet. An empty portfolio is a valid 200 with a distinct message;
// upstream failures surface as 502 with no partial data.
func (h *PortfolioHandler) GetPortfolioHandler(c *gin.Context) {
	walletAddress := c.Param("walletAddress")

	if !utils.IsValidSolanaAddress(walletAddress) {
		metrics.PortfolioRequestsTotal.WithLabelValues("invalid_address").Inc()
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "invalid wallet address"})
		return
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), walletAddress)
	if err != nil {
		metrics.PortfolioRequestsTotal.WithLabelValues("upstream_error").Inc()
		h.logger.Error("Failed to get portfolio",
			zap.String("walletAddress", walletAddress),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, APIErrorResponse{Error: "failed to fetch wallet data, check the wallet address and try again"})
		return
	}

	response := APIPortfolioResponse{}
	response.Data.Portfolio = view

	if view.Summary.AssetCount == 0 {
		metrics.PortfolioRequestsTotal.WithLabelValues("empty").Inc()
		response.StatusMessage = "No portfolio data found for this wallet address."
	} else {
		metrics.PortfolioRequestsTotal.WithLabelValues("ok").Inc()
		response.StatusMessage = "Portfolio retrieved successfully."
	}

	c.JSON(http.StatusOK, response)
}

// RefreshCacheHandler drops all cached wallet payloads so the next request
// fetches fresh data.
func (h *PortfolioHandler) RefreshCacheHandler(c *gin.Context) {
	h.portfolioService.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"status_message": "Cache invalidated. The next request will fetch fresh data."})
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shkkonda/solana-portfolio/internal/client"
	"github.com/shkkonda/solana-portfolio/internal/config"
	"github.com/shkkonda/solana-portfolio/internal/domain/entity"
	helius_types "github.com/shkkonda/solana-portfolio/internal/entity"
	"github.com/shkkonda/solana-portfolio/internal/pkg/metrics"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PortfolioService builds the displayable portfolio projection for a wallet.
type PortfolioService interface {
	// GetPortfolio fetches (or serves from cache) the wallet's asset list
	// and returns the normalized, aggregated view. An empty view with a nil
	// error is the valid "nothing to show" state.
	GetPortfolio(ctx context.Context, walletAddress string) (*entity.PortfolioView, error)

	// InvalidateCache drops every cached wallet payload so the next fetch
	// goes back to the upstream API. Bound to the user-triggered refresh.
	InvalidateCache()
}

// portfolioServiceImpl is the implementation of PortfolioService.
type portfolioServiceImpl struct {
	heliusClient client.HeliusClient
	cfg          *config.Config
	logger       *zap.Logger
	credential   string

	// payloadCache memoizes raw upstream results per (wallet, credential)
	// for the configured TTL; fetchGroup collapses concurrent misses for
	// the same key into one upstream call.
	payloadCache *cache.Cache
	fetchGroup   singleflight.Group
}

// NewPortfolioService creates a new instance of portfolioServiceImpl.
// apiKey participates only in cache keying, so rotating the credential
// naturally invalidates stale entries.
func NewPortfolioService(heliusClient client.HeliusClient, cfg *config.Config, apiKey string, logger *zap.Logger) PortfolioService {
	return &portfolioServiceImpl{
		heliusClient: heliusClient,
		cfg:          cfg,
		logger:       logger.Named("PortfolioService"),
		credential:   apiKey,
		payloadCache: cache.New(
			time.Duration(cfg.Cache.TTLMinutes)*time.Minute,
			time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
		),
	}
}

// GetPortfolio implements the PortfolioService interface.
func (s *portfolioServiceImpl) GetPortfolio(ctx context.Context, walletAddress string) (*entity.PortfolioView, error) {
	result, err := s.fetchAssets(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	assets := NormalizeAssets(result, s.cfg.Portfolio.DustThresholdUSD)

	view := &entity.PortfolioView{
		WalletAddress: walletAddress,
		Summary:       SummarizeAssets(assets),
		Assets:        assets,
		Rows:          BuildAssetRows(assets),
		ChartBuckets:  BuildChartBuckets(assets, s.cfg.Portfolio.OthersShare),
	}

	s.logger.Debug("Portfolio view built",
		zap.String("walletAddress", walletAddress),
		zap.Int("assetCount", view.Summary.AssetCount),
		zap.Float64("totalValueUSD", view.Summary.TotalValueUSD))
	return view, nil
}

// InvalidateCache implements the PortfolioService interface.
func (s *portfolioServiceImpl) InvalidateCache() {
	s.payloadCache.Flush()
	metrics.CacheInvalidationsTotal.Inc()
	s.logger.Info("Wallet payload cache invalidated")
}

// fetchAssets is the read-through path: cache lookup, then a singleflighted
// upstream call whose result is cached for the configured TTL.
func (s *portfolioServiceImpl) fetchAssets(ctx context.Context, walletAddress string) (*helius_types.AssetsResult, error) {
	key := s.cacheKey(walletAddress)

	if cached, found := s.payloadCache.Get(key); found {
		metrics.CacheHitsTotal.Inc()
		s.logger.Debug("Serving wallet payload from cache", zap.String("walletAddress", walletAddress))
		result, _ := cached.(*helius_types.AssetsResult)
		return result, nil
	}
	metrics.CacheMissesTotal.Inc()

	v, err, shared := s.fetchGroup.Do(key, func() (interface{}, error) {
		start := time.Now()
		result, err := s.heliusClient.GetAssetsByOwner(ctx, walletAddress)
		metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.UpstreamErrorsTotal.Inc()
			return nil, err
		}
		s.payloadCache.SetDefault(key, result)
		return result, nil
	})
	if err != nil {
		s.logger.Error("Failed to fetch wallet assets",
			zap.String("walletAddress", walletAddress),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch assets for wallet %s: %w", walletAddress, err)
	}
	if shared {
		s.logger.Debug("Upstream fetch shared with a concurrent caller", zap.String("walletAddress", walletAddress))
	}

	result, _ := v.(*helius_types.AssetsResult)
	return result, nil
}

func (s *portfolioServiceImpl) cacheKey(walletAddress string) string {
	return walletAddress + "|" + s.credential
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shkkonda/solana-portfolio/internal/client"
	"github.com/shkkonda/solana-portfolio/internal/config"
	"github.com/shkkonda/solana-portfolio/internal/infrastructure/restapi"
	"github.com/shkkonda/solana-portfolio/internal/infrastructure/secretloader"
	"github.com/shkkonda/solana-portfolio/internal/pkg/metrics"
	"github.com/shkkonda/solana-portfolio/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"

	portfoliosvc "github.com/shkkonda/solana-portfolio/internal/service"
)

func main() {
	// logrus carries the config-loading phase; services run on zap.
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		logrus.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync() // flushes buffer, if any

	// Route the default slog logger through zap so stray slog calls stay structured.
	slogHandler := zapslog.NewHandler(zapLogger.Core(), &zapslog.HandlerOptions{})
	slog.SetDefault(slog.New(slogHandler))

	cfgPath := utils.GetEnv("CONFIG_PATH", "config/config.yaml")
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))

	// Missing credential halts the process before any fetch.
	apiKey, err := secretloader.ResolveAPIKey(cfg.Helius.SecretsFile, func(msg string, args ...any) {
		slog.Info(msg, args...)
	})
	if err != nil {
		zapLogger.Fatal("Helius API key not configured", zap.Error(err))
	}

	metrics.MustRegisterMetrics()

	heliusRequestTimeout := time.Duration(cfg.Helius.RequestTimeoutMillis) * time.Millisecond
	heliusClient := client.NewHeliusClient(cfg.Helius.BaseURL, apiKey, heliusRequestTimeout, zapLogger)
	zapLogger.Info("Helius client initialized", zap.String("baseURL", cfg.Helius.BaseURL))

	portfolioService := portfoliosvc.NewPortfolioService(heliusClient, cfg, apiKey, zapLogger)
	zapLogger.Info("PortfolioService initialized",
		zap.Float64("dustThresholdUSD", cfg.Portfolio.DustThresholdUSD),
		zap.Float64("othersShare", cfg.Portfolio.OthersShare),
		zap.Int("cacheTTLMinutes", cfg.Cache.TTLMinutes))

	portfolioHandler := restapi.NewPortfolioHandler(portfolioService, zapLogger)
	router := restapi.SetupRouter(portfolioHandler, zapLogger)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	zapLogger.Info("Prometheus metrics endpoint enabled", zap.String("path", "/metrics"))

	// Pprof endpoints (for debugging performance issues)
	// Make sure to protect these in a production environment
	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

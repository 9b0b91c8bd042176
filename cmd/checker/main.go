package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shkkonda/solana-portfolio/internal/client"
	"github.com/shkkonda/solana-portfolio/internal/config"
	"github.com/shkkonda/solana-portfolio/internal/infrastructure/secretloader"
	"github.com/shkkonda/solana-portfolio/internal/pkg/utils"
	"github.com/shkkonda/solana-portfolio/internal/service"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// checker is the one-shot console front end: fetch a single wallet, print
// the asset table, the summary pair and the chart distribution, exit.
func main() {
	cfgPath := flag.String("config", "", "path to the YAML config file (optional)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <wallet-address>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	walletAddress := flag.Arg(0)

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	var cfg *config.Config
	if *cfgPath != "" {
		cfg, err = config.LoadConfig(*cfgPath)
		if err != nil {
			zapLogger.Fatal("Failed to load configuration", zap.String("path", *cfgPath), zap.Error(err))
		}
	} else {
		logrus.SetOutput(os.Stderr)
		cfg = config.Default()
	}

	if !utils.IsValidSolanaAddress(walletAddress) {
		zapLogger.Fatal("Invalid wallet address", zap.String("walletAddress", walletAddress))
	}

	apiKey, err := secretloader.ResolveAPIKey(cfg.Helius.SecretsFile, nil)
	if err != nil {
		zapLogger.Fatal("Helius API key not configured", zap.Error(err))
	}

	heliusRequestTimeout := time.Duration(cfg.Helius.RequestTimeoutMillis) * time.Millisecond
	heliusClient := client.NewHeliusClient(cfg.Helius.BaseURL, apiKey, heliusRequestTimeout, zapLogger)
	portfolioService := service.NewPortfolioService(heliusClient, cfg, apiKey, zapLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*heliusRequestTimeout)
	defer cancel()

	view, err := portfolioService.GetPortfolio(ctx, walletAddress)
	if err != nil {
		zapLogger.Fatal("Failed to fetch wallet data", zap.String("walletAddress", walletAddress), zap.Error(err))
	}

	if view.Summary.AssetCount == 0 {
		fmt.Println("No portfolio data found for this wallet address.")
		return
	}

	fmt.Printf("Total Portfolio Value: %s\n", utils.FormatUSD(view.Summary.TotalValueUSD))
	fmt.Printf("Number of Assets: %d\n\n", view.Summary.AssetCount)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET NAME\tSYMBOL\tAMOUNT\tVALUE (USD)")
	for _, row := range view.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, row.Symbol, row.Amount, row.ValueUSD)
	}
	w.Flush()

	if view.Summary.TotalValueUSD > 0 {
		fmt.Println("\nPortfolio Distribution:")
		for _, bucket := range view.ChartBuckets {
			share := bucket.TotalValueUSD / view.Summary.TotalValueUSD * 100
			fmt.Printf("  %s (%s): %.2f%%\n", bucket.Name, bucket.Symbol, share)
		}
	}
}

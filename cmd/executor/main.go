package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/souravmenon1999/topstepx-engine/internal/config"
	"github.com/souravmenon1999/topstepx-engine/internal/exchange/topstepx"
	"github.com/souravmenon1999/topstepx-engine/internal/logging"
	"github.com/souravmenon1999/topstepx-engine/types"
)

func main() {
	configPath := flag.String("config", "configs/executor_config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.Log.Level)
	logger := logging.GetLogger()

	logger.Info().Str("base_url", cfg.Executor.BaseURL).Msg("TopstepX execution engine starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	executor := topstepx.NewExecutor(cfg)
	defer executor.Close()

	if err := executor.Authenticate(ctx); err != nil {
		logger.Error().Err(err).Msg("authentication failed")
		os.Exit(1)
	}

	contracts, err := executor.LoadContracts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("contract discovery failed")
		os.Exit(1)
	}
	logger.Info().Int("contracts", len(contracts)).Msg("contract cache ready")

	if cfg.Order.Symbol == "" {
		logger.Info().Msg("no order configured, exiting")
		return
	}

	req := types.OrderRequest{
		Symbol:    cfg.Order.Symbol,
		Side:      "BUY",
		Quantity:  cfg.Order.Quantity,
		AccountID: cfg.Executor.AccountID,
		OrderType: cfg.Order.OrderType,
		CustomTag: topstepx.GenerateCustomTag(cfg.Order.OrderType, ""),
	}
	if cfg.Order.Limit > 0 {
		limit := cfg.Order.Limit
		req.LimitPrice = &limit
	}

	resp, err := executor.PlaceOrder(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("order placement failed")
		os.Exit(1)
	}
	if !resp.Success {
		logger.Warn().Str("error", resp.Error).Msg("order rejected by venue")
		os.Exit(1)
	}

	logger.Info().Str("order_id", resp.OrderID).Msg("order placed")
}

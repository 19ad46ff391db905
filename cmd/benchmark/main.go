package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"ladder-exchange/domain"
	"ladder-exchange/params"
	"ladder-exchange/util"
	"ladder-exchange/workload"
)

const recentTrades = 5

func main() {
	logger, err := util.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	defaults := params.LoadFromEnv("").Bench

	modeFlag := flag.String("mode", defaults.Mode, "workload mode: maintenance or match")
	ops := flag.Int64("ops", defaults.Ops, "number of operations to run")
	seed := flag.Int64("seed", defaults.Seed, "RNG seed")
	cross := flag.Int("cross", defaults.CrossPct, "chance (0..100) that an add is priced aggressively")
	add := flag.Int("add", defaults.AddPct, "add percentage of the op mix")
	cancel := flag.Int("cancel", defaults.CancelPct, "cancel percentage of the op mix")
	replace := flag.Int("replace", defaults.ReplacePct, "replace percentage of the op mix")
	flag.Parse()

	mode, err := workload.ParseMode(*modeFlag)
	if err != nil {
		logger.Fatal("invalid mode", zap.Error(err))
	}

	cfg := workload.Default()
	cfg.Mode = mode
	cfg.Ops = *ops
	cfg.Seed = *seed
	cfg.CrossPct = *cross
	cfg.AddPct = *add
	cfg.CancelPct = *cancel
	cfg.ReplacePct = *replace

	sink := domain.NewTradeRing(1 << 16)
	runner, err := workload.NewRunner(cfg, sink)
	if err != nil {
		logger.Fatal("invalid workload", zap.Error(err))
	}

	logger.Info("benchmark starting",
		zap.String("mode", cfg.Mode.String()),
		zap.Int64("ops", cfg.Ops),
		zap.Int64("seed", cfg.Seed),
		zap.Int("cross_pct", cfg.CrossPct),
		zap.String("mix", fmt.Sprintf("%d/%d/%d", cfg.AddPct, cfg.CancelPct, cfg.ReplacePct)),
	)

	res := runner.Run()

	fmt.Println("=== Benchmark Results ===")
	fmt.Printf("Ops:              %d\n", res.Ops)
	fmt.Printf("Seconds:          %.3f\n", res.Elapsed.Seconds())
	fmt.Printf("Ops/sec:          %.0f\n", res.OpsPerSec())
	fmt.Printf("Adds:             %d\n", res.Adds)
	fmt.Printf("Cancels:          %d\n", res.Cancels)
	fmt.Printf("Replaces:         %d\n", res.Replaces)
	fmt.Printf("Trades:           %d\n", res.Trades)
	fmt.Printf("Total filled qty: %d\n", res.FilledQty)
	fmt.Printf("Live orders:      %d\n", res.EngineLive)
	fmt.Printf("Tracker live:     %d\n", res.TrackerLive)
	fmt.Printf("Pool capacity:    %d\n", res.PoolCapacity)

	eng := runner.Engine()
	fmt.Println("\n=== Book State ===")
	if bid, ok := eng.BestBid(); ok {
		fmt.Printf("Best bid: %d\n", bid)
	} else {
		fmt.Println("Best bid: none")
	}
	if ask, ok := eng.BestAsk(); ok {
		fmt.Printf("Best ask: %d\n", ask)
	} else {
		fmt.Println("Best ask: none")
	}

	fmt.Println("\nBid depth (top 5):")
	for i, level := range eng.Depth(domain.SideBuy, 5) {
		fmt.Printf("  %d. price: %d, qty: %d, orders: %d\n", i+1, level.Price, level.Quantity, level.Orders)
	}
	fmt.Println("\nAsk depth (top 5):")
	for i, level := range eng.Depth(domain.SideSell, 5) {
		fmt.Printf("  %d. price: %d, qty: %d, orders: %d\n", i+1, level.Price, level.Quantity, level.Orders)
	}

	if trades := sink.Recent(recentTrades); len(trades) > 0 {
		fmt.Printf("\nLast %d trades:\n", len(trades))
		for _, t := range trades {
			fmt.Printf("  qty %d @ %d  taker=%d maker=%d\n", t.Qty, t.Price, t.TakerID, t.MakerID)
		}
	}

	logger.Info("benchmark finished",
		zap.Duration("elapsed", res.Elapsed),
		zap.Int64("trades", res.Trades),
		zap.Int("live_orders", res.EngineLive),
	)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"

	"ladder-exchange/domain"
	"ladder-exchange/params"
	"ladder-exchange/util"
	"ladder-exchange/workload"
)

func main() {
	logger, err := util.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	defaults := params.LoadFromEnv("").Bench

	modeFlag := flag.String("mode", defaults.Mode, "workload mode: maintenance or match")
	ops := flag.Int64("ops", 1_000_000, "number of operations to profile")
	seed := flag.Int64("seed", defaults.Seed, "RNG seed")
	cpuPath := flag.String("cpuprofile", "cpu.prof", "CPU profile output path")
	memPath := flag.String("memprofile", "mem.prof", "heap profile output path (empty to skip)")
	flag.Parse()

	mode, err := workload.ParseMode(*modeFlag)
	if err != nil {
		logger.Fatal("invalid mode", zap.Error(err))
	}

	cfg := workload.Default()
	cfg.Mode = mode
	cfg.Ops = *ops
	cfg.Seed = *seed

	sink := &domain.StatsSink{}
	runner, err := workload.NewRunner(cfg, sink)
	if err != nil {
		logger.Fatal("invalid workload", zap.Error(err))
	}

	cpuFile, err := os.Create(*cpuPath)
	if err != nil {
		logger.Fatal("create cpu profile", zap.Error(err))
	}
	defer cpuFile.Close()

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		logger.Fatal("start cpu profile", zap.Error(err))
	}

	logger.Info("profiling run starting",
		zap.String("mode", cfg.Mode.String()),
		zap.Int64("ops", cfg.Ops),
		zap.Int64("seed", cfg.Seed),
		zap.String("cpu_profile", *cpuPath),
	)

	res := runner.Run()
	pprof.StopCPUProfile()

	if *memPath != "" {
		memFile, err := os.Create(*memPath)
		if err != nil {
			logger.Fatal("create heap profile", zap.Error(err))
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(memFile); err != nil {
			logger.Fatal("write heap profile", zap.Error(err))
		}
		memFile.Close()
	}

	fmt.Println("=== Profiling Results ===")
	fmt.Printf("Ops:              %d\n", res.Ops)
	fmt.Printf("Seconds:          %.3f\n", res.Elapsed.Seconds())
	fmt.Printf("Ops/sec:          %.0f\n", res.OpsPerSec())
	fmt.Printf("Trades:           %d\n", res.Trades)
	fmt.Printf("Total filled qty: %d\n", res.FilledQty)
	fmt.Printf("Live orders:      %d\n", res.EngineLive)

	fmt.Println("\nAnalyze the CPU profile with:")
	fmt.Printf("  go tool pprof -http=:8080 %s\n", *cpuPath)
	fmt.Printf("  or: go tool pprof %s  (then: top10, list <func>)\n", *cpuPath)
}

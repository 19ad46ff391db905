package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Bench holds the benchmark driver's defaults. CLI flags take precedence
// over these; these take precedence over the compiled-in values.
type Bench struct {
	Mode       string
	Ops        int64
	Seed       int64
	CrossPct   int
	AddPct     int
	CancelPct  int
	ReplacePct int
}

// Config is the full driver configuration.
type Config struct {
	Bench Bench
}

// Default returns the compiled-in benchmark parameters.
func Default() Config {
	return Config{
		Bench: Bench{
			Mode:       "match",
			Ops:        5_000_000,
			Seed:       12345,
			CrossPct:   50,
			AddPct:     60,
			CancelPct:  25,
			ReplacePct: 15,
		},
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if mode := os.Getenv("BENCH_MODE"); mode != "" {
		cfg.Bench.Mode = mode
	}
	if v, ok := envInt64("BENCH_OPS"); ok {
		cfg.Bench.Ops = v
	}
	if v, ok := envInt64("BENCH_SEED"); ok {
		cfg.Bench.Seed = v
	}
	if v, ok := envInt("BENCH_CROSS_PCT"); ok {
		cfg.Bench.CrossPct = v
	}
	if v, ok := envInt("BENCH_ADD_PCT"); ok {
		cfg.Bench.AddPct = v
	}
	if v, ok := envInt("BENCH_CANCEL_PCT"); ok {
		cfg.Bench.CancelPct = v
	}
	if v, ok := envInt("BENCH_REPLACE_PCT"); ok {
		cfg.Bench.ReplacePct = v
	}

	return cfg
}

func envInt64(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	v, ok := envInt64(key)
	return int(v), ok
}

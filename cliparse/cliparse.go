package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	JudgeBaseURL   string
	JudgeTimeout   time.Duration
	RedisURL       string
	LeaderboardTTL time.Duration
}

// ParseFlags validates flags and applies env-variable fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var judgeTimeoutSec, leaderboardTTLSec int

	fs := flag.NewFlagSet("cp-gym", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Judge client
	fs.StringVar(&cfg.JudgeBaseURL, "judge-url", "", "Judge API base URL")
	fs.IntVar(&judgeTimeoutSec, "judge-timeout", 0, "Judge request timeout in seconds")

	// Optional leaderboard cache
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL for leaderboard caching (optional)")
	fs.IntVar(&leaderboardTTLSec, "leaderboard-ttl", 0, "Leaderboard cache TTL in seconds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.JudgeBaseURL == "" {
		cfg.JudgeBaseURL = os.Getenv("JUDGE_API_URL")
		if cfg.JudgeBaseURL == "" {
			cfg.JudgeBaseURL = "https://codeforces.com/api"
		}
	}

	if judgeTimeoutSec == 0 {
		if s := os.Getenv("JUDGE_TIMEOUT_SECONDS"); s != "" {
			sec, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid JUDGE_TIMEOUT_SECONDS env variable")
			}
			judgeTimeoutSec = sec
		} else {
			judgeTimeoutSec = 8
		}
	}
	cfg.JudgeTimeout = time.Duration(judgeTimeoutSec) * time.Second

	// Redis is optional; the leaderboard is computed on read when unset
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if leaderboardTTLSec == 0 {
		if s := os.Getenv("LEADERBOARD_TTL_SECONDS"); s != "" {
			sec, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid LEADERBOARD_TTL_SECONDS env variable")
			}
			leaderboardTTLSec = sec
		} else {
			leaderboardTTLSec = 20
		}
	}
	cfg.LeaderboardTTL = time.Duration(leaderboardTTLSec) * time.Second

	return cfg, nil
}

// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("JUDGE_API_URL", "http://localhost:9999/api")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.JudgeBaseURL != "http://localhost:9999/api" {
		t.Errorf("expected judge URL from env, got %s", cfg.JudgeBaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3319 {
		t.Errorf("expected default port 3319, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.JudgeBaseURL != "https://codeforces.com/api" {
		t.Errorf("expected default judge URL, got %s", cfg.JudgeBaseURL)
	}
	if cfg.JudgeTimeout != 8*time.Second {
		t.Errorf("expected default judge timeout 8s, got %v", cfg.JudgeTimeout)
	}
	if cfg.LeaderboardTTL != 20*time.Second {
		t.Errorf("expected default leaderboard TTL 20s, got %v", cfg.LeaderboardTTL)
	}
	if cfg.RedisURL != "" {
		t.Errorf("expected redis unset by default, got %s", cfg.RedisURL)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when database URL is missing")
	}
}

func TestParseFlags_BadDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:test.db", "-t", "mongodb"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

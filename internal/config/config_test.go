package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8085" {
		t.Errorf("expected default port 8085, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected queue size 100, got %d", cfg.MaxQueueSize)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("expected 50MB upload limit, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxPages != 50 {
		t.Errorf("expected 50 page cap, got %d", cfg.MaxPages)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h job TTL, got %v", cfg.JobTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("MAX_PAGES", "10")
	t.Setenv("JOB_TTL", "30m")
	t.Setenv("INPUT_DIR", "/data/in")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port override, got %q", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.WorkerCount)
	}
	if cfg.MaxPages != 10 {
		t.Errorf("expected 10 page cap, got %d", cfg.MaxPages)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.JobTTL)
	}
	if cfg.InputDir != "/data/in" {
		t.Errorf("expected input dir override, got %q", cfg.InputDir)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("MAX_PAGES", "-5")
	t.Setenv("JOB_TTL", "soon")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("expected fallback worker count, got %d", cfg.WorkerCount)
	}
	if cfg.MaxPages != 50 {
		t.Errorf("expected clamped page cap, got %d", cfg.MaxPages)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected fallback TTL, got %v", cfg.JobTTL)
	}
}

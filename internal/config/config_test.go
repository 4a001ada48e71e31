package config

import (
	"testing"
	"time"
)

func requiredEnv(extra map[string]string) envLookup {
	base := map[string]string{
		"DATABASE_URI":            "postgres://localhost/attesto",
		"PAYMENT_GATEWAY_ADDRESS": "http://gateway.local",
		"PAYMENT_WEBHOOK_SECRET":  "whsec",
		"BLOB_STORE_ADDRESS":      "http://blobs.local",
	}
	for k, v := range extra {
		base[k] = v
	}
	return func(key string) (string, bool) {
		v, ok := base[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, requiredEnv(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.BaseRateCents != 2900 {
		t.Fatalf("unexpected base rate %d", cfg.BaseRateCents)
	}
	if cfg.RushMultiplier != 1.5 {
		t.Fatalf("unexpected rush multiplier %v", cfg.RushMultiplier)
	}
	if cfg.OriginalsBucket != "originals" || cfg.TranslationsBucket != "translations" {
		t.Fatalf("unexpected buckets %q %q", cfg.OriginalsBucket, cfg.TranslationsBucket)
	}
	if cfg.SignedURLTTL != 15*time.Minute {
		t.Fatalf("unexpected signed url ttl %v", cfg.SignedURLTTL)
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Fatalf("unexpected max upload %d", cfg.MaxUploadBytes)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	cases := []string{"DATABASE_URI", "PAYMENT_GATEWAY_ADDRESS", "PAYMENT_WEBHOOK_SECRET", "BLOB_STORE_ADDRESS"}

	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			lookup := requiredEnv(map[string]string{missing: ""})
			if _, err := load(nil, lookup); err == nil {
				t.Fatalf("expected error when %s is missing", missing)
			}
		})
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	args := []string{"-a", ":9090", "-base-rate", "3500", "-rush-multiplier", "2.0"}
	cfg, err := load(args, requiredEnv(map[string]string{"RUN_ADDRESS": ":7070"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" {
		t.Fatalf("expected flag to win, got %q", cfg.RunAddress)
	}
	if cfg.BaseRateCents != 3500 {
		t.Fatalf("unexpected base rate %d", cfg.BaseRateCents)
	}
	if cfg.RushMultiplier != 2.0 {
		t.Fatalf("unexpected rush multiplier %v", cfg.RushMultiplier)
	}
}

func TestLoadSanitizesNonsenseValues(t *testing.T) {
	cfg, err := load(nil, requiredEnv(map[string]string{
		"BASE_RATE_CENTS": "-5",
		"RUSH_MULTIPLIER": "0.5",
		"NOTIFY_WORKERS":  "0",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseRateCents != 2900 {
		t.Fatalf("expected base rate fallback, got %d", cfg.BaseRateCents)
	}
	if cfg.RushMultiplier != 1.5 {
		t.Fatalf("expected rush multiplier fallback, got %v", cfg.RushMultiplier)
	}
	if cfg.NotifyWorkers != 2 {
		t.Fatalf("expected worker fallback, got %d", cfg.NotifyWorkers)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-signed-url-ttl", "soon"}, requiredEnv(nil)); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

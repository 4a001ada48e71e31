package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	PaymentGatewayAddress string
	PaymentWebhookSecret  string

	BlobStoreAddress   string
	OriginalsBucket    string
	TranslationsBucket string
	SignedURLTTL       time.Duration
	MaxUploadBytes     int64

	TokenSecret string

	BaseRateCents  int64
	RushMultiplier float64

	NotifyWorkers   int
	NotifyQueueSize int

	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultTokenSecret        = "change-me-in-production"
	defaultOriginalsBucket    = "originals"
	defaultTranslationsBucket = "translations"
	defaultSignedURLTTL       = 15 * time.Minute
	defaultMaxUploadBytes     = 20 << 20
	defaultBaseRateCents      = 2900
	defaultRushMultiplier     = 1.5
	defaultNotifyWorkers      = 2
	defaultNotifyQueueSize    = 64
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		PaymentGatewayAddress: getString(lookup, "PAYMENT_GATEWAY_ADDRESS", ""),
		PaymentWebhookSecret:  getString(lookup, "PAYMENT_WEBHOOK_SECRET", ""),
		BlobStoreAddress:      getString(lookup, "BLOB_STORE_ADDRESS", ""),
		OriginalsBucket:       getString(lookup, "ORIGINALS_BUCKET", defaultOriginalsBucket),
		TranslationsBucket:    getString(lookup, "TRANSLATIONS_BUCKET", defaultTranslationsBucket),
		SignedURLTTL:          getDuration(lookup, "SIGNED_URL_TTL", defaultSignedURLTTL),
		MaxUploadBytes:        getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		TokenSecret:           getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		BaseRateCents:         getInt64(lookup, "BASE_RATE_CENTS", defaultBaseRateCents),
		RushMultiplier:        getFloat(lookup, "RUSH_MULTIPLIER", defaultRushMultiplier),
		NotifyWorkers:         getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		NotifyQueueSize:       getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("attesto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		signedTTLStr       = cfg.SignedURLTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.PaymentGatewayAddress, "p", cfg.PaymentGatewayAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.BlobStoreAddress, "b", cfg.BlobStoreAddress, "Document store base URL")
	fs.StringVar(&cfg.OriginalsBucket, "originals-bucket", cfg.OriginalsBucket, "Bucket for customer source documents")
	fs.StringVar(&cfg.TranslationsBucket, "translations-bucket", cfg.TranslationsBucket, "Bucket for completed translations")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.Int64Var(&cfg.BaseRateCents, "base-rate", cfg.BaseRateCents, "Per-page base rate in cents")
	fs.Float64Var(&cfg.RushMultiplier, "rush-multiplier", cfg.RushMultiplier, "Price multiplier for rush orders")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum accepted upload size in bytes")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of notification dispatch workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&signedTTLStr, "signed-url-ttl", signedTTLStr, "Lifetime of signed download URLs")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SignedURLTTL, err = time.ParseDuration(signedTTLStr); err != nil {
		return nil, fmt.Errorf("invalid signed url ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.BaseRateCents <= 0 {
		cfg.BaseRateCents = defaultBaseRateCents
	}

	if cfg.RushMultiplier < 1 {
		cfg.RushMultiplier = defaultRushMultiplier
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = defaultSignedURLTTL
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentGatewayAddress == "" {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	if cfg.PaymentWebhookSecret == "" {
		return nil, fmt.Errorf("payment webhook secret must be provided")
	}

	if cfg.BlobStoreAddress == "" {
		return nil, fmt.Errorf("blob store address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

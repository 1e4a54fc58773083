// Package portal parses portal flags and launches the web service.
package portal

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/maitri-healthcare/portal/internal/platform/cmd"
	"github.com/maitri-healthcare/portal/internal/platform/config"
	"github.com/maitri-healthcare/portal/internal/platform/timeouts"
	portalservice "github.com/maitri-healthcare/portal/internal/services/portal"
	"github.com/maitri-healthcare/portal/internal/services/portal/integration/api"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/observability"
	"github.com/maitri-healthcare/portal/internal/services/portal/session"
	"github.com/maitri-healthcare/portal/internal/services/portal/session/redisstore"
	"github.com/maitri-healthcare/portal/internal/services/portal/storage/sqlite"
)

// LegacyAPIBaseURLEnv is read when PORTAL_API_BASE_URL is unset.
const LegacyAPIBaseURLEnv = "VITE_API_BASE_URL"

// Session store kinds.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds portal command configuration.
type Config struct {
	HTTPAddr            string        `env:"PORTAL_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL          string        `env:"PORTAL_API_BASE_URL"`
	APITimeout          time.Duration `env:"PORTAL_API_TIMEOUT" envDefault:"10s"`
	SessionStore        string        `env:"PORTAL_SESSION_STORE" envDefault:"sqlite"`
	DBPath              string        `env:"PORTAL_DB_PATH" envDefault:"data/portal.db"`
	RedisAddr           string        `env:"PORTAL_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword       string        `env:"PORTAL_REDIS_PASSWORD"`
	RedisDB             int           `env:"PORTAL_REDIS_DB" envDefault:"0"`
	SessionTTL          time.Duration `env:"PORTAL_SESSION_TTL" envDefault:"24h"`
	DisplayTimezone     string        `env:"PORTAL_DISPLAY_TIMEZONE" envDefault:"UTC"`
	TrustForwardedProto bool          `env:"PORTAL_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = config.LookupFirst(os.LookupEnv, LegacyAPIBaseURLEnv)
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Submissions backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for each backend call")
	fs.StringVar(&cfg.SessionStore, "session-store", cfg.SessionStore, "Session store: memory, sqlite or redis")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite session database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session store")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Maximum session lifetime")
	fs.StringVar(&cfg.DisplayTimezone, "display-timezone", cfg.DisplayTimezone, "IANA timezone for displayed timestamps")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honour X-Forwarded-Proto for cookie security")
}

// Validate reports configuration that cannot start the portal.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api base url is required (PORTAL_API_BASE_URL)")
	}
	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("db path is required for the sqlite session store")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.SessionStore)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("display timezone: %w", err)
	}
	return nil
}

// Run starts the portal HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePortal, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	location, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("display timezone: %w", err)
	}
	metrics := observability.NewMetrics()
	backend, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Metrics: metrics,
	})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	store, err := OpenSessionStore(ctx, cfg)
	if err != nil {
		return err
	}

	server, err := portalservice.NewServer(ctx, portalservice.Config{
		HTTPAddr:            cfg.HTTPAddr,
		Backend:             backend,
		SessionStore:        store,
		SessionTTL:          cfg.SessionTTL,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Location:            location,
		Metrics:             metrics,
		Logger:              log.Default(),
	})
	if err != nil {
		_ = store.Close()
		return fmt.Errorf("init portal server: %w", err)
	}
	defer server.Close()

	log.Printf("listening on %s (session store %s)", server.Addr(), cfg.SessionStore)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve portal: %w", err)
	}
	return nil
}

// OpenSessionStore opens the configured session store.
func OpenSessionStore(ctx context.Context, cfg Config) (session.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.SessionStoreOpen)
	defer cancel()

	switch cfg.SessionStore {
	case StoreMemory:
		return session.NewMemoryStore(), nil
	case StoreSQLite:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		store, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, nil
	case StoreRedis:
		store, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

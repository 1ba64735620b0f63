package appconfig

import (
	"time"

	"platinalab.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9310"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// RedisURL is the URL of the Redis server. See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL
	// for more information on how to construct a Redis URL.
	RedisURL string `required:"true" split_words:"true" default:"redis://127.0.0.1:6379/2"`

	// NatsURL is the URL of the NATS server. Accepted-result events are published there.
	// Leaving this empty disables event publishing.
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. Leaving this empty disables Sentry.
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the maximum timeout the fiber instance is
	// allowed to consume when gracefully shutting down the server.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// ProgressWorkerEnabled indicates whether to enable the periodic player progress recorder.
	ProgressWorkerEnabled bool `split_words:"true" default:"true"`

	// ProgressWorkerInterval describes the interval in-between runs of the progress recorder.
	ProgressWorkerInterval time.Duration `split_words:"true" default:"10m"`

	// ProgressWorkerSeparation describes the idle time in-between per-player calculations,
	// used to avoid stampeding the result store.
	ProgressWorkerSeparation time.Duration `split_words:"true" default:"10ms"`

	// ProgressWorkerTimeout describes the max allowed execution time of a single batch.
	ProgressWorkerTimeout time.Duration `split_words:"true" default:"5m"`

	// LeaderboardCacheTTL bounds the staleness of cached leaderboard snapshots; writes also
	// flush the cache eagerly so this mostly guards against missed invalidations.
	LeaderboardCacheTTL time.Duration `split_words:"true" default:"10m"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}

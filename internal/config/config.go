// Package config contains the operator's process-level configuration,
// loaded entirely from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the operator's process configuration.
type Config struct {
	// MetricsBindAddress is where the controller-runtime metrics endpoint
	// listens. "0" disables it.
	MetricsBindAddress string `env:"METRICS_BIND_ADDRESS" envDefault:":8080"`

	// HealthProbeBindAddress is where the liveness/readiness endpoints listen.
	HealthProbeBindAddress string `env:"HEALTH_PROBE_BIND_ADDRESS" envDefault:":8081"`

	// LeaderElection enables leader election so only one replica reconciles
	// at a time. This should usually always be on outside of local development.
	LeaderElection bool `env:"LEADER_ELECTION" envDefault:"true"`

	// LeaderElectionID is the lease resource name used to coordinate leader
	// election between replicas.
	LeaderElectionID string `env:"LEADER_ELECTION_ID" envDefault:"yakup-leader-election"`

	// ReconcileInterval is the periodic full re-reconcile period applied to
	// successful reconciles of either resource kind (spec section 4.5).
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1h"`

	// ErrorBackoff is the requeue delay applied after a failed reconcile
	// (spec section 7).
	ErrorBackoff time.Duration `env:"ERROR_BACKOFF" envDefault:"5s"`

	// LogLevel is a zap level name (debug, info, warn, error). It is loaded
	// but not applied: cmd/main.go builds the logger before loading Config
	// and takes its level from the zap command-line flags only.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// OTLPEndpoint is the collector gRPC endpoint telemetry.Setup exports
	// spans to. Empty disables tracing.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// ServiceName is attached to exported spans and defaults to the
	// operator's own name.
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"yakup"`
}

// Load returns a Config populated from the environment, applying the
// defaults declared above for anything unset.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

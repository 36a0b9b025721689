package config

import (
	"time"

	"github.com/joynutrics/json-assertions/jsoncompare"

	ct "github.com/launchdarkly/go-configtypes"
)

const (
	// DefaultPort is the port the comparison service listens on if Server.Port is not set.
	DefaultPort = 8060

	// DefaultPrometheusPort is the port for the Prometheus metrics endpoint if Prometheus.Port is not set.
	DefaultPrometheusPort = 8061

	// DefaultReadTimeout is the HTTP read timeout of the comparison service if Server.ReadTimeout is not set.
	DefaultReadTimeout = 10 * time.Second

	// DefaultMaxBodyBytes is the largest request body the comparison service accepts if
	// Server.MaxBodyBytes is not set.
	DefaultMaxBodyBytes = 10 << 20

	// DefaultPrometheusPrefix is the metric name prefix if Prometheus.Prefix is not set.
	DefaultPrometheusPrefix = "jsoncompare"
)

// Config describes the configuration of the jsoncompare command and comparison service.
type Config struct {
	Main       MainConfig
	Compare    CompareConfig
	Server     ServerConfig
	Prometheus PrometheusConfig
}

// MainConfig contains global options.
//
// This corresponds to the [Main] section in the configuration file.
type MainConfig struct {
	LogLevel OptLogLevel `conf:"LOG_LEVEL"`
}

// CompareConfig contains options for how documents are parsed and compared.
//
// This corresponds to the [Compare] section in the configuration file.
type CompareConfig struct {
	// MaxDepth is the maximum nesting depth accepted by the parser; if unset, jsonvalue.DefaultMaxDepth.
	MaxDepth ct.OptIntGreaterThanZero `conf:"MAX_DEPTH"`
	// MaxDiffs limits how many differences are reported for one comparison; if unset, all of them.
	MaxDiffs ct.OptIntGreaterThanZero `conf:"MAX_DIFFS"`
	// Concurrency is how many comparisons a batch run performs at once; if unset, GOMAXPROCS.
	Concurrency ct.OptIntGreaterThanZero `conf:"CONCURRENCY"`
}

// ServerConfig configures the HTTP comparison service.
//
// This corresponds to the [Server] section in the configuration file.
type ServerConfig struct {
	Port         ct.OptIntGreaterThanZero `conf:"PORT"`
	ReadTimeout  ct.OptDuration           `conf:"READ_TIMEOUT"`
	MaxBodyBytes ct.OptIntGreaterThanZero `conf:"MAX_BODY_BYTES"`
	TLSEnabled   bool                     `conf:"TLS_ENABLED"`
	TLSCert      string                   `conf:"TLS_CERT"`
	TLSKey       string                   `conf:"TLS_KEY"`
}

// PrometheusConfig configures the optional Prometheus endpoint, which is used only if Enabled is true.
//
// This corresponds to the [Prometheus] section in the configuration file.
type PrometheusConfig struct {
	Enabled bool                     `conf:"USE_PROMETHEUS"`
	Port    ct.OptIntGreaterThanZero `conf:"PROMETHEUS_PORT"`
	Prefix  string                   `conf:"PROMETHEUS_PREFIX"`
}

// Options returns the comparison options described by this configuration.
func (c CompareConfig) Options() jsoncompare.Options {
	return jsoncompare.Options{
		MaxDepth: c.MaxDepth.GetOrElse(0),
		MaxDiffs: c.MaxDiffs.GetOrElse(0),
	}
}

package config

import (
	"errors"
	"fmt"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

var (
	errTLSEnabledWithoutCertOrKey = errors.New("TLS cert and key are required if TLS is enabled")
	errMaxBodyTooSmall            = errors.New("maximum body size must be large enough for an empty request")
)

func errPortConflict(port int) error {
	return fmt.Errorf("Prometheus port %d is the same as the server port", port) //nolint:stylecheck
}

// minRequestBodyBytes is the size of the smallest meaningful request, `{"expected":"","actual":""}`.
const minRequestBodyBytes = 27

// ValidateConfig ensures that the configuration does not contain contradictory properties.
//
// Per-field rules such as "must be greater than zero" are enforced by the field types; this covers
// rules involving more than one field. LoadConfigFile and LoadConfigFromEnvironment both call it as a
// last step, but code that builds a Config programmatically should call it too.
func ValidateConfig(c *Config, loggers ldlog.Loggers) error {
	var result ct.ValidationResult

	validateConfigTLS(&result, c)
	validateConfigServer(&result, c)
	validateConfigPrometheus(&result, c, loggers)

	return result.GetError()
}

func validateConfigTLS(result *ct.ValidationResult, c *Config) {
	if c.Server.TLSEnabled && (c.Server.TLSCert == "" || c.Server.TLSKey == "") {
		result.AddError(nil, errTLSEnabledWithoutCertOrKey)
	}
}

func validateConfigServer(result *ct.ValidationResult, c *Config) {
	if c.Server.MaxBodyBytes.IsDefined() && c.Server.MaxBodyBytes.GetOrElse(0) < minRequestBodyBytes {
		result.AddError(ct.ValidationPath{"Server", "MaxBodyBytes"}, errMaxBodyTooSmall)
	}
}

func validateConfigPrometheus(result *ct.ValidationResult, c *Config, loggers ldlog.Loggers) {
	if !c.Prometheus.Enabled {
		if c.Prometheus.Port.IsDefined() || c.Prometheus.Prefix != "" {
			loggers.Warn("Prometheus options are set but Prometheus is not enabled; they will be ignored")
		}
		return
	}
	port := c.Prometheus.Port.GetOrElse(DefaultPrometheusPort)
	if port == c.Server.Port.GetOrElse(DefaultPort) {
		result.AddError(nil, errPortConflict(port))
	}
}

package config

import (
	"testing"
	"time"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"

	"github.com/stretchr/testify/assert"
)

type testDataValidConfig struct {
	name        string
	makeConfig  func(c *Config)
	envVars     map[string]string
	fileContent string
	warning     string
}

type testDataInvalidConfig struct {
	name         string
	envVarsError string
	fileError    string
	envVars      map[string]string
	fileContent  string
}

func (tdc testDataValidConfig) assertResult(t *testing.T, actualConfig Config, mockLog *ldlogtest.MockLog) {
	var expectedConfig Config
	if tdc.makeConfig != nil {
		tdc.makeConfig(&expectedConfig)
	}
	assert.Equal(t, expectedConfig, actualConfig)
	if tdc.warning != "" {
		mockLog.AssertMessageMatch(t, true, ldlog.Warn, tdc.warning)
	} else {
		assert.Len(t, mockLog.GetOutput(ldlog.Warn), 0)
	}
}

func makeValidConfigs() []testDataValidConfig {
	return []testDataValidConfig{
		makeValidConfigEmpty(),
		makeValidConfigAllProperties(),
		makeValidConfigTLS(),
		makeValidConfigPrometheusMinimal(),
		makeValidConfigPrometheusOptionsWithoutEnabled(),
	}
}

func makeInvalidConfigs() []testDataInvalidConfig {
	return []testDataInvalidConfig{
		makeInvalidConfigTLSWithNoCertOrKey(),
		makeInvalidConfigTLSWithNoKey(),
		makeInvalidConfigMaxBodyTooSmall(),
		makeInvalidConfigPrometheusPortConflict(),
		makeInvalidConfigPrometheusDefaultPortConflict(),
	}
}

func mustOptIntGreaterThanZero(n int) ct.OptIntGreaterThanZero {
	o, err := ct.NewOptIntGreaterThanZero(n)
	if err != nil {
		panic(err)
	}
	return o
}

func makeValidConfigEmpty() testDataValidConfig {
	return testDataValidConfig{
		name:        "no properties",
		envVars:     map[string]string{},
		fileContent: "",
	}
}

func makeValidConfigAllProperties() testDataValidConfig {
	c := testDataValidConfig{name: "all properties"}
	c.makeConfig = func(c *Config) {
		c.Main = MainConfig{
			LogLevel: NewOptLogLevel(ldlog.Debug),
		}
		c.Compare = CompareConfig{
			MaxDepth:    mustOptIntGreaterThanZero(64),
			MaxDiffs:    mustOptIntGreaterThanZero(20),
			Concurrency: mustOptIntGreaterThanZero(3),
		}
		c.Server = ServerConfig{
			Port:         mustOptIntGreaterThanZero(9000),
			ReadTimeout:  ct.NewOptDuration(30 * time.Second),
			MaxBodyBytes: mustOptIntGreaterThanZero(4096),
		}
		c.Prometheus = PrometheusConfig{
			Enabled: true,
			Port:    mustOptIntGreaterThanZero(9001),
			Prefix:  "cmp",
		}
	}
	c.envVars = map[string]string{
		"LOG_LEVEL":         "debug",
		"MAX_DEPTH":         "64",
		"MAX_DIFFS":         "20",
		"CONCURRENCY":       "3",
		"PORT":              "9000",
		"READ_TIMEOUT":      "30s",
		"MAX_BODY_BYTES":    "4096",
		"USE_PROMETHEUS":    "true",
		"PROMETHEUS_PORT":   "9001",
		"PROMETHEUS_PREFIX": "cmp",
	}
	c.fileContent = `
[Main]
LogLevel = "debug"

[Compare]
MaxDepth = 64
MaxDiffs = 20
Concurrency = 3

[Server]
Port = 9000
ReadTimeout = 30s
MaxBodyBytes = 4096

[Prometheus]
Enabled = true
Port = 9001
Prefix = "cmp"
`
	return c
}

func makeValidConfigTLS() testDataValidConfig {
	c := testDataValidConfig{name: "TLS"}
	c.makeConfig = func(c *Config) {
		c.Server.TLSEnabled = true
		c.Server.TLSCert = "/etc/jsoncompare/cert.pem"
		c.Server.TLSKey = "/etc/jsoncompare/key.pem"
	}
	c.envVars = map[string]string{
		"TLS_ENABLED": "1",
		"TLS_CERT":    "/etc/jsoncompare/cert.pem",
		"TLS_KEY":     "/etc/jsoncompare/key.pem",
	}
	c.fileContent = `
[Server]
TLSEnabled = true
TLSCert = "/etc/jsoncompare/cert.pem"
TLSKey = "/etc/jsoncompare/key.pem"
`
	return c
}

func makeValidConfigPrometheusMinimal() testDataValidConfig {
	c := testDataValidConfig{name: "Prometheus - minimal parameters"}
	c.makeConfig = func(c *Config) {
		c.Prometheus.Enabled = true
	}
	c.envVars = map[string]string{
		"USE_PROMETHEUS": "1",
	}
	c.fileContent = `
[Prometheus]
Enabled = true
`
	return c
}

func makeValidConfigPrometheusOptionsWithoutEnabled() testDataValidConfig {
	c := testDataValidConfig{name: "Prometheus - options without enabling"}
	c.makeConfig = func(c *Config) {
		c.Prometheus.Prefix = "x"
	}
	c.envVars = map[string]string{
		"PROMETHEUS_PREFIX": "x",
	}
	c.fileContent = `
[Prometheus]
Prefix = "x"
`
	c.warning = "Prometheus options are set but Prometheus is not enabled"
	return c
}

func makeInvalidConfigTLSWithNoCertOrKey() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "TLS without cert/key"}
	c.envVarsError = errTLSEnabledWithoutCertOrKey.Error()
	c.envVars = map[string]string{"TLS_ENABLED": "1"}
	c.fileContent = `
[Server]
TLSEnabled = true
`
	return c
}

func makeInvalidConfigTLSWithNoKey() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "TLS without key"}
	c.envVarsError = errTLSEnabledWithoutCertOrKey.Error()
	c.envVars = map[string]string{"TLS_ENABLED": "1", "TLS_CERT": "cert"}
	c.fileContent = `
[Server]
TLSEnabled = true
TLSCert = "cert"
`
	return c
}

func makeInvalidConfigMaxBodyTooSmall() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "max body size too small"}
	c.envVarsError = errMaxBodyTooSmall.Error()
	c.envVars = map[string]string{"MAX_BODY_BYTES": "10"}
	c.fileContent = `
[Server]
MaxBodyBytes = 10
`
	return c
}

func makeInvalidConfigPrometheusPortConflict() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "Prometheus port same as server port"}
	c.envVarsError = errPortConflict(9000).Error()
	c.envVars = map[string]string{"USE_PROMETHEUS": "true", "PORT": "9000", "PROMETHEUS_PORT": "9000"}
	c.fileContent = `
[Server]
Port = 9000

[Prometheus]
Enabled = true
Port = 9000
`
	return c
}

func makeInvalidConfigPrometheusDefaultPortConflict() testDataInvalidConfig {
	c := testDataInvalidConfig{name: "Prometheus port same as default server port"}
	c.envVarsError = errPortConflict(DefaultPort).Error()
	c.envVars = map[string]string{"USE_PROMETHEUS": "true", "PROMETHEUS_PORT": "8060"}
	c.fileContent = `
[Prometheus]
Enabled = true
Port = 8060
`
	return c
}

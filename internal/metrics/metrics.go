package metrics

import (
	"sync"

	"github.com/joynutrics/json-assertions/config"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// Manager owns the metrics views and any configured exporters.
type Manager struct {
	exporters map[exporterType]exporter
	loggers   ldlog.Loggers
	closeOnce sync.Once
}

// NewManager registers the comparison views, and starts the Prometheus exporter if it is enabled.
func NewManager(c config.PrometheusConfig, loggers ldlog.Loggers) (*Manager, error) {
	return newManagerWithExporterTypes(allExporterTypes(), c, loggers)
}

func newManagerWithExporterTypes(
	exporterTypes []exporterType,
	c config.PrometheusConfig,
	loggers ldlog.Loggers,
) (*Manager, error) {
	if err := registerViews(); err != nil {
		return nil, err
	}
	exporters, err := registerExporters(exporterTypes, c, loggers)
	if err != nil {
		return nil, err
	}
	return &Manager{exporters: exporters, loggers: loggers}, nil
}

// Close shuts down any exporters. The views stay registered.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		closeExporters(m.exporters, m.loggers)
	})
}

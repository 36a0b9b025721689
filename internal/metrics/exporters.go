package metrics

import (
	"github.com/joynutrics/json-assertions/config"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

type exporterType interface {
	getName() string
	createExporterIfEnabled(config.PrometheusConfig, ldlog.Loggers) (exporter, error)
}

type exporter interface {
	register() error
	close() error
}

func allExporterTypes() []exporterType {
	return []exporterType{prometheusExporterType}
}

func registerExporters(
	exporterTypes []exporterType,
	c config.PrometheusConfig,
	loggers ldlog.Loggers,
) (map[exporterType]exporter, error) {
	registered := make(map[exporterType]exporter)
	for _, t := range exporterTypes {
		e, err := t.createExporterIfEnabled(c, loggers)
		if err != nil {
			loggers.Errorf("Error creating %s metrics exporter: %s", t.getName(), err)
			closeExporters(registered, loggers)
			return nil, err
		}
		if e != nil {
			if err := e.register(); err != nil {
				loggers.Errorf("Error registering %s metrics exporter: %s", t.getName(), err)
				closeExporters(registered, loggers)
				return nil, err
			}
			loggers.Infof("Successfully registered %s metrics exporter", t.getName())
			registered[t] = e
		}
	}
	return registered, nil
}

func closeExporters(exporters map[exporterType]exporter, loggers ldlog.Loggers) {
	for t, e := range exporters {
		if err := e.close(); err != nil {
			loggers.Errorf("Error closing %s metrics exporter: %s", t.getName(), err)
		}
	}
}

func getPrefix(prefix string) string {
	if prefix != "" {
		return prefix
	}
	return config.DefaultPrometheusPrefix
}

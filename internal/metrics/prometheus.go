package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/joynutrics/json-assertions/config"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats/view"
)

var prometheusExporterType exporterType = prometheusExporterTypeImpl{} //nolint:gochecknoglobals

type prometheusExporterTypeImpl struct{}

type prometheusExporterImpl struct {
	exporter *prometheus.Exporter
	server   *http.Server
	loggers  ldlog.Loggers
}

func (p prometheusExporterTypeImpl) getName() string {
	return "Prometheus"
}

func (p prometheusExporterTypeImpl) createExporterIfEnabled(
	pc config.PrometheusConfig,
	loggers ldlog.Loggers,
) (exporter, error) {
	if !pc.Enabled {
		return nil, nil
	}

	port := pc.Port.GetOrElse(config.DefaultPrometheusPort)

	exporter, err := prometheus.NewExporter(prometheus.Options{
		Namespace: getPrefix(pc.Prefix),
		OnError: func(e error) {
			loggers.Errorf("Prometheus exporter error: %s", e)
		},
	})
	if err != nil {
		return nil, err
	}

	exporterMux := http.NewServeMux()
	exporterMux.Handle("/metrics", exporter)

	return &prometheusExporterImpl{
		exporter: exporter,
		server: &http.Server{ //nolint:gosec
			Addr:    fmt.Sprintf(":%d", port),
			Handler: exporterMux,
		},
		loggers: loggers,
	}, nil
}

func (p *prometheusExporterImpl) register() error {
	go func() {
		p.loggers.Infof("Prometheus metrics listening on %s", p.server.Addr)
		if err := p.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			p.loggers.Errorf("Failed to start Prometheus listener: %s", err)
		}
	}()

	view.RegisterExporter(p.exporter)
	return nil
}

func (p *prometheusExporterImpl) close() error {
	view.UnregisterExporter(p.exporter)
	return p.server.Close()
}

package metrics

import (
	"github.com/joynutrics/json-assertions/config"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

type testExporterTypeImpl struct {
	name            string
	checkEnabled    func(config.PrometheusConfig) bool
	errorOnCreate   error
	errorOnRegister error
	errorOnClose    error
	created         []*testExporterImpl
}

type testExporterImpl struct {
	exporterType *testExporterTypeImpl
	registered   bool
	closed       bool
}

func (t *testExporterTypeImpl) getName() string {
	if t.name == "" {
		return "testExporter"
	}
	return t.name
}

func (t *testExporterTypeImpl) createExporterIfEnabled(
	pc config.PrometheusConfig,
	loggers ldlog.Loggers,
) (exporter, error) {
	if t.errorOnCreate != nil {
		return nil, t.errorOnCreate
	}
	if t.checkEnabled != nil && !t.checkEnabled(pc) {
		return nil, nil
	}
	impl := &testExporterImpl{exporterType: t}
	t.created = append(t.created, impl)
	return impl, nil
}

func (t *testExporterImpl) register() error {
	if t.exporterType.errorOnRegister == nil {
		t.registered = true
	}
	return t.exporterType.errorOnRegister
}

func (t *testExporterImpl) close() error {
	if t.exporterType.errorOnClose == nil {
		t.closed = true
	}
	return t.exporterType.errorOnClose
}

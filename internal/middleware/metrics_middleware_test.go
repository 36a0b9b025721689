package middleware

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/metrics"
	st "github.com/joynutrics/json-assertions/internal/sharedtest"

	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"
	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"

	"github.com/gorilla/mux"
	"github.com/pborman/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestCount(t *testing.T) {
	mockLog := ldlogtest.NewMockLog()
	defer mockLog.DumpIfTestFailed(t)

	manager, err := metrics.NewManager(config.PrometheusConfig{}, mockLog.Loggers)
	require.NoError(t, err)
	defer manager.Close()

	// Since the global OpenCensus state will accumulate metrics from different tests, we'll use a randomized
	// route to isolate the data from this particular test.
	prefix := "/test-" + uuid.New()
	route := prefix + "/{id}"
	routeTag := strings.ReplaceAll(route, "/", "_")

	router := mux.NewRouter()
	router.Use(RequestCount())
	router.Handle(route, httphelpers.HandlerWithStatus(http.StatusOK)).Methods("GET", "POST")

	exporter := st.NewTestMetricsExporter()
	exporter.WithExporter(func() {
		for _, p := range []struct{ method, id string }{{"GET", "a"}, {"GET", "b"}, {"POST", "c"}} {
			resp, _ := st.DoRequest(st.BuildRequest(p.method, prefix+"/"+p.id, nil, nil), router)
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}

		exporter.AwaitData(t, time.Second, mockLog.Loggers, func(d st.TestMetricsData) bool {
			return d.HasRow("requests", st.TestMetricsRow{
				Tags:  map[string]string{"route": routeTag, "method": "GET"},
				Count: 2,
			}) && d.HasRow("requests", st.TestMetricsRow{
				Tags:  map[string]string{"route": routeTag, "method": "POST"},
				Count: 1,
			})
		})
	})
}

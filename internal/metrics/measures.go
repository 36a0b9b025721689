package metrics

import (
	"context"
	"strings"

	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/logging"

	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
)

var (
	comparisonMeasure = stats.Int64("comparisons", "number of JSON comparisons", stats.UnitDimensionless)     //nolint:gochecknoglobals
	differenceMeasure = stats.Int64("differences", "number of reported differences", stats.UnitDimensionless) //nolint:gochecknoglobals
	requestMeasure    = stats.Int64("requests", "number of HTTP requests", stats.UnitDimensionless)           //nolint:gochecknoglobals
)

// RecordVerdict counts one comparison outcome, tagged with its source and verdict kind. Nothing is
// recorded unless the views have been registered by NewManager.
func RecordVerdict(ctx context.Context, source string, v jsoncompare.Verdict) {
	tagCtx, err := tag.New(ctx,
		tag.Upsert(sourceTagKey, sanitizeTagValue(source)),
		tag.Upsert(verdictTagKey, v.Kind.String()),
	)
	if err != nil {
		logging.GetContextLoggers(ctx).Errorf("Failed to create metric tags: %s", err)
		return
	}
	stats.Record(tagCtx, comparisonMeasure.M(1), differenceMeasure.M(int64(len(v.Diffs))))
}

// WithRouteCount counts one request for the given route template and method, then calls f.
func WithRouteCount(ctx context.Context, route, method string, f func()) {
	tagCtx, err := tag.New(ctx,
		tag.Upsert(routeTagKey, sanitizeTagValue(route)),
		tag.Upsert(methodTagKey, sanitizeTagValue(method)),
	)
	if err != nil {
		logging.GetContextLoggers(ctx).Errorf(`Failed to create tags for route "%s %s": %s`, method, route, err)
	} else {
		stats.Record(tagCtx, requestMeasure.M(1))
	}
	f()
}

// Pad empty values since OpenCensus drops empty tags
func sanitizeTagValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return "_"
	}
	return strings.Replace(v, "/", "_", -1)
}

package metrics

import (
	"fmt"
	"sync"

	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	registerViewsOnce sync.Once //nolint:gochecknoglobals
	registerViewsErr  error     //nolint:gochecknoglobals

	comparisonsView = &view.View{ //nolint:gochecknoglobals
		Name:        comparisonsViewName,
		Description: "number of JSON comparisons by source and verdict",
		Measure:     comparisonMeasure,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{sourceTagKey, verdictTagKey},
	}
	differencesView = &view.View{ //nolint:gochecknoglobals
		Name:        differencesViewName,
		Description: "total number of reported differences by source",
		Measure:     differenceMeasure,
		Aggregation: view.Sum(),
		TagKeys:     []tag.Key{sourceTagKey},
	}
	requestsView = &view.View{ //nolint:gochecknoglobals
		Name:        requestsViewName,
		Description: "number of HTTP requests to the comparison service by route and method",
		Measure:     requestMeasure,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{routeTagKey, methodTagKey},
	}
)

func registerViews() error {
	registerViewsOnce.Do(func() {
		if err := view.Register(comparisonsView, differencesView, requestsView); err != nil {
			registerViewsErr = fmt.Errorf("error registering metrics views: %w", err)
		}
	})
	return registerViewsErr
}

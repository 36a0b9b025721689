package metrics

import (
	"go.opencensus.io/tag"
)

const (
	// SourceHTTP tags comparisons made by the HTTP comparison service.
	SourceHTTP = "http"
	// SourceBatch tags comparisons made by a manifest batch run.
	SourceBatch = "batch"
	// SourceCLI tags single comparisons made by the command-line tool.
	SourceCLI = "cli"

	comparisonsViewName = "comparisons"
	differencesViewName = "differences"
	requestsViewName    = "requests"
)

var (
	sourceTagKey, _  = tag.NewKey("source")  //nolint:gochecknoglobals
	verdictTagKey, _ = tag.NewKey("verdict") //nolint:gochecknoglobals
	routeTagKey, _   = tag.NewKey("route")   //nolint:gochecknoglobals
	methodTagKey, _  = tag.NewKey("method")  //nolint:gochecknoglobals
)

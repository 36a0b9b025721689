package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/application"
	"github.com/joynutrics/json-assertions/internal/metrics"
	"github.com/joynutrics/json-assertions/internal/pairs"
	"github.com/joynutrics/json-assertions/internal/subdoc"
	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/jsonvalue"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

func compareOptions(opts application.Options, c config.Config) jsoncompare.Options {
	ret := c.Compare.Options()
	if opts.MaxDiffs > 0 {
		ret.MaxDiffs = opts.MaxDiffs
	}
	return ret
}

func exitCodeFor(v jsoncompare.Verdict) int {
	switch v.Kind {
	case jsoncompare.VerdictEqual:
		return exitEqual
	case jsoncompare.VerdictNotEqual:
		return exitNotEqual
	default:
		return exitError
	}
}

func compareFiles(ctx context.Context, opts application.Options, c config.Config, out io.Writer, loggers ldlog.Loggers) int {
	expected, err := os.ReadFile(opts.ExpectedFile)
	if err != nil {
		loggers.Errorf("Unable to read expected file: %s", err)
		return exitError
	}
	actual, err := os.ReadFile(opts.ActualFile)
	if err != nil {
		loggers.Errorf("Unable to read actual file: %s", err)
		return exitError
	}

	options := compareOptions(opts, c)
	e, a, err := subdoc.SelectPair(string(expected), string(actual), opts.Select,
		jsonvalue.ParseOptions{MaxDepth: options.MaxDepth})
	if err != nil {
		loggers.Errorf("Unable to select %q: %s", opts.Select, err)
		return exitError
	}

	v := jsoncompare.CompareWithOptions(e, a, options)
	metrics.RecordVerdict(ctx, metrics.SourceCLI, v)
	printVerdict(out, "", v)
	return exitCodeFor(v)
}

func compareManifest(ctx context.Context, opts application.Options, c config.Config, out io.Writer, loggers ldlog.Loggers) int {
	m, root, err := pairs.LoadManifest(opts.RootDir, opts.ManifestFile)
	if err != nil {
		loggers.Errorf("Error: %s", err)
		return exitError
	}

	report, err := pairs.Run(ctx, root, m, pairs.Options{
		Compare:     compareOptions(opts, c),
		Concurrency: c.Compare.Concurrency.GetOrElse(0),
		Select:      opts.Select,
	}, loggers)
	if err != nil {
		loggers.Errorf("Error: %s", err)
		return exitError
	}

	code := exitEqual
	counts := map[jsoncompare.VerdictKind]int{}
	for _, r := range report.Results {
		printVerdict(out, r.Entry.Name, r.Verdict)
		counts[r.Verdict.Kind]++
		if rc := exitCodeFor(r.Verdict); rc > code {
			code = rc
		}
	}
	fmt.Fprintf(out, "%d pairs: %d equal, %d not equal, %d invalid\n", len(report.Results), //nolint:errcheck
		counts[jsoncompare.VerdictEqual], counts[jsoncompare.VerdictNotEqual], counts[jsoncompare.VerdictParseFailure])
	return code
}

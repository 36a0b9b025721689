package pairs

import (
	"context"

	"github.com/joynutrics/json-assertions/internal/metrics"
	"github.com/joynutrics/json-assertions/internal/subdoc"
	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/jsonvalue"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// Options controls a batch run.
type Options struct {
	Compare     jsoncompare.Options
	Concurrency int
	// Select, if not empty, is a GJSON path applied to both files of every pair before comparing.
	Select string
}

// Result is the outcome for one manifest entry.
type Result struct {
	Entry   Entry
	Verdict jsoncompare.Verdict
}

// Report is the outcome of a batch run, in manifest order.
type Report struct {
	Results []Result
}

// Failed returns the number of pairs that were not equal or could not be parsed.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Verdict.IsEqual() {
			n++
		}
	}
	return n
}

func (r Report) count(kind jsoncompare.VerdictKind) int {
	n := 0
	for _, res := range r.Results {
		if res.Verdict.Kind == kind {
			n++
		}
	}
	return n
}

// Run reads every pair of files in the manifest and compares them.
//
// An error is returned only if a file cannot be read, a selection path does not match, or the context
// is cancelled; unequal or malformed documents are reported in the Report.
func Run(ctx context.Context, root string, m Manifest, opts Options, loggers ldlog.Loggers) (Report, error) {
	compared := make([]jsoncompare.Pair, 0, len(m.Entries))
	for _, e := range m.Entries {
		expected, err := readPairFile(root, e.Name, e.Expected)
		if err != nil {
			return Report{}, err
		}
		actual, err := readPairFile(root, e.Name, e.Actual)
		if err != nil {
			return Report{}, err
		}
		expected, actual, err = subdoc.SelectPair(expected, actual, opts.Select,
			jsonvalue.ParseOptions{MaxDepth: opts.Compare.MaxDepth})
		if err != nil {
			return Report{}, errCannotSelect(e.Name, err)
		}
		compared = append(compared, jsoncompare.Pair{Expected: expected, Actual: actual})
	}

	verdicts, err := jsoncompare.CompareAll(ctx, compared, opts.Concurrency, opts.Compare)
	if err != nil {
		return Report{}, err
	}

	report := Report{Results: make([]Result, 0, len(verdicts))}
	for i, v := range verdicts {
		metrics.RecordVerdict(ctx, metrics.SourceBatch, v)
		if !v.IsEqual() {
			loggers.Warnf(logMsgPairFailed, m.Entries[i].Name, v)
		}
		report.Results = append(report.Results, Result{Entry: m.Entries[i], Verdict: v})
	}
	loggers.Infof(logMsgRunFinished, len(report.Results), report.count(jsoncompare.VerdictEqual),
		report.count(jsoncompare.VerdictNotEqual), report.count(jsoncompare.VerdictParseFailure))
	return report, nil
}

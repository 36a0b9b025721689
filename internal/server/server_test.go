package server

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/sharedtest"
	"github.com/joynutrics/json-assertions/internal/version"
	"github.com/joynutrics/json-assertions/jsonvalue"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
	"github.com/launchdarkly/go-sdk-common/v3/ldlogtest"
	"github.com/launchdarkly/go-test-helpers/v3/httphelpers"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var jsonHeaders = http.Header{"Content-Type": []string{"application/json"}}

func compareBody(expected, actual string) []byte {
	return []byte(`{"expected":` + quote(expected) + `,"actual":` + quote(actual) + `}`)
}

func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s) + `"`
}

func withTestServer(t *testing.T, cfg config.Config, action func(handler http.Handler, mockLog *ldlogtest.MockLog)) {
	mockLog := ldlogtest.NewMockLog()
	defer mockLog.DumpIfTestFailed(t)
	mockLog.Loggers.SetMinLevel(ldlog.Debug)
	action(NewServer(cfg, mockLog.Loggers).Handler(), mockLog)
}

func doCompare(t *testing.T, handler http.Handler, body []byte) (*http.Response, string) {
	t.Helper()
	resp, respBody := sharedtest.DoRequest(
		sharedtest.BuildRequest("POST", "/compare", body, jsonHeaders), handler)
	return resp, string(respBody)
}

func TestStatus(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		resp, body := sharedtest.DoRequest(sharedtest.BuildRequest("GET", "/status", nil, nil), handler)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"status":"healthy","version":"`+version.Version+`"}`, string(body))
	})
}

func TestCompareVerdicts(t *testing.T) {
	for _, p := range []struct {
		name             string
		expected, actual string
		response         string
	}{
		{
			"equal",
			`{"a":[1,2],"b":null}`, "{\"b\": null,\n \"a\": [2, 1.0]}",
			`{"verdict":"equal"}`,
		},
		{
			"not equal",
			`{"a":1,"b":[1]}`, `{"a":"1"}`,
			`{"verdict":"notEqual","diffs":[` +
				`{"path":"$.a","kind":"typeMismatch","expected":1,"actual":"1"},` +
				`{"path":"$.b","kind":"missingKey","expected":[1],"actual":null}]}`,
		},
		{
			"extra key",
			`{}`, `{"x":{"y":true}}`,
			`{"verdict":"notEqual","diffs":[{"path":"$.x","kind":"extraKey","expected":null,"actual":{"y":true}}]}`,
		},
		{
			"number literals are kept",
			`[1.50]`, `[2e0]`,
			`{"verdict":"notEqual","diffs":[{"path":"$[0]","kind":"valueMismatch","expected":1.50,"actual":2e0}]}`,
		},
		{
			"element paired at another index",
			`[1,1,2]`, `[1,2,2]`,
			`{"verdict":"notEqual","diffs":[{"path":"$[1]","actualPath":"$[2]","kind":"valueMismatch","expected":1,"actual":2}]}`,
		},
		{
			"malformed expected",
			`{invalid`, `{}`,
			`{"verdict":"parseError","side":"expected","offset":1,"line":1,"column":2,` +
				`"message":"unexpected character 'i'"}`,
		},
		{
			"malformed actual on second line",
			`{}`, "{\n\"a\":}",
			`{"verdict":"parseError","side":"actual","offset":6,"line":2,"column":5,` +
				`"message":"unexpected '}', expected a JSON value"}`,
		},
	} {
		t.Run(p.name, func(t *testing.T) {
			withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
				resp, body := doCompare(t, handler, compareBody(p.expected, p.actual))
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
				assert.JSONEq(t, p.response, body)
			})
		})
	}
}

func TestCompareLogsVerdictAtDebugLevel(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, mockLog *ldlogtest.MockLog) {
		_, _ = doCompare(t, handler, compareBody(`[1]`, `[2]`))
		mockLog.AssertMessageMatch(t, true, ldlog.Debug, "Comparison verdict: notEqual \\(1 differences\\)")
		mockLog.AssertMessageMatch(t, true, ldlog.Debug, "Request: method=POST url=/compare status=200")
	})
}

func TestCompareWithSelect(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		body := []byte(`{"expected":"{\"data\":[1,2],\"id\":1}","actual":"{\"data\":[2,1],\"id\":2}","select":"data"}`)
		resp, respBody := doCompare(t, handler, body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"verdict":"equal"}`, respBody)

		body = []byte(`{"expected":"{\"data\":1}","actual":"{}","select":"data"}`)
		resp, respBody = doCompare(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, respBody, "actual value: path not found in document")
	})
}

func TestCompareWithSelectParsesWholeDocuments(t *testing.T) {
	maxDepth, err := ct.NewOptIntGreaterThanZero(3)
	require.NoError(t, err)
	cfg := config.Config{Compare: config.CompareConfig{MaxDepth: maxDepth}}

	for _, p := range []struct {
		name             string
		expected, actual string
		response         string
	}{
		{
			"lone surrogate outside selection",
			`{"a":1,"b":"\ud800"}`, `{"a":1}`,
			`{"verdict":"parseError","side":"expected","offset":12,"line":1,"column":13,` +
				`"message":"missing low surrogate after high surrogate"}`,
		},
		{
			"nesting outside selection exceeds limit",
			`{"a":1}`, `{"a":1,"b":[[[1]]]}`,
			`{"verdict":"parseError","side":"actual","offset":13,"line":1,"column":14,` +
				`"message":"too deeply nested"}`,
		},
		{
			"duplicate key uses last value",
			`{"a":1,"a":2}`, `{"a":2}`,
			`{"verdict":"equal"}`,
		},
	} {
		t.Run(p.name, func(t *testing.T) {
			withTestServer(t, cfg, func(handler http.Handler, _ *ldlogtest.MockLog) {
				body := []byte(`{"expected":` + quote(p.expected) + `,"actual":` + quote(p.actual) + `,"select":"a"}`)
				resp, respBody := doCompare(t, handler, body)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, p.response, respBody)
			})
		})
	}
}

func TestCompareUsesConfiguredOptions(t *testing.T) {
	maxDiffs, err := ct.NewOptIntGreaterThanZero(1)
	require.NoError(t, err)
	cfg := config.Config{Compare: config.CompareConfig{MaxDiffs: maxDiffs}}
	withTestServer(t, cfg, func(handler http.Handler, _ *ldlogtest.MockLog) {
		_, body := doCompare(t, handler, compareBody(`{"a":1,"b":1}`, `{"a":2,"b":2}`))
		assert.JSONEq(t, `{"verdict":"notEqual","diffs":[{"path":"$.a","kind":"valueMismatch","expected":1,"actual":2}]}`,
			body)
	})
}

func TestCompareBadRequests(t *testing.T) {
	for _, p := range []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", ``, "request body is not valid JSON: unexpected end of input"},
		{"not an object", `["a","b"]`, "request body must be a JSON object"},
		{"missing expected", `{"actual":"1"}`, `request body must have a string property "expected"`},
		{"missing actual", `{"expected":"1"}`, `request body must have a string property "actual"`},
		{"expected not a string", `{"expected":1,"actual":"1"}`, `request property "expected" must be a string`},
		{"select not a string", `{"expected":"1","actual":"1","select":3}`, `request property "select" must be a string`},
	} {
		t.Run(p.name, func(t *testing.T) {
			withTestServer(t, config.Config{}, func(handler http.Handler, mockLog *ldlogtest.MockLog) {
				resp, body := doCompare(t, handler, []byte(p.body))
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				rep, err := jsonvalue.Parse(body)
				require.NoError(t, err)
				message, _ := rep.Get("message")
				assert.Contains(t, message.StringValue(), p.message)
				mockLog.AssertMessageMatch(t, true, ldlog.Warn, "Rejected comparison request")
			})
		})
	}
}

func TestCompareRejectsWrongContentType(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		req := sharedtest.BuildRequest("POST", "/compare", compareBody("1", "1"),
			http.Header{"Content-Type": []string{"text/plain"}})
		resp, _ := sharedtest.DoRequest(req, handler)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})
}

func TestCompareAcceptsContentTypeParameters(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		req := sharedtest.BuildRequest("POST", "/compare", compareBody("1", "1"),
			http.Header{"Content-Type": []string{"application/json; charset=utf-8"}})
		resp, _ := sharedtest.DoRequest(req, handler)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestCompareBodyTooLarge(t *testing.T) {
	maxBody, err := ct.NewOptIntGreaterThanZero(100)
	require.NoError(t, err)
	cfg := config.Config{Server: config.ServerConfig{MaxBodyBytes: maxBody}}
	withTestServer(t, cfg, func(handler http.Handler, mockLog *ldlogtest.MockLog) {
		resp, body := doCompare(t, handler, compareBody(strings.Repeat(" ", 100)+"1", "1"))
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Request body must not be larger than 100 bytes"}`, body)
		mockLog.AssertMessageMatch(t, true, ldlog.Warn, "body is larger than 100 bytes")

		resp, _ = doCompare(t, handler, compareBody("1", "1"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestCompareGzippedBody(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(compareBody(`{"a":[1,2]}`, `{"a":[2,1]}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		headers := http.Header{"Content-Type": []string{"application/json"}, "Content-Encoding": []string{"gzip"}}
		resp, body := sharedtest.DoRequest(sharedtest.BuildRequest("POST", "/compare", buf.Bytes(), headers), handler)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"verdict":"equal"}`, string(body))

		resp, _ = sharedtest.DoRequest(sharedtest.BuildRequest("POST", "/compare", []byte("plain"), headers), handler)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestWrongMethodIsRejected(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		resp, _ := sharedtest.DoRequest(sharedtest.BuildRequest("GET", "/compare", nil, nil), handler)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestCompareOverHTTP(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, _ *ldlogtest.MockLog) {
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
			resp, err := client.Post(server.URL+"/compare", "application/json",
				bytes.NewReader(compareBody(`{"a":1}`, `{"a":1.0}`)))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	})
}

func TestCompareLogsBodySize(t *testing.T) {
	withTestServer(t, config.Config{}, func(handler http.Handler, mockLog *ldlogtest.MockLog) {
		body := compareBody("1", "1")
		_, _ = doCompare(t, handler, body)
		mockLog.AssertMessageMatch(t, true, ldlog.Debug,
			fmt.Sprintf("Read comparison request: %d bytes \\(%d uncompressed\\)", len(body), len(body)))
	})
}

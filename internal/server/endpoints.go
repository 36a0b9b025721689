package server

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/joynutrics/json-assertions/internal/metrics"
	"github.com/joynutrics/json-assertions/internal/subdoc"
	"github.com/joynutrics/json-assertions/internal/util"
	"github.com/joynutrics/json-assertions/jsoncompare"
	"github.com/joynutrics/json-assertions/jsonvalue"
	"github.com/joynutrics/json-assertions/logging"
)

func statusHandler(version string) http.Handler {
	body := statusRep(version)
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
}

func compareHandler(options jsoncompare.Options, maxBodyBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		loggers := logging.GetContextLoggers(req.Context())

		if contentType := req.Header.Get("Content-Type"); contentType != "" {
			if mediaType, _, _ := mime.ParseMediaType(contentType); mediaType != "application/json" {
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte("Content-Type must be application/json."))
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")

		if req.Body == nil {
			req.Body = http.NoBody
		}
		reader, err := util.NewReader(req.Body, req.Header.Get("Content-Encoding") == "gzip", maxBodyBytes)
		if err != nil {
			loggers.Warnf(logMsgBadRequest, err)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(util.ErrorJSONMsgf("Request body could not be decompressed: %s", err))
			return
		}
		defer reader.Close() //nolint:errcheck
		body, err := io.ReadAll(reader)
		if err != nil {
			if errors.Is(err, util.ErrBodyTooLarge) {
				loggers.Warnf(logMsgBodyTooLong, maxBodyBytes)
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write(util.ErrorJSONMsgf("Request body must not be larger than %d bytes", maxBodyBytes))
				return
			}
			loggers.Warnf(logMsgBadRequest, err)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(util.ErrorJSONMsg("Unable to read request body"))
			return
		}
		loggers.Debugf(logMsgBodyRead, reader.GetBytesRead(), reader.GetUncompressedBytesRead())

		cr, err := parseCompareRequest(body, options.MaxDepth)
		if err != nil {
			loggers.Warnf(logMsgBadRequest, err)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(util.ErrorJSONMsg(err.Error()))
			return
		}

		expected, actual := cr.expected, cr.actual
		if cr.selectPath != "" {
			expected, actual, err = subdoc.SelectPair(expected, actual, cr.selectPath,
				jsonvalue.ParseOptions{MaxDepth: options.MaxDepth})
			if err != nil {
				err = errCannotSelect(err)
				loggers.Warnf(logMsgBadRequest, err)
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write(util.ErrorJSONMsg(err.Error()))
				return
			}
		}

		verdict := jsoncompare.CompareWithOptions(expected, actual, options)
		metrics.RecordVerdict(req.Context(), metrics.SourceHTTP, verdict)
		loggers.Debugf(logMsgVerdict, verdict.Kind, len(verdict.Diffs))

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(verdictRep(verdict))
	})
}

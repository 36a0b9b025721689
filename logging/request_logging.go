package logging

import (
	"net/http"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// RequestLoggerMiddleware decorates a Handler with debug-level logging of all requests.
func RequestLoggerMiddleware(loggers ldlog.Loggers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !loggers.IsDebugEnabled() {
				next.ServeHTTP(w, req)
				return
			}
			startTime := time.Now()
			wrappedWriter := loggingHTTPResponseWriter{writer: w}
			next.ServeHTTP(&wrappedWriter, req)
			status := wrappedWriter.statusCode
			if status == 0 {
				status = http.StatusOK
			}
			loggers.Debugf("Request: method=%s url=%s status=%d bytes=%d elapsed=%s",
				req.Method,
				req.URL,
				status,
				wrappedWriter.bytesWritten,
				time.Since(startTime),
			)
		})
	}
}

type loggingHTTPResponseWriter struct {
	writer       http.ResponseWriter
	statusCode   int
	bytesWritten uint64
}

func (w *loggingHTTPResponseWriter) Header() http.Header {
	return w.writer.Header()
}

func (w *loggingHTTPResponseWriter) Write(data []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.writer.Write(data)
	w.bytesWritten += uint64(n)
	return n, err
}

func (w *loggingHTTPResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.writer.WriteHeader(statusCode)
}

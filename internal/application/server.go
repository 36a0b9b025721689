package application

import (
	"fmt"
	"net/http"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// StartHTTPServer starts the server, with or without TLS. It returns immediately, starting the server
// on a separate goroutine; if the server fails to start up, it sends an error to the error channel.
//
// The error channel is also closed, without an error, once the server has been shut down.
func StartHTTPServer(
	port int,
	handler http.Handler,
	readTimeout time.Duration,
	tlsEnabled bool,
	tlsCertFile, tlsKeyFile string,
	loggers ldlog.Loggers,
) (*http.Server, <-chan error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		var err error
		loggers.Infof("Starting server listening on port %d", port)
		if tlsEnabled {
			loggers.Info("TLS enabled for server")
			err = srv.ListenAndServeTLS(tlsCertFile, tlsKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return srv, errCh
}

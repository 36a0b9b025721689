package main

import (
	"context"
	"time"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/application"
	"github.com/joynutrics/json-assertions/internal/metrics"
	"github.com/joynutrics/json-assertions/internal/server"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

const shutdownTimeout = 5 * time.Second

func serve(ctx context.Context, c config.Config, loggers ldlog.Loggers) int {
	metricsManager, err := metrics.NewManager(c.Prometheus, loggers)
	if err != nil {
		loggers.Errorf("Unable to initialize metrics: %s", err)
		return exitError
	}
	defer metricsManager.Close()

	port := c.Server.Port.GetOrElse(config.DefaultPort)
	srv, errs := application.StartHTTPServer(
		port,
		server.NewServer(c, loggers).Handler(),
		c.Server.ReadTimeout.GetOrElse(config.DefaultReadTimeout),
		c.Server.TLSEnabled,
		c.Server.TLSCert,
		c.Server.TLSKey,
		loggers,
	)

	select {
	case err := <-errs:
		loggers.Errorf("Error starting HTTP listener on port: %d  %s", port, err)
		return exitError
	case <-ctx.Done():
	}

	loggers.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggers.Errorf("Error shutting down server: %s", err)
		return exitError
	}
	return exitEqual
}

package server

import (
	"net/http"

	"github.com/joynutrics/json-assertions/config"
	"github.com/joynutrics/json-assertions/internal/middleware"
	"github.com/joynutrics/json-assertions/internal/version"
	"github.com/joynutrics/json-assertions/logging"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/gorilla/mux"
)

// Server is the HTTP comparison service.
type Server struct {
	config  config.Config
	loggers ldlog.Loggers
	version string
}

// NewServer creates a Server. It does not listen on any port; use Handler with an http.Server.
func NewServer(cfg config.Config, loggers ldlog.Loggers) *Server {
	return &Server{
		config:  cfg,
		loggers: loggers,
		version: version.Version,
	}
}

// Handler returns the HTTP handler for all of the service's endpoints.
func (s *Server) Handler() http.Handler {
	return s.makeRouter()
}

func (s *Server) makeRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(logging.ContextLoggersMiddleware(s.loggers))
	router.Use(logging.RequestLoggerMiddleware(s.loggers))
	router.Use(middleware.RequestCount())
	router.Handle("/status", statusHandler(s.version)).Methods("GET")
	router.Handle("/compare", compareHandler(
		s.config.Compare.Options(),
		int64(s.config.Server.MaxBodyBytes.GetOrElse(config.DefaultMaxBodyBytes)),
	)).Methods("POST")
	return router
}

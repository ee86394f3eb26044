package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-aqua-client/api"
	"github.com/jrsteele09/go-aqua-client/internal/config"
)

// Server serves the login, dashboard and statistics pages and forwards the
// user's actions to the backend through the page controllers.
type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config
	api    *api.Client
}

func New(config config.Config, client *api.Client) (*Server, error) {
	if client == nil {
		return nil, fmt.Errorf("[Server New] backend client is required")
	}

	s := &Server{
		mux:    http.NewServeMux(),
		config: config,
		api:    client,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()
	log.Info().Str("backend", client.BaseURL()).Msg("Forwarding page actions to backend")

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msg(colourMethod(method) + " " + path)
}

// getScheme determines the scheme (http/https) of the request. The
// X-Forwarded-Proto header is only honoured behind a trusted proxy.
func (s *Server) getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if s.config.GetTrustProxyHeaders() {
		if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
			return scheme
		}
	}
	return "http"
}

// Package server provides the HTTP server and routing for the boardroom API.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/config"
	"github.com/agentic-research/boardroom/internal/database"
	"github.com/agentic-research/boardroom/internal/modules/agents"
	agenthandlers "github.com/agentic-research/boardroom/internal/modules/agents/handlers"
	"github.com/agentic-research/boardroom/internal/modules/evaluation"
	evaluationhandlers "github.com/agentic-research/boardroom/internal/modules/evaluation/handlers"
	"github.com/agentic-research/boardroom/internal/modules/optimization"
	optimizationhandlers "github.com/agentic-research/boardroom/internal/modules/optimization/handlers"
	"github.com/agentic-research/boardroom/internal/modules/runs"
	runhandlers "github.com/agentic-research/boardroom/internal/modules/runs/handlers"
	"github.com/agentic-research/boardroom/internal/modules/simulations"
	simulationhandlers "github.com/agentic-research/boardroom/internal/modules/simulations/handlers"
	"github.com/agentic-research/boardroom/internal/modules/thresholds"
	thresholdhandlers "github.com/agentic-research/boardroom/internal/modules/thresholds/handlers"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	Cfg       *config.Config
	ConfigDB  *database.DB
	HistoryDB *database.DB
	Roster    []agents.Profile
	Loader    *runs.Loader
}

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	server    *http.Server
	log       zerolog.Logger
	cfg       *config.Config
	configDB  *database.DB
	historyDB *database.DB
	roster    []agents.Profile
	loader    *runs.Loader
}

// New creates a new HTTP server with all routes wired.
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		cfg:       cfg.Cfg,
		configDB:  cfg.ConfigDB,
		historyDB: cfg.HistoryDB,
		roster:    cfg.Roster,
		loader:    cfg.Loader,
	}

	s.setupMiddleware(cfg.Cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	allowedOrigins := s.cfg.CORSOrigins
	if devMode || len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/info", s.handleInfo)

	board := evaluation.NewBoardRoom(s.roster, s.log)
	simulator := optimization.NewSimulator(s.roster, s.log)

	thresholdRepo := thresholds.NewRepository(s.configDB.Conn(), s.log)
	simulationRepo := simulations.NewRepository(s.historyDB.Conn(), s.log)

	agenthandlers.NewHandler(s.roster, s.log).RegisterRoutes(s.router)
	evaluationhandlers.NewHandler(board, s.log).RegisterRoutes(s.router)
	runhandlers.NewHandler(s.loader, s.log).RegisterRoutes(s.router)
	optimizationhandlers.NewHandler(simulator, s.loader, s.log).RegisterRoutes(s.router)
	thresholdhandlers.NewHandler(thresholdRepo, simulationRepo, s.log).RegisterRoutes(s.router)
	simulationhandlers.NewHandler(simulationRepo, thresholdRepo, s.log).RegisterRoutes(s.router)
}

// handleRoot serves the service banner.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "boardroom",
		"message": "Multi-agent cyber-risk decision support API",
		"status":  "running",
	})
}

// handleHealth reports liveness plus database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	databases := map[string]string{}
	for name, db := range map[string]*database.DB{
		"config":  s.configDB,
		"history": s.historyDB,
	} {
		if err := db.QuickCheck(ctx); err != nil {
			databases[name] = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			databases[name] = "ok"
		}
	}

	s.writeJSON(w, status, map[string]interface{}{
		"status":    healthWord(status),
		"databases": databases,
	})
}

// handleInfo reports the roster and data source availability.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.roster))
	for _, p := range s.roster {
		names = append(names, p.Name)
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"agents":       names,
		"data_sources": s.loader.Info(),
		"scenarios":    len(optimization.Scenarios()),
	})
}

func healthWord(status int) string {
	if status == http.StatusOK {
		return "healthy"
	}
	return "degraded"
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/bizcopilot/backend/internal/chat"
	"github.com/bizcopilot/backend/internal/common"
	"github.com/bizcopilot/backend/internal/config"
	"github.com/bizcopilot/backend/internal/llm"
	"github.com/bizcopilot/backend/internal/store"
	"github.com/bizcopilot/backend/internal/usecase"
)

type Server struct {
	router   chi.Router
	cfg      config.Config
	gateway  *llm.Gateway
	chat     *chat.Service
	usecases *usecase.Service
	store    *store.Store
}

func NewServer(cfg config.Config, gateway *llm.Gateway, st *store.Store) *Server {
	logger := common.Logger()
	logger.Info(
		"api: building server",
		"provider", gateway.ProviderName(),
		"save_history", cfg.SaveHistory,
	)
	srv := &Server{
		router:   chi.NewRouter(),
		cfg:      cfg,
		gateway:  gateway,
		chat:     chat.NewService(gateway, st, cfg.SaveHistory),
		usecases: usecase.NewService(gateway),
		store:    st,
	}
	srv.routes()
	logger.Info("api: server ready")
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	// Per-request timing log, enabled by the DEBUG setting.
	if s.cfg.Debug {
		s.router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				next.ServeHTTP(w, r)
				logger.Info("api: request completed", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
			})
		})
	}

	s.router.Get("/", s.handleRoot)
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/logs", s.handleLogs)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/usecases/legal-contract", s.handleLegalContract)
	s.router.Post("/api/usecases/marketing-post", s.handleMarketingPost)
	s.router.Post("/api/usecases/finance-report", s.handleFinanceReport)
	s.router.Post("/api/usecases/summary", s.handleSummary)
	s.router.Post("/api/usecases/company-card", s.handleCompanyCard)
	s.router.Post("/api/usecases/tax-consultation", s.handleTaxConsultation)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": config.AppName + " API",
		"version": config.AppVersion,
	})
}

// handleHealth never fails the request: an unreachable model backend is
// reported in llm_status instead.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	llmStatus := "unavailable"
	if s.gateway.CheckHealth(r.Context()) {
		llmStatus = "ok"
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", LLMStatus: llmStatus})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

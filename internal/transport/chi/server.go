package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/metrics"
	healthuc "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/usecase/health"
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/version"
)

// Recommender serves recommendation requests.
type Recommender interface {
	Recommend(ctx context.Context, req domain.QueryRequest) ([]domain.ScoredResult, error)
}

// HealthService runs component health checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server exposes the recommendation API over HTTP.
type Server struct {
	recommender Recommender
	health      HealthService
	logger      *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(recommender Recommender, health HealthService, logger *zap.Logger) *Server {
	return &Server{
		recommender: recommender,
		health:      health,
		logger:      logger,
	}
}

// Routes mounts the API handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/recommend", s.Recommend)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Recommend handles POST /recommend.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecommendationsTotal.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results, err := s.recommender.Recommend(r.Context(), req.toDomain())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.RecommendationsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, recommendResponseFromDomain(results))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponseFromReport(report, version.Version))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// sentinelStatus maps domain sentinels to HTTP status and error code.
var sentinelStatus = []struct {
	sentinel error
	status   int
	code     string
	outcome  string
}{
	{domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed, "invalid"},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound, "invalid"},
	{domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError, "upstream_error"},
	{domain.ErrIndexUnavailable, http.StatusServiceUnavailable, CodeIndexUnavailable, "upstream_error"},
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))

	for _, m := range sentinelStatus {
		if errors.Is(err, m.sentinel) {
			metrics.RecommendationsTotal.WithLabelValues(m.outcome).Inc()
			writeError(w, m.status, m.code, safeDomainMessage(err, m.sentinel))
			return
		}
	}

	s.logger.Error("internal error", zap.Error(err))
	metrics.RecommendationsTotal.WithLabelValues("internal_error").Inc()
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// safeDomainMessage exposes validation detail to the client but hides
// upstream internals behind the sentinel text.
func safeDomainMessage(err, sentinel error) string {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return err.Error()
	}
	return sentinel.Error()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

package chi

import (
	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
	healthuc "github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/usecase/health"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest             = "bad_request"
	CodeValidationFailed       = "validation_failed"
	CodeNotFound               = "not_found"
	CodeEmbeddingProviderError = "embedding_provider_error"
	CodeIndexUnavailable       = "index_unavailable"
	CodeInternalError          = "internal_error"
)

// RecommendRequest is the POST /recommend body. Preference fields are
// tri-state: true, false or absent/null. K is a pointer so an absent k
// (defaulted) stays distinguishable from an explicit k=0 (rejected).
type RecommendRequest struct {
	Query              string            `json:"query"`
	K                  *int              `json:"k,omitempty"`
	RemotePreferred    domain.Preference `json:"remote_preferred,omitempty"`
	AdaptivePreferred  domain.Preference `json:"adaptive_preferred,omitempty"`
	TestTypePreference string            `json:"test_type_preference,omitempty"`
}

func (r RecommendRequest) toDomain() domain.QueryRequest {
	k := domain.DefaultK
	if r.K != nil {
		k = *r.K
	}
	return domain.QueryRequest{
		Query:              r.Query,
		K:                  k,
		RemotePreferred:    r.RemotePreferred,
		AdaptivePreferred:  r.AdaptivePreferred,
		TestTypePreference: r.TestTypePreference,
	}
}

// RecommendResultItem is a single ranked recommendation.
type RecommendResultItem struct {
	Rank            int     `json:"rank"`
	Score           float64 `json:"score"`
	Name            string  `json:"name"`
	URL             string  `json:"url"`
	TestType        string  `json:"test_type"`
	RemoteSupport   string  `json:"remote_support"`
	AdaptiveSupport string  `json:"adaptive_support"`
	JobLevels       string  `json:"job_levels"`
	LongDescription string  `json:"long_description"`
}

// RecommendResponse is the POST /recommend response body.
type RecommendResponse struct {
	Results []RecommendResultItem `json:"results"`
}

func recommendResponseFromDomain(results []domain.ScoredResult) RecommendResponse {
	items := make([]RecommendResultItem, len(results))
	for i, r := range results {
		items[i] = RecommendResultItem{
			Rank:            r.Rank,
			Score:           r.Score,
			Name:            r.Item.Name,
			URL:             r.Item.URL,
			TestType:        r.Item.TestType,
			RemoteSupport:   r.Item.RemoteSupport,
			AdaptiveSupport: r.Item.AdaptiveSupport,
			JobLevels:       r.Item.JobLevels,
			LongDescription: r.Item.LongDescription,
		}
	}
	return RecommendResponse{Results: items}
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	Assessments *int              `json:"assessments,omitempty"`
	Version     string            `json:"version,omitempty"`
}

func healthResponseFromReport(report healthuc.Report, version string) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	resp := HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version,
	}
	if report.Assessments >= 0 {
		n := report.Assessments
		resp.Assessments = &n
	}
	return resp
}

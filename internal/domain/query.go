package domain

import (
	"fmt"
	"strings"
)

// DefaultK is the result count used when the caller omits k. Filling it
// in is the transport boundary's job: an explicit k of zero or less is
// rejected by Validate, never defaulted.
const DefaultK = 6

// Preferences holds the optional metadata preferences of a request.
type Preferences struct {
	Remote   Preference
	Adaptive Preference
	TestType string // matched by case-sensitive substring containment
}

// QueryRequest is a single recommendation request.
type QueryRequest struct {
	Query              string
	K                  int
	RemotePreferred    Preference
	AdaptivePreferred  Preference
	TestTypePreference string
}

// Validate checks the request shape. Preferences are always valid: every
// preference field has a defined no-op default.
func (q *QueryRequest) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return fmt.Errorf("%w: query must not be empty", ErrInvalidRequest)
	}
	if q.K <= 0 {
		return fmt.Errorf("%w: k must be positive, got %d", ErrInvalidRequest, q.K)
	}
	return nil
}

// Preferences extracts the boost-relevant fields.
func (q *QueryRequest) Preferences() Preferences {
	return Preferences{
		Remote:   q.RemotePreferred,
		Adaptive: q.AdaptivePreferred,
		TestType: q.TestTypePreference,
	}
}

package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/SinglaKrishan/shl-assessment-recommendation-engine/internal/domain"
)

// Fixed additive boosts applied on top of the semantic score.
const (
	BoostRemote   = 0.05
	BoostAdaptive = 0.05
	BoostTestType = 0.10
)

// Engine reranks nearest-neighbor candidates by combining embedding
// similarity with metadata boosts. Pure computation, safe for concurrent use.
type Engine struct{}

// New creates a scoring engine.
func New() *Engine { return &Engine{} }

// Score converts ascending-distance candidates into a score-descending list.
//
// semantic = 1 - distance, assuming cosine distance in [0,2]. Distances
// outside that range produce scores outside [-1,1]; no clamping, by policy.
// Scores are rounded to 4 decimals before sorting so displayed scores and
// ranks always agree. The sort is stable, so equal scores keep the input
// order: the smaller original distance wins the tie.
func (e *Engine) Score(candidates []domain.Candidate, prefs domain.Preferences) []domain.ScoredResult {
	results := make([]domain.ScoredResult, len(candidates))
	for i, c := range candidates {
		score := 1 - c.Distance

		if remoteBoostApplies(prefs.Remote, c.Item.RemoteSupport) {
			score += BoostRemote
		}
		// Only Prefer boosts; an explicit Avoid has no effect. Intentional
		// asymmetry carried over from the source scoring rule.
		if prefs.Adaptive == domain.Prefer && c.Item.AdaptiveSupport == "Yes" {
			score += BoostAdaptive
		}
		if prefs.TestType != "" && strings.Contains(c.Item.TestType, prefs.TestType) {
			score += BoostTestType
		}

		results[i] = domain.ScoredResult{Score: round4(score), Item: c.Item}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func remoteBoostApplies(pref domain.Preference, remoteSupport string) bool {
	switch pref {
	case domain.Prefer:
		return remoteSupport == "Yes"
	case domain.Avoid:
		return remoteSupport == "No"
	default:
		return false
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

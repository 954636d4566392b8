package domain

// Candidate is a single nearest-neighbor hit from the vector index.
// Distance is the raw dissimilarity from the embedding space (0 = identical),
// never clamped here or downstream.
type Candidate struct {
	Distance float64
	Item     Item
}

// ScoredResult is a ranked recommendation. Transient: built per request,
// discarded after the response.
type ScoredResult struct {
	Rank  int
	Score float64
	Item  Item
}

package db

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string // hash fields to load alongside the distance
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit, ordered by ascending Distance.
// Distance is the raw metric value reported by the index (cosine distance
// for this service); conversion to a similarity score happens upstream.
type SearchEntry struct {
	Key      string
	Distance float64
	Fields   map[string]string
}

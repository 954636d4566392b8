package domain

import "errors"

var (
	// ErrInvalidRequest signals a malformed recommendation request.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrIndexUnavailable signals that the vector index backend is unreachable.
	ErrIndexUnavailable = errors.New("vector index unavailable")
	// ErrNotFound signals a missing catalog item.
	ErrNotFound = errors.New("not found")
)

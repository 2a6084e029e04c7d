// Package memory provides the long-term memory store for the dialogue
// engine: an append-only record log with query-time similarity search.
package memory

import "context"

// Record is one persisted memory entry. Records are append-only; no
// update or delete operation exists.
type Record struct {
	Text string            `json:"text"`
	Meta map[string]string `json:"meta"`
}

// Store persists memory records and retrieves the ones most similar to a
// query. Implementations must serialize writes so concurrent appends never
// lose records; a search may run concurrently with an unrelated append and
// is not required to observe it.
type Store interface {
	// Add durably appends one record.
	Add(ctx context.Context, text string, meta map[string]string) error
	// Search returns the stored texts most similar to the query, best
	// first, at most top-k of them. Empty store or empty query yields an
	// empty result.
	Search(ctx context.Context, query string) ([]string, error)
}

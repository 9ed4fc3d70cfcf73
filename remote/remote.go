package remote

import (
	"context"
	"errors"
)

// Store failure modes. Both are soft for callers: repositories respond with
// a local fallback or an outbox enqueue, never by failing the user-facing
// operation.
var (
	// ErrUnavailable covers network and service errors.
	ErrUnavailable = errors.New("remote store unavailable")
	// ErrNotFound means the addressed document does not exist.
	ErrNotFound = errors.New("document not found")
)

// Document is one record as the remote store sees it: a server-assigned id
// plus a flat field map.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is a networked collection store with server-assigned identifiers.
// Collections are keyed by entity type (waterIntakes, supplements, ...).
type Store interface {
	// Add stores a new document and returns its server-assigned id.
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Get returns one document's fields.
	Get(ctx context.Context, collection, id string) (map[string]any, error)

	// List returns every document in a collection. Callers filter and order
	// client-side; per-user collections stay small on a single device.
	List(ctx context.Context, collection string) ([]Document, error)

	// Update applies a partial field patch to an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document.
	Delete(ctx context.Context, collection, id string) error
}

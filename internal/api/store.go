package api

import (
	"context"
	"net/http"
	"net/url"
)

// Store is the CRUD surface for one entity collection. Each method issues
// exactly one HTTP request. Create and Update return the server's record,
// which callers must treat as the source of truth after a write.
type Store[T any] struct {
	client     *Client
	collection string
}

// NewStore creates a Store for the given collection path, e.g. "/api/goals".
func NewStore[T any](client *Client, collection string) *Store[T] {
	return &Store[T]{client: client, collection: collection}
}

// List fetches every record in the collection.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	var records []T
	if err := s.client.get(ctx, s.collection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create posts a new record and returns the server's stored form,
// including the assigned identifier.
func (s *Store[T]) Create(ctx context.Context, record T) (T, error) {
	var created T
	if err := s.client.do(ctx, http.MethodPost, s.collection, record, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update sends a partial-field update for one record. fields may be a map
// or a struct; only what it carries is changed server-side.
func (s *Store[T]) Update(ctx context.Context, id string, fields any) (T, error) {
	var updated T
	if err := s.client.do(ctx, http.MethodPut, s.recordPath(id), fields, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Remove deletes one record.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, s.recordPath(id), nil, nil)
}

func (s *Store[T]) recordPath(id string) string {
	return s.collection + "/" + url.PathEscape(id)
}

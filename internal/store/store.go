package store

import (
	"context"
	"sync"

	"asset-registry/internal/models"
	"asset-registry/internal/remote"
)

// API is the slice of the remote client the store needs.
type API interface {
	List(ctx context.Context) ([]models.Asset, error)
	Create(ctx context.Context, p *remote.Payload) (*models.Asset, error)
	Update(ctx context.Context, id string, p *remote.Payload) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
}

// Notifier receives the user-facing outcome of each store operation.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Store holds the process-wide in-memory asset collection. It is built once
// at startup and injected into the handlers.
//
// The mutex protects slice integrity only; it deliberately does not order
// overlapping operations. Two in-flight calls resolve last-response-wins,
// exactly like the client this replaces.
type Store struct {
	api      API
	notifier Notifier

	mu      sync.Mutex
	assets  []models.Asset
	loading bool
	err     string
}

func New(api API, notifier Notifier) *Store {
	return &Store{api: api, notifier: notifier}
}

// Fetch replaces the collection wholesale with the server's list, preserving
// server order.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	assets, err := s.api.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Error(ctx, "Failed to load assets: "+err.Error())
		return err
	}
	s.assets = assets
	s.err = ""
	s.mu.Unlock()

	s.notifier.Success(ctx, "Assets loaded successfully")
	return nil
}

// Create submits a new asset and appends the server's record to the end of
// the collection.
func (s *Store) Create(ctx context.Context, p *remote.Payload) error {
	asset, err := s.api.Create(ctx, p)
	if err != nil {
		s.notifier.Error(ctx, "Failed to add asset: "+err.Error())
		return err
	}

	s.mu.Lock()
	s.assets = append(s.assets, *asset)
	s.mu.Unlock()

	s.notifier.Success(ctx, "Asset added successfully")
	return nil
}

// Update replaces the entry whose id matches the server's record, keeping
// its position. An id with no local match is deliberately left alone,
// matching the client this replaces; the next Fetch resynchronizes.
func (s *Store) Update(ctx context.Context, id string, p *remote.Payload) error {
	asset, err := s.api.Update(ctx, id, p)
	if err != nil {
		s.notifier.Error(ctx, "Failed to update asset: "+err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.assets {
		if s.assets[i].ID == asset.ID {
			s.assets[i] = *asset
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success(ctx, "Asset updated successfully")
	return nil
}

// Delete removes the matching entry by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.notifier.Error(ctx, "Failed to delete asset: "+err.Error())
		return err
	}

	s.mu.Lock()
	kept := s.assets[:0]
	for _, a := range s.assets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.assets = kept
	s.mu.Unlock()

	s.notifier.Success(ctx, "Asset deleted successfully")
	return nil
}

// Assets returns a snapshot copy of the collection in store order.
func (s *Store) Assets() []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Get finds an asset by id in the current collection.
func (s *Store) Get(id string) (models.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message of the last failed fetch, empty after a success.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

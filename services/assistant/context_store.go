// File: services/assistant/context_store.go
package assistant

import (
	"context"
	"sync"

	"skyline/models"
)

// ContextStore keeps per-session slot state for the two flows. The search
// and booking namespaces are fully independent: a session may hold one of
// each without either aliasing the other's storage.
//
// A missing context is not an error; Search and Booking return the zero
// value (and nil *BookingContext) so flows can treat absence as "fresh".
type ContextStore interface {
	Search(ctx context.Context, sessionID string) (models.SearchContext, error)
	PutSearch(ctx context.Context, sessionID string, sc models.SearchContext) error
	ClearSearch(ctx context.Context, sessionID string) error

	Booking(ctx context.Context, sessionID string) (*models.BookingContext, error)
	PutBooking(ctx context.Context, sessionID string, bc *models.BookingContext) error
	ClearBooking(ctx context.Context, sessionID string) error
}

// MemoryContextStore is the in-process ContextStore. Contexts live until the
// owning flow clears them; there is no TTL here (the Redis store adds one).
type MemoryContextStore struct {
	mu       sync.RWMutex
	searches map[string]models.SearchContext
	bookings map[string]*models.BookingContext
}

// NewMemoryContextStore creates an empty in-memory store.
func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{
		searches: make(map[string]models.SearchContext),
		bookings: make(map[string]*models.BookingContext),
	}
}

func (s *MemoryContextStore) Search(_ context.Context, sessionID string) (models.SearchContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searches[sessionID], nil
}

func (s *MemoryContextStore) PutSearch(_ context.Context, sessionID string, sc models.SearchContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[sessionID] = sc
	return nil
}

func (s *MemoryContextStore) ClearSearch(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.searches, sessionID)
	return nil
}

// cloneBooking copies the context including the Options backing array and the
// Chosen snapshot, so a loaded context never aliases stored state.
func cloneBooking(bc *models.BookingContext) *models.BookingContext {
	cp := *bc
	if bc.Options != nil {
		cp.Options = append([]models.FlightOption(nil), bc.Options...)
	}
	if bc.Chosen != nil {
		chosen := *bc.Chosen
		cp.Chosen = &chosen
	}
	return &cp
}

func (s *MemoryContextStore) Booking(_ context.Context, sessionID string) (*models.BookingContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bc := s.bookings[sessionID]
	if bc == nil {
		return nil, nil
	}
	return cloneBooking(bc), nil
}

func (s *MemoryContextStore) PutBooking(_ context.Context, sessionID string, bc *models.BookingContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[sessionID] = cloneBooking(bc)
	return nil
}

func (s *MemoryContextStore) ClearBooking(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, sessionID)
	return nil
}

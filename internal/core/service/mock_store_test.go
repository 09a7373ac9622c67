package service

import (
	"context"
	"sync"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

// mockTicketStore is an in-memory store with real compare-and-swap
// semantics plus hooks for injecting conflicts and failures.
type mockTicketStore struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket

	fetchCalls int
	writeCalls int

	// forceConflicts rejects this many conditional writes before
	// letting one through.
	forceConflicts int

	fetchErr error
	writeErr error
}

func newMockStore(tickets ...domain.Ticket) *mockTicketStore {
	m := &mockTicketStore{tickets: make(map[string]*domain.Ticket)}
	for i := range tickets {
		t := tickets[i]
		m.tickets[t.ID] = &t
	}
	return m
}

func (m *mockTicketStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	t, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTicketStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeCalls++
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	if m.forceConflicts > 0 {
		m.forceConflicts--
		return nil, domain.ErrVersionConflict
	}
	t, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if t.Version != expectedVersion {
		return nil, domain.ErrVersionConflict
	}
	t.QuantityAvailable = newAvailable
	t.QuantitySold = newSold
	t.Version++
	cp := *t
	return &cp, nil
}

func (m *mockTicketStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Type != nil {
		t.Type = *upd.Type
	}
	if upd.Price != nil {
		t.Price = *upd.Price
	}
	t.Version++
	cp := *t
	return &cp, nil
}

func (m *mockTicketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTicketStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := t
	m.tickets[t.ID] = &cp
	out := t
	return &out, nil
}

func (m *mockTicketStore) get(id string) domain.Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.tickets[id]
}

package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

var errDuplicateID = errors.New("duplicate ticket id")

// MemoryStore keeps tickets in process memory. The backing map has no
// native compare-and-swap, so every write to a given id runs inside a
// per-id critical section; the lock spans only the store's own
// read-modify-write, never a caller's whole transaction.
type MemoryStore struct {
	mu      sync.RWMutex
	tickets map[string]*domain.Ticket
	locks   map[string]*sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tickets: make(map[string]*domain.Ticket),
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *MemoryStore) idLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *MemoryStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *MemoryStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if t.Version != expectedVersion {
		return nil, domain.ErrVersionConflict
	}

	t.QuantityAvailable = newAvailable
	t.QuantitySold = newSold
	t.Version++
	t.UpdatedAt = time.Now()

	cp := *t
	return &cp, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	lock := s.idLock(id)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
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
	t.UpdatedAt = time.Now()

	cp := *t
	return &cp, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, exists := s.tickets[t.ID]; exists {
		return nil, domain.StorageError("create", errDuplicateID)
	}
	now := time.Now()
	t.Version = 0
	t.CreatedAt = now
	t.UpdatedAt = now

	cp := t
	s.tickets[t.ID] = &cp
	out := t
	return &out, nil
}

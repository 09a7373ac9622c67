package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

// ctxCheckStore hands every context it receives to check before
// answering, so tests can look at it while the call is still in flight.
type ctxCheckStore struct {
	check func(ctx context.Context)
}

func (s *ctxCheckStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	s.check(ctx)
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError("fetch ticket", err)
	}
	return &domain.Ticket{ID: id}, nil
}

func (s *ctxCheckStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	s.check(ctx)
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError("conditional write", err)
	}
	return &domain.Ticket{ID: id, QuantityAvailable: newAvailable, QuantitySold: newSold, Version: expectedVersion + 1}, nil
}

func (s *ctxCheckStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	s.check(ctx)
	if err := ctx.Err(); err != nil {
		return nil, domain.StorageError("update ticket", err)
	}
	return &domain.Ticket{ID: id}, nil
}

func (s *ctxCheckStore) List(ctx context.Context) ([]domain.Ticket, error) {
	s.check(ctx)
	return nil, nil
}

func (s *ctxCheckStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	s.check(ctx)
	return &t, nil
}

// A write that is already submitted must run to a definitive outcome:
// cancelling the caller's context must not abort it, while the per-call
// deadline still applies.
func TestTimeoutStore_WriteSurvivesCallerCancel(t *testing.T) {
	var sawCancel error
	var hadDeadline bool
	inner := &ctxCheckStore{check: func(ctx context.Context) {
		sawCancel = ctx.Err()
		_, hadDeadline = ctx.Deadline()
	}}
	s := WithTimeout(inner, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.ConditionalWrite(ctx, "t-1", 0, 4, 1); err != nil {
		t.Fatalf("conditional write after caller cancel: %v", err)
	}
	if sawCancel != nil {
		t.Errorf("write context inherited the caller's cancellation: %v", sawCancel)
	}
	if !hadDeadline {
		t.Error("write context carries no deadline")
	}

	tier := "vip"
	if _, err := s.Update(ctx, "t-1", domain.TicketUpdate{Type: &tier}); err != nil {
		t.Fatalf("update after caller cancel: %v", err)
	}
	if sawCancel != nil {
		t.Errorf("update context inherited the caller's cancellation: %v", sawCancel)
	}
	if !hadDeadline {
		t.Error("update context carries no deadline")
	}
}

func TestTimeoutStore_ReadsInheritCallerCancel(t *testing.T) {
	var sawCancel error
	inner := &ctxCheckStore{check: func(ctx context.Context) {
		sawCancel = ctx.Err()
	}}
	s := WithTimeout(inner, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Fetch(ctx, "t-1"); err == nil {
		t.Fatal("expected fetch to fail once the caller cancelled")
	}
	if sawCancel == nil {
		t.Error("fetch context should be cancelled with the caller")
	}
}

func TestTimeoutStore_AppliesDeadline(t *testing.T) {
	var deadline time.Time
	var hadDeadline bool
	inner := &ctxCheckStore{check: func(ctx context.Context) {
		deadline, hadDeadline = ctx.Deadline()
	}}
	s := WithTimeout(inner, 50*time.Millisecond)

	if _, err := s.Fetch(context.Background(), "t-1"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !hadDeadline {
		t.Fatal("expected a deadline on the store call")
	}
	if until := time.Until(deadline); until > 50*time.Millisecond {
		t.Errorf("deadline too far out: %v", until)
	}
}

func TestWithTimeout_DefaultTimeout(t *testing.T) {
	var hadDeadline bool
	inner := &ctxCheckStore{check: func(ctx context.Context) {
		_, hadDeadline = ctx.Deadline()
	}}
	s := WithTimeout(inner, 0)

	if _, err := s.Fetch(context.Background(), "t-1"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !hadDeadline {
		t.Error("zero timeout should fall back to the default deadline")
	}
}

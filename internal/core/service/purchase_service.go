package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/port"
)

const (
	// DefaultMaxRetries bounds how many times a purchase re-reads and
	// re-submits after losing a version race.
	DefaultMaxRetries = 4

	backoffBase = 5 * time.Millisecond
	backoffCap  = 100 * time.Millisecond
)

// PurchaseService coordinates the read-validate-conditionally-write
// purchase transaction against the ticket store. Concurrent purchases
// against the same ticket never drive the available count negative and
// never lose an update: conflicts are detected at commit time via the
// record version and resolved by re-reading and retrying.
type PurchaseService struct {
	store      port.TicketStore
	validator  *Validator
	maxRetries int
	log        zerolog.Logger
}

func NewPurchaseService(store port.TicketStore, validator *Validator, maxRetries int, log zerolog.Logger) *PurchaseService {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &PurchaseService{
		store:      store,
		validator:  validator,
		maxRetries: maxRetries,
		log:        log,
	}
}

// Purchase attempts to buy req.Quantity units of req.TicketID.
//
// Terminal failures: *domain.ValidationError, domain.ErrNotFound,
// *domain.InsufficientStockError, domain.ErrStorageUnavailable. None of
// them are retried here. domain.ErrConflict is returned only once the
// retry budget is spent losing version races.
func (s *PurchaseService) Purchase(ctx context.Context, req domain.PurchaseRequest) (*domain.Receipt, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoffWithJitter(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		ticket, err := s.store.Fetch(ctx, req.TicketID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("fetch ticket: %w", err)
		}

		if ticket.QuantityAvailable < req.Quantity {
			return nil, &domain.InsufficientStockError{
				TicketID:  req.TicketID,
				Available: ticket.QuantityAvailable,
				Requested: req.Quantity,
			}
		}

		newAvailable := ticket.QuantityAvailable - req.Quantity
		newSold := ticket.QuantitySold + req.Quantity

		committed, err := s.store.ConditionalWrite(ctx, req.TicketID, ticket.Version, newAvailable, newSold)
		if err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				s.log.Debug().
					Str("ticket_id", req.TicketID).
					Int64("observed_version", ticket.Version).
					Int("attempt", attempt+1).
					Msg("version conflict, retrying purchase")
				continue
			}
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("commit purchase: %w", err)
		}

		receipt := buildReceipt(ticket, committed, req.Quantity)
		s.log.Info().
			Str("ticket_id", req.TicketID).
			Str("purchase_id", receipt.PurchaseID).
			Int("quantity", req.Quantity).
			Int("remaining", receipt.RemainingAvailable).
			Msg("purchase committed")
		return receipt, nil
	}

	s.log.Warn().
		Str("ticket_id", req.TicketID).
		Int("attempts", s.maxRetries).
		Msg("purchase retry budget exhausted")
	return nil, domain.ErrConflict
}

// buildReceipt prices the purchase off the state the transaction
// observed and reports the remaining stock the store actually committed.
func buildReceipt(observed, committed *domain.Ticket, quantity int) *domain.Receipt {
	total := observed.Price.Mul(decimal.NewFromInt(int64(quantity)))
	return &domain.Receipt{
		PurchaseID:         uuid.NewString(),
		TicketID:           observed.ID,
		TicketType:         observed.Type,
		QuantityPurchased:  quantity,
		UnitPrice:          observed.Price,
		TotalAmount:        total,
		RemainingAvailable: committed.QuantityAvailable,
	}
}

// backoffWithJitter doubles from backoffBase per attempt, capped at
// backoffCap, and smears the result by ±50% so colliding buyers fall
// out of lockstep.
func backoffWithJitter(attempt int) time.Duration {
	base := backoffBase << (attempt - 1)
	if base > backoffCap || base <= 0 {
		base = backoffCap
	}
	jitter := time.Duration(rand.Int63n(int64(base)))
	return base/2 + jitter
}

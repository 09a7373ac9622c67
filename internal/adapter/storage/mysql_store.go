package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

// MySQLStore persists tickets in MySQL. The conditional write relies on
// the version guard in the UPDATE's WHERE clause: zero rows affected
// means somebody else committed first.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

const ticketColumns = `id, type, price, quantity_available, quantity_sold, version, created_at, updated_at`

func scanTicket(row *sql.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(&t.ID, &t.Type, &t.Price, &t.QuantityAvailable, &t.QuantitySold,
		&t.Version, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.StorageError("scan ticket", err)
	}
	return &t, nil
}

func (m *MySQLStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	row := m.db.QueryRowContext(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE id = ?`, id)
	return scanTicket(row)
}

func (m *MySQLStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.StorageError("conditional write", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE tickets
		SET quantity_available = ?, quantity_sold = ?, version = version + 1, updated_at = NOW()
		WHERE id = ? AND version = ?`,
		newAvailable, newSold, id, expectedVersion,
	)
	if err != nil {
		return nil, domain.StorageError("conditional write", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, domain.StorageError("conditional write", err)
	}
	if rows == 0 {
		// Tell a lost race apart from a missing row.
		_, err := scanTicket(tx.QueryRowContext(ctx, `
			SELECT `+ticketColumns+`
			FROM tickets WHERE id = ?`, id))
		return nil, writeMissOutcome(err)
	}

	// The UPDATE's row lock holds until commit, so this read returns the
	// state this write produced, not a later concurrent commit.
	t, err := scanTicket(tx.QueryRowContext(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, domain.StorageError("conditional write", err)
	}
	return t, nil
}

// writeMissOutcome classifies a zero-row conditional write from the
// follow-up read: a missing row stays ErrNotFound, a failing read keeps
// its storage error, and only a row that is still there was a lost race.
func writeMissOutcome(fetchErr error) error {
	switch {
	case errors.Is(fetchErr, domain.ErrNotFound):
		return domain.ErrNotFound
	case fetchErr != nil:
		return fetchErr
	default:
		return domain.ErrVersionConflict
	}
}

func (m *MySQLStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	query := `UPDATE tickets SET version = version + 1, updated_at = NOW()`
	args := []any{}
	if upd.Type != nil {
		query += `, type = ?`
		args = append(args, *upd.Type)
	}
	if upd.Price != nil {
		query += `, price = ?`
		args = append(args, upd.Price.String())
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	result, err := m.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError("update ticket", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, domain.StorageError("update ticket", err)
	}
	if rows == 0 {
		// Version always bumps, so zero rows means no such row. Keep a
		// failing read's own error rather than masking it.
		if _, err := m.Fetch(ctx, id); err != nil {
			return nil, err
		}
	}

	return m.Fetch(ctx, id)
}

func (m *MySQLStore) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT `+ticketColumns+`
		FROM tickets ORDER BY id`)
	if err != nil {
		return nil, domain.StorageError("list tickets", err)
	}
	defer rows.Close()

	var out []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Type, &t.Price, &t.QuantityAvailable, &t.QuantitySold,
			&t.Version, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, domain.StorageError("scan ticket", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("list tickets", err)
	}
	return out, nil
}

func (m *MySQLStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO tickets (id, type, price, quantity_available, quantity_sold, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		t.ID, t.Type, t.Price.String(), t.QuantityAvailable, t.QuantitySold, now, now,
	)
	if err != nil {
		return nil, domain.StorageError("create ticket", err)
	}
	return m.Fetch(ctx, t.ID)
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/tickets?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tickets (
			id VARCHAR(64) PRIMARY KEY,
			type VARCHAR(64) NOT NULL,
			price DECIMAL(12,2) NOT NULL,
			quantity_available INT NOT NULL,
			quantity_sold INT NOT NULL,
			version BIGINT NOT NULL DEFAULT 0,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	return db
}

func seedMySQL(t *testing.T, store *MySQLStore, db *sql.DB, id string, available int) *domain.Ticket {
	t.Helper()
	ctx := context.Background()

	db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	created, err := store.Create(ctx, domain.Ticket{
		ID:                id,
		Type:              "general",
		Price:             decimal.NewFromFloat(25.50),
		QuantityAvailable: available,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return created
}

func TestMySQLStore_FetchRoundTrip(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()
	store := NewMySQLStore(db)

	created := seedMySQL(t, store, db, "mysql-test-fetch", 100)
	defer db.Exec(`DELETE FROM tickets WHERE id = ?`, created.ID)

	fetched, err := store.Fetch(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fetched.QuantityAvailable != 100 || fetched.QuantitySold != 0 {
		t.Errorf("unexpected quantities: %+v", fetched)
	}
	if !fetched.Price.Equal(decimal.NewFromFloat(25.50)) {
		t.Errorf("price round trip failed: %s", fetched.Price)
	}
	if fetched.Version != 0 {
		t.Errorf("expected version 0, got %d", fetched.Version)
	}
}

func TestMySQLStore_FetchUnknown(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()
	store := NewMySQLStore(db)

	_, err := store.Fetch(context.Background(), "mysql-test-missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMySQLStore_ConditionalWrite(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()
	store := NewMySQLStore(db)

	created := seedMySQL(t, store, db, "mysql-test-cas", 10)
	defer db.Exec(`DELETE FROM tickets WHERE id = ?`, created.ID)

	ctx := context.Background()
	committed, err := store.ConditionalWrite(ctx, created.ID, created.Version, 9, 1)
	if err != nil {
		t.Fatalf("conditional write: %v", err)
	}
	if committed.QuantityAvailable != 9 || committed.QuantitySold != 1 {
		t.Errorf("unexpected committed state: %+v", committed)
	}
	if committed.Version != created.Version+1 {
		t.Errorf("expected version bump, got %d", committed.Version)
	}

	// Writing with the old version again must be rejected untouched.
	_, err = store.ConditionalWrite(ctx, created.ID, created.Version, 8, 2)
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Errorf("expected ErrVersionConflict, got %v", err)
	}
	current, _ := store.Fetch(ctx, created.ID)
	if current.QuantityAvailable != 9 {
		t.Errorf("state changed after rejected write: %+v", current)
	}
}

func TestMySQLStore_ConditionalWriteUnknown(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()
	store := NewMySQLStore(db)

	_, err := store.ConditionalWrite(context.Background(), "mysql-test-missing", 0, 1, 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMySQLStore_Update(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()
	store := NewMySQLStore(db)

	created := seedMySQL(t, store, db, "mysql-test-update", 10)
	defer db.Exec(`DELETE FROM tickets WHERE id = ?`, created.ID)

	tier := "vip"
	price := decimal.NewFromFloat(99.99)
	updated, err := store.Update(context.Background(), created.ID, domain.TicketUpdate{Type: &tier, Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != "vip" || !updated.Price.Equal(price) {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.QuantityAvailable != 10 {
		t.Errorf("update touched quantities: %+v", updated)
	}
	if updated.Version != created.Version+1 {
		t.Errorf("expected version bump on update, got %d", updated.Version)
	}
	if !updated.UpdatedAt.After(time.Time{}) {
		t.Error("expected updated_at to be set")
	}
}

// No database needed: classifies the follow-up read of a zero-row
// conditional write.
func TestWriteMissOutcome(t *testing.T) {
	if err := writeMissOutcome(domain.ErrNotFound); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing row: expected ErrNotFound, got %v", err)
	}

	outage := domain.StorageError("fetch ticket", errors.New("connection refused"))
	if err := writeMissOutcome(outage); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Errorf("failing read: expected the storage error back, got %v", err)
	}
	if err := writeMissOutcome(outage); errors.Is(err, domain.ErrVersionConflict) {
		t.Error("failing read must not be reported as a version conflict")
	}

	if err := writeMissOutcome(nil); !errors.Is(err, domain.ErrVersionConflict) {
		t.Errorf("row still present: expected ErrVersionConflict, got %v", err)
	}
}

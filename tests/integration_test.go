package tests

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/adapter/storage"
	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/core/service"
	"github.com/rl1809/ticket-inventory/internal/port"
)

// backends returns every store the environment can reach. Memory always
// runs; MySQL and Redis join in when their servers answer a ping.
func backends(t *testing.T) map[string]port.TicketStore {
	t.Helper()

	stores := map[string]port.TicketStore{
		"memory": storage.NewMemoryStore(),
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err == nil {
		t.Cleanup(func() { rdb.Close() })
		stores["redis"] = storage.WithTimeout(storage.NewRedisStore(rdb), 3*time.Second)
	} else {
		t.Logf("Redis not available, skipping redis backend: %v", err)
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/tickets?parseTime=true"
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err == nil && db.Ping() == nil {
		t.Cleanup(func() { db.Close() })
		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS tickets (
				id VARCHAR(64) PRIMARY KEY,
				type VARCHAR(255) NOT NULL,
				price DECIMAL(12,2) NOT NULL,
				quantity_available INT NOT NULL,
				quantity_sold INT NOT NULL,
				version BIGINT NOT NULL,
				created_at DATETIME(6) NOT NULL,
				updated_at DATETIME(6) NOT NULL
			)`); err != nil {
			t.Fatalf("create table: %v", err)
		}
		stores["mysql"] = storage.WithTimeout(storage.NewMySQLStore(db), 3*time.Second)
	} else {
		t.Logf("MySQL not available, skipping mysql backend")
	}

	return stores
}

func newServices(store port.TicketStore) (*service.PurchaseService, *service.TicketService) {
	validator := service.NewValidator(service.DefaultMaxPurchaseQuantity)
	purchases := service.NewPurchaseService(store, validator, service.DefaultMaxRetries, zerolog.Nop())
	return purchases, service.NewTicketService(store)
}

func TestIntegration_FullPurchaseFlow(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			purchases, tickets := newServices(store)

			id := "flow-" + uuid.NewString()
			_, err := store.Create(ctx, domain.Ticket{
				ID:                id,
				Type:              "vip",
				Price:             decimal.NewFromFloat(150.0),
				QuantityAvailable: 10,
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			avail, err := tickets.CheckAvailability(ctx, id)
			if err != nil {
				t.Fatalf("availability: %v", err)
			}
			if !avail.Available || avail.AvailableQuantity != 10 {
				t.Fatalf("expected 10 available, got %+v", avail)
			}

			receipt, err := purchases.Purchase(ctx, domain.PurchaseRequest{TicketID: id, Quantity: 3})
			if err != nil {
				t.Fatalf("purchase: %v", err)
			}
			if receipt.QuantityPurchased != 3 {
				t.Errorf("expected quantity 3, got %d", receipt.QuantityPurchased)
			}
			if !receipt.TotalAmount.Equal(decimal.NewFromFloat(450.0)) {
				t.Errorf("expected total 450, got %s", receipt.TotalAmount)
			}
			if receipt.RemainingAvailable != 7 {
				t.Errorf("expected 7 remaining, got %d", receipt.RemainingAvailable)
			}

			// Price change must not touch quantities mid-sale.
			newPrice := decimal.NewFromFloat(200.0)
			view, err := tickets.UpdateTicket(ctx, id, domain.TicketUpdate{Price: &newPrice})
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if view.QuantityAvailable != 7 || view.QuantitySold != 3 {
				t.Errorf("update touched quantities: %+v", view)
			}

			receipt, err = purchases.Purchase(ctx, domain.PurchaseRequest{TicketID: id, Quantity: 1})
			if err != nil {
				t.Fatalf("purchase after update: %v", err)
			}
			if !receipt.UnitPrice.Equal(newPrice) {
				t.Errorf("expected unit price 200 after update, got %s", receipt.UnitPrice)
			}
		})
	}
}

func TestIntegration_ConcurrentPurchasesNoOversell(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id := "rush-" + uuid.NewString()
			initialStock := 10
			_, err := store.Create(ctx, domain.Ticket{
				ID:                id,
				Type:              "general",
				Price:             decimal.NewFromFloat(25.0),
				QuantityAvailable: initialStock,
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			validator := service.NewValidator(service.DefaultMaxPurchaseQuantity)
			purchases := service.NewPurchaseService(store, validator, 20, zerolog.Nop())

			var committed, rejected, failed atomic.Int32
			var wg sync.WaitGroup
			buyers := 30
			for i := 0; i < buyers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := purchases.Purchase(ctx, domain.PurchaseRequest{TicketID: id, Quantity: 1})
					var stockErr *domain.InsufficientStockError
					switch {
					case err == nil:
						committed.Add(1)
					case errors.As(err, &stockErr):
						rejected.Add(1)
					default:
						failed.Add(1)
					}
				}()
			}
			wg.Wait()

			if got := committed.Load(); got != int32(initialStock) {
				t.Errorf("expected %d committed purchases, got %d", initialStock, got)
			}
			if got := rejected.Load(); got != int32(buyers-initialStock) {
				t.Errorf("expected %d stock rejections, got %d", buyers-initialStock, got)
			}
			if got := failed.Load(); got != 0 {
				t.Errorf("expected no unexpected failures, got %d", got)
			}

			final, err := store.Fetch(ctx, id)
			if err != nil {
				t.Fatalf("fetch: %v", err)
			}
			if final.QuantityAvailable != 0 {
				t.Errorf("expected 0 available, got %d", final.QuantityAvailable)
			}
			if final.Capacity() != initialStock {
				t.Errorf("capacity drifted: available=%d sold=%d", final.QuantityAvailable, final.QuantitySold)
			}
		})
	}
}

func TestIntegration_PurchaseUnknownTicket(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			purchases, _ := newServices(store)
			_, err := purchases.Purchase(context.Background(), domain.PurchaseRequest{
				TicketID: "no-such-" + uuid.NewString(),
				Quantity: 1,
			})
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/adapter/storage"
	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/core/service"
	"github.com/rl1809/ticket-inventory/internal/port"
)

// Fires more concurrent single-unit purchases than there is stock and
// checks the engine sold exactly the initial stock, no more.
const (
	ticketID      = "stress-test-ticket"
	initialStock  = 20
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	store, cleanup := buildStore(ctx)
	defer cleanup()

	if _, err := store.Create(ctx, domain.Ticket{
		ID:                ticketID,
		Type:              "general",
		Price:             decimal.NewFromFloat(25.0),
		QuantityAvailable: initialStock,
	}); err != nil {
		log.Fatalf("failed to seed ticket: %v", err)
	}

	validator := service.NewValidator(service.DefaultMaxPurchaseQuantity)
	purchaseSvc := service.NewPurchaseService(store, validator, 10, zerolog.Nop())

	var successCount atomic.Int32
	var stockFailCount atomic.Int32
	var otherFailCount atomic.Int32
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := purchaseSvc.Purchase(ctx, domain.PurchaseRequest{
				TicketID: ticketID,
				Quantity: 1,
			})
			var stockErr *domain.InsufficientStockError
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.As(err, &stockErr):
				stockFailCount.Add(1)
			default:
				otherFailCount.Add(1)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	stockFail := stockFailCount.Load()
	otherFail := otherFailCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:       %d\n", initialStock)
	fmt.Printf("Total Requests:      %d\n", totalRequests)
	fmt.Printf("Committed:           %d\n", success)
	fmt.Printf("Insufficient Stock:  %d\n", stockFail)
	fmt.Printf("Other Failures:      %d\n", otherFail)
	fmt.Printf("Duration:            %v\n", elapsed)
	fmt.Println("==========================================")

	if success == initialStock && stockFail == totalRequests-initialStock && otherFail == 0 {
		fmt.Printf("PASS: exactly %d purchases committed, %d rejected\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: expected %d committed / %d rejected, got %d / %d (+%d other)\n",
			initialStock, totalRequests-initialStock, success, stockFail, otherFail)
	}

	final, err := store.Fetch(ctx, ticketID)
	if err != nil {
		log.Fatalf("failed to fetch final state: %v", err)
	}
	fmt.Printf("Final: available=%d sold=%d capacity=%d\n",
		final.QuantityAvailable, final.QuantitySold, final.Capacity())

	if final.QuantityAvailable == 0 && final.Capacity() == initialStock {
		fmt.Println("PASS: stock depleted, capacity invariant held")
	} else {
		fmt.Println("FAIL: final state violates the capacity invariant")
	}
}

// buildStore runs against Redis when REDIS_ADDR is set, in-memory
// otherwise so the tool works with no infrastructure at all.
func buildStore(ctx context.Context) (port.TicketStore, func()) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return storage.NewMemoryStore(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	// Clear previous run.
	rdb.Del(ctx, "ticket:"+ticketID)
	rdb.SRem(ctx, "tickets:index", ticketID)

	return storage.NewRedisStore(rdb), func() { rdb.Close() }
}

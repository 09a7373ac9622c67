package main

import (
	"context"
	"database/sql"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	"github.com/rl1809/ticket-inventory/internal/adapter/handler"
	"github.com/rl1809/ticket-inventory/internal/adapter/handler/pb"
	"github.com/rl1809/ticket-inventory/internal/adapter/storage"
	"github.com/rl1809/ticket-inventory/internal/config"
	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/core/service"
	"github.com/rl1809/ticket-inventory/internal/logger"
	"github.com/rl1809/ticket-inventory/internal/port"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Store.Backend).
		Msg("starting ticket inventory service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := buildStore(ctx, cfg, log)
	defer closeStore()

	validator := service.NewValidator(cfg.Purchase.MaxQuantity)
	purchaseSvc := service.NewPurchaseService(store, validator, cfg.Purchase.MaxRetries, log)
	ticketSvc := service.NewTicketService(store)

	if cfg.Purchase.SeedTickets != "" {
		seedTickets(ctx, store, cfg.Purchase.SeedTickets, log)
	}

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterTicketServiceServer(grpcServer, handler.NewGRPCHandler(purchaseSvc, ticketSvc))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPC.Addr).Msg("grpc listen")
	}
	go func() {
		log.Info().Str("addr", cfg.GRPC.Addr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	// HTTP server
	mux := http.NewServeMux()
	handler.NewHTTPHandler(purchaseSvc, ticketSvc).Register(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: mux,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown")
	}
	grpcServer.GracefulStop()

	log.Info().Msg("stopped")
}

// buildStore picks the configured backend and wraps it with the
// per-call timeout guard.
func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (port.TicketStore, func()) {
	switch cfg.Store.Backend {
	case "mysql":
		db, err := sql.Open("mysql", cfg.Store.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("open mysql")
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping mysql")
		}
		log.Info().Msg("connected to mysql")
		return storage.WithTimeout(storage.NewMySQLStore(db), cfg.Store.Timeout), func() { db.Close() }

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("ping redis")
		}
		log.Info().Msg("connected to redis")
		return storage.WithTimeout(storage.NewRedisStore(rdb), cfg.Store.Timeout), func() { rdb.Close() }

	case "memory":
		log.Warn().Msg("using in-memory store, state is not durable")
		return storage.NewMemoryStore(), func() {}

	default:
		log.Fatal().Str("backend", cfg.Store.Backend).Msg("unknown store backend")
		return nil, nil
	}
}

// seedTickets creates records from an id:type:price:quantity list.
func seedTickets(ctx context.Context, store port.TicketStore, list string, log zerolog.Logger) {
	for _, entry := range strings.Split(list, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 4 {
			log.Warn().Str("entry", entry).Msg("skipping malformed seed entry")
			continue
		}
		price, err := decimal.NewFromString(parts[2])
		if err != nil {
			log.Warn().Str("entry", entry).Msg("skipping seed entry with bad price")
			continue
		}
		qty, err := strconv.Atoi(parts[3])
		if err != nil || qty < 0 {
			log.Warn().Str("entry", entry).Msg("skipping seed entry with bad quantity")
			continue
		}

		t, err := store.Create(ctx, domain.Ticket{
			ID:                parts[0],
			Type:              parts[1],
			Price:             price,
			QuantityAvailable: qty,
		})
		if err != nil {
			log.Warn().Err(err).Str("id", parts[0]).Msg("seed ticket failed")
			continue
		}
		log.Info().Str("id", t.ID).Int("quantity", t.QuantityAvailable).Msg("seeded ticket")
	}
}

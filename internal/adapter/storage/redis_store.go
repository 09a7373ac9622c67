package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

const (
	ticketKeyPrefix = "ticket:"
	ticketIndexKey  = "tickets:index"

	casMissing  = -1
	casConflict = -2
)

// conditionalWriteScript is the compare-and-swap primitive: commit the
// new counters only while the stored version still matches the one the
// caller observed. Runs atomically inside Redis and returns the hash it
// committed, so the caller never sees a later concurrent write instead.
var conditionalWriteScript = redis.NewScript(`
local key = KEYS[1]
local expected = tonumber(ARGV[1])

if redis.call('EXISTS', key) == 0 then
	return -1
end

local version = tonumber(redis.call('HGET', key, 'version'))
if version ~= expected then
	return -2
end

redis.call('HSET', key,
	'quantity_available', ARGV[2],
	'quantity_sold', ARGV[3],
	'version', version + 1,
	'updated_at', ARGV[4])
return redis.call('HGETALL', key)
`)

// updateFieldsScript rewrites non-quantity fields, bumps the version and
// returns the committed hash. ARGV[1] is the new updated_at; the rest
// are field/value pairs.
var updateFieldsScript = redis.NewScript(`
local key = KEYS[1]

if redis.call('EXISTS', key) == 0 then
	return -1
end

for i = 2, #ARGV, 2 do
	redis.call('HSET', key, ARGV[i], ARGV[i + 1])
end
redis.call('HINCRBY', key, 'version', 1)
redis.call('HSET', key, 'updated_at', ARGV[1])
return redis.call('HGETALL', key)
`)

// RedisStore persists tickets as Redis hashes, one per id, with a set
// index for listing.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func ticketKey(id string) string {
	return ticketKeyPrefix + id
}

func (r *RedisStore) Fetch(ctx context.Context, id string) (*domain.Ticket, error) {
	fields, err := r.client.HGetAll(ctx, ticketKey(id)).Result()
	if err != nil {
		return nil, domain.StorageError("fetch ticket", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}
	return ticketFromHash(id, fields)
}

func (r *RedisStore) ConditionalWrite(ctx context.Context, id string, expectedVersion int64, newAvailable, newSold int) (*domain.Ticket, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	result, err := conditionalWriteScript.Run(ctx, r.client,
		[]string{ticketKey(id)},
		expectedVersion, newAvailable, newSold, now,
	).Result()
	if err != nil {
		return nil, domain.StorageError("conditional write", err)
	}
	switch v := result.(type) {
	case int64:
		switch v {
		case casMissing:
			return nil, domain.ErrNotFound
		case casConflict:
			return nil, domain.ErrVersionConflict
		}
		return nil, domain.StorageError("conditional write", fmt.Errorf("unexpected script reply %d", v))
	case []interface{}:
		return ticketFromReply(id, v)
	}
	return nil, domain.StorageError("conditional write", fmt.Errorf("unexpected script reply type %T", result))
}

func (r *RedisStore) Update(ctx context.Context, id string, upd domain.TicketUpdate) (*domain.Ticket, error) {
	args := []interface{}{time.Now().UTC().Format(time.RFC3339Nano)}
	if upd.Type != nil {
		args = append(args, "type", *upd.Type)
	}
	if upd.Price != nil {
		args = append(args, "price", upd.Price.String())
	}

	result, err := updateFieldsScript.Run(ctx, r.client, []string{ticketKey(id)}, args...).Result()
	if err != nil {
		return nil, domain.StorageError("update ticket", err)
	}
	switch v := result.(type) {
	case int64:
		if v == casMissing {
			return nil, domain.ErrNotFound
		}
		return nil, domain.StorageError("update ticket", fmt.Errorf("unexpected script reply %d", v))
	case []interface{}:
		return ticketFromReply(id, v)
	}
	return nil, domain.StorageError("update ticket", fmt.Errorf("unexpected script reply type %T", result))
}

func (r *RedisStore) List(ctx context.Context) ([]domain.Ticket, error) {
	ids, err := r.client.SMembers(ctx, ticketIndexKey).Result()
	if err != nil {
		return nil, domain.StorageError("list tickets", err)
	}

	sort.Strings(ids)
	out := make([]domain.Ticket, 0, len(ids))
	for _, id := range ids {
		t, err := r.Fetch(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *RedisStore) Create(ctx context.Context, t domain.Ticket) (*domain.Ticket, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, ticketKey(t.ID),
		"type", t.Type,
		"price", t.Price.String(),
		"quantity_available", t.QuantityAvailable,
		"quantity_sold", t.QuantitySold,
		"version", 0,
		"created_at", now.Format(time.RFC3339Nano),
		"updated_at", now.Format(time.RFC3339Nano),
	)
	pipe.SAdd(ctx, ticketIndexKey, t.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, domain.StorageError("create ticket", err)
	}

	return r.Fetch(ctx, t.ID)
}

// ticketFromReply decodes the flat field/value list an HGETALL inside a
// script returns.
func ticketFromReply(id string, reply []interface{}) (*domain.Ticket, error) {
	fields := make(map[string]string, len(reply)/2)
	for i := 0; i+1 < len(reply); i += 2 {
		k, kok := reply[i].(string)
		v, vok := reply[i+1].(string)
		if !kok || !vok {
			return nil, domain.StorageError("parse ticket", fmt.Errorf("unexpected hash reply element %T", reply[i]))
		}
		fields[k] = v
	}
	return ticketFromHash(id, fields)
}

func ticketFromHash(id string, fields map[string]string) (*domain.Ticket, error) {
	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return nil, domain.StorageError("parse price", err)
	}
	available, _ := strconv.Atoi(fields["quantity_available"])
	sold, _ := strconv.Atoi(fields["quantity_sold"])
	version, _ := strconv.ParseInt(fields["version"], 10, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, fields["created_at"])
	updatedAt, _ := time.Parse(time.RFC3339Nano, fields["updated_at"])

	return &domain.Ticket{
		ID:                id,
		Type:              fields["type"],
		Price:             price,
		QuantityAvailable: available,
		QuantitySold:      sold,
		Version:           version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}

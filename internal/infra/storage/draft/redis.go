package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
)

// RedisRepository хранит черновики в redis: drafts:<key> -> JSON
type RedisRepository struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisRepository создает репозиторий черновиков в redis.
// ttl = 0 - ключи без срока жизни
func NewRedisRepository(client redis.Cmdable, prefix string, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get возвращает сохраненный черновик
func (r *RedisRepository) Get(ctx context.Context, key string) (*domain.BookingDraft, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - redis get %s: %v", ErrExecQuery, key, err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal %s: %v", ErrDecode, key, err)
	}

	return &draft, nil
}

// Save перезаписывает черновик целиком одной командой SET
func (r *RedisRepository) Save(ctx context.Context, key string, draft domain.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal %s: %v", ErrEncode, key, err)
	}

	if err := r.client.Set(ctx, r.prefix+key, string(payload), r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set %s: %v", ErrExecQuery, key, err)
	}

	return nil
}

// Delete удаляет черновик; отсутствие ключа не является ошибкой
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - redis del %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

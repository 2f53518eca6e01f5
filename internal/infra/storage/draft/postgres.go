package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HallBooking/internal/domain"
	"github.com/m04kA/SMC-HallBooking/pkg/psqlbuilder"
)

const tableDrafts = "booking_drafts"

// PostgresRepository хранит черновики в таблице booking_drafts (payload jsonb)
type PostgresRepository struct {
	db  DBExecutor
	ttl time.Duration
	now func() time.Time
}

// NewPostgresRepository создает репозиторий черновиков в postgres.
// Черновики старше ttl считаются отсутствующими (ttl = 0 - без ограничения)
func NewPostgresRepository(db DBExecutor, ttl time.Duration) *PostgresRepository {
	return &PostgresRepository{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// Get возвращает сохраненный черновик
func (r *PostgresRepository) Get(ctx context.Context, key string) (*domain.BookingDraft, error) {
	where := squirrel.And{squirrel.Eq{"key": key}}
	if r.ttl > 0 {
		where = append(where, squirrel.Gt{"updated_at": r.now().Add(-r.ttl)})
	}

	query, args, err := psqlbuilder.Select("payload").
		From(tableDrafts).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan draft %s: %v", ErrScanRow, key, err)
	}

	var draft domain.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal %s: %v", ErrDecode, key, err)
	}

	return &draft, nil
}

// Save сохраняет черновик (upsert по ключу)
func (r *PostgresRepository) Save(ctx context.Context, key string, draft domain.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal %s: %v", ErrEncode, key, err)
	}

	query, args, err := psqlbuilder.Insert(tableDrafts).
		Columns("key", "payload", "updated_at").
		Values(key, payload, r.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert %s: %v", ErrExecQuery, key, err)
	}

	return nil
}

// Delete удаляет черновик; отсутствие строки не является ошибкой
func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(tableDrafts).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete %s: %v", ErrExecQuery, key, err)
	}

	return nil
}

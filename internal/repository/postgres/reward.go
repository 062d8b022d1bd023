package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/feedshop/order-settlement/internal/domain"
)

// RewardRepository реализует domain.RewardRepository
type RewardRepository struct {
	db DBTX
}

// NewRewardRepository создает новый RewardRepository
func NewRewardRepository(db DBTX) *RewardRepository {
	return &RewardRepository{db: db}
}

const rewardColumns = `id, user_id, reward_type, points, related_type, related_id,
		description, status, retry_count, error_message, claimed_at, processed_at, created_at`

// CreateEvent создает PENDING событие вознаграждения.
// Повторное событие для того же источника отклоняется уникальным
// ограничением (related_type, related_id, reward_type).
func (r *RewardRepository) CreateEvent(ctx context.Context, event *domain.RewardEvent) (*domain.RewardEvent, error) {
	created := *event
	created.Status = domain.RewardStatusPending

	err := r.db.QueryRow(ctx,
		`INSERT INTO reward_events (user_id, reward_type, points, related_type, related_id, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, status, retry_count, created_at`,
		event.UserID, event.RewardType, event.Points, event.RelatedType, event.RelatedID, event.Description,
	).Scan(&created.ID, &created.Status, &created.RetryCount, &created.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateReward
		}
		return nil, fmt.Errorf("repository: failed to create reward event for user %d: %w", event.UserID, err)
	}

	return &created, nil
}

// GetEventByID получает событие по идентификатору
func (r *RewardRepository) GetEventByID(ctx context.Context, id int64) (*domain.RewardEvent, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+rewardColumns+`
		 FROM reward_events
		 WHERE id = $1`,
		id,
	)

	event, err := scanRewardEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("repository: failed to get reward event %d: %w", id, err)
	}

	return event, nil
}

// FindBySource находит событие по источнику
func (r *RewardRepository) FindBySource(ctx context.Context, relatedType domain.RelatedType, relatedID int64, rewardType domain.RewardType) (*domain.RewardEvent, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+rewardColumns+`
		 FROM reward_events
		 WHERE related_type = $1 AND related_id = $2 AND reward_type = $3`,
		relatedType, relatedID, rewardType,
	)

	event, err := scanRewardEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, fmt.Errorf("repository: failed to find reward event: %w", err)
	}

	return event, nil
}

// ListDue возвращает события к обработке в порядке создания:
// PENDING, зависшие PROCESSING и FAILED с неисчерпанными попытками
func (r *RewardRepository) ListDue(ctx context.Context, maxRetries int, staleBefore time.Time, limit int) ([]*domain.RewardEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+rewardColumns+`
		 FROM reward_events
		 WHERE status = 'PENDING'
		    OR (status = 'PROCESSING' AND claimed_at <= $1)
		    OR (status = 'FAILED' AND retry_count < $2)
		 ORDER BY created_at ASC, id ASC
		 LIMIT $3`,
		staleBefore, maxRetries, limit,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list due reward events: %w", err)
	}
	defer rows.Close()

	var events []*domain.RewardEvent
	for rows.Next() {
		event, err := scanRewardEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan reward event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating reward events: %w", err)
	}

	return events, nil
}

// ClaimEvent переводит событие в PROCESSING.
// Статус PROCESSING работает как мягкая блокировка: повторный захват
// возможен только после истечения staleBefore.
func (r *RewardRepository) ClaimEvent(ctx context.Context, id int64, staleBefore time.Time, maxRetries int) (bool, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE reward_events
		 SET status = 'PROCESSING', claimed_at = NOW()
		 WHERE id = $1
		   AND (status = 'PENDING'
		     OR (status = 'PROCESSING' AND claimed_at <= $2)
		     OR (status = 'FAILED' AND retry_count < $3))`,
		id, staleBefore, maxRetries,
	)

	if err != nil {
		return false, fmt.Errorf("repository: failed to claim reward event %d: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}

// MarkProcessed завершает обработку события. Из PROCESSED выхода нет.
func (r *RewardRepository) MarkProcessed(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE reward_events
		 SET status = 'PROCESSED', processed_at = NOW(), error_message = NULL
		 WHERE id = $1 AND status = 'PROCESSING'`,
		id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark reward event %d processed: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRewardNotFound
	}

	return nil
}

// MarkFailed фиксирует ошибку обработки и увеличивает счетчик попыток
func (r *RewardRepository) MarkFailed(ctx context.Context, id int64, message string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE reward_events
		 SET status = 'FAILED', retry_count = retry_count + 1, error_message = $2
		 WHERE id = $1 AND status = 'PROCESSING'`,
		id, message,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark reward event %d failed: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRewardNotFound
	}

	return nil
}

// ResetForRetry возвращает FAILED событие в PENDING и очищает ошибку
func (r *RewardRepository) ResetForRetry(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE reward_events
		 SET status = 'PENDING', error_message = NULL, claimed_at = NULL
		 WHERE id = $1 AND status = 'FAILED'`,
		id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to reset reward event %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRewardNotFound
	}

	return nil
}

func scanRewardEvent(row pgx.Row) (*domain.RewardEvent, error) {
	event := &domain.RewardEvent{}
	err := row.Scan(
		&event.ID, &event.UserID, &event.RewardType, &event.Points,
		&event.RelatedType, &event.RelatedID, &event.Description,
		&event.Status, &event.RetryCount, &event.ErrorMessage,
		&event.ClaimedAt, &event.ProcessedAt, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

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

// LedgerRepository реализует domain.LedgerRepository.
// Журнал append-only: суммы записей неизменны, меняются только статусы.
// Остаток EARN-записи выводится из связанных строк потребления.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const entryColumns = `id, user_id, amount, type, status, source_type, source_ref, created_at, expires_at`

// remainingEarns выбирает ACTIVE EARN-записи пользователя с ненулевым
// остатком в порядке ближайшего сгорания (NULL в конце).
const remainingEarnsQuery = `
	SELECT e.id, e.amount - COALESCE(l.consumed, 0) AS remaining
	FROM point_entries e
	LEFT JOIN (
		SELECT earn_id, SUM(amount) AS consumed
		FROM point_entry_links
		GROUP BY earn_id
	) l ON l.earn_id = e.id
	WHERE e.user_id = $1
	  AND e.type = 'EARN'
	  AND e.status = 'ACTIVE'
	  AND e.amount - COALESCE(l.consumed, 0) > 0`

type earnRemainder struct {
	id        int64
	remaining int64
}

// InsertEarn создает ACTIVE EARN-запись.
// Повторное начисление за тот же источник отклоняется уникальным
// ограничением (source_type, source_ref).
func (r *LedgerRepository) InsertEarn(ctx context.Context, userID, amount int64, sourceType domain.SourceType, sourceRef string, expiresAt *time.Time) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		UserID:     userID,
		Amount:     amount,
		Type:       domain.EntryTypeEarn,
		Status:     domain.EntryStatusActive,
		SourceType: sourceType,
		SourceRef:  sourceRef,
		ExpiresAt:  expiresAt,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO point_entries (user_id, amount, type, status, source_type, source_ref, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		userID, amount, entry.Type, entry.Status, sourceType, sourceRef, expiresAt,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrDuplicateEarn
		}
		return nil, fmt.Errorf("repository: failed to insert earn for user %d: %w", userID, err)
	}

	return entry, nil
}

// UseWithLock списывает баллы с блокировкой по пользователю.
// Списание атомарно: при недостатке баланса не создается ни одной записи.
// EARN-записи потребляются в порядке ближайшего сгорания.
func (r *LedgerRepository) UseWithLock(ctx context.Context, userID, amount int64, sourceType domain.SourceType, sourceRef string) (*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin use transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Advisory lock сериализует списания одного пользователя
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	earns, err := r.selectRemainingEarns(ctx, tx,
		remainingEarnsQuery+`
	  AND (e.expires_at IS NULL OR e.expires_at > NOW())
	ORDER BY e.expires_at ASC NULLS LAST, e.id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	var available int64
	for _, e := range earns {
		available += e.remaining
	}
	if available < amount {
		return nil, domain.ErrInsufficientPoints
	}

	entry := &domain.LedgerEntry{
		UserID:     userID,
		Amount:     amount,
		Type:       domain.EntryTypeUse,
		Status:     domain.EntryStatusActive,
		SourceType: sourceType,
		SourceRef:  sourceRef,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO point_entries (user_id, amount, type, status, source_type, source_ref)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		userID, amount, entry.Type, entry.Status, sourceType, sourceRef,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert use entry for user %d: %w", userID, err)
	}

	left := amount
	for _, earn := range earns {
		if left == 0 {
			break
		}

		take := earn.remaining
		if take > left {
			take = left
		}

		if err := r.consumeEarn(ctx, tx, entry.ID, earn.id, take, take == earn.remaining, domain.EntryStatusUsed); err != nil {
			return nil, err
		}
		left -= take
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit use for user %d: %w", userID, err)
	}

	return entry, nil
}

// ExpireDueForUser сжигает просроченные баллы пользователя.
// Идемпотентно: повторный запуск не находит ACTIVE просроченных записей.
func (r *LedgerRepository) ExpireDueForUser(ctx context.Context, userID int64, now time.Time) ([]*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin expire transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	earns, err := r.selectRemainingEarnsDue(ctx, tx, userID, now)
	if err != nil {
		return nil, err
	}

	var expired []*domain.LedgerEntry
	for _, earn := range earns {
		entry := &domain.LedgerEntry{
			UserID:     userID,
			Amount:     earn.remaining,
			Type:       domain.EntryTypeExpire,
			Status:     domain.EntryStatusActive,
			SourceType: domain.SourceTypePointEntry,
			SourceRef:  fmt.Sprintf("%d", earn.id),
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO point_entries (user_id, amount, type, status, source_type, source_ref)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at`,
			userID, earn.remaining, entry.Type, entry.Status, entry.SourceType, entry.SourceRef,
		).Scan(&entry.ID, &entry.CreatedAt)

		if err != nil {
			return nil, fmt.Errorf("repository: failed to insert expire entry for user %d: %w", userID, err)
		}

		if err := r.consumeEarn(ctx, tx, entry.ID, earn.id, earn.remaining, true, domain.EntryStatusExpired); err != nil {
			return nil, err
		}

		expired = append(expired, entry)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit expiry for user %d: %w", userID, err)
	}

	return expired, nil
}

// UsersWithExpired возвращает пользователей с просроченными ACTIVE EARN-записями
func (r *LedgerRepository) UsersWithExpired(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT user_id
		 FROM point_entries
		 WHERE type = 'EARN' AND status = 'ACTIVE' AND expires_at <= $1
		 ORDER BY user_id`,
		now,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get users with expired points: %w", err)
	}
	defer rows.Close()

	var userIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return userIDs, nil
}

// CancelBySource обращает EARN и USE записи источника, создавая
// компенсирующие CANCEL-записи. История никогда не удаляется.
func (r *LedgerRepository) CancelBySource(ctx context.Context, userID int64, sourceType domain.SourceType, sourceRef string) ([]*domain.LedgerEntry, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin cancel transaction for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, userID); err != nil {
		return nil, fmt.Errorf("repository: failed to acquire lock for user %d: %w", userID, err)
	}

	targets, err := r.selectCancelTargets(ctx, tx, userID, sourceType, sourceRef)
	if err != nil {
		return nil, err
	}

	var cancels []*domain.LedgerEntry
	for _, target := range targets {
		var cancel *domain.LedgerEntry

		switch target.entryType {
		case domain.EntryTypeUse:
			cancel, err = r.cancelUse(ctx, tx, userID, target, sourceType, sourceRef)
		case domain.EntryTypeEarn:
			cancel, err = r.cancelEarn(ctx, tx, userID, target, sourceType, sourceRef)
		}

		if err != nil {
			return nil, err
		}
		if cancel != nil {
			cancels = append(cancels, cancel)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit cancel for user %d: %w", userID, err)
	}

	return cancels, nil
}

// GetBalance вычисляет баланс как сумму остатков ACTIVE EARN-записей
func (r *LedgerRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT
			COALESCE((
				SELECT SUM(e.amount - COALESCE(l.consumed, 0))
				FROM point_entries e
				LEFT JOIN (
					SELECT earn_id, SUM(amount) AS consumed
					FROM point_entry_links
					GROUP BY earn_id
				) l ON l.earn_id = e.id
				WHERE e.user_id = $1
				  AND e.type = 'EARN'
				  AND e.status = 'ACTIVE'
				  AND (e.expires_at IS NULL OR e.expires_at > NOW())
			), 0) AS available,
			COALESCE((
				SELECT SUM(amount)
				FROM point_entries
				WHERE user_id = $1 AND type = 'USE' AND status <> 'CANCELLED'
			), 0) AS used`,
		userID,
	).Scan(&balance.Available, &balance.Used)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// GetEntriesByUser получает историю операций пользователя
func (r *LedgerRepository) GetEntriesByUser(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+entryColumns+`
		 FROM point_entries
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		entry := &domain.LedgerEntry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Amount, &entry.Type, &entry.Status,
			&entry.SourceType, &entry.SourceRef, &entry.CreatedAt, &entry.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating entries: %w", err)
	}

	return entries, nil
}

// consumeEarn записывает потребление EARN-записи и при полном
// исчерпании остатка переводит ее в указанный статус.
func (r *LedgerRepository) consumeEarn(ctx context.Context, tx pgx.Tx, consumerID, earnID, amount int64, exhausted bool, status domain.EntryStatus) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO point_entry_links (consumer_id, earn_id, amount) VALUES ($1, $2, $3)`,
		consumerID, earnID, amount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to link consumption of earn %d: %w", earnID, err)
	}

	if exhausted {
		_, err = tx.Exec(ctx,
			`UPDATE point_entries SET status = $1 WHERE id = $2`,
			status, earnID,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to update earn %d status: %w", earnID, err)
		}
	}

	return nil
}

func (r *LedgerRepository) selectRemainingEarns(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]earnRemainder, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select earn entries: %w", err)
	}
	defer rows.Close()

	var earns []earnRemainder
	for rows.Next() {
		var e earnRemainder
		if err := rows.Scan(&e.id, &e.remaining); err != nil {
			return nil, fmt.Errorf("repository: failed to scan earn entry: %w", err)
		}
		earns = append(earns, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating earn entries: %w", err)
	}

	return earns, nil
}

func (r *LedgerRepository) selectRemainingEarnsDue(ctx context.Context, tx pgx.Tx, userID int64, now time.Time) ([]earnRemainder, error) {
	return r.selectRemainingEarns(ctx, tx,
		remainingEarnsQuery+`
	  AND e.expires_at <= $2
	ORDER BY e.expires_at ASC, e.id ASC`,
		userID, now,
	)
}

type cancelTarget struct {
	id        int64
	amount    int64
	entryType domain.EntryType
	status    domain.EntryStatus
}

func (r *LedgerRepository) selectCancelTargets(ctx context.Context, tx pgx.Tx, userID int64, sourceType domain.SourceType, sourceRef string) ([]cancelTarget, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, amount, type, status
		 FROM point_entries
		 WHERE user_id = $1 AND source_type = $2 AND source_ref = $3
		   AND type IN ('EARN', 'USE') AND status <> 'CANCELLED'
		 ORDER BY id`,
		userID, sourceType, sourceRef,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select cancel targets: %w", err)
	}
	defer rows.Close()

	var targets []cancelTarget
	for rows.Next() {
		var t cancelTarget
		if err := rows.Scan(&t.id, &t.amount, &t.entryType, &t.status); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cancel target: %w", err)
		}
		targets = append(targets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cancel targets: %w", err)
	}

	return targets, nil
}

// cancelUse отменяет списание: USE-запись помечается CANCELLED, а
// отрицательные связи возвращают остаток не сгоревшим EARN-записям.
func (r *LedgerRepository) cancelUse(ctx context.Context, tx pgx.Tx, userID int64, target cancelTarget, sourceType domain.SourceType, sourceRef string) (*domain.LedgerEntry, error) {
	if _, err := tx.Exec(ctx,
		`UPDATE point_entries SET status = 'CANCELLED' WHERE id = $1`,
		target.id,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to cancel use entry %d: %w", target.id, err)
	}

	cancel, err := r.insertCancel(ctx, tx, userID, target.amount, sourceType, sourceRef)
	if err != nil {
		return nil, err
	}

	consumptions, err := r.selectConsumptions(ctx, tx, target.id)
	if err != nil {
		return nil, err
	}

	for _, c := range consumptions {
		var status domain.EntryStatus
		var expired bool
		err := tx.QueryRow(ctx,
			`SELECT status, expires_at IS NOT NULL AND expires_at <= NOW()
			 FROM point_entries
			 WHERE id = $1`,
			c.earnID,
		).Scan(&status, &expired)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to check earn %d: %w", c.earnID, err)
		}

		// Сгоревшие и отозванные записи не восстанавливаются
		if expired || status == domain.EntryStatusExpired || status == domain.EntryStatusCancelled {
			continue
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO point_entry_links (consumer_id, earn_id, amount) VALUES ($1, $2, $3)`,
			cancel.ID, c.earnID, -c.amount,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to restore earn %d: %w", c.earnID, err)
		}

		if status == domain.EntryStatusUsed {
			if _, err := tx.Exec(ctx,
				`UPDATE point_entries SET status = 'ACTIVE' WHERE id = $1`,
				c.earnID,
			); err != nil {
				return nil, fmt.Errorf("repository: failed to reactivate earn %d: %w", c.earnID, err)
			}
		}
	}

	return cancel, nil
}

// cancelEarn отзывает начисление: остаток потребляется CANCEL-записью
func (r *LedgerRepository) cancelEarn(ctx context.Context, tx pgx.Tx, userID int64, target cancelTarget, sourceType domain.SourceType, sourceRef string) (*domain.LedgerEntry, error) {
	var remaining int64
	err := tx.QueryRow(ctx,
		`SELECT $2::BIGINT - COALESCE((
			SELECT SUM(amount) FROM point_entry_links WHERE earn_id = $1
		 ), 0)`,
		target.id, target.amount,
	).Scan(&remaining)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get remaining of earn %d: %w", target.id, err)
	}

	var cancel *domain.LedgerEntry
	if remaining > 0 {
		cancel, err = r.insertCancel(ctx, tx, userID, remaining, sourceType, sourceRef)
		if err != nil {
			return nil, err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO point_entry_links (consumer_id, earn_id, amount) VALUES ($1, $2, $3)`,
			cancel.ID, target.id, remaining,
		); err != nil {
			return nil, fmt.Errorf("repository: failed to consume earn %d on cancel: %w", target.id, err)
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE point_entries SET status = 'CANCELLED' WHERE id = $1`,
		target.id,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to cancel earn entry %d: %w", target.id, err)
	}

	return cancel, nil
}

func (r *LedgerRepository) insertCancel(ctx context.Context, tx pgx.Tx, userID, amount int64, sourceType domain.SourceType, sourceRef string) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		UserID:     userID,
		Amount:     amount,
		Type:       domain.EntryTypeCancel,
		Status:     domain.EntryStatusActive,
		SourceType: sourceType,
		SourceRef:  sourceRef,
	}

	err := tx.QueryRow(ctx,
		`INSERT INTO point_entries (user_id, amount, type, status, source_type, source_ref)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		userID, amount, entry.Type, entry.Status, sourceType, sourceRef,
	).Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert cancel entry for user %d: %w", userID, err)
	}

	return entry, nil
}

type consumption struct {
	earnID int64
	amount int64
}

func (r *LedgerRepository) selectConsumptions(ctx context.Context, tx pgx.Tx, consumerID int64) ([]consumption, error) {
	rows, err := tx.Query(ctx,
		`SELECT earn_id, SUM(amount)
		 FROM point_entry_links
		 WHERE consumer_id = $1
		 GROUP BY earn_id
		 ORDER BY earn_id`,
		consumerID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select consumptions of entry %d: %w", consumerID, err)
	}
	defer rows.Close()

	var consumptions []consumption
	for rows.Next() {
		var c consumption
		if err := rows.Scan(&c.earnID, &c.amount); err != nil {
			return nil, fmt.Errorf("repository: failed to scan consumption: %w", err)
		}
		consumptions = append(consumptions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating consumptions: %w", err)
	}

	return consumptions, nil
}

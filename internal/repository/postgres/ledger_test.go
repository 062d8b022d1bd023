package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedshop/order-settlement/internal/domain"
)

func TestLedgerRepository_InsertEarn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	expiresAt := time.Now().Add(365 * 24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO point_entries`).
		WithArgs(int64(1), int64(500), domain.EntryTypeEarn, domain.EntryStatusActive,
			domain.SourceTypeOrder, "FS-1", &expiresAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))

	entry, err := repo.InsertEarn(ctx, 1, 500, domain.SourceTypeOrder, "FS-1", &expiresAt)
	require.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID)
	assert.Equal(t, domain.EntryTypeEarn, entry.Type)
	assert.Equal(t, domain.EntryStatusActive, entry.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_InsertEarn_DuplicateSource(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO point_entries`).
		WithArgs(int64(1), int64(500), domain.EntryTypeEarn, domain.EntryStatusActive,
			domain.SourceTypeOrder, "FS-1", (*time.Time)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err = repo.InsertEarn(ctx, 1, 500, domain.SourceTypeOrder, "FS-1", nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateEarn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_UseWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Consumes earns in expiry order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		// Ближайшее сгорание первым: 500 + 1000 доступно
		mock.ExpectQuery(`SELECT e.id, e.amount`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "remaining"}).
				AddRow(int64(101), int64(500)).
				AddRow(int64(102), int64(1000)))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(1200), domain.EntryTypeUse, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(200), time.Now()))
		// Первая запись исчерпана полностью и помечается USED
		mock.ExpectExec(`INSERT INTO point_entry_links`).
			WithArgs(int64(200), int64(101), int64(500)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`UPDATE point_entries SET status`).
			WithArgs(domain.EntryStatusUsed, int64(101)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		// Вторая потребляется частично и остается ACTIVE
		mock.ExpectExec(`INSERT INTO point_entry_links`).
			WithArgs(int64(200), int64(102), int64(700)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		entry, err := repo.UseWithLock(ctx, 1, 1200, domain.SourceTypeOrder, "FS-1")
		require.NoError(t, err)
		assert.Equal(t, int64(200), entry.ID)
		assert.Equal(t, int64(1200), entry.Amount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient balance writes nothing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT e.id, e.amount`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "remaining"}).
				AddRow(int64(101), int64(100)))
		mock.ExpectRollback()

		_, err = repo.UseWithLock(ctx, 1, 500, domain.SourceTypeOrder, "FS-1")
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty ledger", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT e.id, e.amount`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "remaining"}))
		mock.ExpectRollback()

		_, err = repo.UseWithLock(ctx, 1, 1, domain.SourceTypeOrder, "FS-1")
		assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_ExpireDueForUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Expires remaining amounts", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		// Частично потребленная запись сгорает на остаток
		mock.ExpectQuery(`SELECT e.id, e.amount`).
			WithArgs(int64(1), now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "remaining"}).
				AddRow(int64(101), int64(200)))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(200), domain.EntryTypeExpire, domain.EntryStatusActive,
				domain.SourceTypePointEntry, "101").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(300), time.Now()))
		mock.ExpectExec(`INSERT INTO point_entry_links`).
			WithArgs(int64(300), int64(101), int64(200)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`UPDATE point_entries SET status`).
			WithArgs(domain.EntryStatusExpired, int64(101)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		expired, err := repo.ExpireDueForUser(ctx, 1, now)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, int64(200), expired[0].Amount)
		assert.Equal(t, domain.EntryTypeExpire, expired[0].Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second run finds nothing", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT e.id, e.amount`).
			WithArgs(int64(1), now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "remaining"}))
		mock.ExpectCommit()

		expired, err := repo.ExpireDueForUser(ctx, 1, now)
		require.NoError(t, err)
		assert.Empty(t, expired)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_UsersWithExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT DISTINCT user_id`).
		WithArgs(now).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).
			AddRow(int64(1)).
			AddRow(int64(7)))

	userIDs, err := repo.UsersWithExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, userIDs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_CancelBySource(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancelled use restores earns", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT id, amount, type, status`).
			WithArgs(int64(1), domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "amount", "type", "status"}).
				AddRow(int64(200), int64(300), domain.EntryTypeUse, domain.EntryStatusActive))
		mock.ExpectExec(`UPDATE point_entries SET status = 'CANCELLED'`).
			WithArgs(int64(200)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(300), domain.EntryTypeCancel, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(400), time.Now()))
		mock.ExpectQuery(`SELECT earn_id, SUM`).
			WithArgs(int64(200)).
			WillReturnRows(pgxmock.NewRows([]string{"earn_id", "sum"}).
				AddRow(int64(101), int64(300)))
		// Запись была исчерпана этим списанием и возвращается в ACTIVE
		mock.ExpectQuery(`SELECT status, expires_at`).
			WithArgs(int64(101)).
			WillReturnRows(pgxmock.NewRows([]string{"status", "expired"}).
				AddRow(domain.EntryStatusUsed, false))
		mock.ExpectExec(`INSERT INTO point_entry_links`).
			WithArgs(int64(400), int64(101), int64(-300)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`UPDATE point_entries SET status = 'ACTIVE'`).
			WithArgs(int64(101)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		cancels, err := repo.CancelBySource(ctx, 1, domain.SourceTypeOrder, "FS-1")
		require.NoError(t, err)
		require.Len(t, cancels, 1)
		assert.Equal(t, domain.EntryTypeCancel, cancels[0].Type)
		assert.Equal(t, int64(300), cancels[0].Amount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expired earn is not restored", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT id, amount, type, status`).
			WithArgs(int64(1), domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "amount", "type", "status"}).
				AddRow(int64(200), int64(300), domain.EntryTypeUse, domain.EntryStatusActive))
		mock.ExpectExec(`UPDATE point_entries SET status = 'CANCELLED'`).
			WithArgs(int64(200)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(300), domain.EntryTypeCancel, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(400), time.Now()))
		mock.ExpectQuery(`SELECT earn_id, SUM`).
			WithArgs(int64(200)).
			WillReturnRows(pgxmock.NewRows([]string{"earn_id", "sum"}).
				AddRow(int64(101), int64(300)))
		mock.ExpectQuery(`SELECT status, expires_at`).
			WithArgs(int64(101)).
			WillReturnRows(pgxmock.NewRows([]string{"status", "expired"}).
				AddRow(domain.EntryStatusExpired, true))
		mock.ExpectCommit()

		cancels, err := repo.CancelBySource(ctx, 1, domain.SourceTypeOrder, "FS-1")
		require.NoError(t, err)
		require.Len(t, cancels, 1)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cancelled earn is clawed back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewLedgerRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec(`pg_advisory_xact_lock`).
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT id, amount, type, status`).
			WithArgs(int64(1), domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "amount", "type", "status"}).
				AddRow(int64(101), int64(200), domain.EntryTypeEarn, domain.EntryStatusActive))
		mock.ExpectQuery(`SELECT \$2::BIGINT`).
			WithArgs(int64(101), int64(200)).
			WillReturnRows(pgxmock.NewRows([]string{"remaining"}).AddRow(int64(150)))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(150), domain.EntryTypeCancel, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(400), time.Now()))
		mock.ExpectExec(`INSERT INTO point_entry_links`).
			WithArgs(int64(400), int64(101), int64(150)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`UPDATE point_entries SET status = 'CANCELLED'`).
			WithArgs(int64(101)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		cancels, err := repo.CancelBySource(ctx, 1, domain.SourceTypeOrder, "FS-1")
		require.NoError(t, err)
		require.Len(t, cancels, 1)
		assert.Equal(t, int64(150), cancels[0].Amount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"available", "used"}).
			AddRow(int64(700), int64(300)))

	balance, err := repo.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance.Available)
	assert.Equal(t, int64(300), balance.Used)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepository_GetEntriesByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLedgerRepository(mock)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "type", "status", "source_type", "source_ref", "created_at", "expires_at"}).
		AddRow(int64(2), int64(1), int64(300), domain.EntryTypeUse, domain.EntryStatusActive,
			domain.SourceTypeOrder, "FS-1", time.Now(), (*time.Time)(nil)).
		AddRow(int64(1), int64(1), int64(500), domain.EntryTypeEarn, domain.EntryStatusActive,
			domain.SourceTypeOrder, "FS-1", time.Now(), (*time.Time)(nil))

	mock.ExpectQuery(`SELECT .+ FROM point_entries`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.GetEntriesByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EntryTypeUse, entries[0].Type)
	assert.Equal(t, domain.EntryTypeEarn, entries[1].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

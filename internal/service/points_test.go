package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedshop/order-settlement/internal/domain"
	domainmocks "github.com/feedshop/order-settlement/internal/domain/mocks"
)

func TestPointService_Earn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		expiresAt := time.Now().Add(365 * 24 * time.Hour)
		entry := &domain.LedgerEntry{ID: 1, UserID: 1, Type: domain.EntryTypeEarn, Amount: 500}

		mockLedger.EXPECT().
			InsertEarn(ctx, int64(1), int64(500), domain.SourceTypeOrder, "FS-1", &expiresAt).
			Return(entry, nil).
			Once()
		mockCache.EXPECT().Invalidate(ctx, int64(1)).Return(nil).Once()

		got, err := svc.Earn(ctx, 1, 500, domain.SourceTypeOrder, "FS-1", &expiresAt)
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("Duplicate source", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		mockLedger.EXPECT().
			InsertEarn(ctx, int64(1), int64(500), domain.SourceTypeOrder, "FS-1", (*time.Time)(nil)).
			Return(nil, domain.ErrDuplicateEarn).
			Once()

		_, err := svc.Earn(ctx, 1, 500, domain.SourceTypeOrder, "FS-1", nil)
		assert.ErrorIs(t, err, ErrDuplicateEarn)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		_, err := svc.Earn(ctx, 1, 0, domain.SourceTypeOrder, "FS-1", nil)
		assert.ErrorIs(t, err, ErrInvalidPointAmount)

		_, err = svc.Earn(ctx, 1, -100, domain.SourceTypeOrder, "FS-1", nil)
		assert.ErrorIs(t, err, ErrInvalidPointAmount)
	})
}

func TestPointService_Use(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		entry := &domain.LedgerEntry{ID: 2, UserID: 1, Type: domain.EntryTypeUse, Amount: 3000}

		mockLedger.EXPECT().
			UseWithLock(ctx, int64(1), int64(3000), domain.SourceTypeOrder, "FS-1").
			Return(entry, nil).
			Once()
		mockCache.EXPECT().Invalidate(ctx, int64(1)).Return(nil).Once()

		got, err := svc.Use(ctx, 1, 3000, domain.SourceTypeOrder, "FS-1")
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("Insufficient points", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		mockLedger.EXPECT().
			UseWithLock(ctx, int64(1), int64(9000), domain.SourceTypeOrder, "FS-1").
			Return(nil, domain.ErrInsufficientPoints).
			Once()

		_, err := svc.Use(ctx, 1, 9000, domain.SourceTypeOrder, "FS-1")
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		_, err := svc.Use(ctx, 1, 0, domain.SourceTypeOrder, "FS-1")
		assert.ErrorIs(t, err, ErrInvalidPointAmount)
	})
}

func TestPointService_Cancel(t *testing.T) {
	ctx := context.Background()

	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	mockCache := domainmocks.NewBalanceCacheMock(t)
	svc := NewPointService(mockLedger, nil, mockCache)

	entries := []*domain.LedgerEntry{
		{ID: 3, Type: domain.EntryTypeCancel, Amount: 3000},
	}

	mockLedger.EXPECT().
		CancelBySource(ctx, int64(1), domain.SourceTypeOrder, "FS-1").
		Return(entries, nil).
		Once()
	mockCache.EXPECT().Invalidate(ctx, int64(1)).Return(nil).Once()

	got, err := svc.Cancel(ctx, 1, domain.SourceTypeOrder, "FS-1")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestPointService_SettleOrderTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivered settles atomically and drops cached balance", func(t *testing.T) {
		mockSettle := domainmocks.NewSettlementRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(nil, mockSettle, mockCache)

		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", EarnedPoints: 500, Version: 2}
		expiresAt := time.Now().Add(365 * 24 * time.Hour)

		mockSettle.EXPECT().
			SettleTransition(ctx, order, domain.OrderStatusDelivered, &expiresAt).
			Return(nil).
			Once()
		mockCache.EXPECT().Invalidate(ctx, int64(1)).Return(nil).Once()

		err := svc.SettleOrderTransition(ctx, order, domain.OrderStatusDelivered, &expiresAt)
		require.NoError(t, err)
	})

	t.Run("Shipment does not touch the cache", func(t *testing.T) {
		mockSettle := domainmocks.NewSettlementRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(nil, mockSettle, mockCache)

		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Version: 1}

		mockSettle.EXPECT().
			SettleTransition(ctx, order, domain.OrderStatusShipped, (*time.Time)(nil)).
			Return(nil).
			Once()

		err := svc.SettleOrderTransition(ctx, order, domain.OrderStatusShipped, nil)
		require.NoError(t, err)
	})

	t.Run("Concurrent modification passes through", func(t *testing.T) {
		mockSettle := domainmocks.NewSettlementRepositoryMock(t)
		svc := NewPointService(nil, mockSettle, nil)

		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Version: 1}

		mockSettle.EXPECT().
			SettleTransition(ctx, order, domain.OrderStatusDelivered, (*time.Time)(nil)).
			Return(domain.ErrConcurrentModification).
			Once()

		err := svc.SettleOrderTransition(ctx, order, domain.OrderStatusDelivered, nil)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	})

	t.Run("Settlement error leaves cache intact", func(t *testing.T) {
		mockSettle := domainmocks.NewSettlementRepositoryMock(t)
		svc := NewPointService(nil, mockSettle, nil)

		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Version: 1}

		mockSettle.EXPECT().
			SettleTransition(ctx, order, domain.OrderStatusDelivered, (*time.Time)(nil)).
			Return(errors.New("db error")).
			Once()

		err := svc.SettleOrderTransition(ctx, order, domain.OrderStatusDelivered, nil)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConcurrentModification)
	})
}

func TestPointService_ExpireDue(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Expired entries invalidate cache", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		entries := []*domain.LedgerEntry{{ID: 4, Type: domain.EntryTypeExpire, Amount: 200}}

		mockLedger.EXPECT().ExpireDueForUser(ctx, int64(1), now).Return(entries, nil).Once()
		mockCache.EXPECT().Invalidate(ctx, int64(1)).Return(nil).Once()

		got, err := svc.ExpireDue(ctx, 1, now)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Nothing to expire keeps cache", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		mockLedger.EXPECT().ExpireDueForUser(ctx, int64(1), now).Return(nil, nil).Once()

		got, err := svc.ExpireDue(ctx, 1, now)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPointService_Balance(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		cached := &domain.Balance{Available: 700, Used: 300}

		mockCache.EXPECT().Get(ctx, int64(1)).Return(cached, true, nil).Once()

		got, err := svc.Balance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("Cache miss reads ledger and fills cache", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		mockCache := domainmocks.NewBalanceCacheMock(t)
		svc := NewPointService(mockLedger, nil, mockCache)

		balance := &domain.Balance{Available: 700, Used: 300}

		mockCache.EXPECT().Get(ctx, int64(1)).Return(nil, false, nil).Once()
		mockLedger.EXPECT().GetBalance(ctx, int64(1)).Return(balance, nil).Once()
		mockCache.EXPECT().Set(ctx, int64(1), balance).Return(nil).Once()

		got, err := svc.Balance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, balance, got)
	})

	t.Run("Without cache", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		balance := &domain.Balance{Available: 100}

		mockLedger.EXPECT().GetBalance(ctx, int64(1)).Return(balance, nil).Once()

		got, err := svc.Balance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, balance, got)
	})

	t.Run("Ledger error", func(t *testing.T) {
		mockLedger := domainmocks.NewLedgerRepositoryMock(t)
		svc := NewPointService(mockLedger, nil, nil)

		mockLedger.EXPECT().GetBalance(ctx, int64(1)).Return(nil, errors.New("db error")).Once()

		_, err := svc.Balance(ctx, 1)
		assert.Error(t, err)
	})
}

func TestPointService_History(t *testing.T) {
	ctx := context.Background()

	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewPointService(mockLedger, nil, nil)

	entries := []*domain.LedgerEntry{
		{ID: 1, Type: domain.EntryTypeEarn, Amount: 500},
		{ID: 2, Type: domain.EntryTypeUse, Amount: 300},
	}

	mockLedger.EXPECT().GetEntriesByUser(ctx, int64(1)).Return(entries, nil).Once()

	got, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

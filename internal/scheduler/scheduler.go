package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/domain"
	"github.com/feedshop/order-settlement/internal/service"
)

// Scheduler периодически запускает расчётные проходы:
// ежедневное сгорание баллов и обработку очереди вознаграждений
type Scheduler struct {
	points         domain.PointLedger
	rewards        domain.RewardQueue
	logger         *zap.Logger
	rewardInterval time.Duration
	batchSize      int
	wg             sync.WaitGroup
	running        atomic.Bool

	expiryMu sync.Mutex
	rewardMu sync.Mutex
}

// New создает новый Scheduler
func New(
	points domain.PointLedger,
	rewards domain.RewardQueue,
	logger *zap.Logger,
	rewardInterval time.Duration,
	batchSize int,
) *Scheduler {
	return &Scheduler{
		points:         points,
		rewards:        rewards,
		logger:         logger,
		rewardInterval: rewardInterval,
		batchSize:      batchSize,
	}
}

// Start запускает фоновые циклы
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.expiryLoop(ctx)

	s.wg.Add(1)
	go s.rewardLoop(ctx)

	s.running.Store(true)
}

// Stop дожидается завершения фоновых циклов
func (s *Scheduler) Stop() {
	s.wg.Wait()
	s.running.Store(false)
}

// Running сообщает, запущены ли фоновые циклы
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// expiryLoop запускает сгорание баллов раз в сутки, в полночь UTC
func (s *Scheduler) expiryLoop(ctx context.Context) {
	defer s.wg.Done()

	for {
		wait := time.Until(nextMidnight(time.Now().UTC()))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("expiry loop stopping")
			return
		case <-timer.C:
			s.RunExpirySweep(ctx)
		}
	}
}

// rewardLoop периодически обрабатывает очередь вознаграждений
func (s *Scheduler) rewardLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.rewardInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reward loop stopping")
			return
		case <-ticker.C:
			s.RunRewardSweep(ctx)
		}
	}
}

// RunExpirySweep сжигает просроченные баллы всех пользователей.
// Ошибка по одному пользователю не прерывает проход.
func (s *Scheduler) RunExpirySweep(ctx context.Context) {
	s.expiryMu.Lock()
	defer s.expiryMu.Unlock()

	now := time.Now().UTC()

	userIDs, err := s.points.UsersWithExpired(ctx, now)
	if err != nil {
		s.logger.Error("failed to find users with expired points", zap.Error(err))
		return
	}

	if len(userIDs) == 0 {
		return
	}

	s.logger.Info("expiry sweep started", zap.Int("users", len(userIDs)))

	var expired, failed int
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}

		entries, err := s.points.ExpireDue(ctx, userID, now)
		if err != nil {
			failed++
			s.logger.Error("failed to expire points",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			continue
		}
		expired += len(entries)
	}

	s.logger.Info("expiry sweep finished",
		zap.Int("users", len(userIDs)),
		zap.Int("expired_entries", expired),
		zap.Int("failed_users", failed),
	)
}

// RunRewardSweep обрабатывает партию событий вознаграждений.
// Сбой одного события не прерывает проход.
func (s *Scheduler) RunRewardSweep(ctx context.Context) {
	s.rewardMu.Lock()
	defer s.rewardMu.Unlock()

	events, err := s.rewards.Due(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("failed to list due reward events", zap.Error(err))
		return
	}

	if len(events) == 0 {
		return
	}

	var processed, failed int
	for _, event := range events {
		if ctx.Err() != nil {
			return
		}

		if err := s.rewards.Process(ctx, event); err != nil {
			failed++

			var procErr *service.ProcessError
			if errors.As(err, &procErr) {
				s.logger.Warn("reward event failed",
					zap.Int64("event_id", procErr.EventID),
					zap.Error(procErr.Err),
				)
				continue
			}

			s.logger.Error("failed to process reward event",
				zap.Int64("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		processed++
	}

	s.logger.Info("reward sweep finished",
		zap.Int("due", len(events)),
		zap.Int("processed", processed),
		zap.Int("failed", failed),
	)
}

// nextMidnight возвращает начало следующих суток UTC
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

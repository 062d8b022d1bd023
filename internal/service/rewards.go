package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/domain"
)

// DefaultRewardPoints задает баллы по умолчанию для каждого типа вознаграждения
var DefaultRewardPoints = map[domain.RewardType]int64{
	domain.RewardTypeReviewWrite:   100,
	domain.RewardTypePhotoReview:   500,
	domain.RewardTypeFeedLike:      10,
	domain.RewardTypeFirstPurchase: 1000,
	domain.RewardTypeEventWin:      1000,
}

// RewardServiceConfig содержит политику обработки вознаграждений
type RewardServiceConfig struct {
	MaxRetries int
	StaleAfter time.Duration
	PointTTL   time.Duration
}

// RewardService реализует domain.RewardQueue
type RewardService struct {
	rewardRepo domain.RewardRepository
	points     domain.PointLedger
	notifier   domain.Notifier
	logger     *zap.Logger
	config     RewardServiceConfig
}

// NewRewardService создает новый RewardService
func NewRewardService(
	rewardRepo domain.RewardRepository,
	points domain.PointLedger,
	notifier domain.Notifier,
	logger *zap.Logger,
	config RewardServiceConfig,
) *RewardService {
	return &RewardService{
		rewardRepo: rewardRepo,
		points:     points,
		notifier:   notifier,
		logger:     logger,
		config:     config,
	}
}

// Grant ставит вознаграждение в очередь. Повторный вызов для того же
// источника возвращает существующее событие без создания дубликата.
func (s *RewardService) Grant(ctx context.Context, userID int64, rewardType domain.RewardType, points int64, relatedType domain.RelatedType, relatedID int64, description string) (*domain.RewardEvent, error) {
	if points <= 0 {
		points = DefaultRewardPoints[rewardType]
	}
	if points <= 0 {
		return nil, ErrUnknownRewardType
	}

	existing, err := s.rewardRepo.FindBySource(ctx, relatedType, relatedID, rewardType)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrRewardNotFound) {
		return nil, fmt.Errorf("reward service: failed to check existing reward: %w", err)
	}

	event, err := s.rewardRepo.CreateEvent(ctx, &domain.RewardEvent{
		UserID:      userID,
		RewardType:  rewardType,
		Points:      points,
		RelatedType: relatedType,
		RelatedID:   relatedID,
		Description: description,
	})

	if err != nil {
		// Гонка с конкурентным создателем: возвращаем его событие
		if errors.Is(err, domain.ErrDuplicateReward) {
			return s.rewardRepo.FindBySource(ctx, relatedType, relatedID, rewardType)
		}
		return nil, fmt.Errorf("reward service: failed to enqueue reward for user %d: %w", userID, err)
	}

	return event, nil
}

// Process обрабатывает одно событие: захват через статус PROCESSING,
// начисление баллов, фиксация результата. Ошибка обработки записывается
// на событие и возвращается как ProcessError.
func (s *RewardService) Process(ctx context.Context, event *domain.RewardEvent) error {
	claimed, err := s.rewardRepo.ClaimEvent(ctx, event.ID, time.Now().Add(-s.config.StaleAfter), s.config.MaxRetries)
	if err != nil {
		return fmt.Errorf("reward service: failed to claim event %d: %w", event.ID, err)
	}
	if !claimed {
		// Событие занято другим обработчиком или уже завершено
		return nil
	}

	expiresAt := time.Now().Add(s.config.PointTTL)
	_, earnErr := s.points.Earn(ctx, event.UserID, event.Points, domain.SourceTypeRewardEvent, strconv.FormatInt(event.ID, 10), &expiresAt)

	// Баллы уже начислены предыдущей попыткой, которая не успела
	// зафиксировать результат: довершаем фиксацию без повторной выплаты
	if errors.Is(earnErr, ErrDuplicateEarn) {
		earnErr = nil
	}

	if earnErr != nil {
		if markErr := s.rewardRepo.MarkFailed(ctx, event.ID, earnErr.Error()); markErr != nil {
			s.logger.Error("failed to mark reward event failed",
				zap.Int64("event_id", event.ID),
				zap.Error(markErr),
			)
		}
		return &ProcessError{EventID: event.ID, Err: earnErr}
	}

	if err := s.rewardRepo.MarkProcessed(ctx, event.ID); err != nil {
		return fmt.Errorf("reward service: failed to mark event %d processed: %w", event.ID, err)
	}

	s.notifyGranted(ctx, event)

	return nil
}

// Retry возвращает FAILED событие в очередь, очищая ошибку
func (s *RewardService) Retry(ctx context.Context, eventID int64) (*domain.RewardEvent, error) {
	event, err := s.rewardRepo.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("reward service: failed to get event %d: %w", eventID, err)
	}

	if event.Status != domain.RewardStatusFailed {
		return nil, ErrRewardNotFailed
	}

	if err := s.rewardRepo.ResetForRetry(ctx, eventID); err != nil {
		return nil, fmt.Errorf("reward service: failed to reset event %d: %w", eventID, err)
	}

	return s.rewardRepo.GetEventByID(ctx, eventID)
}

// Due возвращает события, готовые к обработке
func (s *RewardService) Due(ctx context.Context, limit int) ([]*domain.RewardEvent, error) {
	events, err := s.rewardRepo.ListDue(ctx, s.config.MaxRetries, time.Now().Add(-s.config.StaleAfter), limit)
	if err != nil {
		return nil, fmt.Errorf("reward service: failed to list due events: %w", err)
	}

	return events, nil
}

// notifyGranted отправляет уведомление о начислении.
// Ошибки отправки логируются и не влияют на результат обработки.
func (s *RewardService) notifyGranted(ctx context.Context, event *domain.RewardEvent) {
	if err := s.notifier.RewardGranted(ctx, event); err != nil {
		s.logger.Warn("failed to send reward notification",
			zap.Int64("event_id", event.ID),
			zap.Error(err),
		)
	}
}

package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/domain"
)

// QueueName имя очереди доменных действий FeedShop
const QueueName = "feedshop.domain-actions"

// ActionMessage представляет доменное действие пользователя,
// за которое полагается вознаграждение
type ActionMessage struct {
	UserID      int64              `json:"user_id"`
	RewardType  domain.RewardType  `json:"reward_type"`
	Points      int64              `json:"points,omitempty"`
	RelatedType domain.RelatedType `json:"related_type"`
	RelatedID   int64              `json:"related_id"`
	Description string             `json:"description,omitempty"`
}

// Consumer читает доменные действия из RabbitMQ и ставит
// вознаграждения в очередь обработки
type Consumer struct {
	ch      *amqp.Channel
	rewards domain.RewardQueue
	logger  *zap.Logger
}

// NewConsumer создает новый Consumer
func NewConsumer(ch *amqp.Channel, rewards domain.RewardQueue, logger *zap.Logger) *Consumer {
	return &Consumer{
		ch:      ch,
		rewards: rewards,
		logger:  logger,
	}
}

// Start объявляет очередь и запускает чтение сообщений
func (c *Consumer) Start(ctx context.Context) error {
	q, err := c.ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("events: failed to declare queue: %w", err)
	}

	msgs, err := c.ch.Consume(
		q.Name,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("events: failed to start consuming: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("domain action consumer stopping")
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				c.handleDelivery(ctx, d)
			}
		}
	}()

	c.logger.Info("domain action consumer started", zap.String("queue", q.Name))
	return nil
}

// handleDelivery обрабатывает одно сообщение.
// Некорректные сообщения отбрасываются без возврата в очередь,
// временные ошибки приводят к requeue.
func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	msg, err := decodeAction(d.Body)
	if err != nil {
		c.logger.Warn("rejecting malformed domain action", zap.Error(err))
		_ = d.Reject(false)
		return
	}

	_, err = c.rewards.Grant(ctx, msg.UserID, msg.RewardType, msg.Points, msg.RelatedType, msg.RelatedID, msg.Description)
	if err != nil {
		c.logger.Error("failed to enqueue reward for domain action",
			zap.Int64("user_id", msg.UserID),
			zap.String("reward_type", string(msg.RewardType)),
			zap.Error(err),
		)
		_ = d.Nack(false, true)
		return
	}

	_ = d.Ack(false)
}

// decodeAction разбирает и валидирует сообщение доменного действия
func decodeAction(body []byte) (*ActionMessage, error) {
	var msg ActionMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("events: failed to unmarshal action: %w", err)
	}

	if msg.UserID <= 0 {
		return nil, fmt.Errorf("events: action without user id")
	}
	if msg.RewardType == "" {
		return nil, fmt.Errorf("events: action without reward type")
	}
	if msg.RelatedType == "" || msg.RelatedID <= 0 {
		return nil, fmt.Errorf("events: action without source reference")
	}

	return &msg, nil
}

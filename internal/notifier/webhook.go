package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/feedshop/order-settlement/internal/domain"
)

// WebhookNotifier отправляет уведомления во внешний webhook.
// Доставка выполняется по принципу fire-and-forget: вызывающая сторона
// логирует ошибку и продолжает работу.
type WebhookNotifier struct {
	webhookURL string
	client     *retryablehttp.Client
}

// NewWebhookNotifier создает новый WebhookNotifier
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 5 * time.Second
	client.Logger = nil

	return &WebhookNotifier{
		webhookURL: webhookURL,
		client:     client,
	}
}

type orderStatusPayload struct {
	Type        string             `json:"type"`
	UserID      int64              `json:"user_id"`
	OrderNumber string             `json:"order_number"`
	Status      domain.OrderStatus `json:"status"`
}

type rewardGrantedPayload struct {
	Type       string            `json:"type"`
	UserID     int64             `json:"user_id"`
	EventID    int64             `json:"event_id"`
	RewardType domain.RewardType `json:"reward_type"`
	Points     int64             `json:"points"`
}

// OrderStatusChanged уведомляет о смене статуса заказа
func (n *WebhookNotifier) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	return n.post(ctx, orderStatusPayload{
		Type:        "ORDER_STATUS_CHANGED",
		UserID:      order.UserID,
		OrderNumber: order.Number,
		Status:      order.Status,
	})
}

// RewardGranted уведомляет о начислении вознаграждения
func (n *WebhookNotifier) RewardGranted(ctx context.Context, event *domain.RewardEvent) error {
	return n.post(ctx, rewardGrantedPayload{
		Type:       "REWARD_GRANTED",
		UserID:     event.UserID,
		EventID:    event.ID,
		RewardType: event.RewardType,
		Points:     event.Points,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notifier: failed to marshal payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notifier: failed to deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notifier: webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// Nop заглушка для отключенных уведомлений
type Nop struct{}

// OrderStatusChanged ничего не делает
func (Nop) OrderStatusChanged(_ context.Context, _ *domain.Order) error { return nil }

// RewardGranted ничего не делает
func (Nop) RewardGranted(_ context.Context, _ *domain.RewardEvent) error { return nil }

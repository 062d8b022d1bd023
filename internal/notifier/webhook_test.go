package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedshop/order-settlement/internal/domain"
)

func TestWebhookNotifier_OrderStatusChanged(t *testing.T) {
	var received orderStatusPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)

	order := &domain.Order{
		ID:     1,
		UserID: 42,
		Number: "FS-1",
		Status: domain.OrderStatusShipped,
	}

	err := notifier.OrderStatusChanged(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, "ORDER_STATUS_CHANGED", received.Type)
	assert.Equal(t, int64(42), received.UserID)
	assert.Equal(t, "FS-1", received.OrderNumber)
	assert.Equal(t, domain.OrderStatusShipped, received.Status)
}

func TestWebhookNotifier_RewardGranted(t *testing.T) {
	var received rewardGrantedPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)

	event := &domain.RewardEvent{
		ID:         5,
		UserID:     42,
		RewardType: domain.RewardTypeReviewWrite,
		Points:     100,
	}

	err := notifier.RewardGranted(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "REWARD_GRANTED", received.Type)
	assert.Equal(t, int64(42), received.UserID)
	assert.Equal(t, int64(5), received.EventID)
	assert.Equal(t, domain.RewardTypeReviewWrite, received.RewardType)
	assert.Equal(t, int64(100), received.Points)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)

	err := notifier.OrderStatusChanged(context.Background(), &domain.Order{Number: "FS-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "webhook returned status 400")
}

func TestNop(t *testing.T) {
	nop := Nop{}

	assert.NoError(t, nop.OrderStatusChanged(context.Background(), &domain.Order{}))
	assert.NoError(t, nop.RewardGranted(context.Background(), &domain.RewardEvent{}))
}

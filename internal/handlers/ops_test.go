package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/domain"
	domainmocks "github.com/feedshop/order-settlement/internal/domain/mocks"
	"github.com/feedshop/order-settlement/internal/scheduler"
	"github.com/feedshop/order-settlement/internal/service"
)

func setupOpsRouter(h *OpsHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/internal/sweeps/expiry", h.TriggerExpirySweep)
	r.Post("/internal/sweeps/rewards", h.TriggerRewardSweep)
	r.Post("/internal/rewards/{id}/retry", h.RetryReward)
	return r
}

func TestOpsHandler_TriggerExpirySweep(t *testing.T) {
	pointsMock := domainmocks.NewPointLedgerMock(t)
	rewardsMock := domainmocks.NewRewardQueueMock(t)

	pointsMock.EXPECT().
		UsersWithExpired(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil, nil).
		Once()

	sched := scheduler.New(pointsMock, rewardsMock, zap.NewNop(), time.Minute, 100)
	handler := NewOpsHandler(sched, rewardsMock, zap.NewNop())
	router := setupOpsRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/internal/sweeps/expiry", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestOpsHandler_TriggerRewardSweep(t *testing.T) {
	pointsMock := domainmocks.NewPointLedgerMock(t)
	rewardsMock := domainmocks.NewRewardQueueMock(t)

	rewardsMock.EXPECT().
		Due(mock.Anything, 100).
		Return(nil, nil).
		Once()

	sched := scheduler.New(pointsMock, rewardsMock, zap.NewNop(), time.Minute, 100)
	handler := NewOpsHandler(sched, rewardsMock, zap.NewNop())
	router := setupOpsRouter(handler)

	req := httptest.NewRequest(http.MethodPost, "/internal/sweeps/rewards", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestOpsHandler_RetryReward(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(rewardsMock *domainmocks.RewardQueueMock)
		expectedStatus int
	}{
		{
			name: "Success",
			path: "/internal/rewards/5/retry",
			setupMock: func(rewardsMock *domainmocks.RewardQueueMock) {
				rewardsMock.EXPECT().
					Retry(mock.Anything, int64(5)).
					Return(&domain.RewardEvent{
						ID:         5,
						RewardType: domain.RewardTypeReviewWrite,
						Points:     100,
						Status:     domain.RewardStatusPending,
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid id",
			path:           "/internal/rewards/abc/retry",
			setupMock:      func(rewardsMock *domainmocks.RewardQueueMock) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Not found",
			path: "/internal/rewards/99/retry",
			setupMock: func(rewardsMock *domainmocks.RewardQueueMock) {
				rewardsMock.EXPECT().
					Retry(mock.Anything, int64(99)).
					Return(nil, service.ErrRewardNotFound).
					Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Not failed",
			path: "/internal/rewards/5/retry",
			setupMock: func(rewardsMock *domainmocks.RewardQueueMock) {
				rewardsMock.EXPECT().
					Retry(mock.Anything, int64(5)).
					Return(nil, service.ErrRewardNotFailed).
					Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Internal error",
			path: "/internal/rewards/5/retry",
			setupMock: func(rewardsMock *domainmocks.RewardQueueMock) {
				rewardsMock.EXPECT().
					Retry(mock.Anything, int64(5)).
					Return(nil, errors.New("database error")).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointsMock := domainmocks.NewPointLedgerMock(t)
			rewardsMock := domainmocks.NewRewardQueueMock(t)
			tt.setupMock(rewardsMock)

			sched := scheduler.New(pointsMock, rewardsMock, zap.NewNop(), time.Minute, 100)
			handler := NewOpsHandler(sched, rewardsMock, zap.NewNop())
			router := setupOpsRouter(handler)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Body.String(), `"reward_type":"REVIEW_WRITE"`)
			}
		})
	}
}

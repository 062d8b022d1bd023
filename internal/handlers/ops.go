package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/domain"
	"github.com/feedshop/order-settlement/internal/scheduler"
	"github.com/feedshop/order-settlement/internal/service"
)

// OpsHandler обрабатывает служебные запросы:
// запуск расчётных проходов по требованию и повтор событий вознаграждений
type OpsHandler struct {
	scheduler *scheduler.Scheduler
	rewards   domain.RewardQueue
	logger    *zap.Logger
}

// NewOpsHandler создает новый OpsHandler
func NewOpsHandler(sched *scheduler.Scheduler, rewards domain.RewardQueue, logger *zap.Logger) *OpsHandler {
	return &OpsHandler{
		scheduler: sched,
		rewards:   rewards,
		logger:    logger,
	}
}

// TriggerExpirySweep запускает сгорание просроченных баллов
func (h *OpsHandler) TriggerExpirySweep(w http.ResponseWriter, r *http.Request) {
	h.scheduler.RunExpirySweep(r.Context())
	w.WriteHeader(http.StatusAccepted)
}

// TriggerRewardSweep запускает обработку очереди вознаграждений
func (h *OpsHandler) TriggerRewardSweep(w http.ResponseWriter, r *http.Request) {
	h.scheduler.RunRewardSweep(r.Context())
	w.WriteHeader(http.StatusAccepted)
}

// RetryReward возвращает упавшее событие вознаграждения в очередь
func (h *OpsHandler) RetryReward(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	event, err := h.rewards.Retry(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRewardNotFound):
			http.Error(w, "reward event not found", http.StatusNotFound)
		case errors.Is(err, service.ErrRewardNotFailed):
			http.Error(w, "reward event is not in FAILED status", http.StatusConflict)
		default:
			h.logger.Error("failed to retry reward event",
				zap.Int64("event_id", eventID),
				zap.Error(err),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(event); err != nil {
		h.logger.Error("failed to encode reward event", zap.Error(err))
	}
}

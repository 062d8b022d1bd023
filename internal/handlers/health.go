package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// DBPinger проверяет доступность базы данных
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SweepStatus сообщает, запущен ли планировщик расчётных проходов
type SweepStatus interface {
	Running() bool
}

// HealthHandler отвечает на запросы о состоянии сервиса расчётов
type HealthHandler struct {
	db        DBPinger
	scheduler SweepStatus
	logger    *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(db DBPinger, sched SweepStatus, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		scheduler: sched,
		logger:    logger,
	}
}

// HealthResponse описывает состояние сервиса и его подсистем
type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Database  string `json:"database"`
	Scheduler string `json:"scheduler"`
}

// Health возвращает состояние подсистем: базы и планировщика проходов
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Service:   "order-settlement",
		Status:    "ok",
		Database:  "ok",
		Scheduler: "running",
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	if !h.scheduler.Running() {
		response.Status = "degraded"
		response.Scheduler = "stopped"
	}

	w.Header().Set("Content-Type", "application/json")
	if response.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready сообщает о готовности принимать трафик: база доступна,
// планировщик расчётных проходов запущен
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	if !h.scheduler.Running() {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

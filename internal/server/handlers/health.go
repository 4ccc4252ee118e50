package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"galaxy-server/internal/shared/response"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker reports the health of an optional dependency, nil meaning healthy
type Checker interface {
	Healthy(ctx context.Context) error
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

type HealthHandler struct {
	db    Pinger
	redis Checker
}

func NewHealthHandler(db Pinger, redis Checker) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// ServeHTTP answers 503 when the database is unreachable; a Redis outage only degrades the status
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  "connected",
		Redis:     "connected",
	}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Database ping failed", "error", err)
		resp.Database = "disconnected"
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	if h.redis == nil {
		resp.Redis = "disabled"
	} else if err := h.redis.Healthy(ctx); err != nil {
		logger.Warn("Redis ping failed", "error", err)
		resp.Redis = "disconnected"
		if status == http.StatusOK {
			resp.Status = "degraded"
		}
	}

	response.Success(w, status, resp)
}

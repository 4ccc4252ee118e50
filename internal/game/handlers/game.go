package handlers

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/game"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type GameHandler struct {
	service *game.Service
}

func NewGameHandler(service *game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// AdvanceTime accepts an optional {"years": n} body; an empty body uses the default step
func (h *GameHandler) AdvanceTime(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "advance_time")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	var req game.AdvanceRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.AdvanceTime(r.Context(), claims.PlayerID, req.Years)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "game_state")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	state, err := h.service.State(r.Context(), claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, state)
}

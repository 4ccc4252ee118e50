package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"galaxy-server/internal/exploration"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type ExplorationHandler struct {
	service *exploration.Service
}

func NewExplorationHandler(service *exploration.Service) *ExplorationHandler {
	return &ExplorationHandler{service: service}
}

func (h *ExplorationHandler) Explore(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "explore")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	var req exploration.ExploreRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := h.service.Explore(r.Context(), claims.PlayerID, req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

func (h *ExplorationHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "search_systems")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	query := r.URL.Query()
	filters := exploration.SearchFilters{
		Query:    query.Get("q"),
		StarType: query.Get("starType"),
	}
	if raw := query.Get("minPlanets"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("minPlanets must be an integer", err))
			return
		}
		filters.MinPlanets = n
	}

	results, err := h.service.Search(r.Context(), claims.PlayerID, filters)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, results)
}

func (h *ExplorationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "nearby_systems")

	query := r.URL.Query()
	x, errX := strconv.ParseFloat(query.Get("x"), 64)
	y, errY := strconv.ParseFloat(query.Get("y"), 64)
	if errX != nil || errY != nil {
		response.Error(w, r, logger, errors.Validation("x and y must be numbers"))
		return
	}

	var maxDistance float64
	if raw := query.Get("maxDistance"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("maxDistance must be a number", err))
			return
		}
		maxDistance = d
	}

	nearby, err := h.service.Nearby(r.Context(), x, y, maxDistance)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, nearby)
}

func (h *ExplorationHandler) Popular(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "popular_systems")

	popular, err := h.service.Popular(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, popular)
}

func (h *ExplorationHandler) Recent(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "recent_discoveries")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	recent, err := h.service.Recent(r.Context(), claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, recent)
}

func (h *ExplorationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "exploration_stats")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	stats, err := h.service.Stats(r.Context(), claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, stats)
}

func (h *ExplorationHandler) Events(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "galactic_events")

	events, err := h.service.ActiveEvents(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, events)
}

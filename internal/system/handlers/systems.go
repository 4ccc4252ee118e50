package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"galaxy-server/internal/generator"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
	"galaxy-server/internal/system"
)

const defaultCometCount = 5

// YearSource reports the galactic year a player's clock is at
type YearSource interface {
	GalacticYear(ctx context.Context, playerID int) (int, error)
}

type SystemHandler struct {
	service *system.Service
	years   YearSource
}

func NewSystemHandler(service *system.Service, years YearSource) *SystemHandler {
	return &SystemHandler{service: service, years: years}
}

func (h *SystemHandler) CreateSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_system")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	var params generator.Params
	if err := response.DecodeJSON(r, &params); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	rec, err := h.service.CreateSystem(r.Context(), claims.PlayerID, params)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, rec)
}

func (h *SystemHandler) ListSystems(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_systems")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	records, err := h.service.ListOwned(r.Context(), claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, records)
}

func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	logger := slog.With("handler", "get_system", "system_id", id)

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	rec, err := h.service.GetSystem(r.Context(), claims.PlayerID, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, rec)
}

func (h *SystemHandler) GetComets(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	logger := slog.With("handler", "get_comets", "system_id", id)

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	query := r.URL.Query()
	count, err := intParam(query.Get("count"), defaultCometCount)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("count must be an integer", err))
		return
	}
	simTime, err := floatParam(query.Get("time"), 0)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("time must be a number", err))
		return
	}

	year, err := h.years.GalacticYear(r.Context(), claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	report, err := h.service.Comets(r.Context(), claims.PlayerID, id, count, simTime, year)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, report)
}

func (h *SystemHandler) GetResonances(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	logger := slog.With("handler", "get_resonances", "system_id", id)

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	report, err := h.service.Resonances(r.Context(), claims.PlayerID, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, report)
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

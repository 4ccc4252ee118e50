package handlers

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/auth"
	"galaxy-server/internal/player"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/cookies"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

type AnonymousHandler struct {
	playerService *player.Service
	authService   *auth.Service
	cfg           *config.Config
}

func NewAnonymousHandler(playerService *player.Service, authService *auth.Service, cfg *config.Config) *AnonymousHandler {
	return &AnonymousHandler{
		playerService: playerService,
		authService:   authService,
		cfg:           cfg,
	}
}

// ServeHTTP signs a guest explorer in, the player record lives on after the cookie expires
func (h *AnonymousHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "anonymous_login")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	p, err := h.playerService.CreateAnonymous(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := h.authService.IssueToken(p.ID, p.Username, p.Role.String(), true)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to issue token", err))
		return
	}

	cookies.SetAuthCookie(w, h.cfg, token)

	logger.Info("Anonymous explorer signed in", "player_id", p.ID, "username", p.Username)
	response.Success(w, http.StatusCreated, p)
}

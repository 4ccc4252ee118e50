package handlers

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/cookies"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

func LogoutHandler(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("handler", "logout")

		if r.Method != http.MethodPost {
			response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
			return
		}

		cookies.ClearAuthCookie(w, cfg)
		logger.Debug("Auth cookie cleared")

		response.Success(w, http.StatusOK, map[string]bool{"success": true})
	}
}

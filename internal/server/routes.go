package server

import (
	"log/slog"
	"net/http"

	"galaxy-server/internal/auth"
	authHandlers "galaxy-server/internal/auth/handlers"
	"galaxy-server/internal/exploration"
	explorationHandlers "galaxy-server/internal/exploration/handlers"
	"galaxy-server/internal/game"
	gameHandlers "galaxy-server/internal/game/handlers"
	"galaxy-server/internal/middleware"
	"galaxy-server/internal/player"
	playerHandlers "galaxy-server/internal/player/handlers"
	serverHandlers "galaxy-server/internal/server/handlers"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/system"
	systemHandlers "galaxy-server/internal/system/handlers"
)

type Deps struct {
	Config             *config.Config
	Health             *serverHandlers.HealthHandler
	Authenticator      *middleware.Authenticator
	States             *auth.StateManager
	OAuthConfig        *auth.OAuthConfig
	AuthService        *auth.Service
	PlayerService      *player.Service
	SystemService      *system.Service
	GameService        *game.Service
	ExplorationService *exploration.Service
}

type Routes struct {
	Deps
}

func NewRoutes(d Deps) *Routes {
	return &Routes{Deps: d}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()
	protect := r.Authenticator.RequireFunc

	meHandler := playerHandlers.NewMeHandler(r.PlayerService)
	systemHandler := systemHandlers.NewSystemHandler(r.SystemService, r.PlayerService)
	gameHandler := gameHandlers.NewGameHandler(r.GameService)
	explorationHandler := explorationHandlers.NewExplorationHandler(r.ExplorationService)
	anonymousHandler := authHandlers.NewAnonymousHandler(r.PlayerService, r.AuthService, r.Config)

	googleAuthHandler := authHandlers.NewOAuthHandler(
		r.OAuthConfig.GoogleProvider,
		r.States,
		r.PlayerService,
		r.AuthService,
		r.Config,
		r.OAuthConfig.GoogleConfigured,
	)
	githubAuthHandler := authHandlers.NewOAuthHandler(
		r.OAuthConfig.GitHubProvider,
		r.States,
		r.PlayerService,
		r.AuthService,
		r.Config,
		r.OAuthConfig.GitHubConfigured,
	)

	// Public endpoints
	mux.Handle("GET /api/server/health", r.Health)

	// Protected endpoints
	mux.Handle("/api/players/me", r.Authenticator.Require(meHandler))

	mux.Handle("POST /api/systems", protect(systemHandler.CreateSystem))
	mux.Handle("GET /api/systems", protect(systemHandler.ListSystems))
	mux.Handle("GET /api/systems/{id}", protect(systemHandler.GetSystem))
	mux.Handle("GET /api/systems/{id}/comets", protect(systemHandler.GetComets))
	mux.Handle("GET /api/systems/{id}/resonances", protect(systemHandler.GetResonances))

	mux.Handle("POST /api/game/advance", protect(gameHandler.AdvanceTime))
	mux.Handle("GET /api/game/state", protect(gameHandler.GetState))

	mux.Handle("POST /api/exploration/explore", protect(explorationHandler.Explore))
	mux.Handle("GET /api/exploration/search", protect(explorationHandler.Search))
	mux.Handle("GET /api/exploration/nearby", protect(explorationHandler.Nearby))
	mux.Handle("GET /api/exploration/popular", protect(explorationHandler.Popular))
	mux.Handle("GET /api/exploration/recent", protect(explorationHandler.Recent))
	mux.Handle("GET /api/exploration/stats", protect(explorationHandler.Stats))
	mux.Handle("GET /api/exploration/events", protect(explorationHandler.Events))

	// OAuth endpoints
	mux.HandleFunc("GET /auth/google", googleAuthHandler.HandleAuth)
	mux.HandleFunc("GET /auth/google/callback", googleAuthHandler.HandleCallback)
	mux.HandleFunc("GET /auth/github", githubAuthHandler.HandleAuth)
	mux.HandleFunc("GET /auth/github/callback", githubAuthHandler.HandleCallback)
	mux.Handle("/auth/anonymous", anonymousHandler)
	mux.Handle("/auth/logout", authHandlers.LogoutHandler(r.Config))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health"},
		"protected_endpoints", []string{"/api/players/me", "/api/systems", "/api/game", "/api/exploration"},
		"auth_endpoints", []string{"/auth/google", "/auth/github", "/auth/anonymous", "/auth/logout"},
	)

	return mux
}

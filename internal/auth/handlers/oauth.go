package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"galaxy-server/internal/auth"
	"galaxy-server/internal/auth/providers"
	"galaxy-server/internal/player"
	"galaxy-server/internal/shared/config"
	"galaxy-server/internal/shared/cookies"
	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/response"
)

const exchangeTimeout = 30 * time.Second

type OAuthHandler struct {
	provider      providers.OAuthProvider
	states        *auth.StateManager
	playerService *player.Service
	authService   *auth.Service
	cfg           *config.Config
	isConfigured  bool
}

func NewOAuthHandler(
	provider providers.OAuthProvider,
	states *auth.StateManager,
	playerService *player.Service,
	authService *auth.Service,
	cfg *config.Config,
	isConfigured bool,
) *OAuthHandler {
	return &OAuthHandler{
		provider:      provider,
		states:        states,
		playerService: playerService,
		authService:   authService,
		cfg:           cfg,
		isConfigured:  isConfigured,
	}
}

func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	redirectURI := resolveRedirectURI(h.cfg.Frontend.URL, r.URL.Query().Get("redirect_uri"))

	state, err := h.states.Generate(name, r.UserAgent(), redirectURI)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	http.Redirect(w, r, h.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	query := r.URL.Query()
	code := query.Get("code")
	state := query.Get("state")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	entry, err := h.states.Validate(state, name, r.UserAgent())
	redirectURI := entry.RedirectURI
	if redirectURI == "" {
		redirectURI = h.cfg.Frontend.URL
	}
	if err != nil {
		logger.Warn("OAuth state rejected", "error", err)
		h.redirectWithError(w, r, redirectURI, "invalid_state")
		return
	}

	if oauthErr := query.Get("error"); oauthErr != "" {
		logger.Warn("OAuth authorization denied",
			"oauth_error", oauthErr,
			"error_description", query.Get("error_description"))
		h.redirectWithError(w, r, redirectURI, "oauth_denied")
		return
	}

	if code == "" {
		logger.Error("OAuth callback missing authorization code")
		h.redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), exchangeTimeout)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		h.redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info", "error", err)
		h.redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userLogger := logger.With("provider_user_id", userInfo.ID)

	if userInfo.Email == "" || !userInfo.EmailVerified {
		userLogger.Error("User missing verified email")
		h.redirectWithError(w, r, redirectURI, "email_not_verified")
		return
	}

	p, err := h.resolvePlayer(ctx, name, userInfo)
	if err != nil {
		userLogger.Error("Failed to resolve player for OAuth login", "error", err)
		h.redirectWithError(w, r, redirectURI, "database_error")
		return
	}

	jwtToken, err := h.authService.IssueToken(p.ID, p.Username, p.Role.String(), p.Anonymous)
	if err != nil {
		userLogger.Error("Failed to generate JWT token", "error", err, "player_id", p.ID)
		h.redirectWithError(w, r, redirectURI, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, h.cfg, jwtToken)

	userLogger.Info("OAuth authentication successful",
		"player_id", p.ID,
		"player_username", p.Username,
		"player_role", p.Role)

	http.Redirect(w, r, redirectURI+"/auth/callback?success=true", http.StatusTemporaryRedirect)
}

// resolvePlayer follows an existing provider link, or finds the player by email and links it
func (h *OAuthHandler) resolvePlayer(ctx context.Context, name string, userInfo *providers.OAuthUser) (*player.Player, error) {
	playerID, err := h.authService.FindPlayerByAuthProvider(ctx, name, userInfo.ID)
	if err == nil {
		return h.playerService.GetPlayerByID(ctx, playerID)
	}
	if !errors.IsType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	var avatar *string
	if userInfo.AvatarURL != "" {
		avatar = &userInfo.AvatarURL
	}

	p, err := h.playerService.FindOrCreatePlayerByOAuth(ctx, name, userInfo.Email, userInfo.Name, avatar)
	if err != nil {
		return nil, err
	}

	if err := h.authService.CreateAuthProvider(ctx, p.ID, name, userInfo.ID, userInfo.Email); err != nil {
		return nil, err
	}
	return p, nil
}

func (h *OAuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, redirectURI, code string) {
	target := fmt.Sprintf("%s/auth/error?error=%s", redirectURI, url.QueryEscape(code))
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// resolveRedirectURI only honours redirects back to the configured frontend origin
func resolveRedirectURI(frontendURL, requested string) string {
	if requested == "" {
		return frontendURL
	}

	want, err := url.Parse(frontendURL)
	if err != nil {
		return frontendURL
	}
	got, err := url.Parse(requested)
	if err != nil || got.Scheme != want.Scheme || got.Host != want.Host {
		return frontendURL
	}
	return strings.TrimRight(requested, "/")
}

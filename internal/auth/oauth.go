package auth

import (
	"log/slog"

	"galaxy-server/internal/auth/providers"
	"galaxy-server/internal/shared/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

type OAuthConfig struct {
	GitHubProvider   *providers.GitHubProvider
	GoogleProvider   *providers.GoogleProvider
	GitHubConfigured bool
	GoogleConfigured bool
}

func InitOAuth(cfg *config.Config) *OAuthConfig {
	logger := slog.With("component", "oauth", "operation", "init")

	githubConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.GitHub.ClientID,
		ClientSecret: cfg.OAuth.GitHub.ClientSecret,
		RedirectURL:  cfg.OAuth.GitHub.RedirectURL,
		Scopes:       cfg.OAuth.GitHub.Scopes,
		Endpoint:     github.Endpoint,
	}

	googleConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.Google.ClientID,
		ClientSecret: cfg.OAuth.Google.ClientSecret,
		RedirectURL:  cfg.OAuth.Google.RedirectURL,
		Scopes:       cfg.OAuth.Google.Scopes,
		Endpoint:     google.Endpoint,
	}

	oc := &OAuthConfig{
		GitHubProvider:   providers.NewGitHubProvider(githubConfig),
		GoogleProvider:   providers.NewGoogleProvider(googleConfig),
		GitHubConfigured: cfg.GitHubOAuthConfigured(),
		GoogleConfigured: cfg.GoogleOAuthConfigured(),
	}

	logger.Info("OAuth configuration completed",
		"github_configured", oc.GitHubConfigured,
		"google_configured", oc.GoogleConfigured,
	)
	if !oc.GitHubConfigured {
		logger.Warn("GitHub OAuth not configured - missing client credentials")
	}
	if !oc.GoogleConfigured {
		logger.Warn("Google OAuth not configured - missing client credentials")
	}

	return oc
}

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
)

const githubAPIURL = "https://api.github.com"

type githubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type GitHubProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewGitHubProvider(config *oauth2.Config) *GitHubProvider {
	return &GitHubProvider{config: config, apiURL: githubAPIURL}
}

func (p *GitHubProvider) Name() string {
	return "github"
}

// GetUserInfo reads the profile and then the email list, because the profile email is only
// present when the user made it public
func (p *GitHubProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	logger := slog.With("provider", "github", "operation", "get_user_info")
	client := p.config.Client(ctx, token)

	var info githubUserInfo
	if err := getJSON(client, p.apiURL+"/user", &info); err != nil {
		logger.Error("Failed to fetch GitHub user", "error", err)
		return nil, err
	}
	if info.ID == 0 {
		return nil, fmt.Errorf("github user info missing user ID")
	}

	var emails []githubEmail
	if err := getJSON(client, p.apiURL+"/user/emails", &emails); err != nil {
		logger.Warn("Failed to fetch GitHub emails", "error", err)
	}

	email, verified := pickGitHubEmail(emails)
	name := info.Name
	if name == "" {
		name = info.Login
	}

	return &OAuthUser{
		ID:            strconv.FormatInt(info.ID, 10),
		Email:         email,
		EmailVerified: verified,
		Name:          name,
		AvatarURL:     info.AvatarURL,
	}, nil
}

// pickGitHubEmail prefers the primary verified address, then any verified one
func pickGitHubEmail(emails []githubEmail) (string, bool) {
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, true
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, true
		}
	}
	return "", false
}

func getJSON(client *http.Client, url string, dst any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return nil
}

func (p *GitHubProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func (p *GitHubProvider) GetAuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"
)

func testToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "access", TokenType: "Bearer"}
}

func TestPickGitHubEmail(t *testing.T) {
	tests := []struct {
		name         string
		emails       []githubEmail
		wantEmail    string
		wantVerified bool
	}{
		{"none", nil, "", false},
		{"primary verified", []githubEmail{
			{Email: "other@example.com", Verified: true},
			{Email: "main@example.com", Primary: true, Verified: true},
		}, "main@example.com", true},
		{"primary unverified falls back", []githubEmail{
			{Email: "main@example.com", Primary: true},
			{Email: "alt@example.com", Verified: true},
		}, "alt@example.com", true},
		{"nothing verified", []githubEmail{{Email: "main@example.com", Primary: true}}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, verified := pickGitHubEmail(tt.emails)
			if email != tt.wantEmail || verified != tt.wantVerified {
				t.Errorf("got (%q, %v), want (%q, %v)", email, verified, tt.wantEmail, tt.wantVerified)
			}
		})
	}
}

func TestGitHubGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user":
			_, _ = w.Write([]byte(`{"id":99,"login":"vega","name":"","avatar_url":"https://a/v.png"}`))
		case "/user/emails":
			_, _ = w.Write([]byte(`[{"email":"vega@example.com","primary":true,"verified":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := NewGitHubProvider(&oauth2.Config{})
	p.apiURL = srv.URL

	user, err := p.GetUserInfo(context.Background(), testToken())
	if err != nil {
		t.Fatalf("GetUserInfo: %v", err)
	}
	if user.ID != "99" || user.Name != "vega" || user.Email != "vega@example.com" || !user.EmailVerified {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestGoogleGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g-1","email":"altair@example.com","verified_email":true,"name":"Altair","picture":"https://p"}`))
	}))
	defer srv.Close()

	p := NewGoogleProvider(&oauth2.Config{})
	p.userInfoURL = srv.URL

	user, err := p.GetUserInfo(context.Background(), testToken())
	if err != nil {
		t.Fatalf("GetUserInfo: %v", err)
	}
	if user.ID != "g-1" || user.Email != "altair@example.com" || !user.EmailVerified || user.AvatarURL != "https://p" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestGoogleGetUserInfoErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := NewGoogleProvider(&oauth2.Config{})
	p.userInfoURL = srv.URL

	if _, err := p.GetUserInfo(context.Background(), testToken()); err == nil {
		t.Error("expected error on non-200 status")
	}
}

package cookies

import (
	"net/http"
	"net/url"

	"galaxy-server/internal/shared/config"
)

const AuthCookieName = "auth_token"

func SetAuthCookie(w http.ResponseWriter, cfg *config.Config, token string) {
	cookie := authCookie(cfg)
	cookie.Value = token
	cookie.MaxAge = int(cfg.Auth.TokenExpiration.Seconds())

	http.SetCookie(w, cookie)
}

func ClearAuthCookie(w http.ResponseWriter, cfg *config.Config) {
	cookie := authCookie(cfg)
	cookie.MaxAge = -1

	http.SetCookie(w, cookie)
}

func authCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     AuthCookieName,
		Path:     "/",
		Domain:   cookieDomain(cfg.Frontend.URL),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: parseSameSite(cfg.Auth.CookieSameSite),
	}
}

// cookieDomain is empty for local frontends so the browser scopes the cookie to the API host
func cookieDomain(frontendURL string) string {
	parsedURL, err := url.Parse(frontendURL)
	if err != nil {
		return ""
	}

	switch host := parsedURL.Hostname(); host {
	case "", "localhost", "127.0.0.1":
		return ""
	default:
		return host
	}
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

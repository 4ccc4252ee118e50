package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNearbyRejectsBadCoordinates(t *testing.T) {
	h := NewExplorationHandler(nil)

	for _, target := range []string{
		"/api/exploration/nearby",
		"/api/exploration/nearby?x=1",
		"/api/exploration/nearby?x=a&y=2",
		"/api/exploration/nearby?x=1&y=2&maxDistance=far",
	} {
		rec := httptest.NewRecorder()
		h.Nearby(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestExplorationRequiresClaims(t *testing.T) {
	h := NewExplorationHandler(nil)

	for name, handler := range map[string]http.HandlerFunc{
		"explore": h.Explore,
		"search":  h.Search,
		"recent":  h.Recent,
		"stats":   h.Stats,
	} {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/api/exploration", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, rec.Code)
		}
	}
}

package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"galaxy-server/internal/shared/errors"
	"galaxy-server/internal/shared/logger"
)

func TestErrorMapsTypeToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"validation", errors.Validation("starMass must be between 0.1 and 100"), http.StatusBadRequest, "validation"},
		{"not found", errors.NotFoundf("system not found"), http.StatusNotFound, "not_found"},
		{"conflict", errors.Conflictf("stale"), http.StatusConflict, "conflict"},
		{"forbidden", errors.Forbidden("not yours"), http.StatusForbidden, "forbidden"},
		{"method", errors.MethodNotAllowed("PUT"), http.StatusMethodNotAllowed, "method_not_allowed"},
		{"external", errors.External("redis down"), http.StatusServiceUnavailable, "external"},
		{"internal", errors.WrapInternal("boom", nil), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/systems", nil)

			Error(rec, req, logger.Discard(), tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantType || body.Code != tt.wantStatus {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, map[string]int{"planets": 3})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"planets":3`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Years int `json:"years"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"years": 250}`))
		var p payload
		if err := DecodeJSON(req, &p); err != nil {
			t.Fatalf("DecodeJSON() error = %v", err)
		}
		if p.Years != 250 {
			t.Errorf("Years = %d", p.Years)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		p := payload{Years: 100}
		if err := DecodeJSON(req, &p); err != nil {
			t.Fatalf("DecodeJSON() error = %v", err)
		}
		if p.Years != 100 {
			t.Errorf("Years = %d, want default kept", p.Years)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"decades": 3}`))
		var p payload
		err := DecodeJSON(req, &p)
		if !errors.IsType(err, errors.ErrorTypeValidation) {
			t.Fatalf("DecodeJSON() error = %v, want validation", err)
		}
	})
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryParams(t *testing.T) {
	if v, err := intParam("", defaultCometCount); err != nil || v != defaultCometCount {
		t.Errorf("intParam default = %d, %v", v, err)
	}
	if v, err := intParam("12", 0); err != nil || v != 12 {
		t.Errorf("intParam(12) = %d, %v", v, err)
	}
	if _, err := intParam("many", 0); err == nil {
		t.Error("expected error for non-numeric count")
	}
	if v, err := floatParam("2.5", 0); err != nil || v != 2.5 {
		t.Errorf("floatParam(2.5) = %g, %v", v, err)
	}
	if _, err := floatParam("soon", 0); err == nil {
		t.Error("expected error for non-numeric time")
	}
}

func TestHandlersRequireClaims(t *testing.T) {
	h := NewSystemHandler(nil, nil)

	tests := []struct {
		name    string
		method  string
		handler http.HandlerFunc
	}{
		{"create", http.MethodPost, h.CreateSystem},
		{"list", http.MethodGet, h.ListSystems},
		{"get", http.MethodGet, h.GetSystem},
		{"comets", http.MethodGet, h.GetComets},
		{"resonances", http.MethodGet, h.GetResonances},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(tt.method, "/api/systems", nil))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

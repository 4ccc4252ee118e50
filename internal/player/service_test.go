package player

import "testing"

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"vera@rubin.org", "vera"},
		{"@nohost", "explorer"},
		{"plain", "explorer"},
	}

	for _, tt := range tests {
		if got := usernameFromEmail(tt.email); got != tt.want {
			t.Errorf("usernameFromEmail(%q) = %q, want %q", tt.email, got, tt.want)
		}
	}
}

func TestShortTag(t *testing.T) {
	a, b := shortTag(), shortTag()
	if len(a) != 8 {
		t.Errorf("len(shortTag()) = %d, want 8", len(a))
	}
	if a == b {
		t.Error("shortTag returned the same value twice")
	}
}

func TestParsePlayerRole(t *testing.T) {
	if ParsePlayerRole("admin") != PlayerRoleAdmin {
		t.Error("admin not parsed")
	}
	if ParsePlayerRole("root") != PlayerRoleUser {
		t.Error("unknown role should fall back to user")
	}
}

func TestStatColumnsWhitelist(t *testing.T) {
	for _, stat := range []string{"worlds_created", "civilizations_evolved", "systems_discovered"} {
		if _, ok := statColumns[stat]; !ok {
			t.Errorf("statistic %q missing from whitelist", stat)
		}
	}
	if _, ok := statColumns["id"]; ok {
		t.Error("id must not be incrementable")
	}
}

// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/studcouncil/council/ledger"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_KEY_SALT", "test-salt")
	t.Setenv("VOTE_MODE", "counter")
	t.Setenv("STRICT_VOTING", "true")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "none.env")})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.VoteMode != ledger.ModeCounter {
		t.Errorf("expected counter mode, got %s", cfg.VoteMode)
	}
	if !cfg.StrictVoting {
		t.Error("expected strict voting from env")
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m session TTL, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "s1")

	cfg, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "none.env")})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "council.db" {
		t.Errorf("expected sqlite council.db, got %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.VoteMode != ledger.ModeReaction {
		t.Errorf("expected reaction mode, got %s", cfg.VoteMode)
	}
	if cfg.SessionTTL != 2*time.Hour || cfg.SessionSweep != 10*time.Minute {
		t.Errorf("unexpected session timings %s %s", cfg.SessionTTL, cfg.SessionSweep)
	}
	if cfg.MaxSessions != 10000 || cfg.SecureCookies {
		t.Errorf("unexpected session limits %d secure=%v", cfg.MaxSessions, cfg.SecureCookies)
	}
}

func TestParseFlags_SessionCookieSettings(t *testing.T) {
	t.Setenv("ADMIN_KEY_SALT", "s1")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("MAX_SESSIONS", "500")

	cfg, err := ParseFlags([]string{"-env-file", filepath.Join(t.TempDir(), "none.env")})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.SecureCookies {
		t.Error("expected secure cookies from env")
	}
	if cfg.MaxSessions != 500 {
		t.Errorf("expected 500 max sessions, got %d", cfg.MaxSessions)
	}

	cfg, err = ParseFlags([]string{
		"-env-file", filepath.Join(t.TempDir(), "none.env"),
		"-secure-cookies=false", "-max-sessions", "20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SecureCookies {
		t.Error("CLI -secure-cookies=false should override env")
	}
	if cfg.MaxSessions != 20 {
		t.Errorf("expected 20 max sessions, got %d", cfg.MaxSessions)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STRICT_VOTING", "true")

	cfg, err := ParseFlags([]string{
		"-env-file", filepath.Join(t.TempDir(), "none.env"),
		"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-strict-voting=false",
	})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StrictVoting {
		t.Error("CLI -strict-voting=false should override env")
	}
}

func TestParseFlags_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ADMIN_KEY_SALT=from-file\nVOTE_MODE=counter\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_KEY_SALT", "")
	t.Setenv("VOTE_MODE", "")
	// godotenv only fills unset variables
	os.Unsetenv("ADMIN_KEY_SALT")
	os.Unsetenv("VOTE_MODE")

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminKeySalt != "from-file" {
		t.Errorf("expected salt from dotenv, got %q", cfg.AdminKeySalt)
	}
	if cfg.VoteMode != ledger.ModeCounter {
		t.Errorf("expected counter mode from dotenv, got %s", cfg.VoteMode)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	noEnv := filepath.Join(t.TempDir(), "none.env")

	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing salt", map[string]string{"ADMIN_KEY_SALT": ""}, nil},
		{"bad port", map[string]string{"ADMIN_KEY_SALT": "s", "PORT": "abc"}, nil},
		{"bad vote mode", map[string]string{"ADMIN_KEY_SALT": "s"}, []string{"-vote-mode", "bmj"}},
		{"postgres without url", map[string]string{"ADMIN_KEY_SALT": "s", "DATABASE_URL": ""}, []string{"-t", "postgres"}},
		{"unknown database type", map[string]string{"ADMIN_KEY_SALT": "s"}, []string{"-t", "mysql"}},
		{"bad bool", map[string]string{"ADMIN_KEY_SALT": "s", "RECORD_FEEDBACK": "maybe"}, nil},
		{"bad duration", map[string]string{"ADMIN_KEY_SALT": "s", "SESSION_SWEEP": "soon"}, nil},
		{"bad secure cookies", map[string]string{"ADMIN_KEY_SALT": "s", "SECURE_COOKIES": "perhaps"}, nil},
		{"negative max sessions", map[string]string{"ADMIN_KEY_SALT": "s", "MAX_SESSIONS": "-5"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := append([]string{"-env-file", noEnv}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

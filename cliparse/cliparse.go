package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/studcouncil/council/ledger"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	AdminKeySalt   string
	VoteMode       ledger.Mode
	StrictVoting   bool
	RecordFeedback bool
	SeedFile       string
	SessionTTL     time.Duration
	SessionSweep   time.Duration
	MaxSessions    int
	SecureCookies  bool
	PrintAdminKeys bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, voteMode string

	fset := flag.NewFlagSet("council", flag.ContinueOnError)

	fset.StringVar(&envFile, "env-file", ".env", "Dotenv file to load (missing file is ignored)")

	// Network config (can be CLI args or env)
	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fset.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fset.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	// Page behaviour
	fset.StringVar(&voteMode, "vote-mode", "", "Vote counting: reaction or counter")
	fset.BoolVar(&cfg.StrictVoting, "strict-voting", false, "Reject repeated votes in counter mode")
	fset.BoolVar(&cfg.RecordFeedback, "record-feedback", false, "Store page form submissions")
	fset.StringVar(&cfg.SeedFile, "seed", "", "YAML seed file (default: built-in data)")
	fset.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle time before a session is dropped")
	fset.DurationVar(&cfg.SessionSweep, "session-sweep", 0, "How often idle sessions are swept")
	fset.IntVar(&cfg.MaxSessions, "max-sessions", 0, "Most sessions kept in memory (oldest idle is evicted)")
	fset.BoolVar(&cfg.SecureCookies, "secure-cookies", false, "Mark the session cookie HTTPS only")
	fset.BoolVar(&cfg.PrintAdminKeys, "print-admin-keys", false, "Print admin keys for the salt and exit")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "council.db"
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if voteMode == "" {
		voteMode = os.Getenv("VOTE_MODE")
	}
	if voteMode == "" {
		voteMode = string(ledger.ModeReaction)
	}
	mode, err := ledger.ParseMode(voteMode)
	if err != nil {
		return Config{}, err
	}
	cfg.VoteMode = mode

	if !set["strict-voting"] {
		if cfg.StrictVoting, err = envBool("STRICT_VOTING"); err != nil {
			return Config{}, err
		}
	}
	if !set["record-feedback"] {
		if cfg.RecordFeedback, err = envBool("RECORD_FEEDBACK"); err != nil {
			return Config{}, err
		}
	}

	if !set["secure-cookies"] {
		if cfg.SecureCookies, err = envBool("SECURE_COOKIES"); err != nil {
			return Config{}, err
		}
	}

	if cfg.MaxSessions == 0 {
		if maxStr := os.Getenv("MAX_SESSIONS"); maxStr != "" {
			n, err := strconv.Atoi(maxStr)
			if err != nil || n < 0 {
				return Config{}, errors.New("invalid MAX_SESSIONS env variable")
			}
			cfg.MaxSessions = n
		} else {
			cfg.MaxSessions = 10000 // default
		}
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	if cfg.SessionTTL == 0 {
		if cfg.SessionTTL, err = envDuration("SESSION_TTL", 2*time.Hour); err != nil {
			return Config{}, err
		}
	}
	if cfg.SessionSweep == 0 {
		if cfg.SessionSweep, err = envDuration("SESSION_SWEEP", 10*time.Minute); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable: %w", name, err)
	}
	return b, nil
}

func envDuration(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return d, nil
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/studcouncil/council/auth"
	"github.com/studcouncil/council/cliparse"
	"github.com/studcouncil/council/db"
	"github.com/studcouncil/council/ledger"
	"github.com/studcouncil/council/middleware"
	"github.com/studcouncil/council/page"
	"github.com/studcouncil/council/router"
	"github.com/studcouncil/council/seed"
	"github.com/studcouncil/council/session"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKeys {
		for _, scope := range []string{auth.ScopeNews, auth.ScopeFeedback} {
			fmt.Printf("%s\t%s\n", scope, auth.GenerateAdminKey(scope, cfg.AdminKeySalt))
		}
		return
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Load seed content
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		slog.Error("seed loading failed", "error", err, "file", cfg.SeedFile)
		os.Exit(1)
	}
	slog.Info("Seed data loaded", "polls", len(data.Polls), "events", len(data.Events))

	renderer, err := page.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	// Visitor sessions hold the poll state
	store := session.NewStore(session.Config{
		Polls:       data.Polls,
		Ledger:      ledger.Options{Mode: cfg.VoteMode, Strict: cfg.StrictVoting},
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
		Secure:      cfg.SecureCookies,
	})
	if err := store.StartSweeper(cfg.SessionSweep); err != nil {
		slog.Error("session sweeper failed", "error", err)
		os.Exit(1)
	}
	defer store.StopSweeper()

	// Create router
	mux := router.NewRouter(dbConn, cfg, store, data, renderer)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "vote_mode", cfg.VoteMode, "strict", cfg.StrictVoting)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/db"
	"github.com/danielhkuo/simple-poll/handlers"
	"github.com/danielhkuo/simple-poll/live"
	"github.com/danielhkuo/simple-poll/middleware"
	"github.com/danielhkuo/simple-poll/render"
	"github.com/danielhkuo/simple-poll/router"
	"github.com/danielhkuo/simple-poll/store"
)

func main() {
	var err error

	// .env first so its values act as environment defaults
	if err = cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(middleware.NewLogger(os.Stderr, cfg.LogLevel))

	if cfg.InsecureSecret() {
		slog.Warn("Using the default secret key; set SECRET_KEY in production")
	}

	// Load the poll
	seed := store.DefaultSeed()
	if cfg.PollFile != "" {
		seed, err = store.LoadSeed(cfg.PollFile)
		if err != nil {
			slog.Error("poll file load failed", "error", err, "path", cfg.PollFile)
			os.Exit(1)
		}
	}
	st := store.NewFromSeed(seed)
	slog.Info("Poll ready", "question", st.Question(), "options", st.Len())

	// Optional audit trail
	var audit handlers.Recorder
	if cfg.AuditEnabled() {
		var dbConn *sql.DB
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Audit trail ready", "type", cfg.DatabaseType)
		audit = db.NewAuditLog(dbConn)
	}

	renderer, err := render.New(cfg.Env)
	if err != nil {
		slog.Error("template setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	hub := live.NewHub()
	mux := router.NewRouter(st, renderer, hub, audit, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
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
	slog.Info("Listening", "port", cfg.Port, "env", cfg.Env)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// @title			ROI Calculator API
// @version		1.0
// @description	Projects the monthly cost and benefit of an AI voice service for inbound or outbound call handling.
// @BasePath		/api/v1

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mtlprog/roicalc/internal/config"
	"github.com/mtlprog/roicalc/internal/database"
	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/handler"
	"github.com/mtlprog/roicalc/internal/handler/dto"
	"github.com/mtlprog/roicalc/internal/logger"
	"github.com/mtlprog/roicalc/internal/middleware"
	"github.com/mtlprog/roicalc/internal/repository"
	"github.com/mtlprog/roicalc/internal/service"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "roicalc",
		Usage: "AI voice automation ROI calculator",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   string(logger.FormatJSON),
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL for sessions; empty keeps sessions in memory",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.DurationFlag{
				Name:    "session-ttl",
				Value:   config.DefaultSessionTTL,
				Usage:   "Idle time after which a wizard session expires",
				EnvVars: []string{"SESSION_TTL"},
			},
		}, serveFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(os.Stdout, logger.ParseLevel(c.String("log-level")), logger.ParseFormat(c.String("log-format")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:      "calculate",
				Usage:     "Compute an ROI projection and print it as JSON",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mode",
						Aliases:  []string{"m"},
						Usage:    "Call direction (inbound, outbound)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "set",
						Aliases: []string{"s"},
						Usage:   "Parameter override as name=value; repeatable",
					},
				},
				Action: runCalculate,
			},
			{
				Name:  "parameters",
				Usage: "Print the parameter catalogue for a mode as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mode",
						Aliases:  []string{"m"},
						Usage:    "Call direction (inbound, outbound)",
						Required: true,
					},
				},
				Action: runParameters,
			},
			{
				Name:   "purge-sessions",
				Usage:  "Delete expired wizard sessions from the database",
				Action: runPurgeSessions,
			},
		},
		Action: runServe,
	}
}

// serveFlags are accepted both by the serve command and at the top level,
// where running roicalc without a command also starts the server.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.Float64Flag{
			Name:    "rate-limit",
			Value:   config.DefaultRateLimit,
			Usage:   "API requests per second per client IP (0 disables)",
			EnvVars: []string{"RATE_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "rate-burst",
			Value:   config.DefaultRateBurst,
			Usage:   "API request burst per client IP",
			EnvVars: []string{"RATE_BURST"},
		},
		&cli.DurationFlag{
			Name:    "purge-interval",
			Value:   config.DefaultPurgeInterval,
			Usage:   "How often expired sessions are deleted",
			EnvVars: []string{"PURGE_INTERVAL"},
		},
	}
}

// serveOptions is the validated server configuration.
type serveOptions struct {
	Port          string
	SessionTTL    time.Duration
	RateLimit     float64
	RateBurst     int
	PurgeInterval time.Duration
}

// sessionTTL rejects a TTL that would expire sessions as soon as they are created.
func sessionTTL(c *cli.Context) (time.Duration, error) {
	ttl := c.Duration("session-ttl")
	if ttl <= 0 {
		return 0, fmt.Errorf("session-ttl must be positive, got %s", ttl)
	}
	return ttl, nil
}

func newServeOptions(c *cli.Context) (serveOptions, error) {
	ttl, err := sessionTTL(c)
	if err != nil {
		return serveOptions{}, err
	}

	opts := serveOptions{
		Port:          c.String("port"),
		SessionTTL:    ttl,
		RateLimit:     c.Float64("rate-limit"),
		RateBurst:     c.Int("rate-burst"),
		PurgeInterval: c.Duration("purge-interval"),
	}
	if opts.Port == "" {
		return serveOptions{}, errors.New("port must not be empty")
	}
	if opts.PurgeInterval <= 0 {
		return serveOptions{}, fmt.Errorf("purge-interval must be positive, got %s", opts.PurgeInterval)
	}
	if opts.RateLimit < 0 {
		return serveOptions{}, fmt.Errorf("rate-limit must not be negative, got %g", opts.RateLimit)
	}
	if opts.RateLimit > 0 && opts.RateBurst < 1 {
		return serveOptions{}, fmt.Errorf("rate-burst must be at least 1, got %d", opts.RateBurst)
	}
	return opts, nil
}

// openStore picks the PostgreSQL store when a database URL is configured.
// The returned DB is nil for the in-memory store.
func openStore(c *cli.Context) (repository.SessionStore, *database.DB, error) {
	ctx := c.Context
	databaseURL := c.String("database-url")
	if databaseURL == "" {
		slog.Info("no database configured, keeping sessions in memory")
		return repository.NewMemorySessionStore(), nil, nil
	}

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repository.NewPostgresSessionStore(db.Pool()), db, nil
}

// serve is replaced in tests to inspect the options without binding a port.
var serve = runServer

func runServe(c *cli.Context) error {
	opts, err := newServeOptions(c)
	if err != nil {
		return err
	}
	return serve(c, opts)
}

func runServer(c *cli.Context, opts serveOptions) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, db, err := openStore(c)
	if err != nil {
		return err
	}

	var pinger handler.Pinger
	if db != nil {
		defer db.Close()
		pinger = db
	}

	sessions := service.NewSessionService(store, opts.SessionTTL)
	go service.RunExpiryLoop(ctx, sessions, opts.PurgeInterval)

	h := handler.New(sessions, pinger)
	if opts.RateLimit > 0 {
		rl := middleware.NewRateLimiter(opts.RateLimit, opts.RateBurst)
		defer rl.Stop()
		h.WithRateLimiter(rl)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           middleware.RequestLogger(mux),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+opts.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// parseOverrides turns name=value pairs into parameter updates.
// "true" and "false" become boolean updates; everything else must be a number.
func parseOverrides(pairs []string) ([]domain.ParamUpdate, error) {
	updates := make([]domain.ParamUpdate, 0, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("override %q must look like name=value", pair)
		}

		if raw == "true" || raw == "false" {
			updates = append(updates, domain.FlagUpdate(name, raw == "true"))
			continue
		}

		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidParameterValue, name, raw)
		}
		updates = append(updates, domain.NumberUpdate(name, number))
	}
	return updates, nil
}

func runCalculate(c *cli.Context) error {
	updates, err := parseOverrides(c.StringSlice("set"))
	if err != nil {
		return err
	}

	params, result, err := service.Calculate(domain.Mode(c.String("mode")), updates)
	if err != nil {
		return fmt.Errorf("calculate: %w", err)
	}

	return printJSON(c, dto.CalculateResponse{
		Mode:       string(params.Mode()),
		Parameters: params,
		Results:    dto.ToResultResponse(result),
	})
}

func runParameters(c *cli.Context) error {
	mode := domain.Mode(c.String("mode"))
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	return printJSON(c, dto.ToParametersResponse(mode))
}

func runPurgeSessions(c *cli.Context) error {
	if c.String("database-url") == "" {
		return errors.New("purge-sessions requires --database-url")
	}

	ttl, err := sessionTTL(c)
	if err != nil {
		return err
	}

	store, db, err := openStore(c)
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := service.NewSessionService(store, ttl).PurgeExpired(c.Context)
	if err != nil {
		return err
	}

	slog.Info("expired sessions purged", "count", removed)
	return nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

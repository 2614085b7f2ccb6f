package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/ironweek/internal/catalog"
	"github.com/claude/ironweek/internal/config"
	"github.com/claude/ironweek/internal/hydration"
	ironmcp "github.com/claude/ironweek/internal/mcp"
	"github.com/claude/ironweek/internal/planner"
	"github.com/claude/ironweek/internal/server"
	"github.com/claude/ironweek/internal/storage"
	"github.com/claude/ironweek/internal/workouts"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	flag.Parse()

	logOut := os.Stdout
	if *mcpMode {
		// stdout carries the MCP stream in stdio mode.
		logOut = os.Stderr
	}
	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("IronWeek starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Run migrations
	if err := storage.RunMigrations(cfg.Storage.Driver, cfg.Storage.DSN()); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied", "driver", cfg.Storage.Driver)

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	// Open storage
	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN())
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("storage opened", "driver", cfg.Storage.Driver)

	// Build state containers. Hydration runs its day-rollover check here.
	cat, err := catalog.New(ctx, db, log)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	wk, err := workouts.New(ctx, db, log)
	if err != nil {
		log.Error("failed to load workouts", "error", err)
		os.Exit(1)
	}
	pl, err := planner.New(ctx, db, log)
	if err != nil {
		log.Error("failed to load plans", "error", err)
		os.Exit(1)
	}
	hy, err := hydration.New(ctx, db, log)
	if err != nil {
		log.Error("failed to load hydration state", "error", err)
		os.Exit(1)
	}

	// First-run seed (idempotent — skipped once the bootstrap marker exists)
	if err := cat.Seed(ctx); err != nil {
		log.Warn("catalog seed failed", "error", err)
	}

	if *mcpMode {
		mcpSrv := ironmcp.New(cat, wk, pl, hy, Version, log)
		log.Info("serving MCP over stdio")
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			log.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := server.New(cat, wk, pl, hy, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

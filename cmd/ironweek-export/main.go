// ironweek-export dumps every stored state snapshot as JSON, for backups or
// for moving state between the sqlite and postgres backends.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/ironweek/internal/config"
	"github.com/claude/ironweek/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	outPath := flag.String("out", "", "output file (defaults to stdout)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN())
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	keys, err := db.Keys(ctx)
	if err != nil {
		log.Error("failed to list keys", "error", err)
		os.Exit(1)
	}

	type export struct {
		Key       string          `json:"key"`
		Version   int             `json:"version"`
		UpdatedAt string          `json:"updated_at"`
		Payload   json.RawMessage `json:"payload"`
	}

	dump := make([]export, 0, len(keys))
	for _, key := range keys {
		snap, ok, err := db.Load(ctx, key)
		if err != nil {
			log.Error("failed to load snapshot", "key", key, "error", err)
			os.Exit(1)
		}
		if !ok {
			continue
		}
		dump = append(dump, export{
			Key:       key,
			Version:   snap.Version,
			UpdatedAt: snap.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Payload:   json.RawMessage(snap.Payload),
		})
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Error("failed to create output file", "path", *outPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		log.Error("failed to write export", "error", err)
		os.Exit(1)
	}
	log.Info("export complete", "keys", len(dump))
}

package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/halalai/quran-assistant/internal/bootstrap"
	"github.com/halalai/quran-assistant/internal/config"
	"github.com/halalai/quran-assistant/internal/observability/logging"
)

// ingest uploads a verse table from the local filesystem and queues an
// index rebuild, mirroring the /v1/corpus endpoint.
func main() {
	path := flag.String("file", "", "path to a verse table (.csv or .xlsx)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -file <verse-table>")
		os.Exit(2)
	}

	cfg := config.Load()
	logger := logging.NewJSONLogger("ingest", cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	f, err := os.Open(*path)
	if err != nil {
		logger.Error("open verse table failed", "path", *path, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(*path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	src, err := app.IngestUC.Upload(ctx, filepath.Base(*path), mimeType, f)
	if err != nil {
		logger.Error("upload failed", "path", *path, "error", err)
		os.Exit(1)
	}

	logger.Info("verse table queued for indexing", "source_id", src.ID, "filename", src.Filename)
	fmt.Println(src.ID)
}

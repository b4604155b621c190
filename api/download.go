// Package handler is the serverless entry point. The platform invokes
// Handler for every request to /api/download.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sync"

	h "github.com/veranemoloko/video-downloader/internal/api/http"
	"github.com/veranemoloko/video-downloader/internal/config"
	"github.com/veranemoloko/video-downloader/internal/extractor"
	"github.com/veranemoloko/video-downloader/internal/service"
	"github.com/veranemoloko/video-downloader/internal/storage"
)

var (
	downloadHandler *h.DownloadHandler
	setupErr        error
	setupOnce       sync.Once
)

func setup() {
	cfg, err := config.Load()
	if err != nil {
		setupErr = err
		slog.Error("failed to load configuration", "error", err)
		return
	}

	logger := config.NewLogger(cfg, os.Stdout)

	ex := extractor.NewYtdlpExtractor(logger,
		extractor.WithExecutable(cfg.YtdlpPath),
		extractor.WithProgressInterval(cfg.ProgressInterval),
		extractor.WithAutoInstall(cfg.AutoInstall),
	)
	svc := service.NewDownloadService(ex, storage.NewFileStorage(cfg.OutputDir), logger)

	downloadHandler = h.NewDownloadHandler(svc, logger)
}

// Handler serves the download endpoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(setup)

	if setupErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": setupErr.Error()})
		return
	}

	downloadHandler.Download(w, r)
}

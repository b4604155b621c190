package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veranemoloko/video-downloader/internal/domain"
	apperrors "github.com/veranemoloko/video-downloader/internal/errors"
	"github.com/veranemoloko/video-downloader/internal/metrics"
	"github.com/veranemoloko/video-downloader/internal/validation"
)

// DownloadServiceI defines the interface for the download business logic.
type DownloadServiceI interface {
	Download(ctx context.Context, req *domain.DownloadRequest) (*domain.DownloadResult, error)
}

// DownloadHandler handles HTTP download requests.
type DownloadHandler struct {
	downloadService DownloadServiceI
	logger          *slog.Logger
}

// NewDownloadHandler creates a new DownloadHandler with the provided service and logger.
func NewDownloadHandler(downloadService DownloadServiceI, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		logger:          logger,
	}
}

// Download handles GET /api/download?url=...&quality=...
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	req := domain.DownloadRequest{
		URL:     query.Get("url"),
		Quality: query.Get("quality"),
	}
	if req.Quality == "" {
		req.Quality = domain.DefaultQualityArg
	}

	if err := validation.ValidateRequest(&req); err != nil {
		h.logger.Warn("validation failed", "error", err)
		metrics.RequestsRejected.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("download requested", "url", req.URL, "quality", req.Quality)

	result, err := h.downloadService.Download(ctx, &req)
	if err != nil {
		var extractionErr *apperrors.ExtractionError
		if errors.As(err, &extractionErr) {
			h.logger.Error("extraction failed", "url", req.URL, "error", err)
		} else {
			h.logger.Error("download failed", "url", req.URL, "error", err)
		}

		writeJSON(w, http.StatusInternalServerError, domain.FailureResponse{
			Error:    failureMessage(result, err),
			Progress: progressOf(result),
		})
		return
	}

	writeJSON(w, http.StatusOK, domain.DownloadResponse{
		Message:  domain.DownloadCompleteMessage,
		FilePath: result.FilePath,
		Progress: progressOf(result),
	})
}

// Health handles GET /health.
func (h *DownloadHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func failureMessage(result *domain.DownloadResult, err error) string {
	if result != nil && result.Error != "" {
		return result.Error
	}
	return err.Error()
}

func progressOf(result *domain.DownloadResult) []string {
	if result == nil || result.Progress == nil {
		return []string{}
	}
	return result.Progress
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, domain.ErrorResponse{Error: message})
}

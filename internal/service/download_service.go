package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/veranemoloko/video-downloader/internal/domain"
	apperrors "github.com/veranemoloko/video-downloader/internal/errors"
	"github.com/veranemoloko/video-downloader/internal/extractor"
	"github.com/veranemoloko/video-downloader/internal/metrics"
	"github.com/veranemoloko/video-downloader/internal/storage"
)

// outputTemplate mirrors domain.OutputFilename: the title is rewritten with
// underscores by the extractor and cut to domain.MaxTitleLength characters.
var outputTemplate = fmt.Sprintf("%%(title).%ds.%%(ext)s", domain.MaxTitleLength)

type DownloadService struct {
	extractor   extractor.Extractor
	fileStorage *storage.FileStorage
	logger      *slog.Logger
}

// NewDownloadService creates a DownloadService writing into fileStorage.
func NewDownloadService(ex extractor.Extractor, fileStorage *storage.FileStorage, logger *slog.Logger) *DownloadService {
	return &DownloadService{
		extractor:   ex,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Download runs one extraction for req and blocks until it finishes.
// The returned result is never nil and always carries the progress lines
// collected so far. Extraction failures are returned as *apperrors.ExtractionError.
func (s *DownloadService) Download(ctx context.Context, req *domain.DownloadRequest) (*domain.DownloadResult, error) {
	quality := domain.ParseQuality(req.Quality)
	progress := domain.NewProgressLog()

	result := &domain.DownloadResult{
		ID:       uuid.NewString(),
		URL:      req.URL,
		Quality:  quality,
		Progress: progress.Lines(),
	}

	if s.extractor == nil {
		result.Error = apperrors.ErrExtractorUnset.Error()
		return result, apperrors.ErrExtractorUnset
	}
	if s.fileStorage == nil {
		result.Error = apperrors.ErrNoOutputDir.Error()
		return result, apperrors.ErrNoOutputDir
	}

	if err := s.fileStorage.EnsureDir(); err != nil {
		result.Error = err.Error()
		s.logger.Error("failed to prepare output directory", "dir", s.fileStorage.Dir(), "error", err)
		return result, err
	}

	s.logger.Info("downloading",
		"download_id", result.ID,
		"url", req.URL,
		"quality", quality,
	)

	metrics.DownloadsTotal.WithLabelValues(string(quality)).Inc()

	startTime := time.Now()
	info, err := s.extractor.Extract(
		ctx,
		req.URL,
		quality.Options(),
		s.fileStorage.Template(outputTemplate),
		progress,
	)
	duration := time.Since(startTime)
	metrics.DownloadDuration.Observe(duration.Seconds())

	result.Progress = progress.Lines()

	if err != nil {
		result.Error = err.Error()
		metrics.DownloadsFailed.WithLabelValues(string(quality)).Inc()

		s.logger.Error("download failed",
			"download_id", result.ID,
			"url", req.URL,
			"error", err,
			"progress_lines", len(result.Progress),
		)
		return result, &apperrors.ExtractionError{URL: req.URL, Err: err}
	}

	var title string
	if info != nil {
		title = info.Title
	}

	filename := domain.OutputFilename(title, quality)
	result.Title = title
	result.FilePath = s.fileStorage.Path(filename)

	metrics.DownloadsSuccess.WithLabelValues(string(quality)).Inc()

	if s.fileStorage.FileExists(filename) {
		if size, err := s.fileStorage.GetFileSize(filename); err == nil {
			metrics.DownloadBytes.Add(float64(size))
		}
	} else {
		s.logger.Warn("output file not found after download",
			"download_id", result.ID,
			"file_path", result.FilePath,
		)
	}

	s.logger.Info("download completed",
		"download_id", result.ID,
		"url", req.URL,
		"file_path", result.FilePath,
		"duration", duration,
	)

	return result, nil
}

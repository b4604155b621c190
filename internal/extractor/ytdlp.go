package extractor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/veranemoloko/video-downloader/internal/domain"
)

const errorPrefix = "ERROR:"

// YtdlpExtractor runs yt-dlp through go-ytdlp.
type YtdlpExtractor struct {
	executable  string
	interval    time.Duration
	autoInstall bool
	logger      *slog.Logger

	installOnce sync.Once
	installErr  error
}

// Option configures a YtdlpExtractor.
type Option func(*YtdlpExtractor)

// WithExecutable points the extractor at a specific yt-dlp binary.
func WithExecutable(path string) Option {
	return func(e *YtdlpExtractor) { e.executable = path }
}

// WithProgressInterval sets how often go-ytdlp delivers progress updates.
func WithProgressInterval(d time.Duration) Option {
	return func(e *YtdlpExtractor) { e.interval = d }
}

// WithAutoInstall makes the first extraction download yt-dlp if it is missing.
func WithAutoInstall(enabled bool) Option {
	return func(e *YtdlpExtractor) { e.autoInstall = enabled }
}

// NewYtdlpExtractor creates an extractor logging through logger.
func NewYtdlpExtractor(logger *slog.Logger, opts ...Option) *YtdlpExtractor {
	e := &YtdlpExtractor{
		interval: 100 * time.Millisecond,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract implements Extractor.
func (e *YtdlpExtractor) Extract(ctx context.Context, url string, opts domain.Options, output string, sink domain.ProgressSink) (*Info, error) {
	if err := e.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	var titles titleRecorder

	cmd := e.command(opts, output).
		ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
			if update.Info != nil && update.Info.Title != nil {
				titles.set(*update.Info.Title)
			}
			if ev, ok := toEvent(update); ok {
				sink.Report(ev)
			}
		})

	e.logger.Debug("running yt-dlp", "url", url, "format", opts.Format, "output", output)

	res, err := cmd.Run(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.logger.Warn("yt-dlp interrupted", "url", url, "error", ctxErr)
			return nil, ctxErr
		}

		var stderr string
		if res != nil {
			stderr = res.Stderr
		}
		e.logger.Error("yt-dlp process error", "url", url, "error", err, "stderr", stderr)
		return nil, errors.New(failureMessage(stderr, err))
	}

	title := resultTitle(res)
	if title == "" {
		title = titles.get()
	}

	return &Info{Title: title}, nil
}

// resultTitle reads the title from the info JSON printed on stdout. yt-dlp
// prints it even when the file is already on disk and no progress is sent.
func resultTitle(res *ytdlp.Result) string {
	if res == nil {
		return ""
	}

	infos, err := res.GetExtractedInfo()
	if err != nil {
		return ""
	}

	for i := len(infos) - 1; i >= 0; i-- {
		if t := infos[i].Title; t != nil && *t != "" {
			return *t
		}
	}
	return ""
}

func (e *YtdlpExtractor) command(opts domain.Options, output string) *ytdlp.Command {
	cmd := ytdlp.New().
		Format(opts.Format).
		Output(output).
		ReplaceInMetadata("title", " ", "_").
		WindowsFilenames().
		NoPlaylist().
		PrintJSON().
		Quiet().
		NoWarnings()

	if e.executable != "" {
		cmd = cmd.SetExecutable(e.executable)
	}

	if opts.MergeFormat != "" {
		cmd = cmd.MergeOutputFormat(opts.MergeFormat)
	}

	if pp := opts.Postprocess; pp != nil {
		cmd = cmd.ExtractAudio().
			AudioFormat(pp.Codec).
			AudioQuality(pp.Quality + "K")
	}

	return cmd
}

func (e *YtdlpExtractor) ensureInstalled(ctx context.Context) error {
	if !e.autoInstall || e.executable != "" {
		return nil
	}

	e.installOnce.Do(func() {
		e.logger.Info("resolving yt-dlp executable")
		if _, err := ytdlp.Install(ctx, nil); err != nil {
			e.installErr = fmt.Errorf("install yt-dlp: %w", err)
		}
	})
	return e.installErr
}

func toEvent(update ytdlp.ProgressUpdate) (domain.ProgressEvent, bool) {
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		return domain.ProgressEvent{Status: domain.ProgressDownloading, Filename: update.Filename}, true
	case ytdlp.ProgressStatusFinished:
		return domain.ProgressEvent{Status: domain.ProgressFinished, Filename: update.Filename}, true
	default:
		return domain.ProgressEvent{}, false
	}
}

// failureMessage prefers the last "ERROR:" line yt-dlp printed, since that is
// the message the user can act on.
func failureMessage(stderr string, err error) string {
	var last string

	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, errorPrefix) {
			last = line
		}
	}

	if last != "" {
		return last
	}
	if err != nil {
		return err.Error()
	}
	return "yt-dlp failed"
}

type titleRecorder struct {
	mu    sync.Mutex
	title string
}

func (r *titleRecorder) set(title string) {
	if title == "" {
		return
	}
	r.mu.Lock()
	r.title = title
	r.mu.Unlock()
}

func (r *titleRecorder) get() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.title
}

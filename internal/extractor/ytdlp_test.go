package extractor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/lrstanley/go-ytdlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veranemoloko/video-downloader/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToEvent(t *testing.T) {
	ev, ok := toEvent(ytdlp.ProgressUpdate{
		Status:   ytdlp.ProgressStatusDownloading,
		Filename: "/tmp/downloads/foo.mp4",
	})
	require.True(t, ok)
	assert.Equal(t, domain.ProgressDownloading, ev.Status)
	assert.Equal(t, "/tmp/downloads/foo.mp4", ev.Filename)

	ev, ok = toEvent(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished})
	require.True(t, ok)
	assert.Equal(t, domain.ProgressFinished, ev.Status)

	_, ok = toEvent(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusStarting})
	assert.False(t, ok)

	_, ok = toEvent(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusPostProcessing})
	assert.False(t, ok)
}

func TestToEvent_FeedsProgressLog(t *testing.T) {
	log := domain.NewProgressLog()

	updates := []ytdlp.ProgressUpdate{
		{Status: ytdlp.ProgressStatusStarting},
		{Status: ytdlp.ProgressStatusDownloading, Filename: "/tmp/downloads/foo.mp4"},
		{Status: ytdlp.ProgressStatusFinished, Filename: "/tmp/downloads/foo.mp4"},
	}
	for _, u := range updates {
		if ev, ok := toEvent(u); ok {
			log.Report(ev)
		}
	}

	assert.Equal(t, []string{"Downloading: foo.mp4", "Processing video..."}, log.Lines())
}

func TestFailureMessage(t *testing.T) {
	stderr := "WARNING: something odd\n" +
		"ERROR: [generic] first failure\n" +
		"ERROR: [youtube] abc: Video unavailable\n"

	assert.Equal(t, "ERROR: [youtube] abc: Video unavailable", failureMessage(stderr, errors.New("exit status 1")))
	assert.Equal(t, "exit status 1", failureMessage("WARNING: only warnings", errors.New("exit status 1")))
	assert.Equal(t, "yt-dlp failed", failureMessage("", nil))
}

func TestTitleRecorder_KeepsLastNonEmpty(t *testing.T) {
	var r titleRecorder

	r.set("First_Title")
	r.set("")
	assert.Equal(t, "First_Title", r.get())

	r.set("Second_Title")
	assert.Equal(t, "Second_Title", r.get())
}

func TestNewYtdlpExtractor_Options(t *testing.T) {
	e := NewYtdlpExtractor(newTestLogger(),
		WithExecutable("/opt/bin/yt-dlp"),
		WithProgressInterval(0),
		WithAutoInstall(true),
	)

	assert.Equal(t, "/opt/bin/yt-dlp", e.executable)
	assert.Zero(t, e.interval)
	assert.True(t, e.autoInstall)

	// an explicit executable disables installation
	assert.NoError(t, e.ensureInstalled(context.Background()))
}

func TestYtdlpExtractor_MissingExecutable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "yt-dlp-missing")
	e := NewYtdlpExtractor(newTestLogger(), WithExecutable(missing))

	log := domain.NewProgressLog()
	info, err := e.Extract(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		domain.QualityBest.Options(), filepath.Join(t.TempDir(), "%(title).50s.%(ext)s"), log)

	assert.Error(t, err)
	assert.Nil(t, info)
	assert.Empty(t, log.Lines())
}

// fakeYtdlp writes a shell script standing in for yt-dlp.
func fakeYtdlp(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executable is a shell script")
	}

	path := filepath.Join(t.TempDir(), "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestYtdlpExtractor_TitleFromPrintedInfo(t *testing.T) {
	// an already downloaded file produces no progress, only the info line
	exe := fakeYtdlp(t, `echo '{"_type": "video", "id": "abc", "title": "My_Cool_Video", "ext": "mp4"}'`)
	e := NewYtdlpExtractor(newTestLogger(), WithExecutable(exe))

	log := domain.NewProgressLog()
	info, err := e.Extract(context.Background(), "https://youtu.be/abc",
		domain.QualityBest.Options(), filepath.Join(t.TempDir(), "%(title).50s.%(ext)s"), log)

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "My_Cool_Video", info.Title)
	assert.Empty(t, log.Lines())
}

func TestYtdlpExtractor_NoPrintedInfo(t *testing.T) {
	exe := fakeYtdlp(t, "exit 0")
	e := NewYtdlpExtractor(newTestLogger(), WithExecutable(exe))

	info, err := e.Extract(context.Background(), "https://youtu.be/abc",
		domain.QualityBest.Options(), filepath.Join(t.TempDir(), "%(title).50s.%(ext)s"), domain.NewProgressLog())

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Empty(t, info.Title)
}

func TestYtdlpExtractor_FailureUsesErrorLine(t *testing.T) {
	exe := fakeYtdlp(t, "echo 'WARNING: retrying' >&2\necho 'ERROR: [youtube] abc: Video unavailable' >&2\nexit 1")
	e := NewYtdlpExtractor(newTestLogger(), WithExecutable(exe))
	info, err := e.Extract(context.Background(), "https://youtu.be/abc",
		domain.QualityBest.Options(), filepath.Join(t.TempDir(), "%(title).50s.%(ext)s"), domain.NewProgressLog())

	assert.Nil(t, info)
	require.Error(t, err)
	assert.Equal(t, "ERROR: [youtube] abc: Video unavailable", err.Error())
}

func TestResultTitle(t *testing.T) {
	assert.Empty(t, resultTitle(nil))
	assert.Empty(t, resultTitle(&ytdlp.Result{}))
}

func containsSeq(args []string, seq ...string) bool {
	for i := range args {
		if i+len(seq) <= len(args) && slices.Equal(args[i:i+len(seq)], seq) {
			return true
		}
	}
	return false
}

func TestYtdlpExtractor_CommandFlags(t *testing.T) {
	const (
		output = "/tmp/downloads/%(title).50s.%(ext)s"
		url    = "https://youtu.be/abc"
	)

	tests := []struct {
		quality domain.Quality
		want    [][]string
		absent  []string
	}{
		{
			quality: domain.QualityBest,
			want: [][]string{
				{"--format", domain.SelectorBest},
				{"--merge-output-format", "mp4"},
			},
			absent: []string{"--extract-audio", "--audio-format", "--audio-quality"},
		},
		{
			quality: domain.QualityMedium,
			want: [][]string{
				{"--format", domain.SelectorMedium},
				{"--merge-output-format", "mp4"},
			},
			absent: []string{"--extract-audio"},
		},
		{
			quality: domain.QualityLow,
			want: [][]string{
				{"--format", domain.SelectorLow},
				{"--merge-output-format", "mp4"},
			},
			absent: []string{"--extract-audio"},
		},
		{
			quality: domain.QualityAudio,
			want: [][]string{
				{"--format", domain.SelectorAudio},
				{"--extract-audio"},
				{"--audio-format", "mp3"},
				{"--audio-quality", "192K"},
			},
			absent: []string{"--merge-output-format"},
		},
	}

	e := NewYtdlpExtractor(newTestLogger(), WithExecutable("/opt/bin/yt-dlp"))

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			cmd := e.command(tt.quality.Options(), output).BuildCommand(context.Background(), url)
			require.NotEmpty(t, cmd.Args)
			assert.Equal(t, "/opt/bin/yt-dlp", cmd.Args[0])

			args := cmd.Args[1:]
			assert.Equal(t, url, args[len(args)-1])

			common := [][]string{
				{"--output", output},
				{"--replace-in-metadata", "title", " ", "_"},
				{"--no-playlist"},
				{"--print-json"},
				{"--windows-filenames"},
				{"--quiet"},
				{"--no-warnings"},
			}
			for _, seq := range append(common, tt.want...) {
				assert.True(t, containsSeq(args, seq...), "missing %v in %v", seq, args)
			}
			for _, flag := range tt.absent {
				assert.NotContains(t, args, flag)
			}
		})
	}
}

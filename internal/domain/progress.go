package domain

import (
	"path/filepath"
	"sync"
)

// ProgressStatus is the state carried by a progress event.
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

const ProcessingMessage = "Processing video..."

// ProgressEvent is a single status update emitted while extracting.
type ProgressEvent struct {
	Status   ProgressStatus
	Filename string
}

// ProgressSink receives progress events in the order they happen.
type ProgressSink interface {
	Report(ev ProgressEvent)
}

// ProgressLog is an append-only, human readable record of progress events.
// It is safe for concurrent use.
type ProgressLog struct {
	mu    sync.Mutex
	lines []string
}

// NewProgressLog returns an empty log.
func NewProgressLog() *ProgressLog {
	return &ProgressLog{lines: make([]string, 0, 8)}
}

// Report appends the line for ev. Events with other statuses are ignored.
func (l *ProgressLog) Report(ev ProgressEvent) {
	var line string
	switch ev.Status {
	case ProgressDownloading:
		line = "Downloading: " + baseName(ev.Filename)
	case ProgressFinished:
		line = ProcessingMessage
	default:
		return
	}

	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()
}

// Lines returns a copy of the log. It never returns nil.
func (l *ProgressLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

package extractor

import (
	"context"

	"github.com/veranemoloko/video-downloader/internal/domain"
)

// Info describes the media a successful extraction produced.
type Info struct {
	Title string
}

// Extractor fetches the media behind url, writing it to the output template
// and reporting progress to sink. It blocks until the download is over.
type Extractor interface {
	Extract(ctx context.Context, url string, opts domain.Options, output string, sink domain.ProgressSink) (*Info, error)
}

package errors

import "errors"

var (
	ErrMissingURL     = errors.New("Missing 'url' query parameter.")
	ErrNoOutputDir    = errors.New("output directory not configured")
	ErrExtractorUnset = errors.New("extractor not configured")
)

// ExtractionError reports a failed call to the media extractor.
// Its message is the extractor's own message, unchanged.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string { return e.Err.Error() }

func (e *ExtractionError) Unwrap() error { return e.Err }

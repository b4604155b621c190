package domain

// Options enumerates the extractor settings the service understands.
type Options struct {
	// Format is a yt-dlp format selector.
	Format string
	// MergeFormat is the container separate video and audio streams are
	// muxed into. Empty means no merge format is forced.
	MergeFormat string
	// Postprocess, when set, extracts the audio track and transcodes it.
	Postprocess *Postprocess
}

// Postprocess describes an audio extraction step.
type Postprocess struct {
	Codec   string
	Quality string
}

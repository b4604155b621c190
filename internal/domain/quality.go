package domain

import "strings"

// Quality is the download preset requested by the client.
type Quality string

const (
	QualityBest   Quality = "best"
	QualityMedium Quality = "medium"
	QualityLow    Quality = "low"
	QualityAudio  Quality = "audio"
)

// yt-dlp format selectors, one per quality preset.
const (
	SelectorBest   = "bestvideo[ext=mp4][vcodec^=avc1]+bestaudio/best[ext=mp4]"
	SelectorMedium = "bestvideo[height<=720][ext=mp4][vcodec^=avc1]+bestaudio/best[height<=720][ext=mp4]"
	SelectorLow    = "bestvideo[height<=480][ext=mp4][vcodec^=avc1]+bestaudio/best[height<=480][ext=mp4]"
	SelectorAudio  = "bestaudio/best"
)

const (
	VideoContainer    = "mp4"
	AudioCodec        = "mp3"
	AudioBitrateKbps  = "192"
	DefaultQualityArg = string(QualityBest)
)

var selectors = map[Quality]string{
	QualityBest:   SelectorBest,
	QualityMedium: SelectorMedium,
	QualityLow:    SelectorLow,
	QualityAudio:  SelectorAudio,
}

// ParseQuality normalizes a raw query value. Matching is case-insensitive
// and anything unrecognized, including the empty string, becomes QualityBest.
func ParseQuality(raw string) Quality {
	q := Quality(strings.ToLower(raw))
	if _, ok := selectors[q]; !ok {
		return QualityBest
	}
	return q
}

// Selector returns the yt-dlp format selector for q.
func (q Quality) Selector() string {
	if s, ok := selectors[q]; ok {
		return s
	}
	return SelectorBest
}

// IsAudio reports whether q extracts audio only.
func (q Quality) IsAudio() bool { return q == QualityAudio }

// Ext is the extension of the file produced for q.
func (q Quality) Ext() string {
	if q.IsAudio() {
		return AudioCodec
	}
	return VideoContainer
}

// Options builds the extraction options for q.
func (q Quality) Options() Options {
	if q.IsAudio() {
		return Options{
			Format: q.Selector(),
			Postprocess: &Postprocess{
				Codec:   AudioCodec,
				Quality: AudioBitrateKbps,
			},
		}
	}

	return Options{
		Format:      q.Selector(),
		MergeFormat: VideoContainer,
	}
}

package domain

import "strings"

const (
	// MaxTitleLength is the maximum number of characters kept from a title.
	MaxTitleLength = 50
	// DefaultTitle replaces a missing title.
	DefaultTitle = "video"
)

// SanitizeTitle replaces spaces with underscores and truncates the result
// to MaxTitleLength characters.
func SanitizeTitle(title string) string {
	if title == "" {
		title = DefaultTitle
	}

	name := strings.ReplaceAll(title, " ", "_")

	runes := []rune(name)
	if len(runes) > MaxTitleLength {
		name = string(runes[:MaxTitleLength])
	}
	return name
}

// OutputFilename is the name of the file produced for title at quality q.
func OutputFilename(title string, q Quality) string {
	return SanitizeTitle(title) + "." + q.Ext()
}

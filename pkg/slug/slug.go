package slug

import "regexp"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Slugify replaces every run of characters outside [A-Za-z0-9] with a single dash.
func Slugify(text string) string {
	return nonAlphanumeric.ReplaceAllString(text, "-")
}

func IsSlug(text string) bool {
	return Slugify(text) == text
}

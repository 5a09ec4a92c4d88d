// Package recognize finds stand-alone YouTube and Vimeo links inside
// paragraph-oriented text blocks. It works purely on substring and
// regular-expression matching; no HTML parsing is involved.
package recognize

import (
	"html"
	"regexp"
	"strings"

	"vidembed/internal/media"
)

var (
	// youtubePattern matches a YouTube URL appearing alone (optionally
	// preceded by whitespace) inside a paragraph block. Group 1 is the
	// video ID, group 2 the optional trailing query string. The whole
	// paragraph through its close is consumed.
	youtubePattern = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>\s*https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtube\.com/v/|youtu\.be/)([^\s&"'<>]+)(&[a-zA-Z0-9;&=+._%\-]*)?.*?</p>`)

	// vimeoPattern matches a Vimeo URL with a numeric video ID inside a
	// paragraph block.
	vimeoPattern = regexp.MustCompile(`(?is)<p(?:\s[^>]*)?>\s*https?://(?:www\.)?vimeo\.com/(\d+).*?</p>`)
)

// youtubeHints are the cheap substring pre-filters that gate YouTube
// pattern evaluation.
var youtubeHints = []string{"youtube.com/watch", "youtube.com/v/", "youtu.be/"}

// YouTube returns all YouTube matches in text, in order of appearance.
func YouTube(text string) []media.Reference {
	if !containsAny(text, youtubeHints) {
		return nil
	}

	var refs []media.Reference
	for _, m := range youtubePattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, media.Reference{
			Provider:   media.YouTube,
			VideoID:    m[1],
			Matched:    m[0],
			ExtraQuery: normalizeQuery(m[2]),
		})
	}
	return refs
}

// Vimeo returns all Vimeo matches in text, in order of appearance.
func Vimeo(text string) []media.Reference {
	if !strings.Contains(text, "vimeo.com/") {
		return nil
	}

	var refs []media.Reference
	for _, m := range vimeoPattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, media.Reference{
			Provider: media.Vimeo,
			VideoID:  m[1],
			Matched:  m[0],
		})
	}
	return refs
}

// All runs the provider recognizers in sequence: YouTube first, then Vimeo.
func All(text string) []media.Reference {
	return append(YouTube(text), Vimeo(text)...)
}

// normalizeQuery unescapes HTML-entity ampersands in a captured query
// string so callers always see "&key=value..." form.
func normalizeQuery(q string) string {
	if q == "" {
		return ""
	}
	return html.UnescapeString(q)
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

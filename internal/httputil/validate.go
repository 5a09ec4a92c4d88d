package httputil

import (
	"fmt"
	"net/url"
	"regexp"
)

var (
	// videoIDPattern matches YouTube-style video IDs.
	videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// numericIDPattern matches purely numeric IDs (Vimeo).
	numericIDPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateURL checks that a URL is well-formed and uses http or https.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only HTTP(S) URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// ValidateVideoID checks that a video ID contains only safe characters.
func ValidateVideoID(id string) error {
	if id == "" {
		return fmt.Errorf("video ID cannot be empty")
	}
	if len(id) > 64 {
		return fmt.Errorf("video ID too long: %d characters", len(id))
	}
	if !videoIDPattern.MatchString(id) {
		return fmt.Errorf("video ID contains invalid characters: %q", id)
	}
	return nil
}

// ValidateNumericID checks that an ID is purely numeric.
func ValidateNumericID(id string) error {
	if id == "" {
		return fmt.Errorf("numeric ID cannot be empty")
	}
	if !numericIDPattern.MatchString(id) {
		return fmt.Errorf("expected numeric ID, got %q", id)
	}
	return nil
}

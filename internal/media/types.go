// Package media defines shared types for the vidembed application.
package media

import "time"

// Provider identifies a supported video hosting service.
type Provider int

const (
	YouTube Provider = iota
	Vimeo
)

func (p Provider) String() string {
	switch p {
	case YouTube:
		return "youtube"
	case Vimeo:
		return "vimeo"
	default:
		return "unknown"
	}
}

// Reference is a single recognized video link inside a text block.
type Reference struct {
	Provider   Provider // YouTube or Vimeo
	VideoID    string   // Provider-scoped video identifier
	Matched    string   // Exact span of text to be replaced
	ExtraQuery string   // Trailing query string (e.g. "&t=30s"), YouTube only
}

// Embed is a cached embed-resolution result for one video.
type Embed struct {
	VideoID     string    // Primary key, provider-scoped
	Markup      string    // Embed markup returned by the provider's oEmbed endpoint
	AspectRatio float64   // Width/height; 0 means unknown
	CreatedAt   time.Time // Set at insert
}

// Package resolver orchestrates the embed-resolution pipeline:
// recognize links, resolve markup via the cache or the provider's oEmbed
// endpoint, optionally wrap it responsively, and substitute it back into
// the source text.
package resolver

import (
	"math"
	"regexp"
	"strings"

	"vidembed/internal/cache"
	"vidembed/internal/httputil"
	"vidembed/internal/media"
	"vidembed/internal/oembed"
	"vidembed/internal/recognize"
	"vidembed/internal/responsive"
)

// Options configure a resolution run. Immutable once the Resolver is built.
type Options struct {
	MaxWidth           int
	MaxHeight          int
	Responsive         bool
	DefaultAspectRatio float64
	Scheme             string // "http" or "https", the host environment's scheme
}

// Resolver replaces recognized video links in text with embed markup.
type Resolver struct {
	opts   Options
	cache  *cache.Store
	client *oembed.Client

	// Debugf, when set, receives soft-failure diagnostics.
	Debugf func(format string, args ...any)
}

// New builds a Resolver. The cache store may be nil, in which case every
// match is resolved over the network.
func New(opts Options, store *cache.Store, client *oembed.Client) *Resolver {
	return &Resolver{
		opts:   opts,
		cache:  store,
		client: client,
	}
}

// Resolve replaces each recognized video link in text with embed markup
// and returns the result. Matches are handled in order, each fully
// resolved before the next; a match that cannot be resolved is left as-is.
func (r *Resolver) Resolve(text string) string {
	for _, ref := range recognize.All(text) {
		markup, ok := r.resolveRef(ref)
		if !ok {
			continue
		}
		text = strings.Replace(text, ref.Matched, markup, 1)
	}
	return text
}

// resolveRef runs the per-match pipeline: cache lookup, fetch+store on
// miss, responsive wrap, scheme normalization, extra-query injection.
func (r *Resolver) resolveRef(ref media.Reference) (string, bool) {
	if err := validateID(ref); err != nil {
		r.debugf("skipping %s match: %v", ref.Provider, err)
		return "", false
	}

	var markup string
	var ratio float64

	if r.cache != nil {
		e, err := r.cache.Lookup(ref.VideoID)
		if err != nil {
			// read failure is a miss; the fetch below recovers
			r.debugf("cache lookup %s: %v", ref.VideoID, err)
		} else if e != nil {
			markup, ratio = e.Markup, e.AspectRatio
		}
	}

	if markup == "" {
		endpoint := r.client.Endpoint(ref.Provider, r.opts.Scheme, ref.VideoID, r.opts.MaxWidth, r.opts.MaxHeight)
		resp, ok := r.client.Fetch(endpoint)
		if !ok {
			return "", false
		}
		// Round to the cache's storage precision before rendering, so a
		// later cache hit renders identical markup.
		markup, ratio = resp.HTML, roundRatio(resp.AspectRatio())

		if r.cache != nil {
			if err := r.cache.Insert(ref.VideoID, markup, ratio); err != nil {
				// the fresh markup still serves this response
				r.debugf("cache insert %s: %v", ref.VideoID, err)
			}
		}
	}

	if r.opts.Responsive {
		markup = responsive.Wrap(markup, ratio, r.opts.DefaultAspectRatio)
	}

	// Cached rows may have been written under a different scheme.
	if r.opts.Scheme == "https" {
		markup = strings.ReplaceAll(markup, "http://", "https://")
	}

	if ref.Provider == media.YouTube && ref.ExtraQuery != "" {
		markup = injectQuery(markup, ref.ExtraQuery)
	}

	return markup, true
}

// roundRatio matches the cache's 2-decimal aspect-ratio precision.
func roundRatio(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}

// validateID rejects captured IDs that could not be a real provider ID
// before any cache or network traffic happens on their behalf. The
// accepted charset is narrower than the recognizer's capture class: a
// capture like "abc?t=5" is skipped outright instead of being sent to
// the provider only to be refused there; the text is left unchanged
// either way.
func validateID(ref media.Reference) error {
	if ref.Provider == media.Vimeo {
		return httputil.ValidateNumericID(ref.VideoID)
	}
	return httputil.ValidateVideoID(ref.VideoID)
}

func (r *Resolver) debugf(format string, args ...any) {
	if r.Debugf != nil {
		r.Debugf(format, args...)
	}
}

// iframeSrcPattern captures the src attribute value of the first iframe tag.
var iframeSrcPattern = regexp.MustCompile(`(?i)<iframe[^>]*?\bsrc="([^"]*)"`)

// injectQuery merges a recognized extra query string (e.g. "&t=30s") into
// the iframe source URL immediately after its "?", keeping any existing
// parameters valid. Playback parameters like start time survive the
// embed conversion this way.
func injectQuery(markup, extra string) string {
	extra = strings.TrimPrefix(extra, "&")
	if extra == "" {
		return markup
	}

	m := iframeSrcPattern.FindStringSubmatchIndex(markup)
	if m == nil {
		return markup
	}

	src := markup[m[2]:m[3]]
	if i := strings.Index(src, "?"); i >= 0 {
		src = src[:i+1] + extra + "&" + src[i+1:]
	} else {
		src += "?" + extra
	}
	return markup[:m[2]] + src + markup[m[3]:]
}

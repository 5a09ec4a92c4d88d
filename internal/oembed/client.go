// Package oembed retrieves embed markup from the YouTube and Vimeo
// oEmbed endpoints.
package oembed

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"vidembed/internal/httputil"
	"vidembed/internal/media"
)

// Response is the subset of an oEmbed reply the resolver cares about.
type Response struct {
	HTML   string `json:"html"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AspectRatio returns width/height, or 0 when either dimension is unknown.
func (r *Response) AspectRatio() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// Client talks to the provider oEmbed endpoints. The host fields default
// to the real providers and can be pointed at a test server.
type Client struct {
	http *http.Client

	YouTubeHost string
	VimeoHost   string
}

// NewClient creates a client against the real provider endpoints.
func NewClient() *Client {
	return &Client{
		http:        httputil.NewClient(),
		YouTubeHost: "www.youtube.com",
		VimeoHost:   "vimeo.com",
	}
}

// Endpoint builds the provider-specific oEmbed endpoint URL for a video.
// The source URL is rebuilt canonically from the video ID and URL-encoded
// into the endpoint's query.
func (c *Client) Endpoint(p media.Provider, scheme, videoID string, maxWidth, maxHeight int) string {
	switch p {
	case media.YouTube:
		src := fmt.Sprintf("%s://www.youtube.com/watch?v=%s", scheme, videoID)
		return fmt.Sprintf("%s://%s/oembed?url=%s&format=json&maxwidth=%d&maxheight=%d",
			scheme, c.YouTubeHost, url.QueryEscape(src), maxWidth, maxHeight)
	case media.Vimeo:
		src := fmt.Sprintf("%s://vimeo.com/%s", scheme, videoID)
		return fmt.Sprintf("%s://%s/api/oembed.json?url=%s&maxwidth=%d&maxheight=%d",
			scheme, c.VimeoHost, url.QueryEscape(src), maxWidth, maxHeight)
	default:
		return ""
	}
}

// Fetch performs the oEmbed GET. Any transport failure, non-2xx status,
// malformed body, or reply without usable html is a soft failure: the
// second return value is false and the caller skips the match.
func (c *Client) Fetch(endpointURL string) (*Response, bool) {
	body, err := httputil.GetJSON(c.http, endpointURL)
	if err != nil {
		return nil, false
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false
	}
	if resp.HTML == "" {
		return nil, false
	}

	return &resp, true
}

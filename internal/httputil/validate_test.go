package httputil

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.youtube.com/oembed?url=x", false},
		{"http://vimeo.com/api/oembed.json", false},
		{"ftp://example.com/file", true},
		{"not a url at all ://", true},
		{"https://", true},
	}

	for _, tt := range tests {
		err := ValidateURL(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"Wl4XiYadV_k", false},
		{"abc-123_XYZ", false},
		{"", true},
		{"id with spaces", true},
		{"id/with/slashes", true},
		{"<script>", true},
		{strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		err := ValidateVideoID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVideoID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestValidateNumericID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"76979871", false},
		{"0", false},
		{"", true},
		{"76979871x", true},
		{"-1", true},
	}

	for _, tt := range tests {
		err := ValidateNumericID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNumericID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

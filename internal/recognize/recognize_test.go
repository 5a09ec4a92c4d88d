package recognize

import (
	"testing"

	"vidembed/internal/media"
)

func TestYouTubeNoProviderText(t *testing.T) {
	texts := []string{
		"",
		"<p>Just a plain paragraph.</p>",
		"<p>https://example.com/watch?v=abc</p>",
		"<p>vimeo is a word, not a link</p>",
	}
	for _, text := range texts {
		if refs := All(text); refs != nil {
			t.Errorf("All(%q) = %v, want no matches", text, refs)
		}
	}
}

func TestYouTubeWatchForm(t *testing.T) {
	text := `<p>https://www.youtube.com/watch?v=Wl4XiYadV_k</p>`
	refs := YouTube(text)
	if len(refs) != 1 {
		t.Fatalf("expected 1 match, got %d", len(refs))
	}

	ref := refs[0]
	if ref.Provider != media.YouTube {
		t.Errorf("provider = %v, want YouTube", ref.Provider)
	}
	if ref.VideoID != "Wl4XiYadV_k" {
		t.Errorf("video ID = %q, want Wl4XiYadV_k", ref.VideoID)
	}
	if ref.ExtraQuery != "" {
		t.Errorf("extra query = %q, want empty", ref.ExtraQuery)
	}
	if ref.Matched != text {
		t.Errorf("matched span = %q, want whole paragraph", ref.Matched)
	}
}

func TestYouTubeURLForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		id   string
	}{
		{"watch", `<p>https://www.youtube.com/watch?v=abc123</p>`, "abc123"},
		{"v path", `<p>https://www.youtube.com/v/abc123</p>`, "abc123"},
		{"short", `<p>https://youtu.be/abc123</p>`, "abc123"},
		{"no www", `<p>https://youtube.com/watch?v=abc123</p>`, "abc123"},
		{"plain http", `<p>http://www.youtube.com/watch?v=abc123</p>`, "abc123"},
		{"leading whitespace", "<p>  \n https://youtu.be/abc123</p>", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := YouTube(tt.text)
			if len(refs) != 1 {
				t.Fatalf("expected 1 match, got %d", len(refs))
			}
			if refs[0].VideoID != tt.id {
				t.Errorf("video ID = %q, want %q", refs[0].VideoID, tt.id)
			}
		})
	}
}

func TestYouTubeExtraQuery(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		extra string
	}{
		{"plain ampersand", `<p>https://www.youtube.com/watch?v=ABC123&t=30s</p>`, "&t=30s"},
		{"entity ampersand", `<p>https://www.youtube.com/watch?v=ABC123&amp;t=30s</p>`, "&t=30s"},
		{"multiple params", `<p>https://www.youtube.com/watch?v=ABC123&t=30s&hd=1</p>`, "&t=30s&hd=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := YouTube(tt.text)
			if len(refs) != 1 {
				t.Fatalf("expected 1 match, got %d", len(refs))
			}
			if refs[0].VideoID != "ABC123" {
				t.Errorf("video ID = %q, want ABC123", refs[0].VideoID)
			}
			if refs[0].ExtraQuery != tt.extra {
				t.Errorf("extra query = %q, want %q", refs[0].ExtraQuery, tt.extra)
			}
		})
	}
}

func TestYouTubeNotAlone(t *testing.T) {
	// A URL embedded mid-sentence is not a stand-alone link.
	text := `<p>Watch this: https://www.youtube.com/watch?v=abc123</p>`
	if refs := YouTube(text); len(refs) != 0 {
		t.Errorf("expected no matches for inline URL, got %d", len(refs))
	}
}

func TestVimeo(t *testing.T) {
	text := `<p>https://vimeo.com/76979871</p>`
	refs := Vimeo(text)
	if len(refs) != 1 {
		t.Fatalf("expected 1 match, got %d", len(refs))
	}
	if refs[0].Provider != media.Vimeo {
		t.Errorf("provider = %v, want Vimeo", refs[0].Provider)
	}
	if refs[0].VideoID != "76979871" {
		t.Errorf("video ID = %q, want 76979871", refs[0].VideoID)
	}
	if refs[0].Matched != text {
		t.Errorf("matched span = %q, want whole paragraph", refs[0].Matched)
	}
}

func TestVimeoNonNumericID(t *testing.T) {
	text := `<p>https://vimeo.com/channels/staffpicks</p>`
	if refs := Vimeo(text); len(refs) != 0 {
		t.Errorf("expected no matches for non-numeric path, got %d", len(refs))
	}
}

func TestMultipleLinks(t *testing.T) {
	text := `<p>https://www.youtube.com/watch?v=first</p>
<p>Some prose in between.</p>
<p>https://www.youtube.com/watch?v=second</p>`

	refs := YouTube(text)
	if len(refs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(refs))
	}
	if refs[0].VideoID != "first" || refs[1].VideoID != "second" {
		t.Errorf("matches out of order: %q, %q", refs[0].VideoID, refs[1].VideoID)
	}
}

func TestDuplicateLinks(t *testing.T) {
	text := `<p>https://youtu.be/same</p><p>https://youtu.be/same</p>`
	refs := YouTube(text)
	if len(refs) != 2 {
		t.Fatalf("expected 2 matches for duplicate link, got %d", len(refs))
	}
	if refs[0].VideoID != refs[1].VideoID {
		t.Errorf("duplicate matches differ: %q vs %q", refs[0].VideoID, refs[1].VideoID)
	}
}

func TestAllRunsProvidersInSequence(t *testing.T) {
	text := `<p>https://vimeo.com/111</p>
<p>https://www.youtube.com/watch?v=abc</p>`

	refs := All(text)
	if len(refs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(refs))
	}
	// YouTube recognizer runs first regardless of position in the text.
	if refs[0].Provider != media.YouTube {
		t.Errorf("first match provider = %v, want YouTube", refs[0].Provider)
	}
	if refs[1].Provider != media.Vimeo {
		t.Errorf("second match provider = %v, want Vimeo", refs[1].Provider)
	}
}

func TestParagraphWithAttributes(t *testing.T) {
	text := `<p class="intro">https://youtu.be/abc123</p>`
	refs := YouTube(text)
	if len(refs) != 1 {
		t.Fatalf("expected 1 match, got %d", len(refs))
	}
	if refs[0].Matched != text {
		t.Errorf("matched span = %q, want whole paragraph", refs[0].Matched)
	}
}

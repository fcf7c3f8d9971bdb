package jellyfin

import (
	"context"
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "media.example.com", want: "https://media.example.com"},
		{in: " http://10.0.0.2:8096/ ", want: "http://10.0.0.2:8096"},
		{in: "https://jf.example.org//", want: "https://jf.example.org"},
	}
	for _, tt := range tests {
		if got := normalizeURL(tt.in); got != tt.want {
			t.Fatalf("normalizeURL(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImageURLs(t *testing.T) {
	c := NewClient(context.Background(), "jf.example.org")
	got := c.ImageURL("a b", ImageBackdrop, VariantSize{Width: 1920, Height: 1080})
	if !strings.HasPrefix(got, "https://jf.example.org/Items/a%20b/Images/Backdrop?") {
		t.Fatalf("unexpected backdrop URL %q", got)
	}
	if !strings.Contains(got, "maxWidth=1920") || !strings.Contains(got, "quality=90") {
		t.Fatalf("missing params in %q", got)
	}

	got = c.ImageURL("1", ImagePrimary, VariantSize{Width: 640})
	if strings.Contains(got, "maxHeight") || !strings.Contains(got, "maxWidth=640") {
		t.Fatalf("unbounded height should be omitted: %q", got)
	}
}

func TestHeaderSourceFor(t *testing.T) {
	c := NewClient(context.Background(), "jf.example.org")
	sizes := HeaderSizes{
		Compact: VariantSize{Width: 1000, Height: 1500},
		Regular: VariantSize{Width: 1600, Height: 700},
	}
	tests := []struct {
		name        string
		item        MediaItem
		wantTitle   string
		wantCompact string
		wantRegular string
	}{
		{
			name:        "poster and backdrop",
			item:        MediaItem{ID: "1", Name: "Vertigo", Year: 1958, HasPrimary: true, BackdropTags: []string{"x"}},
			wantTitle:   "Vertigo (1958)",
			wantCompact: "Primary",
			wantRegular: "Backdrop",
		},
		{
			name:        "backdrop only",
			item:        MediaItem{ID: "2", Name: "Bullitt", BackdropTags: []string{"x"}},
			wantTitle:   "Bullitt",
			wantCompact: "Backdrop",
			wantRegular: "Backdrop",
		},
		{
			name:        "poster only",
			item:        MediaItem{ID: "4", Name: "Rope", HasPrimary: true},
			wantTitle:   "Rope",
			wantCompact: "Primary",
			wantRegular: "Primary",
		},
		{
			name:      "no images",
			item:      MediaItem{ID: "3", Name: "Unknown"},
			wantTitle: "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := c.headerSourceFor(&tt.item, sizes)
			if src.Title != tt.wantTitle {
				t.Fatalf("title: got %q, want %q", src.Title, tt.wantTitle)
			}
			if !strings.Contains(src.Compact, tt.wantCompact) || !strings.Contains(src.Regular, tt.wantRegular) {
				t.Fatalf("images: got %q / %q", src.Compact, src.Regular)
			}
			if tt.wantCompact != "" && !strings.Contains(src.Compact, "maxHeight=1500") {
				t.Fatalf("compact image not bounded by its variant: %q", src.Compact)
			}
			if tt.wantCompact == "" && (src.Compact != "" || src.Regular != "") {
				t.Fatalf("expected no images, got %q / %q", src.Compact, src.Regular)
			}
		})
	}
}

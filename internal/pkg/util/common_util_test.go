package util

import (
	"Showreel/internal/pkg/consts"
	"strings"
	"testing"
)

func TestGenerateShortLink(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		link := GenerateShortLink()
		if len(link) != consts.ShortLinkLength {
			t.Fatalf("length = %d, want %d", len(link), consts.ShortLinkLength)
		}
		for _, ch := range link {
			if !strings.ContainsRune(consts.ShortLinkCharset, ch) {
				t.Fatalf("invalid char %q in %q", ch, link)
			}
		}
		seen[link] = true
	}
	// 100 次全撞车基本不可能
	if len(seen) < 2 {
		t.Errorf("generator returned the same link %d times", 100)
	}
}

func TestPickFolder(t *testing.T) {
	cases := []struct {
		name        string
		destination string
		fileType    string
		want        string
	}{
		{"explicit artists", consts.FolderArtists, "image/jpeg", consts.FolderArtists},
		{"explicit pdf", consts.FolderFeaturePdf, "application/pdf", consts.FolderFeaturePdf},
		{"explicit videos", consts.FolderVideos, "video/mp4", consts.FolderVideos},
		{"explicit previews", consts.FolderPreviews, "image/png", consts.FolderPreviews},
		{"video mime fallback", "", "video/quicktime", consts.FolderVideos},
		{"image mime fallback", "", "image/webp", consts.FolderPreviews},
		{"unknown everything", "somewhere", "application/zip", consts.FolderPreviews},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PickFolder(tc.destination, tc.fileType); got != tc.want {
				t.Errorf("PickFolder(%q, %q) = %q, want %q", tc.destination, tc.fileType, got, tc.want)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"videos/u1_launch.mp4", "u1_launch"},
		{"videos/nested/clip.mov", "clip"},
		{"noext", "noext"},
		{"previews/archive.tar.gz", "archive.tar"},
	}
	for _, tc := range cases {
		if got := BaseName(tc.in); got != tc.want {
			t.Errorf("BaseName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitNames(t *testing.T) {
	t.Run("trims and drops empties", func(t *testing.T) {
		got := SplitNames(" Jane Doe ,  , John Smith,")
		if len(got) != 2 || got[0] != "Jane Doe" || got[1] != "John Smith" {
			t.Errorf("SplitNames = %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := SplitNames(""); len(got) != 0 {
			t.Errorf("SplitNames(\"\") = %v, want empty", got)
		}
	})
}

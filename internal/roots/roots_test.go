package roots

import "testing"

func TestResolveMarkerSegments(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/media/4TB-WD2/MOVIES/The Matrix (1999).mkv", "/media/4TB-WD2"},
		{"/media/16TB-HM/TV/Breaking Bad/Season 01/Breaking Bad S01E01.mkv", "/media/16TB-HM"},
		{"/mnt/nas/archive/MOVIES/old/film (1980).avi", "/mnt/nas/archive"},
		{"/MOVIES/film (1980).avi", "/"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.path); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/data/stuff/file.mkv", "/data"},
		{"relative/path/file.mkv", "relative/path"},
		{"file.mkv", "file.mkv"},
		{"/media/tv/show/e.mkv", "/media"}, // marker match is exact-case
		{"MOVIES/file.mkv", "MOVIES/file.mkv"},
	}
	for _, tc := range cases {
		if got := Resolve(tc.path); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(""); got != "unknown" {
		t.Fatalf("Resolve(\"\") = %q, want unknown", got)
	}
	if got := Resolve("   "); got != "unknown" {
		t.Fatalf("whitespace path resolved to %q", got)
	}
}

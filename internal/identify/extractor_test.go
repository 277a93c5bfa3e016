package identify

import (
	"testing"

	"winnow/internal/media"
)

func TestExtractMovieTitles(t *testing.T) {
	e := New(Options{})
	cases := []struct {
		path      string
		wantTitle string
		wantYear  string
	}{
		{"/media/disk/MOVIES/The Matrix (1999).mkv", "The Matrix", "1999"},
		{"/media/disk/MOVIES/10 Cloverfield Lane (2016) [1080p].mkv", "10 Cloverfield Lane", "2016"},
		{"/media/disk/MOVIES/Blade Runner (Final Cut) (1982).mp4", "Blade Runner Final Cut", "1982"},
		{"/media/disk/MOVIES/[REC] (2007).avi", "REC", "2007"},
		{"/media/disk/MOVIES/Heat   (1995).m4v", "Heat", "1995"},
	}
	for _, tc := range cases {
		id, ok := e.Extract(tc.path).(media.Movie)
		if !ok {
			t.Fatalf("expected movie identity for %q, got %T", tc.path, e.Extract(tc.path))
		}
		if id.Title != tc.wantTitle || id.Year != tc.wantYear {
			t.Fatalf("extracted %q/%q from %q, want %q/%q", id.Title, id.Year, tc.path, tc.wantTitle, tc.wantYear)
		}
	}
}

func TestExtractMovieFromFolder(t *testing.T) {
	e := New(Options{})
	id, ok := e.Extract("/media/disk/MOVIES/The Matrix (1999)/The.Matrix.1080p.BluRay.mkv").(media.Movie)
	if !ok {
		t.Fatal("expected folder year to identify the movie")
	}
	if id.Title != "The Matrix" || id.Year != "1999" {
		t.Fatalf("unexpected identity %q (%q)", id.Title, id.Year)
	}
}

func TestExtractMovieUnderMovieRoot(t *testing.T) {
	e := New(Options{MovieRoots: []string{"/srv/library/movies"}})

	// Nested layouts resolve to the containing movie folder under the root.
	id, ok := e.Extract("/srv/library/movies/The Matrix (1999)/CD1/The.Matrix.mkv").(media.Movie)
	if !ok {
		t.Fatal("expected nested file under a movie root to identify the movie")
	}
	if id.Title != "The Matrix" || id.Year != "1999" {
		t.Fatalf("unexpected identity %q (%q)", id.Title, id.Year)
	}

	// A file directly in the root falls back to the filename rules.
	id, ok = e.Extract("/srv/library/movies/Heat (1995).mkv").(media.Movie)
	if !ok || id.Title != "Heat" || id.Year != "1995" {
		t.Fatalf("direct-in-root fallback failed: %+v ok=%v", id, ok)
	}

	// A root folder without a year marker never fabricates an identity.
	if _, ok := e.Extract("/srv/library/movies/Unsorted/The.Matrix.mkv").(media.Movie); ok {
		t.Fatal("yearless folder under a movie root must not identify a movie")
	}

	// Outside the root the convention rules still apply.
	id, ok = e.Extract("/elsewhere/The Oath (2018)/The Oath.mkv").(media.Movie)
	if !ok || id.Title != "The Oath" {
		t.Fatalf("convention fallback failed: %+v ok=%v", id, ok)
	}
}

func TestBracketYearIsNotAnIdentity(t *testing.T) {
	e := New(Options{})
	if _, ok := e.Extract("/media/disk/MOVIES/The Matrix [1999].mkv").(media.Movie); ok {
		t.Fatal("bracketed year must not produce a movie identity")
	}
}

func TestExtractEpisodeFromSeasonLayout(t *testing.T) {
	e := New(Options{})
	id, ok := e.Extract("/media/4TB-WD2/TV/Breaking Bad/Season 01/Breaking Bad S01E01.mkv").(media.Episode)
	if !ok {
		t.Fatal("expected episode identity")
	}
	if id.Show != "Breaking Bad" || id.Season != 1 || id.Episode != 1 {
		t.Fatalf("unexpected identity %+v", id)
	}
	if key := id.Key(); key != "breaking bad S01E01" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestExtractEpisodeFromFilenamePrefix(t *testing.T) {
	e := New(Options{})
	id, ok := e.Extract("/downloads/Breaking.Bad.S02E05.720p.mkv").(media.Episode)
	if !ok {
		t.Fatal("expected episode identity")
	}
	if id.Show != "Breaking Bad" || id.Season != 2 || id.Episode != 5 {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestExtractEpisodeUnderTVRoot(t *testing.T) {
	e := New(Options{TVRoots: []string{"/srv/library/tv"}})
	id, ok := e.Extract("/srv/library/tv/The Wire/S05E10.mkv").(media.Episode)
	if !ok {
		t.Fatal("expected episode identity")
	}
	if id.Show != "The Wire" {
		t.Fatalf("show should come from the root layout, got %q", id.Show)
	}

	// Outside the root the convention rules still apply.
	id, ok = e.Extract("/elsewhere/The Wire/Season 05/S05E10.mkv").(media.Episode)
	if !ok || id.Show != "The Wire" {
		t.Fatalf("convention fallback failed: %+v ok=%v", id, ok)
	}
}

func TestEpisodeMarkerBeatsMovieYear(t *testing.T) {
	e := New(Options{})
	id, ok := e.Extract("/tv/Top Gear (2002)/Season 01/Top Gear (2002) S01E03.mkv").(media.Episode)
	if !ok {
		t.Fatalf("expected episode identity, got %T", e.Extract("/tv/Top Gear (2002)/Season 01/Top Gear (2002) S01E03.mkv"))
	}
	if id.Season != 1 || id.Episode != 3 {
		t.Fatalf("unexpected numbers %+v", id)
	}
}

func TestMalformedPathsDegradeToUnknown(t *testing.T) {
	e := New(Options{})
	paths := []string{
		"",
		"/media/disk/clips/holiday.mkv",
		"/media/disk/MOVIES/(1999).mkv",
		"/S01E01.mkv",
		"/media/x/Show Season 1/file.mkv",
	}
	for _, p := range paths {
		if _, ok := e.Extract(p).(media.Unknown); !ok {
			t.Fatalf("expected Unknown for %q, got %T", p, e.Extract(p))
		}
	}
}

func TestExtractFileClassifies(t *testing.T) {
	e := New(Options{})
	f, ok := e.ExtractFile("/media/disk/MOVIES/The Matrix (1999).mkv", 4096)
	if !ok {
		t.Fatal("expected media file")
	}
	if _, isMovie := f.Identity.(media.Movie); !isMovie {
		t.Fatalf("video file should carry a movie identity, got %T", f.Identity)
	}

	song, ok := e.ExtractFile("/media/disk/music/Greatest Hits (1999).mp3", 2048)
	if !ok {
		t.Fatal("expected audio to be a media file")
	}
	if _, isUnknown := song.Identity.(media.Unknown); !isUnknown {
		t.Fatalf("audio must never receive a movie identity, got %T", song.Identity)
	}

	if _, ok := e.ExtractFile("/media/disk/readme.txt", 1); ok {
		t.Fatal("non-media extension should be rejected")
	}
}

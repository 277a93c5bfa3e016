package dupes

import (
	"testing"

	"winnow/internal/media"
)

func movieFile(path string, size int64, title, year string) media.File {
	f, ok := media.NewFile(path, size)
	if !ok {
		panic("bad test path: " + path)
	}
	f.Identity = media.Movie{Title: title, Year: year}
	return f
}

func episodeFile(path string, size int64, show string, season, episode int) media.File {
	f, ok := media.NewFile(path, size)
	if !ok {
		panic("bad test path: " + path)
	}
	f.Identity = media.Episode{Show: show, Season: season, Episode: episode}
	return f
}

func TestGrouperThreshold(t *testing.T) {
	g := NewGrouper()
	g.Add(movieFile("/a/The Matrix (1999).mkv", 8, "The Matrix", "1999"))
	g.Add(movieFile("/b/The Matrix (1999).mp4", 4, "The Matrix", "1999"))
	g.Add(movieFile("/a/Heat (1995).mkv", 6, "Heat", "1995"))

	groups := g.Movies()
	if len(groups) != 1 {
		t.Fatalf("expected exactly one duplicate group, got %d", len(groups))
	}
	if groups[0].Key != "the matrix (1999)" {
		t.Fatalf("unexpected group key %q", groups[0].Key)
	}
	if len(groups[0].Files) != 2 {
		t.Fatalf("expected 2 members, got %d", len(groups[0].Files))
	}
	if groups[0].Files[0].Path != "/a/The Matrix (1999).mkv" {
		t.Fatalf("member order not preserved: %q first", groups[0].Files[0].Path)
	}
}

func TestGrouperFirstSeenOrder(t *testing.T) {
	g := NewGrouper()
	g.Add(episodeFile("/x/b S01E02.mkv", 1, "b", 1, 2))
	g.Add(episodeFile("/x/a S01E01.mkv", 1, "a", 1, 1))
	g.Add(episodeFile("/y/b S01E02.mkv", 1, "b", 1, 2))
	g.Add(episodeFile("/y/a S01E01.mkv", 1, "a", 1, 1))

	groups := g.TV()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "b S01E02" || groups[1].Key != "a S01E01" {
		t.Fatalf("groups not in first-seen order: %q, %q", groups[0].Key, groups[1].Key)
	}
}

func TestGrouperIgnoresUnknown(t *testing.T) {
	g := NewGrouper()
	f, _ := media.NewFile("/x/mystery.mkv", 1)
	g.Add(f) // identity is Unknown
	loaded := media.File{Path: "/y/loaded.mkv"}
	g.Add(loaded) // identity is nil, as after a report load

	if got := len(g.Movies()) + len(g.TV()); got != 0 {
		t.Fatalf("unidentified files formed %d groups", got)
	}
}

func TestCounts(t *testing.T) {
	g := NewGrouper()
	g.Add(movieFile("/a/The Matrix (1999).mkv", 8, "The Matrix", "1999"))
	g.Add(movieFile("/b/The Matrix (1999).mp4", 4, "The Matrix", "1999"))
	g.Add(movieFile("/c/The Matrix (1999).avi", 2, "The Matrix", "1999"))
	g.Add(episodeFile("/a/TV/x/x S01E01.mkv", 1, "x", 1, 1))
	g.Add(episodeFile("/b/TV/x/x S01E01.mkv", 1, "x", 1, 1))
	g.Add(episodeFile("/a/TV/x/x S01E02.mkv", 1, "x", 1, 2))

	c := g.Counts()
	if c.MovieGroups != 1 || c.TVGroups != 1 {
		t.Fatalf("unexpected group counts %+v", c)
	}
	if c.DuplicateFiles != 5 {
		t.Fatalf("expected 5 duplicate files, got %d", c.DuplicateFiles)
	}
}

func TestNearMisses(t *testing.T) {
	keys := []string{
		"the matrix (1999)",
		"matrix (1999)",
		"heat (1995)",
		"hear (1995)",
		"heat (1999)",
		"alien (1979)",
	}
	misses := NearMisses(keys)
	if len(misses) != 2 {
		t.Fatalf("expected 2 near misses, got %d: %+v", len(misses), misses)
	}
	if misses[0].KeyA != "the matrix (1999)" || misses[0].KeyB != "matrix (1999)" {
		t.Fatalf("unexpected first pair %+v", misses[0])
	}
	if misses[1].KeyA != "heat (1995)" || misses[1].KeyB != "hear (1995)" {
		t.Fatalf("unexpected second pair %+v", misses[1])
	}
}

func TestNearMissesRequireSameYear(t *testing.T) {
	if misses := NearMisses([]string{"heat (1995)", "heat (1999)"}); len(misses) != 0 {
		t.Fatalf("different years must not near-miss: %+v", misses)
	}
	if misses := NearMisses([]string{"heat (1995)", "heat (1995)"}); len(misses) != 0 {
		t.Fatalf("identical keys are not near misses: %+v", misses)
	}
}

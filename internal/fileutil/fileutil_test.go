package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src.txt")

	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := HashFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// sha256("hello world")
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got != want {
		t.Fatalf("digest mismatch: got %s, want %s", got, want)
	}
}

func TestHashFileMissing(t *testing.T) {
	if _, err := HashFile(filepath.Join(t.TempDir(), "absent.bin")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHashFileDistinguishesContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	if err := os.WriteFile(a, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	hashA, err := HashFile(a)
	if err != nil {
		t.Fatal(err)
	}
	hashB, err := HashFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if hashA == hashB {
		t.Fatal("different content produced the same digest")
	}
}

func TestAcquireLockBlocksSecondHolder(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "locks", ".winnow.lock")

	release, err := AcquireLock(lockPath)
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	if _, err := AcquireLock(lockPath); err == nil {
		t.Fatal("expected second acquire to fail while lock held")
	}

	if err := release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	release, err = AcquireLock(lockPath)
	if err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	if err := release(); err != nil {
		t.Fatalf("second release failed: %v", err)
	}
}

func TestOSExistsAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "victim.mkv")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ops := OS{}
	if !ops.Exists(path) {
		t.Fatal("expected file to exist")
	}
	if err := ops.Remove(path); err != nil {
		t.Fatal(err)
	}
	if ops.Exists(path) {
		t.Fatal("expected file to be gone")
	}
	if err := ops.Remove(path); err == nil {
		t.Fatal("expected error removing missing file")
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindCover(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(coverPath, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := FindCover(filepath.Join(dir, "track.mp3")); got != coverPath {
		t.Errorf("FindCover() = %q, want %q", got, coverPath)
	}
}

func TestFindCover_NotFound(t *testing.T) {
	dir := t.TempDir()

	if got := FindCover(filepath.Join(dir, "track.mp3")); got != "" {
		t.Errorf("FindCover() = %q, want empty string", got)
	}
	if got := FindCover(filepath.Join(dir, "missing", "track.mp3")); got != "" {
		t.Errorf("FindCover() in missing dir = %q, want empty string", got)
	}
}

func TestFindCover_PriorityAndCase(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"folder.jpg", "Cover.PNG"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("fake"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	want := filepath.Join(dir, "Cover.PNG")
	if got := FindCover(filepath.Join(dir, "track.mp3")); got != want {
		t.Errorf("FindCover() = %q, want %q (higher priority)", got, want)
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLevelFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(".\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	write("b.txt")
	write("a.txt")
	write("notes.md")

	t.Run("globs_sorted", func(t *testing.T) {
		files, err := levelFiles(dir, nil)
		if err != nil {
			t.Fatalf("levelFiles: %v", err)
		}
		want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
		if len(files) != len(want) {
			t.Fatalf("got %d files, want %d", len(files), len(want))
		}
		for i := range want {
			if files[i] != want[i] {
				t.Fatalf("file %d = %s, want %s", i, files[i], want[i])
			}
		}
	})

	t.Run("picks_up_new_files", func(t *testing.T) {
		write("c.txt")
		files, err := levelFiles(dir, nil)
		if err != nil {
			t.Fatalf("levelFiles: %v", err)
		}
		if len(files) != 3 {
			t.Fatalf("got %d files after adding one, want 3", len(files))
		}
	})

	t.Run("explicit_args_win", func(t *testing.T) {
		files, err := levelFiles(dir, []string{"only.txt"})
		if err != nil {
			t.Fatalf("levelFiles: %v", err)
		}
		if len(files) != 1 || files[0] != "only.txt" {
			t.Fatalf("args should bypass the glob, got %v", files)
		}
	})
}

package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/scan"
)

func TestCapturePartitionsFilesAndFolders(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "report.pdf"))
	mustWrite(t, filepath.Join(dir, "IMG_0001.jpg"))
	if err := os.MkdirAll(filepath.Join(dir, "music", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, filepath.Join(dir, "music", "track.mp3"))
	mustWrite(t, filepath.Join(dir, "music", "nested", "deep.mp3"))

	snap, err := scan.Capture(dir)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if len(snap.Files) != 2 {
		t.Fatalf("files: got %d, want 2", len(snap.Files))
	}
	if len(snap.Folders) != 1 {
		t.Fatalf("folders: got %d, want 1", len(snap.Folders))
	}

	folder := snap.Folders[0]
	if folder.Name != "music" {
		t.Fatalf("folder name: got %q", folder.Name)
	}
	// Snapshot is one level deep: the nested directory and its file are invisible.
	if len(folder.Files) != 1 || folder.Files[0].Name != "track.mp3" {
		t.Fatalf("folder files: got %+v, want just track.mp3", folder.Files)
	}
}

func TestCaptureParsesStemAndExtension(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "IMG_0001.JPG"))
	mustWrite(t, filepath.Join(dir, "README"))
	mustWrite(t, filepath.Join(dir, "archive.tar.gz"))

	snap, err := scan.Capture(dir)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	byName := map[string]scan.File{}
	for _, f := range snap.Files {
		byName[f.Name] = f
	}

	if f := byName["IMG_0001.JPG"]; f.Stem != "IMG_0001" || f.Ext != "jpg" {
		t.Errorf("IMG_0001.JPG: stem=%q ext=%q", f.Stem, f.Ext)
	}
	if f := byName["README"]; f.Stem != "README" || f.Ext != "" {
		t.Errorf("README: stem=%q ext=%q", f.Stem, f.Ext)
	}
	if f := byName["archive.tar.gz"]; f.Stem != "archive.tar" || f.Ext != "gz" {
		t.Errorf("archive.tar.gz: stem=%q ext=%q", f.Stem, f.Ext)
	}
}

func TestCaptureMissingRoot(t *testing.T) {
	if _, err := scan.Capture(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

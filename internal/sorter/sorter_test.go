package sorter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/logging"
	"tidy/internal/sorter"
	"tidy/internal/testsupport"
)

func TestRunOrganizesFilesByRule(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	testsupport.TouchFiles(t, dir, "IMG_0001.jpg", "report.pdf", "mystery.xyz")

	s := sorter.New(cfg, logging.NewNop())
	summary, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// IMG_ prefix beats the jpg extension.
	for _, want := range []string{
		filepath.Join("Photos", "IMG_0001.jpg"),
		filepath.Join("Documents", "report.pdf"),
		filepath.Join("Others", "mystery.xyz"),
	} {
		if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
			t.Errorf("expected %s: %v", want, err)
		}
	}
	if summary.Moved != 3 {
		t.Fatalf("moved: got %d, want 3", summary.Moved)
	}
	if !summary.Clean() {
		t.Fatalf("expected clean summary: %+v", summary)
	}
}

func TestRunCreatesEveryCategoryDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()

	s := sorter.New(cfg, logging.NewNop())
	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, name := range cfg.RuleTable().Names() {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.IsDir() {
			t.Errorf("category dir %s missing (err: %v)", name, err)
		}
	}
}

func TestRunReclassifiesFolderByMajority(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	album := filepath.Join(dir, "my-album")
	testsupport.TouchFiles(t, album, "1.mp3", "2.mp3", "3.mp3", "4.mp3", "5.mp3", "notes.txt")

	s := sorter.New(cfg, logging.NewNop())
	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Audio", "my-album", "1.mp3")); err != nil {
		t.Fatalf("expected Audio/my-album: %v", err)
	}
	if _, err := os.Stat(album); !os.IsNotExist(err) {
		t.Fatalf("original folder should be gone, stat err: %v", err)
	}
}

func TestRunSendsTiedFolderToDefault(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	mixed := filepath.Join(dir, "mixed")
	testsupport.TouchFiles(t, mixed, "a.mp3", "b.mp3", "c.pdf", "d.pdf")

	s := sorter.New(cfg, logging.NewNop())
	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "Others", "mixed")); err != nil {
		t.Fatalf("expected Others/mixed: %v", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	testsupport.TouchFiles(t, dir, "IMG_0001.jpg", "report.pdf")
	testsupport.TouchFiles(t, filepath.Join(dir, "album"), "1.mp3", "2.mp3")

	s := sorter.New(cfg, logging.NewNop())
	if _, err := s.Run(context.Background(), dir); err != nil {
		t.Fatalf("first run: %v", err)
	}

	summary, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary.Moved != 0 || summary.Collisions != 0 || summary.Failures != 0 {
		t.Fatalf("second run should be a no-op: %+v", summary)
	}
	if summary.CategoriesSkipped == 0 {
		t.Fatal("second run should have skipped the category directories")
	}
}

func TestRunCollisionLeavesSourceInPlace(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "report.pdf"), "new")
	testsupport.WriteFile(t, filepath.Join(dir, "Documents", "report.pdf"), "old")

	s := sorter.New(cfg, logging.NewNop())
	summary, err := s.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Collisions != 1 {
		t.Fatalf("collisions: got %d, want 1", summary.Collisions)
	}
	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	if err != nil {
		t.Fatalf("source should remain: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("source content changed: %q", data)
	}
	data, err = os.ReadFile(filepath.Join(dir, "Documents", "report.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Fatalf("destination overwritten: %q", data)
	}
}

func TestRunMissingDirectoryFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	s := sorter.New(cfg, logging.NewNop())
	_, err := s.Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected top-level failure")
	}
	if !errors.Is(err, sorter.ErrRun) {
		t.Fatalf("expected ErrRun, got %v", err)
	}
}

func TestRunRefusesLockedDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()

	s := sorter.New(cfg, logging.NewNop())

	release, err := sorter.HoldLockForTest(cfg.Paths.LockDir, dir)
	if err != nil {
		t.Fatalf("hold lock: %v", err)
	}
	defer release()

	if _, err := s.Run(context.Background(), dir); !errors.Is(err, sorter.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

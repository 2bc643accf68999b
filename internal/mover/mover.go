package mover

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"log/slog"

	"tidy/internal/fileutil"
	"tidy/internal/logging"
)

// Disposition is the terminal outcome of a single move attempt.
type Disposition int

const (
	// Moved means the entry was relocated into its category directory.
	Moved Disposition = iota
	// SkippedCollision means the destination already held an entry with the
	// same name; the source was left untouched.
	SkippedCollision
	// AlreadyPlaced means the entry was already inside its target category.
	AlreadyPlaced
	// Failed means the filesystem operation failed; Result.Err holds the cause.
	Failed
)

func (d Disposition) String() string {
	switch d {
	case Moved:
		return "moved"
	case SkippedCollision:
		return "collision"
	case AlreadyPlaced:
		return "already placed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result reports what happened to one entry.
type Result struct {
	Name        string
	Category    string
	Target      string
	Disposition Disposition
	Err         error
}

// Mover performs collision-safe moves and logs each outcome.
type Mover struct {
	logger *slog.Logger
}

// New constructs a Mover. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Mover {
	return &Mover{logger: logging.NewComponentLogger(logger, "mover")}
}

// MoveFile relocates the file at src into targetDir, preserving its name.
// An existing destination entry is never overwritten.
func (m *Mover) MoveFile(ctx context.Context, src, targetDir, category string) Result {
	logger := logging.WithContext(ctx, m.logger)
	name := filepath.Base(src)
	target := filepath.Join(targetDir, name)
	res := Result{Name: name, Category: category, Target: target}

	if destinationExists(target) {
		res.Disposition = SkippedCollision
		logger.Warn("destination already exists, skipping",
			logging.String(logging.FieldEntry, name),
			logging.String(logging.FieldCategory, category),
			logging.String("target", target),
		)
		return res
	}

	if err := rename(src, target, false); err != nil {
		res.Disposition = Failed
		res.Err = err
		logger.Error("failed to move file",
			logging.String(logging.FieldEntry, name),
			logging.String(logging.FieldCategory, category),
			logging.Error(err),
		)
		return res
	}

	res.Disposition = Moved
	logger.Info("moved file",
		logging.String(logging.FieldEntry, name),
		logging.String(logging.FieldCategory, category),
	)
	return res
}

// MoveFolder relocates the folder at src, with its entire contents, into
// targetDir. A folder whose parent already is the target category is left
// untouched and reported as already placed.
func (m *Mover) MoveFolder(ctx context.Context, src, targetDir, category string) Result {
	logger := logging.WithContext(ctx, m.logger)
	name := filepath.Base(src)
	target := filepath.Join(targetDir, name)
	res := Result{Name: name, Category: category, Target: target}

	if filepath.Base(filepath.Dir(src)) == category {
		res.Disposition = AlreadyPlaced
		res.Target = src
		logger.Info("folder already in its category",
			logging.String(logging.FieldEntry, name),
			logging.String(logging.FieldCategory, category),
		)
		return res
	}

	if destinationExists(target) {
		res.Disposition = SkippedCollision
		logger.Warn("destination already exists, skipping",
			logging.String(logging.FieldEntry, name),
			logging.String(logging.FieldCategory, category),
			logging.String("target", target),
		)
		return res
	}

	if err := rename(src, target, true); err != nil {
		res.Disposition = Failed
		res.Err = err
		logger.Error("failed to move folder",
			logging.String(logging.FieldEntry, name),
			logging.String(logging.FieldCategory, category),
			logging.Error(err),
		)
		return res
	}

	res.Disposition = Moved
	logger.Info("moved folder",
		logging.String(logging.FieldEntry, name),
		logging.String(logging.FieldCategory, category),
	)
	return res
}

func destinationExists(target string) bool {
	_, err := os.Lstat(target)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// rename moves src to target, falling back to copy-then-remove when the two
// paths live on different filesystems.
func rename(src, target string, isDir bool) error {
	err := os.Rename(src, target)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}
	if isDir {
		if copyErr := fileutil.CopyDir(src, target); copyErr != nil {
			return copyErr
		}
		return os.RemoveAll(src)
	}
	if copyErr := fileutil.CopyFile(src, target); copyErr != nil {
		return copyErr
	}
	return os.Remove(src)
}

package sorter

import (
	"context"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/google/uuid"

	"tidy/internal/classify"
	"tidy/internal/config"
	"tidy/internal/logging"
	"tidy/internal/mover"
	"tidy/internal/scan"
)

// Sorter organizes a directory according to the configured rule table.
type Sorter struct {
	cfg    *config.Config
	logger *slog.Logger
	mover  *mover.Mover
}

// New constructs a Sorter using default dependencies.
func New(cfg *config.Config, logger *slog.Logger) *Sorter {
	return &Sorter{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "sorter"),
		mover:  mover.New(logger),
	}
}

// Run performs one organization pass over dir. Per-entry collisions and
// failures are contained in the returned Summary; the error return is
// reserved for top-level failures (lock contention, unreadable directory,
// category directory creation).
func (s *Sorter) Run(ctx context.Context, dir string) (*Summary, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, Wrap(ErrRun, "resolve directory", "invalid working directory", err)
	}

	lock, err := acquireLock(s.cfg.Paths.LockDir, absDir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	runID := uuid.NewString()
	ctx = logging.ContextWithRunID(ctx, runID)
	logger := logging.WithContext(ctx, s.logger)

	summary := &Summary{RunID: runID, Directory: absDir}
	table := s.cfg.RuleTable()

	for _, amb := range table.Ambiguities() {
		logger.Warn("extension claimed by multiple categories",
			logging.String("extension", amb.Extension),
			logging.String("kept", amb.Kept),
			logging.String("shadowed", amb.Shadowed),
		)
	}

	logger.Info("organizing directory", logging.String("dir", absDir))

	// Snapshot before any mutation so classification never observes its own
	// moves.
	snapshot, err := scan.Capture(absDir)
	if err != nil {
		return nil, Wrap(ErrRun, "scan directory", "failed to enumerate working directory", err)
	}

	for _, name := range table.Names() {
		if err := os.MkdirAll(filepath.Join(absDir, name), 0o755); err != nil {
			return nil, Wrap(ErrRun, "ensure category dirs", "failed to create category directory "+name, err)
		}
	}

	idx := table.BuildIndex()

	for _, file := range snapshot.Files {
		category := classify.File(file, table, idx)
		res := s.mover.MoveFile(ctx, filepath.Join(absDir, file.Name), filepath.Join(absDir, category), category)
		summary.record(res)
	}

	for _, folder := range snapshot.Folders {
		if table.IsCategory(folder.Name) {
			summary.CategoriesSkipped++
			logger.Info("skipping category directory", logging.String(logging.FieldEntry, folder.Name))
			continue
		}
		if folder.Err != nil {
			summary.record(mover.Result{Name: folder.Name, Disposition: mover.Failed, Err: folder.Err})
			logger.Error("cannot inspect folder contents",
				logging.String(logging.FieldEntry, folder.Name),
				logging.Error(folder.Err),
			)
			continue
		}
		category := classify.Folder(folder, table, idx)
		res := s.mover.MoveFolder(ctx, filepath.Join(absDir, folder.Name), filepath.Join(absDir, category), category)
		summary.record(res)
	}

	logger.Info("directory organized", logging.Args(summary.attrs()...)...)
	return summary, nil
}

package sorter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireLock takes a per-directory advisory lock so concurrent runs against
// the same directory fail fast instead of racing each other's moves. The
// lock file name is derived from the directory path so different directories
// never contend.
func acquireLock(lockDir, dir string) (*flock.Flock, error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, Wrap(ErrConfiguration, "ensure lock dir", "failed to create lock directory", err)
	}
	sum := sha256.Sum256([]byte(dir))
	path := filepath.Join(lockDir, fmt.Sprintf("tidy-%x.lock", sum[:8]))

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, Wrap(ErrRun, "acquire lock", "failed to acquire directory lock", err)
	}
	if !ok {
		return nil, Wrap(ErrLocked, "acquire lock", fmt.Sprintf("another run is already organizing %s", dir), nil)
	}
	return lock, nil
}

package sorter

import "path/filepath"

// HoldLockForTest grabs the same per-directory lock Run uses, so tests can
// simulate a concurrent invocation.
func HoldLockForTest(lockDir, dir string) (func(), error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	lock, err := acquireLock(lockDir, abs)
	if err != nil {
		return nil, err
	}
	return func() { _ = lock.Unlock() }, nil
}

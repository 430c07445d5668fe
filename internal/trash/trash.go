// Package trash implements recoverable deletes by moving paths into a
// trash directory instead of removing them.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Bin is a trash directory. Put moves paths into it via rename, so it only
// works for paths on the same filesystem as the directory; callers are
// expected to fall back to a permanent delete when Put fails.
type Bin struct {
	Dir string

	// now is overridable for collision-suffix tests.
	now func() time.Time
}

// NewBin returns a Bin rooted at dir.
func NewBin(dir string) *Bin {
	return &Bin{Dir: dir, now: time.Now}
}

// Put moves path into the trash directory, creating the directory on demand.
// An entry with the same base name already in the trash gets a timestamp
// suffix instead of being overwritten.
func (b *Bin) Put(path string) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("create trash dir %s: %w", b.Dir, err)
	}
	dest := filepath.Join(b.Dir, filepath.Base(path))
	if _, err := os.Lstat(dest); err == nil {
		clock := b.now
		if clock == nil {
			clock = time.Now
		}
		dest = fmt.Sprintf("%s.%d", dest, clock().UnixNano())
	}
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move %s to trash: %w", path, err)
	}
	return nil
}

package kernel

import (
	"os"
	"path/filepath"
)

// System abstracts the filesystem and process-identity operations the
// updater needs. Package-local so unit tests can fake the boot directory
// and root check without touching the real machine.
type System interface {
	Geteuid() int
	Stat(name string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	RemoveAll(path string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Geteuid returns the caller's effective user id.
func (RealSystem) Geteuid() int {
	return os.Geteuid()
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Glob returns the names of all files matching pattern.
func (RealSystem) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes data to the named file, creating it if necessary.
func (RealSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

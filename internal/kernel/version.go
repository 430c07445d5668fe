// Package kernel builds, installs, and retires Gentoo kernel versions.
package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mik90/kernelup/internal/messages"
)

// imagePrefix is the boot-directory file name prefix for kernel images.
const imagePrefix = "vmlinuz-"

// oldSuffix marks the backup copy `make install` leaves behind when a
// version is installed a second time.
const oldSuffix = ".old"

// Version identifies one installed kernel, parsed from an image name like
// vmlinuz-5.9.2-gentoo, vmlinuz-5.9.2-gentoo-r1, or vmlinuz-5.9.2-gentoo.old.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int  // N from -rN, 0 when absent
	Old      bool // true for the .old backup copy
}

// ParseImageName parses a kernel version from a boot image file name.
// name must be a bare file name, not a path.
func ParseImageName(name string) (Version, error) {
	var v Version
	if !strings.HasPrefix(name, imagePrefix) {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	rest := strings.TrimPrefix(name, imagePrefix)
	if strings.HasSuffix(rest, oldSuffix) {
		v.Old = true
		rest = strings.TrimSuffix(rest, oldSuffix)
	}

	// 5.9.2-gentoo or 5.9.2-gentoo-r1
	parts := strings.Split(rest, "-")
	if len(parts) != 2 && len(parts) != 3 {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	if len(parts) == 3 {
		revision, err := strconv.Atoi(strings.TrimPrefix(parts[2], "r"))
		if err != nil || !strings.HasPrefix(parts[2], "r") {
			return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
		}
		v.Revision = revision
	}

	triple := strings.Split(parts[0], ".")
	if len(triple) != 3 {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	var err error
	if v.Major, err = strconv.Atoi(triple[0]); err != nil {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	if v.Minor, err = strconv.Atoi(triple[1]); err != nil {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	if v.Patch, err = strconv.Atoi(triple[2]); err != nil {
		return v, fmt.Errorf(messages.ScanBadImageNameFmt, name)
	}
	return v, nil
}

// Triple returns the bare X.Y.Z form.
func (v Version) Triple() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Slug returns the artifact name component, X.Y.Z-gentoo[-rN], without the
// .old suffix. Source and module directories are named after it too.
func (v Version) Slug() string {
	slug := v.Triple() + "-gentoo"
	if v.Revision > 0 {
		slug += fmt.Sprintf("-r%d", v.Revision)
	}
	return slug
}

// String returns the display form, e.g. 5.9.2-r1.old.
func (v Version) String() string {
	out := v.Triple()
	if v.Revision > 0 {
		out += fmt.Sprintf("-r%d", v.Revision)
	}
	if v.Old {
		out += oldSuffix
	}
	return out
}

// Compare orders versions by (major, minor, patch, revision), ranking the
// .old copy of a version older than the copy without .old. It returns a
// negative number when v is older than other, zero when equal, and a
// positive number when newer.
func (v Version) Compare(other Version) int {
	left, right := v.sortKey(), other.sortKey()
	for i := range left {
		if left[i] != right[i] {
			if left[i] < right[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v Version) sortKey() [5]int {
	oldAdj := 0
	if v.Old {
		oldAdj = -1
	}
	return [5]int{v.Major, v.Minor, v.Patch, v.Revision, oldAdj}
}

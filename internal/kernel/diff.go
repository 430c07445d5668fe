package kernel

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// diffMaxLines caps the config diff printed after `make oldconfig`; a major
// version bump can add hundreds of new options.
const diffMaxLines = 40

// ConfigDiff returns a unified diff of the kernel config change, truncated
// to diffMaxLines. It returns "" when the contents are identical.
func ConfigDiff(fromName string, toName string, before string, after string) string {
	if before == after {
		return ""
	}
	diff := strings.TrimSpace(udiff.Unified(fromName, toName, before, after))
	lines := strings.Split(diff, "\n")
	if len(lines) <= diffMaxLines {
		return diff
	}
	truncated := lines[:diffMaxLines]
	truncated = append(truncated, fmt.Sprintf("... (%d more lines)", len(lines)-diffMaxLines))
	return strings.Join(truncated, "\n")
}

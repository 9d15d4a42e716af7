// internal/runutil/runutil.go
package runutil

import (
	"path/filepath"
	"runtime"
	"strings"
)

// EffectiveThreads returns the worker count for a --threads value:
// 0 (or less) means one worker per CPU.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// ResolveFormat picks the render format. Rules (matching current behavior):
//   - an explicit --format wins
//   - --svg selects svg
//   - otherwise the output extension decides (.svg → svg, .txt → text)
//   - anything else is png
func ResolveFormat(format string, svg bool, output string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if svg {
		return "svg"
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".svg":
		return "svg"
	case ".txt":
		return "text"
	}
	return "png"
}

// SecondInput decides where the second sequence comes from. Without a
// second file the first file is reused; self reports that the very same
// record is compared against itself.
func SecondInput(firstFile, firstName, secondFile, secondName string) (file, name string, self bool) {
	if secondFile != "" {
		return secondFile, secondName, secondFile == firstFile && secondName == firstName
	}
	if secondName == "" || secondName == firstName {
		return firstFile, firstName, true
	}
	return firstFile, secondName, false
}

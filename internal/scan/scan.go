// Package scan discovers audio files under a directory tree.
// Traversal is iterative (explicit queue of pending directories) so
// arbitrarily deep trees cannot exhaust the stack.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Warning records a subtree that could not be listed.
// The walk continues past it; callers decide how loudly to report.
type Warning struct {
	Dir string
	Err error
}

func (w Warning) String() string {
	return fmt.Sprintf("skipping %s: %v", w.Dir, w.Err)
}

// Result is the outcome of one directory walk.
type Result struct {
	Paths    []string // matching files, sorted for stable processing order
	Warnings []Warning
}

// Dir walks the tree rooted at root and returns every regular file for
// which match holds. Directories are always descended regardless of the
// predicate; the predicate applies to non-directory entries only.
//
// A root that cannot be listed is an error. An unreadable subtree is
// skipped and recorded as a warning instead.
func Dir(root string, match func(string) bool) (Result, error) {
	var result Result

	queue := []string{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == root {
				return Result{}, fmt.Errorf("scan %s: %w", root, err)
			}
			result.Warnings = append(result.Warnings, Warning{Dir: dir, Err: err})
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				queue = append(queue, path)
				continue
			}
			if match(path) {
				result.Paths = append(result.Paths, path)
			}
		}
	}

	sort.Strings(result.Paths)
	return result, nil
}

// NormalizeExt ensures a non-empty extension carries its leading dot.
func NormalizeExt(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// ExtFilter returns a predicate matching paths whose extension is in exts.
// Matching is case-sensitive: ".mp3" does not match "SONG.MP3".
func ExtFilter(exts []string) func(string) bool {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		set[NormalizeExt(ext)] = struct{}{}
	}
	return func(path string) bool {
		_, ok := set[filepath.Ext(path)]
		return ok
	}
}

package report

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultName = "album-artister-report.json"

// Filename derives the summary file's name from the scanned root:
// <root base name, sanitized>-report.json. Falls back to a fixed name
// when nothing usable survives sanitization.
func Filename(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "." || base == string(filepath.Separator) {
		return defaultName
	}

	base = sanitize(base)
	if base == "" {
		return defaultName
	}
	return base + "-report.json"
}

// sanitize reduces a directory name to a safe ASCII token: non-ASCII is
// NFKD-decomposed to its ASCII skeleton, anything outside [A-Za-z0-9._-]
// becomes an underscore, and runs of underscores collapse.
func sanitize(s string) string {
	s = normalizeToASCII(s)

	var b strings.Builder
	b.Grow(len(s))

	lastWasUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-':
			b.WriteRune(r)
			lastWasUnderscore = false
		default:
			if !lastWasUnderscore {
				b.WriteByte('_')
				lastWasUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_.")
}

// normalizeToASCII decomposes accented characters to their ASCII
// equivalents (ō→o, é→e) and strips whatever remains non-ASCII.
func normalizeToASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, _ := transform.String(t, s)

	var b strings.Builder
	for _, r := range result {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

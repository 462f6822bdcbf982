// Package report aggregates one run into a summary that can be asserted
// on in tests and optionally dumped as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MayaGeva/AlbumArtister/internal/scan"
	"github.com/MayaGeva/AlbumArtister/internal/tagfix"
)

// SkippedFile is one file passed over at load time, with its reason.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// FailedSave is one song whose patched tag could not be written back.
type FailedSave struct {
	Path   string `json:"path"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail"`
}

// Summary is the aggregate result of one run.
type Summary struct {
	Root         string        `json:"root"`
	FilesMatched int           `json:"files_matched"`
	SongsFound   int           `json:"songs_found"`
	SongsFixed   int           `json:"songs_fixed"`
	Fixed        []string      `json:"fixed,omitempty"`
	Skipped      []SkippedFile `json:"skipped,omitempty"`
	Failed       []FailedSave  `json:"failed,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
}

// Build assembles a Summary from the scan and fix results.
func Build(root string, scanned scan.Result, outcome tagfix.Outcome) Summary {
	s := Summary{
		Root:         root,
		FilesMatched: len(scanned.Paths),
		SongsFound:   outcome.Found,
		SongsFixed:   outcome.FixedCount(),
		Fixed:        outcome.Fixed,
	}

	for _, skip := range outcome.Skipped {
		entry := SkippedFile{Path: skip.Path, Reason: string(skip.Reason)}
		if skip.Err != nil {
			entry.Detail = skip.Err.Error()
		}
		s.Skipped = append(s.Skipped, entry)
	}
	for _, fail := range outcome.Failed {
		s.Failed = append(s.Failed, FailedSave{
			Path:   fail.Path,
			Title:  fail.Title,
			Detail: fail.Err.Error(),
		})
	}
	for _, w := range scanned.Warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s
}

// WriteJSON dumps the summary as indented JSON at path.
func (s Summary) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

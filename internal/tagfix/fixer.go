// Package tagfix runs the album artist pass over a set of audio files.
package tagfix

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MayaGeva/AlbumArtister/internal/song"
)

// SkipReason classifies why a file produced no song handle.
type SkipReason string

const (
	SkipNotAudio   SkipReason = "not a music file"
	SkipPermission SkipReason = "permission denied"
	SkipLoadError  SkipReason = "load error"
)

// Skip records one file that was passed over at load time.
type Skip struct {
	Path   string
	Reason SkipReason
	Err    error
}

// Message returns the progress line printed for this skip.
func (s Skip) Message() string {
	switch s.Reason {
	case SkipNotAudio:
		return fmt.Sprintf("File is not a music file: %s", s.Path)
	case SkipPermission:
		return fmt.Sprintf("Permission error: %s", s.Path)
	default:
		return fmt.Sprintf("Something went wrong: %v Path: %s", s.Err, s.Path)
	}
}

// SaveFailure records a song whose patched tag could not be persisted.
type SaveFailure struct {
	Path  string
	Title string
	Err   error
}

// Outcome aggregates one run so callers can assert on it instead of
// scraping output.
type Outcome struct {
	Found   int      // songs successfully loaded
	Fixed   []string // titles of songs that received an album artist tag
	Skipped []Skip
	Failed  []SaveFailure
}

// FixedCount reports how many songs were patched and saved.
func (o Outcome) FixedCount() int { return len(o.Fixed) }

// Fixer drives the load → inspect → patch → save pass.
// The zero value is not usable; call New.
type Fixer struct {
	Load func(path string) (song.Song, error)
	Out  io.Writer
}

// New returns a Fixer using the real loader and stdout.
func New() *Fixer {
	return &Fixer{Load: song.Load, Out: os.Stdout}
}

// Run processes each path in order and prints the run summary.
// Each file is opened, inspected, possibly patched, and closed before the
// next one; no handle outlives its iteration.
func (f *Fixer) Run(paths []string) Outcome {
	var out Outcome
	for _, path := range paths {
		f.fixOne(path, &out)
	}

	fmt.Fprintf(f.Out, "Finished scanning all files (%d songs found)\n", out.Found)
	fmt.Fprintf(f.Out, "Finished fixing all songs (%d songs fixed)\n", len(out.Fixed))
	return out
}

func (f *Fixer) fixOne(path string, out *Outcome) {
	s, err := f.Load(path)
	if err != nil {
		skip := classify(path, err)
		out.Skipped = append(out.Skipped, skip)
		fmt.Fprintln(f.Out, skip.Message())
		return
	}
	defer s.Close()

	out.Found++

	// Key presence, not value: an empty-but-present album artist is
	// somebody's deliberate choice and stays untouched.
	if s.Has(song.FieldAlbumArtist) {
		return
	}

	s.Set(song.FieldAlbumArtist, s.Get(song.FieldArtist))

	title := displayTitle(s)
	if err := s.Save(); err != nil {
		out.Failed = append(out.Failed, SaveFailure{Path: path, Title: title, Err: err})
		fmt.Fprintf(f.Out, "Failed to save song: %v Path: %s\n", err, path)
		return
	}

	out.Fixed = append(out.Fixed, title)
	fmt.Fprintf(f.Out, "Fixed missing tag in song: %s\n", title)
}

func classify(path string, err error) Skip {
	reason := SkipLoadError
	switch {
	case errors.Is(err, song.ErrNotAudio), errors.Is(err, song.ErrUnsupported):
		reason = SkipNotAudio
	case errors.Is(err, fs.ErrPermission):
		reason = SkipPermission
	}
	return Skip{Path: path, Reason: reason, Err: err}
}

func displayTitle(s song.Song) string {
	if t := s.Get(song.FieldTitle); t != "" {
		return t
	}
	return filepath.Base(s.Path())
}

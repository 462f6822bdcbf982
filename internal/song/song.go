// Package song loads audio files into tag-bearing handles.
//
// A handle exposes the few tag operations the fixer needs: a key-presence
// check that is independent of the field's value, field get/set by name,
// and persistence back to the file's own binary format. Container parsing
// is delegated entirely to the format libraries.
package song

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Tag field names understood by every handle.
const (
	FieldArtist      = "artist"
	FieldAlbumArtist = "album_artist"
	FieldTitle       = "title"
)

var (
	// ErrNotAudio means the file's content is not a recognized audio format,
	// even though its name matched the filter.
	ErrNotAudio = errors.New("not a music file")

	// ErrUnsupported means no format backend exists for the file's extension.
	ErrUnsupported = errors.New("unsupported file extension")
)

// Song is an open, in-memory view of one file's tags.
// Close must be called on every handle, whether or not Save was.
type Song interface {
	Path() string

	// Has reports whether the field's key exists in the file's tag map.
	// Presence is not the same as non-emptiness.
	Has(field string) bool

	Get(field string) string
	Set(field, value string)

	// Save persists in-memory tag changes back to the file.
	Save() error

	Close() error
}

// Load opens path and returns a handle for its format.
//
// Failures are classified for the caller: ErrNotAudio for unparseable
// content, fs.ErrPermission (via errors.Is) for unreadable files, and
// anything else with its message intact.
func Load(path string) (Song, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return loadMP3(path)
	case ".flac":
		return loadFLAC(path)
	case ".m4a", ".mp4":
		return loadM4A(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
}

package song

import (
	"errors"
	"fmt"
	"io/fs"

	mp4tag "github.com/Sorrow446/go-mp4tag"
)

type mp4Song struct {
	path    string
	file    *mp4tag.MP4
	tags    *mp4tag.MP4Tags
	pending mp4tag.MP4Tags
	dirty   bool
}

func loadM4A(path string) (Song, error) {
	f, err := mp4tag.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNotAudio, err)
	}

	tags, err := f.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotAudio, err)
	}
	return &mp4Song{path: path, file: f, tags: tags}, nil
}

func (s *mp4Song) Path() string { return s.path }

func (s *mp4Song) field(tags *mp4tag.MP4Tags, field string) *string {
	switch field {
	case FieldArtist:
		return &tags.Artist
	case FieldAlbumArtist:
		return &tags.AlbumArtist
	case FieldTitle:
		return &tags.Title
	default:
		return nil
	}
}

// Has approximates key presence with non-emptiness: MP4 text atoms do not
// surface empty-but-present values through the tag library.
func (s *mp4Song) Has(field string) bool {
	return s.Get(field) != ""
}

func (s *mp4Song) Get(field string) string {
	if p := s.field(s.tags, field); p != nil {
		return *p
	}
	return ""
}

func (s *mp4Song) Set(field, value string) {
	if p := s.field(&s.pending, field); p != nil {
		*p = value
		s.dirty = true
	}
}

func (s *mp4Song) Save() error {
	if !s.dirty {
		return nil
	}
	if err := s.file.Write(&s.pending, []string{}); err != nil {
		return fmt.Errorf("save mp4 tags: %w", err)
	}
	return nil
}

func (s *mp4Song) Close() error {
	s.file.Close()
	return nil
}

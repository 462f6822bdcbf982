package song

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

// Vorbis comment field per tag field.
var flacFields = map[string]string{
	FieldArtist:      "ARTIST",
	FieldAlbumArtist: "ALBUMARTIST",
	FieldTitle:       "TITLE",
}

type flacSong struct {
	path   string
	file   *flac.File
	cmts   *flacvorbis.MetaDataBlockVorbisComment
	cmtIdx int // index of the existing vorbis block in file.Meta, -1 if none
	setErr error
}

func loadFLAC(path string) (Song, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrNotAudio, err)
	}

	s := &flacSong{path: path, file: f, cmtIdx: -1}
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return nil, fmt.Errorf("parse vorbis comment: %w", err)
			}
			s.cmts = cmts
			s.cmtIdx = i
			break
		}
	}
	if s.cmts == nil {
		s.cmts = flacvorbis.New()
	}
	return s, nil
}

func (s *flacSong) Path() string { return s.path }

func (s *flacSong) Has(field string) bool {
	vals, err := s.cmts.Get(flacFields[field])
	return err == nil && len(vals) > 0
}

func (s *flacSong) Get(field string) string {
	vals, err := s.cmts.Get(flacFields[field])
	if err != nil || len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// Set appends the comment. The fixer only sets fields it verified absent,
// so no duplicate keys arise.
func (s *flacSong) Set(field, value string) {
	if err := s.cmts.Add(flacFields[field], value); err != nil && s.setErr == nil {
		s.setErr = err
	}
}

func (s *flacSong) Save() error {
	if s.setErr != nil {
		return fmt.Errorf("set vorbis comment: %w", s.setErr)
	}

	block := s.cmts.Marshal()
	if s.cmtIdx >= 0 {
		s.file.Meta[s.cmtIdx] = &block
	} else {
		s.file.Meta = append(s.file.Meta, &block)
		s.cmtIdx = len(s.file.Meta) - 1
	}

	if err := s.file.Save(s.path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

// Close is a no-op: the parser reads the whole file up front and holds no
// descriptor afterwards.
func (s *flacSong) Close() error { return nil }

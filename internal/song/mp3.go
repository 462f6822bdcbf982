package song

import (
	"fmt"
	"io"
	"os"

	"github.com/bogem/id3v2/v2"
)

// ID3v2 text frame per field. TPE2 is the album artist frame.
var mp3Frames = map[string]string{
	FieldArtist:      "TPE1",
	FieldAlbumArtist: "TPE2",
	FieldTitle:       "TIT2",
}

type mp3Song struct {
	path string
	tag  *id3v2.Tag
}

func loadMP3(path string) (Song, error) {
	if err := sniffMP3(path); err != nil {
		return nil, err
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open mp3: %w", err)
	}
	return &mp3Song{path: path, tag: tag}, nil
}

// sniffMP3 rejects files that merely borrowed the extension. The tag
// library only reads the ID3 area and would happily prepend a tag to
// arbitrary bytes, so check for an ID3 header or an MPEG frame sync first.
func sniffMP3(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// A short file can still be valid: two sync bytes are enough to pass.
	var header [3]byte
	n, err := io.ReadFull(f, header[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if n >= 3 && string(header[:3]) == "ID3" {
		return nil
	}
	if n >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0 {
		return nil
	}
	return ErrNotAudio
}

func (s *mp3Song) Path() string { return s.path }

func (s *mp3Song) Has(field string) bool {
	return len(s.tag.GetFrames(mp3Frames[field])) > 0
}

func (s *mp3Song) Get(field string) string {
	return s.tag.GetTextFrame(mp3Frames[field]).Text
}

func (s *mp3Song) Set(field, value string) {
	s.tag.AddTextFrame(mp3Frames[field], id3v2.EncodingUTF8, value)
}

func (s *mp3Song) Save() error {
	if err := s.tag.Save(); err != nil {
		return fmt.Errorf("save mp3 tags: %w", err)
	}
	return nil
}

func (s *mp3Song) Close() error { return s.tag.Close() }

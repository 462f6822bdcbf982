package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MayaGeva/AlbumArtister/internal/scan"
	"github.com/MayaGeva/AlbumArtister/internal/tagfix"
)

func sampleOutcome() tagfix.Outcome {
	return tagfix.Outcome{
		Found: 2,
		Fixed: []string{"First Song"},
		Skipped: []tagfix.Skip{
			{Path: "junk.mp3", Reason: tagfix.SkipNotAudio, Err: errors.New("bad header")},
		},
		Failed: []tagfix.SaveFailure{
			{Path: "full.mp3", Title: "Doomed", Err: errors.New("disk full")},
		},
	}
}

func TestBuild(t *testing.T) {
	scanned := scan.Result{
		Paths:    []string{"a.mp3", "b.mp3", "junk.mp3", "full.mp3"},
		Warnings: []scan.Warning{{Dir: "locked", Err: errors.New("permission denied")}},
	}

	s := Build("/music", scanned, sampleOutcome())

	if s.Root != "/music" {
		t.Errorf("Root = %q, want %q", s.Root, "/music")
	}
	if s.FilesMatched != 4 {
		t.Errorf("FilesMatched = %d, want 4", s.FilesMatched)
	}
	if s.SongsFound != 2 {
		t.Errorf("SongsFound = %d, want 2", s.SongsFound)
	}
	if s.SongsFixed != 1 {
		t.Errorf("SongsFixed = %d, want 1", s.SongsFixed)
	}
	if len(s.Skipped) != 1 || s.Skipped[0].Reason != string(tagfix.SkipNotAudio) {
		t.Errorf("Skipped = %v, want one not-a-music-file entry", s.Skipped)
	}
	if len(s.Failed) != 1 || s.Failed[0].Detail != "disk full" {
		t.Errorf("Failed = %v, want one disk-full entry", s.Failed)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one entry", s.Warnings)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	s := Build("/music", scan.Result{Paths: []string{"a.mp3"}}, sampleOutcome())

	path := filepath.Join(t.TempDir(), "report.json")
	if err := s.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if got.SongsFixed != s.SongsFixed || got.Root != s.Root {
		t.Errorf("round-tripped summary = %+v, want %+v", got, s)
	}
}

func TestWriteJSON_BadPath(t *testing.T) {
	s := Summary{Root: "/music"}

	err := s.WriteJSON(filepath.Join(t.TempDir(), "missing", "report.json"))
	if err == nil {
		t.Fatal("WriteJSON() into a missing directory should fail")
	}
}

package media

import "testing"

func TestNewSongDefaults(t *testing.T) {
	s := NewSong(Record{"id": "s-1", "title": "Untitled"})
	if s.ID != "s-1" || s.Title != "Untitled" {
		t.Errorf("song = %+v", s)
	}
	if s.Duration != 0 {
		t.Errorf("Duration = %d, want 0", s.Duration)
	}
	if s.Track != 1 {
		t.Errorf("Track = %d, want default 1", s.Track)
	}
}

func TestNewSongFull(t *testing.T) {
	s := NewSong(Record{
		"id":          "s-2",
		"parent":      "al-1",
		"title":       "So What",
		"album":       "Kind of Blue",
		"albumId":     "al-1",
		"artist":      "Miles Davis",
		"artistId":    "ar-1",
		"coverArt":    "cov-1",
		"duration":    float64(545),
		"bitRate":     float64(320),
		"size":        float64(21803945),
		"suffix":      "mp3",
		"contentType": "audio/mpeg",
		"track":       float64(1),
		"year":        float64(1959),
		"path":        "Miles Davis/Kind of Blue/01.mp3",
	})
	if s.Duration != 545 || s.BitRate != 320 || s.Size != 21803945 {
		t.Errorf("numeric fields = %d/%d/%d", s.Duration, s.BitRate, s.Size)
	}
	if s.CoverID != "cov-1" {
		t.Errorf("CoverID = %q", s.CoverID)
	}
	if s.Year != 1959 || s.Suffix != "mp3" {
		t.Errorf("song = %+v", s)
	}
}

func TestSongRoundTrip(t *testing.T) {
	in := Record{
		"id":       "s-3",
		"title":    "Blue in Green",
		"artist":   "Miles Davis",
		"duration": 337,
		"track":    3,
	}
	out := NewSong(in).ToRecord()

	if out["id"] != "s-3" || out["title"] != "Blue in Green" {
		t.Errorf("round trip = %v", out)
	}
	// Defaulted fields are always emitted.
	if out["duration"] != 337 || out["track"] != 3 {
		t.Errorf("duration/track = %v/%v", out["duration"], out["track"])
	}
	// Absent optionals stay absent.
	if _, ok := out["album"]; ok {
		t.Error("unset album leaked into the record")
	}
}

func TestSongNestedArtists(t *testing.T) {
	s := NewSong(Record{
		"id":    "s-4",
		"title": "Collab",
		"artists": []any{
			map[string]any{"id": "ar-1", "name": "First"},
			map[string]any{"id": "ar-2", "name": "Second"},
		},
	})
	if len(s.Artists) != 2 || s.Artists[1].Name != "Second" {
		t.Errorf("artists = %v", s.Artists)
	}

	out := s.ToRecord()
	entries, ok := out["artists"].([]Record)
	if !ok || len(entries) != 2 {
		t.Fatalf("artists in record = %v", out["artists"])
	}
	if entries[0].Str("name") != "First" {
		t.Errorf("artists[0] = %v", entries[0])
	}
}

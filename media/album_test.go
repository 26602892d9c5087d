package media

import "testing"

func TestNewAlbum(t *testing.T) {
	a := NewAlbum(Record{
		"id":        "al-1",
		"name":      "Kind of Blue",
		"songCount": float64(5),
		"created":   "2024-01-01T00:00:00Z",
		"duration":  float64(2752),
		"artist":    "Miles Davis",
		"year":      float64(1959),
		"song": []any{
			map[string]any{"id": "s-1", "title": "So What", "duration": float64(545), "track": float64(1)},
			map[string]any{"id": "s-2", "title": "Freddie Freeloader", "duration": float64(586), "track": float64(2)},
		},
	})
	if a.Name != "Kind of Blue" || a.SongCount != 5 || a.Duration != 2752 {
		t.Errorf("album = %+v", a)
	}
	if len(a.Songs) != 2 || a.Songs[0].Title != "So What" || a.Songs[1].Track != 2 {
		t.Errorf("songs = %v", a.Songs)
	}
}

func TestNewAlbumWithoutSongs(t *testing.T) {
	// List endpoints return albums without the embedded song list.
	a := NewAlbum(Record{
		"id":        "al-2",
		"name":      "A",
		"songCount": float64(3),
		"created":   "2024-01-01T00:00:00Z",
		"duration":  float64(600),
	})
	if a.Songs == nil || len(a.Songs) != 0 {
		t.Errorf("Songs = %v, want empty slice", a.Songs)
	}
}

func TestAlbumMissingRequiredFields(t *testing.T) {
	// Decoding never fails on schema violations; required fields fall
	// back to zero values.
	a := NewAlbum(Record{"id": "al-3"})
	if a.Name != "" || a.SongCount != 0 || a.Duration != 0 {
		t.Errorf("album = %+v", a)
	}
}

func TestAlbumInfoAttachment(t *testing.T) {
	a := NewAlbum(Record{
		"id":        "al-4",
		"name":      "B",
		"songCount": float64(1),
		"created":   "2024-01-01T00:00:00Z",
		"duration":  float64(60),
	})
	if a.Info() != nil || a.MBID() != "" {
		t.Error("fresh album must carry no enrichment")
	}

	a.SetInfo(NewAlbumInfo(Record{
		"notes":         "classic",
		"musicBrainzId": "mbid-1234",
	}))
	if a.MBID() != "mbid-1234" || a.Info().Notes != "classic" {
		t.Errorf("info = %+v", a.Info())
	}

	// Enrichment stays out of the album's own wire shape.
	if _, ok := a.ToRecord()["musicBrainzId"]; ok {
		t.Error("enrichment leaked into ToRecord")
	}
}

func TestAlbumRoundTrip(t *testing.T) {
	in := Record{
		"id":        "al-5",
		"name":      "C",
		"songCount": 2,
		"created":   "2024-01-01T00:00:00Z",
		"duration":  120,
		"coverArt":  "cov-5",
		"song": []Record{
			{"id": "s-1", "title": "One", "duration": 60, "track": 1},
		},
	}
	out := NewAlbum(in).ToRecord()

	if out["name"] != "C" || out["songCount"] != 2 || out["coverArt"] != "cov-5" {
		t.Errorf("round trip = %v", out)
	}
	songs, ok := out["song"].([]Record)
	if !ok || len(songs) != 1 || songs[0].Str("title") != "One" {
		t.Errorf("songs in record = %v", out["song"])
	}
}

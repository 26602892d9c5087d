package media

import "testing"

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist(Record{
		"id":          "pl-1",
		"name":        "Evening",
		"owner":       "alice",
		"public":      true,
		"songCount":   float64(3),
		"created":     "2024-01-01T00:00:00Z",
		"changed":     "2024-06-01T00:00:00Z",
		"duration":    float64(900),
		"allowedUser": []any{"bob", "carol"},
		"entry": []any{
			map[string]any{"id": "s-3", "title": "Third"},
			map[string]any{"id": "s-1", "title": "First"},
			map[string]any{"id": "s-2", "title": "Second"},
		},
	})
	if p.Name != "Evening" || !p.Public || p.Owner != "alice" {
		t.Errorf("playlist = %+v", p)
	}
	if len(p.AllowedUsers) != 2 || p.AllowedUsers[0] != "bob" {
		t.Errorf("allowed users = %v", p.AllowedUsers)
	}

	// The entry sequence is the playlist order.
	wantOrder := []string{"s-3", "s-1", "s-2"}
	if len(p.Songs) != len(wantOrder) {
		t.Fatalf("got %d songs", len(p.Songs))
	}
	for i, want := range wantOrder {
		if p.Songs[i].ID != want {
			t.Errorf("Songs[%d].ID = %q, want %q", i, p.Songs[i].ID, want)
		}
	}
}

func TestPlaylistWithoutEntries(t *testing.T) {
	p := NewPlaylist(Record{
		"id":        "pl-2",
		"name":      "Bare",
		"songCount": float64(10),
		"created":   "2024-01-01T00:00:00Z",
		"changed":   "2024-01-01T00:00:00Z",
		"duration":  float64(2400),
	})
	if p.Songs == nil || len(p.Songs) != 0 {
		t.Errorf("Songs = %v, want empty slice", p.Songs)
	}
	if p.Public {
		t.Error("public must default to false")
	}
}

func TestPlaylistRoundTrip(t *testing.T) {
	in := Record{
		"id":        "pl-3",
		"name":      "Trip",
		"songCount": 1,
		"created":   "2024-01-01T00:00:00Z",
		"changed":   "2024-01-02T00:00:00Z",
		"duration":  180,
		"entry": []Record{
			{"id": "s-9", "title": "Only", "duration": 180, "track": 1},
		},
	}
	out := NewPlaylist(in).ToRecord()

	if out["name"] != "Trip" || out["changed"] != "2024-01-02T00:00:00Z" {
		t.Errorf("round trip = %v", out)
	}
	entries, ok := out["entry"].([]Record)
	if !ok || len(entries) != 1 || entries[0].Str("id") != "s-9" {
		t.Errorf("entries = %v", out["entry"])
	}
	if _, ok := out["public"]; ok {
		t.Error("default false public leaked into the record")
	}
}

package media

// Index is one alphabetical grouping of artists as returned by the
// artist listing endpoints: the grouping letter plus the artists
// filed under it.
type Index struct {
	Name    string
	Artists []Artist
}

// NewIndex builds an Index from one decoded response fragment.
func NewIndex(rec Record) *Index {
	idx := &Index{
		Name:    rec.RequireStr("index", "name"),
		Artists: []Artist{},
	}
	for _, entry := range rec.List("artist") {
		idx.Artists = append(idx.Artists, *NewArtist(entry))
	}
	return idx
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (idx *Index) ToRecord() Record {
	rec := Record{"name": idx.Name}
	if len(idx.Artists) > 0 {
		entries := make([]Record, 0, len(idx.Artists))
		for i := range idx.Artists {
			entries = append(entries, idx.Artists[i].ToRecord())
		}
		rec["artist"] = entries
	}
	return rec
}

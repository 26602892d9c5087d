package media

// Playlist owns an ordered song list; the sequence order is the
// playlist order and is significant. Name, songCount, created,
// changed and duration are required by the protocol.
type Playlist struct {
	MediaBase

	Name         string
	Comment      string
	Owner        string
	Public       bool
	SongCount    int
	Created      string
	Changed      string
	Duration     int
	AllowedUsers []string
	Songs        []Song
}

// NewPlaylist builds a Playlist from one decoded response fragment.
// Listing endpoints return playlists without the 'entry' list; those
// get an empty song slice.
func NewPlaylist(rec Record) *Playlist {
	p := &Playlist{
		MediaBase:    newMediaBase("playlist", rec),
		Name:         rec.RequireStr("playlist", "name"),
		Comment:      rec.Str("comment"),
		Owner:        rec.Str("owner"),
		Public:       rec.Bool("public"),
		SongCount:    rec.RequireInt("playlist", "songCount"),
		Created:      rec.RequireStr("playlist", "created"),
		Changed:      rec.RequireStr("playlist", "changed"),
		Duration:     rec.RequireInt("playlist", "duration"),
		AllowedUsers: rec.Strings("allowedUser"),
		Songs:        []Song{},
	}
	for _, entry := range rec.List("entry") {
		p.Songs = append(p.Songs, *NewSong(entry))
	}
	return p
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (p *Playlist) ToRecord() Record {
	rec := p.baseRecord()
	rec["name"] = p.Name
	rec.setIf("comment", p.Comment)
	rec.setIf("owner", p.Owner)
	rec.setIf("public", p.Public)
	rec["songCount"] = p.SongCount
	rec["created"] = p.Created
	rec["changed"] = p.Changed
	rec["duration"] = p.Duration
	if len(p.AllowedUsers) > 0 {
		rec["allowedUser"] = p.AllowedUsers
	}
	if len(p.Songs) > 0 {
		entries := make([]Record, 0, len(p.Songs))
		for i := range p.Songs {
			entries = append(entries, p.Songs[i].ToRecord())
		}
		rec["entry"] = entries
	}
	return rec
}

package media

// AlbumInfo is the optional enrichment (notes, external identifier,
// image URLs) served by the album-info endpoints. It is fetched by a
// separate call and attached to an Album afterwards.
type AlbumInfo struct {
	Notes     string
	MBID      string
	SmallURL  string
	MediumURL string
	LargeURL  string
}

// NewAlbumInfo builds an AlbumInfo from the albumInfo fragment.
func NewAlbumInfo(rec Record) *AlbumInfo {
	return &AlbumInfo{
		Notes:     rec.Str("notes"),
		MBID:      rec.Str("musicBrainzId"),
		SmallURL:  rec.Str("smallImageUrl"),
		MediumURL: rec.Str("mediumImageUrl"),
		LargeURL:  rec.Str("largeImageUrl"),
	}
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (i *AlbumInfo) ToRecord() Record {
	rec := Record{}
	rec.setIf("notes", i.Notes)
	rec.setIf("musicBrainzId", i.MBID)
	rec.setIf("smallImageUrl", i.SmallURL)
	rec.setIf("mediumImageUrl", i.MediumURL)
	rec.setIf("largeImageUrl", i.LargeURL)
	return rec
}

// Album is a release owning its embedded song list. Name, songCount,
// created and duration are required by the protocol.
type Album struct {
	MediaBase

	Parent     string
	Album      string
	Title      string
	Name       string
	IsDir      bool
	SongCount  int
	Created    string
	Duration   int
	PlayCount  int
	ArtistID   string
	Artist     string
	Year       int
	Genre      string
	Starred    string
	Played     string
	UserRating int
	Songs      []Song

	info *AlbumInfo
}

// NewAlbum builds an Album from one decoded response fragment. The
// embedded 'song' list, when present, is owned by the album.
func NewAlbum(rec Record) *Album {
	a := &Album{
		MediaBase:  newMediaBase("album", rec),
		Parent:     rec.Str("parent"),
		Album:      rec.Str("album"),
		Title:      rec.Str("title"),
		Name:       rec.RequireStr("album", "name"),
		IsDir:      rec.Bool("isDir"),
		SongCount:  rec.RequireInt("album", "songCount"),
		Created:    rec.RequireStr("album", "created"),
		Duration:   rec.RequireInt("album", "duration"),
		PlayCount:  rec.Int("playCount"),
		ArtistID:   rec.Str("artistId"),
		Artist:     rec.Str("artist"),
		Year:       rec.Int("year"),
		Genre:      rec.Str("genre"),
		Starred:    rec.Str("starred"),
		Played:     rec.Str("played"),
		UserRating: rec.Int("userRating"),
		Songs:      []Song{},
	}
	for _, entry := range rec.List("song") {
		a.Songs = append(a.Songs, *NewSong(entry))
	}
	return a
}

// Info returns the attached enrichment, or nil before SetInfo.
func (a *Album) Info() *AlbumInfo {
	return a.info
}

// SetInfo attaches enrichment fetched via a separate album-info call.
func (a *Album) SetInfo(info *AlbumInfo) {
	a.info = info
}

// MBID returns the enrichment's external identifier, or "" when no
// enrichment is attached.
func (a *Album) MBID() string {
	if a.info == nil {
		return ""
	}
	return a.info.MBID
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
// The enrichment is not part of the album's own wire shape and is
// excluded.
func (a *Album) ToRecord() Record {
	rec := a.baseRecord()
	rec.setIf("parent", a.Parent)
	rec.setIf("album", a.Album)
	rec.setIf("title", a.Title)
	rec["name"] = a.Name
	rec.setIf("isDir", a.IsDir)
	rec["songCount"] = a.SongCount
	rec["created"] = a.Created
	rec["duration"] = a.Duration
	rec.setIf("playCount", a.PlayCount)
	rec.setIf("artistId", a.ArtistID)
	rec.setIf("artist", a.Artist)
	rec.setIf("year", a.Year)
	rec.setIf("genre", a.Genre)
	rec.setIf("starred", a.Starred)
	rec.setIf("played", a.Played)
	rec.setIf("userRating", a.UserRating)
	if len(a.Songs) > 0 {
		entries := make([]Record, 0, len(a.Songs))
		for i := range a.Songs {
			entries = append(entries, a.Songs[i].ToRecord())
		}
		rec["song"] = entries
	}
	return rec
}

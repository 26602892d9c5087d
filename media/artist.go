package media

// ArtistInfo is the optional enrichment (biography, external
// identifier, image URLs) served by the artist-info endpoints. It may
// reference further similar artists; those references are
// informational, not owned.
type ArtistInfo struct {
	Biography      string
	MBID           string
	SmallURL       string
	MediumURL      string
	LargeURL       string
	SimilarArtists []Artist
}

// NewArtistInfo builds an ArtistInfo from the artistInfo fragment.
func NewArtistInfo(rec Record) *ArtistInfo {
	i := &ArtistInfo{
		Biography: rec.Str("biography"),
		MBID:      rec.RequireStr("artistInfo", "musicBrainzId"),
		SmallURL:  rec.Str("smallImageUrl"),
		MediumURL: rec.Str("mediumImageUrl"),
		LargeURL:  rec.Str("largeImageUrl"),
	}
	for _, entry := range rec.List("similarArtist") {
		i.SimilarArtists = append(i.SimilarArtists, *NewArtist(entry))
	}
	return i
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (i *ArtistInfo) ToRecord() Record {
	rec := Record{}
	rec.setIf("biography", i.Biography)
	rec.setIf("musicBrainzId", i.MBID)
	rec.setIf("smallImageUrl", i.SmallURL)
	rec.setIf("mediumImageUrl", i.MediumURL)
	rec.setIf("largeImageUrl", i.LargeURL)
	if len(i.SimilarArtists) > 0 {
		entries := make([]Record, 0, len(i.SimilarArtists))
		for j := range i.SimilarArtists {
			entries = append(entries, i.SimilarArtists[j].ToRecord())
		}
		rec["similarArtist"] = entries
	}
	return rec
}

// Artist owns its embedded album list. Name is required by the
// protocol.
type Artist struct {
	MediaBase

	Name       string
	AlbumCount int
	Starred    string
	Albums     []Album

	info *ArtistInfo
}

// NewArtist builds an Artist from one decoded response fragment. The
// embedded 'album' list, when present, is owned by the artist.
func NewArtist(rec Record) *Artist {
	a := &Artist{
		MediaBase:  newMediaBase("artist", rec),
		Name:       rec.RequireStr("artist", "name"),
		AlbumCount: rec.Int("albumCount"),
		Starred:    rec.Str("starred"),
		Albums:     []Album{},
	}
	for _, entry := range rec.List("album") {
		a.Albums = append(a.Albums, *NewAlbum(entry))
	}
	return a
}

// Info returns the attached enrichment, or nil before SetInfo.
func (a *Artist) Info() *ArtistInfo {
	return a.info
}

// SetInfo attaches enrichment fetched via a separate artist-info call.
func (a *Artist) SetInfo(info *ArtistInfo) {
	a.info = info
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (a *Artist) ToRecord() Record {
	rec := a.baseRecord()
	rec["name"] = a.Name
	rec.setIf("albumCount", a.AlbumCount)
	rec.setIf("starred", a.Starred)
	if len(a.Albums) > 0 {
		entries := make([]Record, 0, len(a.Albums))
		for i := range a.Albums {
			entries = append(entries, a.Albums[i].ToRecord())
		}
		rec["album"] = entries
	}
	return rec
}

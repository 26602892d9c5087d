package media

// Song is a single playable media file. Songs appear embedded in
// albums, playlists and search results as well as standalone.
type Song struct {
	MediaBase

	Parent             string
	Title              string
	Album              string
	AlbumID            string
	Artist             string
	ArtistID           string
	DisplayArtist      string
	DisplayAlbumArtist string
	Artists            []Artist
	AlbumArtists       []Artist
	IsDir              bool
	Created            string
	Duration           int
	BitRate            int
	Size               int64
	Suffix             string
	ContentType        string
	IsVideo            bool
	Path               string
	Track              int
	Type               string
	Year               int
}

// NewSong builds a Song from one decoded response fragment.
// Duration defaults to 0 and track to 1 when the server omits them.
func NewSong(rec Record) *Song {
	s := &Song{
		MediaBase:          newMediaBase("song", rec),
		Parent:             rec.Str("parent"),
		Title:              rec.Str("title"),
		Album:              rec.Str("album"),
		AlbumID:            rec.Str("albumId"),
		Artist:             rec.Str("artist"),
		ArtistID:           rec.Str("artistId"),
		DisplayArtist:      rec.Str("displayArtist"),
		DisplayAlbumArtist: rec.Str("displayAlbumArtist"),
		IsDir:              rec.Bool("isDir"),
		Created:            rec.Str("created"),
		Duration:           rec.IntOr("duration", 0),
		BitRate:            rec.Int("bitRate"),
		Size:               rec.Int64("size"),
		Suffix:             rec.Str("suffix"),
		ContentType:        rec.Str("contentType"),
		IsVideo:            rec.Bool("isVideo"),
		Path:               rec.Str("path"),
		Track:              rec.IntOr("track", 1),
		Type:               rec.Str("type"),
		Year:               rec.Int("year"),
	}
	for _, entry := range rec.List("artists") {
		s.Artists = append(s.Artists, *NewArtist(entry))
	}
	for _, entry := range rec.List("albumArtists") {
		s.AlbumArtists = append(s.AlbumArtists, *NewArtist(entry))
	}
	return s
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (s *Song) ToRecord() Record {
	rec := s.baseRecord()
	rec.setIf("parent", s.Parent)
	rec.setIf("title", s.Title)
	rec.setIf("album", s.Album)
	rec.setIf("albumId", s.AlbumID)
	rec.setIf("artist", s.Artist)
	rec.setIf("artistId", s.ArtistID)
	rec.setIf("displayArtist", s.DisplayArtist)
	rec.setIf("displayAlbumArtist", s.DisplayAlbumArtist)
	rec.setIf("isDir", s.IsDir)
	rec.setIf("created", s.Created)
	rec["duration"] = s.Duration
	rec.setIf("bitRate", s.BitRate)
	rec.setIf("size", s.Size)
	rec.setIf("suffix", s.Suffix)
	rec.setIf("contentType", s.ContentType)
	rec.setIf("isVideo", s.IsVideo)
	rec.setIf("path", s.Path)
	rec["track"] = s.Track
	rec.setIf("type", s.Type)
	rec.setIf("year", s.Year)
	if len(s.Artists) > 0 {
		entries := make([]Record, 0, len(s.Artists))
		for i := range s.Artists {
			entries = append(entries, s.Artists[i].ToRecord())
		}
		rec["artists"] = entries
	}
	if len(s.AlbumArtists) > 0 {
		entries := make([]Record, 0, len(s.AlbumArtists))
		for i := range s.AlbumArtists {
			entries = append(entries, s.AlbumArtists[i].ToRecord())
		}
		rec["albumArtists"] = entries
	}
	return rec
}

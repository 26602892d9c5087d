package opensonic

import (
	"context"
	"time"

	"github.com/opensonic/opensonic-go/media"
)

// GetMusicFolders returns all configured top-level music folders as
// the raw unwrapped mapping.
func (c *Connection) GetMusicFolders(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getMusicFolders", newParams())
}

// GetIndexes returns the indexed artist structure, grouped
// alphabetically. musicFolderID limits the result to one folder;
// ifModifiedSince, when non-zero, asks for a result only if the
// collection changed since then.
func (c *Connection) GetIndexes(ctx context.Context, musicFolderID string, ifModifiedSince time.Time) ([]media.Index, error) {
	p := newParams()
	p.str("musicFolderId", musicFolderID)
	p.millis("ifModifiedSince", ifModifiedSince)

	rec, err := c.request(ctx, "getIndexes", p)
	if err != nil {
		return nil, err
	}
	return indexList(rec.Child("indexes")), nil
}

// GetMusicDirectory returns a listing of all files in a music
// directory, typically the albums of an artist or the songs of an
// album, as the raw unwrapped mapping.
func (c *Connection) GetMusicDirectory(ctx context.Context, id string) (media.Record, error) {
	p := newParams()
	p.str("id", id)
	return c.request(ctx, "getMusicDirectory", p)
}

// GetGenres returns all genres as the raw unwrapped mapping.
func (c *Connection) GetGenres(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getGenres", newParams())
}

// GetArtists is GetIndexes organized by ID3 tags.
func (c *Connection) GetArtists(ctx context.Context) ([]media.Index, error) {
	rec, err := c.request(ctx, "getArtists", newParams())
	if err != nil {
		return nil, err
	}
	return indexList(rec.Child("artists")), nil
}

// GetArtist returns an artist with its albums, organized by ID3 tags.
func (c *Connection) GetArtist(ctx context.Context, id string) (*media.Artist, error) {
	p := newParams()
	p.str("id", id)
	rec, err := c.request(ctx, "getArtist", p)
	if err != nil {
		return nil, err
	}
	return media.NewArtist(rec.Child("artist")), nil
}

// GetAlbum returns an album with its songs, organized by ID3 tags.
func (c *Connection) GetAlbum(ctx context.Context, id string) (*media.Album, error) {
	p := newParams()
	p.str("id", id)
	rec, err := c.request(ctx, "getAlbum", p)
	if err != nil {
		return nil, err
	}
	return media.NewAlbum(rec.Child("album")), nil
}

// GetSong returns one song's details, organized by ID3 tags.
func (c *Connection) GetSong(ctx context.Context, id string) (*media.Song, error) {
	p := newParams()
	p.str("id", id)
	rec, err := c.request(ctx, "getSong", p)
	if err != nil {
		return nil, err
	}
	return media.NewSong(rec.Child("song")), nil
}

// GetVideos returns all video files as the raw unwrapped mapping.
func (c *Connection) GetVideos(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getVideos", newParams())
}

// GetVideoInfo returns details for a video, including audio tracks,
// captions and conversions, as the raw unwrapped mapping.
func (c *Connection) GetVideoInfo(ctx context.Context, id string) (media.Record, error) {
	p := newParams()
	p.str("id", id)
	return c.request(ctx, "getVideoInfo", p)
}

// GetArtistInfo returns biography, image URLs and similar artists for
// an artist. count limits the similar artists (0 leaves the server
// default of 20); includeNotPresent also returns artists missing from
// the library.
func (c *Connection) GetArtistInfo(ctx context.Context, id string, count int, includeNotPresent bool) (*media.ArtistInfo, error) {
	return c.artistInfo(ctx, "getArtistInfo", "artistInfo", id, count, includeNotPresent)
}

// GetArtistInfo2 is GetArtistInfo organized by ID3 tags.
func (c *Connection) GetArtistInfo2(ctx context.Context, id string, count int, includeNotPresent bool) (*media.ArtistInfo, error) {
	return c.artistInfo(ctx, "getArtistInfo2", "artistInfo2", id, count, includeNotPresent)
}

func (c *Connection) artistInfo(ctx context.Context, op, key, id string, count int, includeNotPresent bool) (*media.ArtistInfo, error) {
	p := newParams()
	p.str("id", id)
	p.int("count", count)
	p.boolIf("includeNotPresent", includeNotPresent)

	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	return media.NewArtistInfo(rec.Child(key)), nil
}

// GetAlbumInfo returns album notes and image URLs.
func (c *Connection) GetAlbumInfo(ctx context.Context, id string) (*media.AlbumInfo, error) {
	return c.albumInfo(ctx, "getAlbumInfo", id)
}

// GetAlbumInfo2 is GetAlbumInfo organized by ID3 tags. Servers answer
// the ID3 variant under the same albumInfo envelope key.
func (c *Connection) GetAlbumInfo2(ctx context.Context, id string) (*media.AlbumInfo, error) {
	return c.albumInfo(ctx, "getAlbumInfo2", id)
}

func (c *Connection) albumInfo(ctx context.Context, op, id string) (*media.AlbumInfo, error) {
	p := newParams()
	p.str("id", id)
	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	return media.NewAlbumInfo(rec.Child("albumInfo")), nil
}

// GetSimilarSongs returns a random collection of songs from the given
// artist and similar artists, typically for artist radio. count limits
// the result (0 leaves the server default of 50).
func (c *Connection) GetSimilarSongs(ctx context.Context, id string, count int) ([]media.Song, error) {
	return c.similarSongs(ctx, "getSimilarSongs", "similarSongs", id, count)
}

// GetSimilarSongs2 is GetSimilarSongs organized by ID3 tags.
func (c *Connection) GetSimilarSongs2(ctx context.Context, id string, count int) ([]media.Song, error) {
	return c.similarSongs(ctx, "getSimilarSongs2", "similarSongs2", id, count)
}

func (c *Connection) similarSongs(ctx context.Context, op, key, id string, count int) ([]media.Song, error) {
	p := newParams()
	p.str("id", id)
	p.int("count", count)

	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	return songList(rec.Child(key), "song"), nil
}

// GetTopSongs returns the top songs for the given artist name.
func (c *Connection) GetTopSongs(ctx context.Context, artist string, count int) ([]media.Song, error) {
	if artist == "" {
		return nil, argErrorf("artist name is required")
	}
	p := newParams()
	p.str("artist", artist)
	p.int("count", count)

	rec, err := c.request(ctx, "getTopSongs", p)
	if err != nil {
		return nil, err
	}
	return songList(rec.Child("topSongs"), "song"), nil
}

// indexList shapes an index-carrying fragment into Index entities.
// A missing fragment maps to an empty list.
func indexList(rec media.Record) []media.Index {
	out := []media.Index{}
	if rec == nil {
		return out
	}
	for _, entry := range rec.List("index") {
		out = append(out, *media.NewIndex(entry))
	}
	return out
}

// songList shapes the named song list of a fragment into Song
// entities. A missing fragment or key maps to an empty list.
func songList(rec media.Record, key string) []media.Song {
	out := []media.Song{}
	if rec == nil {
		return out
	}
	for _, entry := range rec.List(key) {
		out = append(out, *media.NewSong(entry))
	}
	return out
}

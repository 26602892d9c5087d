package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// Album list types accepted by GetAlbumList and GetAlbumList2.
const (
	ListRandom               = "random"
	ListNewest               = "newest"
	ListHighest              = "highest"
	ListFrequent             = "frequent"
	ListRecent               = "recent"
	ListStarred              = "starred"
	ListAlphabeticalByName   = "alphabeticalByName"
	ListAlphabeticalByArtist = "alphabeticalByArtist"
	ListByYear               = "byYear"
	ListByGenre              = "byGenre"
)

// AlbumListOptions are the optional filters of the album list
// endpoints. Zero values are not sent.
type AlbumListOptions struct {
	Size          int    // max 500, server default 10
	Offset        int    // max 5000
	FromYear      int    // required when listing byYear
	ToYear        int    // required when listing byYear
	Genre         string // required when listing byGenre
	MusicFolderID string
}

// GetAlbumList returns albums as shown on the server's home page:
// random, newest, highest rated and so on, per listType.
func (c *Connection) GetAlbumList(ctx context.Context, listType string, opts *AlbumListOptions) ([]media.Album, error) {
	return c.albumList(ctx, "getAlbumList", "albumList", listType, opts)
}

// GetAlbumList2 is GetAlbumList organized by ID3 tags.
func (c *Connection) GetAlbumList2(ctx context.Context, listType string, opts *AlbumListOptions) ([]media.Album, error) {
	return c.albumList(ctx, "getAlbumList2", "albumList2", listType, opts)
}

func (c *Connection) albumList(ctx context.Context, op, key, listType string, opts *AlbumListOptions) ([]media.Album, error) {
	if opts == nil {
		opts = &AlbumListOptions{}
	}
	if listType == "" {
		return nil, argErrorf("list type is required")
	}
	if listType == ListByYear && (opts.FromYear == 0 || opts.ToYear == 0) {
		return nil, argErrorf("list type %s requires FromYear and ToYear", ListByYear)
	}
	if listType == ListByGenre && opts.Genre == "" {
		return nil, argErrorf("list type %s requires Genre", ListByGenre)
	}

	p := newParams()
	p.str("type", listType)
	p.int("size", opts.Size)
	p.int("offset", opts.Offset)
	p.int("fromYear", opts.FromYear)
	p.int("toYear", opts.ToYear)
	p.str("genre", opts.Genre)
	p.str("musicFolderId", opts.MusicFolderID)

	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	return albumList(rec.Child(key), "album"), nil
}

// RandomSongsOptions are the optional filters of GetRandomSongs.
type RandomSongsOptions struct {
	Size          int // max 500, server default 10
	Genre         string
	FromYear      int
	ToYear        int
	MusicFolderID string
}

// GetRandomSongs returns random songs matching the given criteria.
func (c *Connection) GetRandomSongs(ctx context.Context, opts *RandomSongsOptions) ([]media.Song, error) {
	if opts == nil {
		opts = &RandomSongsOptions{}
	}
	p := newParams()
	p.int("size", opts.Size)
	p.str("genre", opts.Genre)
	p.int("fromYear", opts.FromYear)
	p.int("toYear", opts.ToYear)
	p.str("musicFolderId", opts.MusicFolderID)

	rec, err := c.request(ctx, "getRandomSongs", p)
	if err != nil {
		return nil, err
	}
	return songList(rec.Child("randomSongs"), "song"), nil
}

// GetSongsByGenre returns songs in the given genre, with paging.
func (c *Connection) GetSongsByGenre(ctx context.Context, genre string, count, offset int, musicFolderID string) ([]media.Song, error) {
	if genre == "" {
		return nil, argErrorf("genre is required")
	}
	p := newParams()
	p.str("genre", genre)
	p.int("count", count)
	p.int("offset", offset)
	p.str("musicFolderId", musicFolderID)

	rec, err := c.request(ctx, "getSongsByGenre", p)
	if err != nil {
		return nil, err
	}
	return songList(rec.Child("songsByGenre"), "song"), nil
}

// GetNowPlaying returns what each user is currently playing, keyed by
// username.
func (c *Connection) GetNowPlaying(ctx context.Context) (map[string]media.Song, error) {
	rec, err := c.request(ctx, "getNowPlaying", newParams())
	if err != nil {
		return nil, err
	}
	playing := map[string]media.Song{}
	nowPlaying := rec.Child("nowPlaying")
	if nowPlaying == nil {
		return playing, nil
	}
	for _, entry := range nowPlaying.List("entry") {
		playing[entry.Str("username")] = *media.NewSong(entry)
	}
	return playing, nil
}

// Starred holds the starred items of a library, grouped by kind.
// Absent groups are empty slices.
type Starred struct {
	Artists []media.Artist
	Albums  []media.Album
	Songs   []media.Song
}

// GetStarred returns the caller's starred songs, albums and artists.
func (c *Connection) GetStarred(ctx context.Context, musicFolderID string) (*Starred, error) {
	return c.starred(ctx, "getStarred", "starred", musicFolderID)
}

// GetStarred2 is GetStarred organized by ID3 tags.
func (c *Connection) GetStarred2(ctx context.Context, musicFolderID string) (*Starred, error) {
	return c.starred(ctx, "getStarred2", "starred2", musicFolderID)
}

func (c *Connection) starred(ctx context.Context, op, key, musicFolderID string) (*Starred, error) {
	p := newParams()
	p.str("musicFolderId", musicFolderID)

	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	starred := rec.Child(key)
	return &Starred{
		Artists: artistList(starred, "artist"),
		Albums:  albumList(starred, "album"),
		Songs:   songList(starred, "song"),
	}, nil
}

// albumList shapes the named album list of a fragment into Album
// entities. A missing fragment or key maps to an empty list.
func albumList(rec media.Record, key string) []media.Album {
	out := []media.Album{}
	if rec == nil {
		return out
	}
	for _, entry := range rec.List(key) {
		out = append(out, *media.NewAlbum(entry))
	}
	return out
}

// artistList shapes the named artist list of a fragment into Artist
// entities. A missing fragment or key maps to an empty list.
func artistList(rec media.Record, key string) []media.Artist {
	out := []media.Artist{}
	if rec == nil {
		return out
	}
	for _, entry := range rec.List(key) {
		out = append(out, *media.NewArtist(entry))
	}
	return out
}

package opensonic

import (
	"context"
	"time"

	"github.com/opensonic/opensonic-go/media"
)

// SearchOptions are the criteria of the legacy Search operation. At
// least one of Artist, Album, Title or Any must be set.
type SearchOptions struct {
	Artist    string
	Album     string
	Title     string
	Any       string
	Count     int // server default 20
	Offset    int
	NewerThan time.Time
}

// Search is the pre-1.4.0 search endpoint, returning the raw unwrapped
// mapping. Deprecated by the server protocol in favor of Search2.
func (c *Connection) Search(ctx context.Context, opts SearchOptions) (media.Record, error) {
	if opts.Artist == "" && opts.Album == "" && opts.Title == "" && opts.Any == "" {
		return nil, argErrorf("search requires at least one criterion")
	}
	p := newParams()
	p.str("artist", opts.Artist)
	p.str("album", opts.Album)
	p.str("title", opts.Title)
	p.str("any", opts.Any)
	p.int("count", opts.Count)
	p.int("offset", opts.Offset)
	p.millis("newerThan", opts.NewerThan)

	return c.request(ctx, "search", p)
}

// SearchPageOptions control the per-kind result counts and offsets of
// Search2/Search3. Zero values leave the server defaults (20 each) in
// force.
type SearchPageOptions struct {
	ArtistCount   int
	ArtistOffset  int
	AlbumCount    int
	AlbumOffset   int
	SongCount     int
	SongOffset    int
	MusicFolderID string
}

// SearchResult groups the matches of a search by kind. Absent groups
// are empty slices.
type SearchResult struct {
	Artists []media.Artist
	Albums  []media.Album
	Songs   []media.Song
}

// Search2 returns artists, albums and songs matching the query, with
// per-kind paging.
func (c *Connection) Search2(ctx context.Context, query string, opts *SearchPageOptions) (*SearchResult, error) {
	return c.search(ctx, "search2", "searchResult2", query, opts)
}

// Search3 is Search2 organized by ID3 tags.
func (c *Connection) Search3(ctx context.Context, query string, opts *SearchPageOptions) (*SearchResult, error) {
	return c.search(ctx, "search3", "searchResult3", query, opts)
}

func (c *Connection) search(ctx context.Context, op, key, query string, opts *SearchPageOptions) (*SearchResult, error) {
	if query == "" {
		return nil, argErrorf("search query is required")
	}
	if opts == nil {
		opts = &SearchPageOptions{}
	}
	p := newParams()
	p.str("query", query)
	p.int("artistCount", opts.ArtistCount)
	p.int("artistOffset", opts.ArtistOffset)
	p.int("albumCount", opts.AlbumCount)
	p.int("albumOffset", opts.AlbumOffset)
	p.int("songCount", opts.SongCount)
	p.int("songOffset", opts.SongOffset)
	p.str("musicFolderId", opts.MusicFolderID)

	rec, err := c.request(ctx, op, p)
	if err != nil {
		return nil, err
	}
	result := rec.Child(key)
	return &SearchResult{
		Artists: artistList(result, "artist"),
		Albums:  albumList(result, "album"),
		Songs:   songList(result, "song"),
	}, nil
}

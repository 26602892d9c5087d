package opensonic

import (
	"context"
	"strconv"

	"github.com/opensonic/opensonic-go/media"
)

// GetPlaylists returns the saved playlists without their tracks; use
// GetPlaylist for the full track list. username requires admin rights
// and lists another user's playlists.
func (c *Connection) GetPlaylists(ctx context.Context, username string) ([]media.Playlist, error) {
	p := newParams()
	p.str("username", username)

	rec, err := c.request(ctx, "getPlaylists", p)
	if err != nil {
		return nil, err
	}
	out := []media.Playlist{}
	playlists := rec.Child("playlists")
	if playlists == nil {
		return out, nil
	}
	for _, entry := range playlists.List("playlist") {
		out = append(out, *media.NewPlaylist(entry))
	}
	return out, nil
}

// GetPlaylist returns one saved playlist complete with its tracks.
func (c *Connection) GetPlaylist(ctx context.Context, id string) (*media.Playlist, error) {
	p := newParams()
	p.str("id", id)
	rec, err := c.request(ctx, "getPlaylist", p)
	if err != nil {
		return nil, err
	}
	return media.NewPlaylist(rec.Child("playlist")), nil
}

// CreatePlaylist creates a playlist (name set) or replaces the song
// list of an existing one (playlistID set). Exactly one of the two
// must be supplied. songIDs populates the list in either mode and
// replaces the existing songs when updating.
func (c *Connection) CreatePlaylist(ctx context.Context, playlistID, name string, songIDs []string) error {
	if playlistID == "" && name == "" {
		return argErrorf("supply either a playlist id or a name")
	}
	if playlistID != "" && name != "" {
		return argErrorf("supply either a playlist id or a name, not both")
	}
	p := newParams()
	p.str("playlistId", playlistID)
	p.str("name", name)

	_, err := c.request(ctx, "createPlaylist", p, listParam{key: "songId", values: songIDs})
	return err
}

// UpdatePlaylistOptions are the changes UpdatePlaylist applies. The
// two lists are independent: SongIDsToAdd appends songs by id, while
// SongIndexesToRemove removes by zero-based playlist position.
type UpdatePlaylistOptions struct {
	Name                string
	Comment             string
	SongIDsToAdd        []string
	SongIndexesToRemove []int
}

// UpdatePlaylist edits a playlist in place. Only the playlist's owner
// may update it.
func (c *Connection) UpdatePlaylist(ctx context.Context, id string, opts UpdatePlaylistOptions) error {
	if id == "" {
		return argErrorf("playlist id is required")
	}
	p := newParams()
	p.str("playlistId", id)
	p.str("name", opts.Name)
	p.str("comment", opts.Comment)

	indexes := make([]string, 0, len(opts.SongIndexesToRemove))
	for _, idx := range opts.SongIndexesToRemove {
		indexes = append(indexes, strconv.Itoa(idx))
	}
	_, err := c.request(ctx, "updatePlaylist", p,
		listParam{key: "songIdToAdd", values: opts.SongIDsToAdd},
		listParam{key: "songIndexToRemove", values: indexes},
	)
	return err
}

// DeletePlaylist deletes a saved playlist.
func (c *Connection) DeletePlaylist(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deletePlaylist", p)
	return err
}

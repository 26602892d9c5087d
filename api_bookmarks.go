package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// GetBookmarks returns the current user's bookmarks as the raw
// unwrapped mapping.
func (c *Connection) GetBookmarks(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getBookmarks", newParams())
}

// CreateBookmark remembers a playback position within a media file.
// position is in milliseconds; an existing bookmark on the same file is
// overwritten.
func (c *Connection) CreateBookmark(ctx context.Context, id string, position int64, comment string) error {
	if id == "" {
		return argErrorf("media id is required")
	}
	p := newParams()
	p.str("id", id)
	p.int64("position", position)
	p.str("comment", comment)

	_, err := c.request(ctx, "createBookmark", p)
	return err
}

// DeleteBookmark removes the current user's bookmark on a media file.
func (c *Connection) DeleteBookmark(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deleteBookmark", p)
	return err
}

// GetPlayQueue returns the play queue last saved for this user, on any
// client, as the raw unwrapped mapping.
func (c *Connection) GetPlayQueue(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getPlayQueue", newParams())
}

// SavePlayQueue stores the state of this client's play queue so another
// client can resume it. ids list the queued songs in order, current is
// the id of the playing song and position its offset in milliseconds.
func (c *Connection) SavePlayQueue(ctx context.Context, ids []string, current string, position int64) error {
	if len(ids) == 0 {
		return argErrorf("at least one song id is required")
	}
	p := newParams()
	p.str("current", current)
	p.int64("position", position)

	_, err := c.request(ctx, "savePlayQueue", p, listParam{key: "id", values: ids})
	return err
}

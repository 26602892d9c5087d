package opensonic

import (
	"context"
	"strconv"
	"time"
)

// StarTargets names the items Star and Unstar act on. Songs are
// addressed by file-structure id; use AlbumIDs/ArtistIDs instead when
// the client browses by ID3 tags. All three lists may be combined in
// one call.
type StarTargets struct {
	SongIDs   []string
	AlbumIDs  []string
	ArtistIDs []string
}

// Star attaches a star to the given songs, albums and artists.
func (c *Connection) Star(ctx context.Context, targets StarTargets) error {
	return c.star(ctx, "star", targets)
}

// Unstar removes the star from the given songs, albums and artists.
func (c *Connection) Unstar(ctx context.Context, targets StarTargets) error {
	return c.star(ctx, "unstar", targets)
}

func (c *Connection) star(ctx context.Context, op string, targets StarTargets) error {
	_, err := c.request(ctx, op, newParams(),
		listParam{key: "id", values: targets.SongIDs},
		listParam{key: "albumId", values: targets.AlbumIDs},
		listParam{key: "artistId", values: targets.ArtistIDs},
	)
	return err
}

// SetRating rates a song, album or artist. rating must be 1 to 5, or
// 0 to remove the rating; anything else fails with ErrBadArgument
// before any request is made.
func (c *Connection) SetRating(ctx context.Context, id string, rating int) error {
	if rating < 0 || rating > 5 {
		return argErrorf("rating must be an integer between 0 and 5, got %d", rating)
	}
	p := newParams()
	p.str("id", id)
	p.v.Set("rating", strconv.Itoa(rating))

	_, err := c.request(ctx, "setRating", p)
	return err
}

// Scrobble registers a played song with the server's scrobbling
// backend and updates play counts and the now-playing list. submission
// false sends a now-playing notification instead of a submission.
// listenTime, when non-zero, is when the song was listened to.
func (c *Connection) Scrobble(ctx context.Context, id string, submission bool, listenTime time.Time) error {
	p := newParams()
	p.str("id", id)
	p.flag("submission", submission)
	p.millis("time", listenTime)

	_, err := c.request(ctx, "scrobble", p)
	return err
}

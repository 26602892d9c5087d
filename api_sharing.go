package opensonic

import (
	"context"
	"time"

	"github.com/opensonic/opensonic-go/media"
)

// GetShares returns the shared media this user may manage, as the raw
// unwrapped mapping.
func (c *Connection) GetShares(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getShares", newParams())
}

// CreateShare creates a public URL for streaming the given songs or
// albums. description is displayed alongside the share; expires, when
// non-zero, sets its removal time. Returns the created share fragment.
func (c *Connection) CreateShare(ctx context.Context, ids []string, description string, expires time.Time) (media.Record, error) {
	if len(ids) == 0 {
		return nil, argErrorf("at least one id is required to create a share")
	}
	p := newParams()
	p.str("description", description)
	p.millis("expires", expires)

	return c.request(ctx, "createShare", p, listParam{key: "id", values: ids})
}

// UpdateShare changes the description and/or expiration of an existing
// share.
func (c *Connection) UpdateShare(ctx context.Context, id, description string, expires time.Time) error {
	if id == "" {
		return argErrorf("share id is required")
	}
	p := newParams()
	p.str("id", id)
	p.str("description", description)
	p.millis("expires", expires)

	_, err := c.request(ctx, "updateShare", p)
	return err
}

// DeleteShare deletes an existing share.
func (c *Connection) DeleteShare(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deleteShare", p)
	return err
}

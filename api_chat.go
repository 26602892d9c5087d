package opensonic

import (
	"context"
	"time"

	"github.com/opensonic/opensonic-go/media"
)

// GetChatMessages returns the current visible chat messages as the raw
// unwrapped mapping. since, when non-zero, restricts the result to
// messages newer than that time.
func (c *Connection) GetChatMessages(ctx context.Context, since time.Time) (media.Record, error) {
	p := newParams()
	p.millis("since", since)
	return c.request(ctx, "getChatMessages", p)
}

// AddChatMessage posts a message to the chat log.
func (c *Connection) AddChatMessage(ctx context.Context, message string) error {
	if message == "" {
		return argErrorf("chat message is required")
	}
	p := newParams()
	p.str("message", message)
	_, err := c.request(ctx, "addChatMessage", p)
	return err
}

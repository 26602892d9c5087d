package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// GetInternetRadioStations returns all internet radio stations as the
// raw unwrapped mapping.
func (c *Connection) GetInternetRadioStations(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getInternetRadioStations", newParams())
}

// CreateInternetRadioStation adds a new station. Requires admin rights.
func (c *Connection) CreateInternetRadioStation(ctx context.Context, streamURL, name, homepageURL string) error {
	if streamURL == "" || name == "" {
		return argErrorf("stream url and name are required")
	}
	p := newParams()
	p.str("streamUrl", streamURL)
	p.str("name", name)
	p.str("homepageUrl", homepageURL)

	_, err := c.request(ctx, "createInternetRadioStation", p)
	return err
}

// UpdateInternetRadioStation edits an existing station. Requires admin
// rights.
func (c *Connection) UpdateInternetRadioStation(ctx context.Context, id, streamURL, name, homepageURL string) error {
	if id == "" {
		return argErrorf("station id is required")
	}
	if streamURL == "" || name == "" {
		return argErrorf("stream url and name are required")
	}
	p := newParams()
	p.str("id", id)
	p.str("streamUrl", streamURL)
	p.str("name", name)
	p.str("homepageUrl", homepageURL)

	_, err := c.request(ctx, "updateInternetRadioStation", p)
	return err
}

// DeleteInternetRadioStation removes a station. Requires admin rights.
func (c *Connection) DeleteInternetRadioStation(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deleteInternetRadioStation", p)
	return err
}

package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// Ping checks that the server is alive and the credentials are
// accepted. It returns true when the server answers with an ok status.
// A protocol-level negative acknowledgment yields false together with
// the mapped server error; transport failures are returned as errors
// uniformly with every other operation.
func (c *Connection) Ping(ctx context.Context) (bool, error) {
	if _, err := c.request(ctx, "ping", newParams()); err != nil {
		return false, err
	}
	return true, nil
}

// GetLicense returns the server's license details as the raw unwrapped
// mapping.
func (c *Connection) GetLicense(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getLicense", newParams())
}

// GetOpenSubsonicExtensions lists the OpenSubsonic extensions the
// server supports.
func (c *Connection) GetOpenSubsonicExtensions(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getOpenSubsonicExtensions", newParams())
}

// GetScanStatus returns the current media library scan state.
func (c *Connection) GetScanStatus(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getScanStatus", newParams())
}

// StartScan initiates a rescan of the media libraries and returns the
// initial scan state.
func (c *Connection) StartScan(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "startScan", newParams())
}

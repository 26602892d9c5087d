package opensonic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/opensonic/opensonic-go/media"
)

// Download fetches the original music file for the given id. The
// returned response is an untouched binary handle; the caller reads
// and closes its body. If the server reports an error instead of
// bytes, the mapped typed error is returned.
func (c *Connection) Download(ctx context.Context, id string) (*http.Response, error) {
	p := newParams()
	p.str("id", id)
	return c.requestBinary(ctx, "download", p)
}

// StreamOptions are the transcoding controls of Stream.
type StreamOptions struct {
	// MaxBitRate caps the transcoded bitrate in kbit/s; 0 imposes no
	// limit.
	MaxBitRate int
	// Format selects the target transcoding format, e.g. "mp3"; the
	// special value "raw" disables transcoding.
	Format string
	// TimeOffset starts video streams this many seconds in.
	TimeOffset int
	// Size is the requested video size as WxH, e.g. "640x480".
	Size string
	// EstimateContentLength asks for an estimated Content-Length
	// header on transcoded media.
	EstimateContentLength bool
	// Converted prefers a pre-converted MP4 when one exists.
	Converted bool
}

// Stream fetches a possibly transcoded stream of the given media file.
// The returned response is an untouched binary handle.
func (c *Connection) Stream(ctx context.Context, id string, opts *StreamOptions) (*http.Response, error) {
	if opts == nil {
		opts = &StreamOptions{}
	}
	p := newParams()
	p.str("id", id)
	p.int("maxBitRate", opts.MaxBitRate)
	p.str("format", opts.Format)
	p.int("timeOffset", opts.TimeOffset)
	p.str("size", opts.Size)
	p.boolIf("estimateContentLength", opts.EstimateContentLength)
	p.boolIf("converted", opts.Converted)

	return c.requestBinary(ctx, "stream", p)
}

// HLS creates an HTTP Live Streaming playlist for the given media and
// returns the raw m3u8 bytes. bitrate optionally caps the stream
// bitrate; a value given more than once server-side produces a variant
// playlist, and the 1.9.0+ form "1000@480x360" pins dimensions.
func (c *Connection) HLS(ctx context.Context, id, bitrate string) ([]byte, error) {
	p := newParams()
	p.str("id", id)
	p.str("bitrate", bitrate)

	resp, err := c.requestBinary(ctx, "hls", p)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	playlist, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hls playlist: %w", err)
	}
	return playlist, nil
}

// GetCaptions fetches video captions as an untouched binary handle.
// format prefers "srt" or "vtt".
func (c *Connection) GetCaptions(ctx context.Context, id, format string) (*http.Response, error) {
	p := newParams()
	p.str("id", id)
	p.str("format", format)
	return c.requestBinary(ctx, "getCaptions", p)
}

// GetLyrics searches for lyrics matching the given artist and song
// title, returned as the raw unwrapped mapping.
func (c *Connection) GetLyrics(ctx context.Context, artist, title string) (media.Record, error) {
	p := newParams()
	p.str("artist", artist)
	p.str("title", title)
	return c.request(ctx, "getLyrics", p)
}

// GetLyricsBySongId retrieves all structured lyrics for a song, from
// embedded tags, LRC files or other sources, as the raw unwrapped
// mapping under the lyricsList key. OpenSubsonic servers only.
func (c *Connection) GetLyricsBySongId(ctx context.Context, id string) (media.Record, error) {
	p := newParams()
	p.str("id", id)
	return c.request(ctx, "getLyricsBySongId", p)
}

// GetCoverArt fetches a cover art image as an untouched binary handle.
// size scales the image to size x size pixels when non-zero.
func (c *Connection) GetCoverArt(ctx context.Context, id string, size int) (*http.Response, error) {
	p := newParams()
	p.str("id", id)
	p.int("size", size)
	return c.requestBinary(ctx, "getCoverArt", p)
}

// GetAvatar fetches a user's avatar image as an untouched binary
// handle. A user without an avatar is not an error: both the response
// and the error are nil in that case.
func (c *Connection) GetAvatar(ctx context.Context, username string) (*http.Response, error) {
	p := newParams()
	p.str("username", username)
	resp, err := c.requestBinary(ctx, "getAvatar", p)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return resp, err
}

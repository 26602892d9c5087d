package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// JukeboxOptions carry the per-action arguments of JukeboxControl.
// Index and Gain are pointers because zero is meaningful for both: a
// nil pointer omits the parameter.
type JukeboxOptions struct {
	// Index is the zero-based playlist position for skip and remove.
	Index *int
	// Offset is the start position within the song, in seconds, for
	// skip.
	Offset int
	// Gain sets the playback volume for setGain, between 0.0 and 1.0.
	Gain *float64
	// SongIDs name the songs for add and set.
	SongIDs []string
}

var jukeboxActions = map[string]bool{
	"get":     true,
	"status":  true,
	"set":     true,
	"start":   true,
	"stop":    true,
	"skip":    true,
	"add":     true,
	"clear":   true,
	"remove":  true,
	"shuffle": true,
	"setGain": true,
}

// JukeboxControl drives playback on the server's own audio hardware.
// The user must have jukebox rights. The "get" action returns the
// jukebox playlist, every other action returns the jukebox status; in
// both cases the raw unwrapped mapping is returned.
func (c *Connection) JukeboxControl(ctx context.Context, action string, opts *JukeboxOptions) (media.Record, error) {
	if !jukeboxActions[action] {
		return nil, argErrorf("unknown jukebox action %q", action)
	}
	if opts == nil {
		opts = &JukeboxOptions{}
	}
	p := newParams()
	p.str("action", action)
	p.intPtr("index", opts.Index)
	p.int("offset", opts.Offset)
	p.float("gain", opts.Gain)

	var lists []listParam
	if action == "add" || action == "set" {
		lists = append(lists, listParam{key: "id", values: opts.SongIDs})
	}
	return c.request(ctx, "jukeboxControl", p, lists...)
}

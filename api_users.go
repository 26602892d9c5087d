package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// GetUser returns details and privileges of a user as the raw unwrapped
// mapping. Reading another user's details requires admin rights.
func (c *Connection) GetUser(ctx context.Context, username string) (media.Record, error) {
	p := newParams()
	p.str("username", username)
	return c.request(ctx, "getUser", p)
}

// GetUsers returns details of every user. Requires admin rights.
func (c *Connection) GetUsers(ctx context.Context) (media.Record, error) {
	return c.request(ctx, "getUsers", newParams())
}

// UserOptions are the privileges and limits applied by CreateUser and
// UpdateUser. NewUserOptions seeds the defaults a plain listener gets.
type UserOptions struct {
	LDAPAuthenticated   bool
	AdminRole           bool
	SettingsRole        bool
	StreamRole          bool
	JukeboxRole         bool
	DownloadRole        bool
	UploadRole          bool
	PlaylistRole        bool
	CoverArtRole        bool
	CommentRole         bool
	PodcastRole         bool
	ShareRole           bool
	VideoConversionRole bool
	// MusicFolderID restricts the user to one music folder when set.
	MusicFolderID string
	// MaxBitRate caps the user's streaming bitrate in kbit/s; 0 means
	// no limit.
	MaxBitRate int
}

// NewUserOptions returns the default privilege set: the user may change
// their own settings and stream music, nothing else.
func NewUserOptions() *UserOptions {
	return &UserOptions{SettingsRole: true, StreamRole: true}
}

func (o *UserOptions) apply(p *params) {
	p.flag("ldapAuthenticated", o.LDAPAuthenticated)
	p.flag("adminRole", o.AdminRole)
	p.flag("settingsRole", o.SettingsRole)
	p.flag("streamRole", o.StreamRole)
	p.flag("jukeboxRole", o.JukeboxRole)
	p.flag("downloadRole", o.DownloadRole)
	p.flag("uploadRole", o.UploadRole)
	p.flag("playlistRole", o.PlaylistRole)
	p.flag("coverArtRole", o.CoverArtRole)
	p.flag("commentRole", o.CommentRole)
	p.flag("podcastRole", o.PodcastRole)
	p.flag("shareRole", o.ShareRole)
	p.flag("videoConversionRole", o.VideoConversionRole)
	p.str("musicFolderId", o.MusicFolderID)
	p.int("maxBitRate", o.MaxBitRate)
}

// CreateUser creates a new account on the server. Requires admin
// rights. A nil opts grants the NewUserOptions defaults. The password
// travels hex-obfuscated, not in the clear.
func (c *Connection) CreateUser(ctx context.Context, username, password, email string, opts *UserOptions) error {
	if username == "" || password == "" || email == "" {
		return argErrorf("username, password and email are required")
	}
	if opts == nil {
		opts = NewUserOptions()
	}
	p := newParams()
	p.str("username", username)
	p.str("password", "enc:"+hexEnc(password))
	p.str("email", email)
	opts.apply(&p)

	_, err := c.request(ctx, "createUser", p)
	return err
}

// UpdateUser replaces the details of an existing account. Requires
// admin rights. Empty password or email leave the stored value alone;
// opts, when non-nil, replaces the whole privilege set.
func (c *Connection) UpdateUser(ctx context.Context, username, password, email string, opts *UserOptions) error {
	if username == "" {
		return argErrorf("username is required")
	}
	p := newParams()
	p.str("username", username)
	if password != "" {
		p.str("password", "enc:"+hexEnc(password))
	}
	p.str("email", email)
	if opts != nil {
		opts.apply(&p)
	}

	_, err := c.request(ctx, "updateUser", p)
	return err
}

// DeleteUser removes an account. Requires admin rights.
func (c *Connection) DeleteUser(ctx context.Context, username string) error {
	p := newParams()
	p.str("username", username)
	_, err := c.request(ctx, "deleteUser", p)
	return err
}

// ChangePassword changes a user's password. Changing another user's
// password requires admin rights. The password travels hex-obfuscated.
func (c *Connection) ChangePassword(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return argErrorf("username and password are required")
	}
	p := newParams()
	p.str("username", username)
	p.str("password", "enc:"+hexEnc(password))

	_, err := c.request(ctx, "changePassword", p)
	return err
}

// Package opensonic is a client for the Subsonic / OpenSubsonic REST
// API (JSON flavor). A Connection exposes one method per server
// operation; responses are decoded into the typed objects of the media
// package, and binary endpoints hand back the raw response for the
// caller to stream.
package opensonic

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bgentry/go-netrc/netrc"

	"github.com/opensonic/opensonic-go/internal/version"
)

// APIVersion is the protocol version sent with every request unless
// overridden with WithAPIVersion.
const APIVersion = "1.16.1"

const (
	defaultPort = 4040

	// Most calls finish quickly; bulk list uploads (playlist updates,
	// play queues) can be large and get a far more generous budget.
	defaultTimeout     = 60 * time.Second
	bulkTimeout        = 300 * time.Second
	bulkConnectTimeout = 60 * time.Second
)

// Config is one immutable configuration snapshot. Every request reads
// the snapshot current at call time; Reconfigure installs a new one
// without disturbing in-flight calls.
type Config struct {
	BaseURL    string
	Port       int
	Username   string
	Password   string
	Salt       string
	Token      string
	ServerPath string // normalized, always ends with the rest segment
	AppName    string
	APIVersion string
	Insecure   bool
	LegacyAuth bool
	UseGET     bool
	UseViews   bool

	netrcPath  string
	useNetrc   bool
	httpClient *http.Client
	bulkClient *http.Client
}

// Option configures a Connection at construction or reconfiguration
// time.
type Option func(*Config)

// WithCredentials sets the username/password pair used to derive the
// per-request salt and token.
func WithCredentials(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

// WithSaltToken supplies a pre-computed salt/token pair instead of a
// raw password. The pair is passed through unchanged on every request,
// so a delegate never has to hold the plaintext password.
func WithSaltToken(username, salt, token string) Option {
	return func(c *Config) {
		c.Username = username
		c.Salt = salt
		c.Token = token
	}
}

// WithNetrc resolves the username/password from a netrc-formatted
// file, keyed by the hostname of the base URL. An empty path means
// $HOME/.netrc.
func WithNetrc(path string) Option {
	return func(c *Config) {
		c.useNetrc = true
		c.netrcPath = path
	}
}

// WithPort sets the server port. The default is 4040.
func WithPort(port int) Option {
	return func(c *Config) { c.Port = port }
}

// WithServerPath sets the mount point the server's REST views live
// under, for deployments behind a proxy. The fixed rest segment is
// appended automatically.
func WithServerPath(path string) Option {
	return func(c *Config) { c.ServerPath = path }
}

// WithAppName sets the client name reported to the server.
func WithAppName(name string) Option {
	return func(c *Config) { c.AppName = name }
}

// WithAPIVersion overrides the protocol version string, for talking to
// older servers.
func WithAPIVersion(v string) Option {
	return func(c *Config) { c.APIVersion = v }
}

// WithInsecure skips TLS certificate verification, for servers with
// self-signed certificates.
func WithInsecure() Option {
	return func(c *Config) { c.Insecure = true }
}

// WithLegacyAuth sends the obfuscated enc: password parameter instead
// of salt/token, for servers predating token authentication.
func WithLegacyAuth() Option {
	return func(c *Config) { c.LegacyAuth = true }
}

// WithGET sends requests as query-string GETs instead of form-encoded
// POSTs. Not recommended: repeated-list payloads can exceed practical
// URL length limits.
func WithGET() Option {
	return func(c *Config) { c.UseGET = true }
}

// WithoutViews drops the legacy .view suffix from endpoint names.
func WithoutViews() Option {
	return func(c *Config) { c.UseViews = false }
}

// Connection talks to one Subsonic server. Methods are safe for
// concurrent use; Reconfigure swaps the configuration snapshot
// atomically.
type Connection struct {
	cfg atomic.Pointer[Config]
}

// New builds a Connection for the given base URL, e.g.
// "https://music.example.com". Port, path and credentials come from
// options; without usable credentials New fails with ErrNoCredentials.
func New(baseURL string, opts ...Option) (*Connection, error) {
	cfg := Config{
		BaseURL:    baseURL,
		Port:       defaultPort,
		AppName:    version.Name,
		APIVersion: APIVersion,
		UseViews:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := finalize(&cfg); err != nil {
		return nil, err
	}

	c := &Connection{}
	c.cfg.Store(&cfg)
	return c, nil
}

// Reconfigure applies options on top of the current snapshot and
// installs the result as the configuration used by subsequent calls.
// In-flight calls keep the snapshot they started with.
func (c *Connection) Reconfigure(opts ...Option) error {
	next := *c.cfg.Load()
	for _, opt := range opts {
		opt(&next)
	}
	if err := finalize(&next); err != nil {
		return err
	}
	c.cfg.Store(&next)
	return nil
}

// Config returns the current configuration snapshot.
func (c *Connection) Config() Config {
	return *c.cfg.Load()
}

// finalize normalizes the path, resolves netrc credentials, validates
// that some credential source exists and builds the HTTP clients for
// the snapshot.
func finalize(cfg *Config) error {
	if cfg.BaseURL == "" {
		return argErrorf("base URL must not be empty")
	}
	cfg.ServerPath = normalizeServerPath(cfg.ServerPath)

	if cfg.useNetrc {
		if err := resolveNetrc(cfg); err != nil {
			return err
		}
	}
	hasPassword := cfg.Username != "" && cfg.Password != ""
	hasToken := cfg.Username != "" && cfg.Salt != "" && cfg.Token != ""
	if !hasPassword && !hasToken {
		return fmt.Errorf("%w: supply a username/password pair, a salt/token pair, or a netrc file", ErrNoCredentials)
	}

	transport := http.DefaultTransport
	if cfg.Insecure {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	cfg.httpClient = &http.Client{
		Transport: transport,
		Timeout:   defaultTimeout,
	}

	bulkTransport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: bulkConnectTimeout}).DialContext,
	}
	if cfg.Insecure {
		bulkTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	cfg.bulkClient = &http.Client{
		Transport: bulkTransport,
		Timeout:   bulkTimeout,
	}
	return nil
}

// normalizeServerPath strips surrounding slashes and appends the fixed
// rest segment the protocol mounts its views under.
func normalizeServerPath(path string) string {
	path = strings.Trim(path, "/")
	base := "rest"
	if path == base || strings.HasSuffix(path, "/"+base) {
		return path
	}
	if path == "" {
		return base
	}
	return path + "/" + base
}

// hostname extracts the bare host from the base URL for the netrc
// machine lookup.
func hostname(baseURL string) string {
	trimmed := baseURL
	if i := strings.Index(trimmed, "://"); i >= 0 {
		trimmed = trimmed[i+3:]
	}
	if u, err := url.Parse("//" + trimmed); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return strings.TrimSpace(trimmed)
}

func resolveNetrc(cfg *Config) error {
	path := cfg.netrcPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("%w: locate default netrc: %v", ErrNoCredentials, err)
		}
		path = filepath.Join(home, ".netrc")
	}
	rc, err := netrc.ParseFile(path)
	if err != nil {
		return fmt.Errorf("%w: parse netrc %s: %v", ErrNoCredentials, path, err)
	}
	host := hostname(cfg.BaseURL)
	machine := rc.FindMachine(host)
	if machine == nil || machine.IsDefault() {
		return fmt.Errorf("%w: no netrc machine entry for %s", ErrNoCredentials, host)
	}
	cfg.Username = machine.Login
	cfg.Password = machine.Password
	return nil
}

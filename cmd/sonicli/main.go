// Package main is a small terminal client for Subsonic servers, built
// on the opensonic library.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	opensonic "github.com/opensonic/opensonic-go"
	"github.com/opensonic/opensonic-go/internal/format"
	"github.com/opensonic/opensonic-go/internal/version"
)

// fileConfig mirrors the TOML config file. Environment variables
// SONICLI_SERVER, SONICLI_USERNAME and SONICLI_PASSWORD override the
// file; a .env in the working directory is loaded first.
type fileConfig struct {
	Server     string `toml:"server"`
	Port       int    `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	ServerPath string `toml:"server_path"`
	Insecure   bool   `toml:"insecure"`
	LegacyAuth bool   `toml:"legacy_auth"`
	Netrc      string `toml:"netrc"`
	UseNetrc   bool   `toml:"use_netrc"`
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to TOML config file")
	server := flag.String("server", "", "Server base URL, e.g. https://music.example.com (overrides config)")
	username := flag.String("user", "", "Username (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load config")
	}
	if *server != "" {
		cfg.Server = *server
	}
	if *username != "" {
		cfg.Username = *username
	}
	if cfg.Server == "" {
		log.Fatal().Msg("No server configured: set server in the config file or pass -server")
	}

	conn, err := connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure connection")
	}

	ctx := context.Background()
	if err := run(ctx, conn, args[0], args[1:]); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("Command failed")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s\n\n", version.String())
	fmt.Fprintf(os.Stderr, "Usage: sonicli [flags] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  ping                  Check server reachability and credentials\n")
	fmt.Fprintf(os.Stderr, "  search <query>        Search artists, albums and songs\n")
	fmt.Fprintf(os.Stderr, "  albums <type>         List albums (random, newest, frequent, ...)\n")
	fmt.Fprintf(os.Stderr, "  cover <id> <file>     Download cover art to a file\n")
	fmt.Fprintf(os.Stderr, "  now                   Show what is playing right now\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sonicli.toml"
	}
	return filepath.Join(dir, "sonicli", "config.toml")
}

func loadConfig(path string) (*fileConfig, error) {
	// A missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load()

	cfg := &fileConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		log.Debug().Str("path", path).Msg("No config file, relying on flags and environment")
	default:
		return nil, err
	}

	if v := os.Getenv("SONICLI_SERVER"); v != "" {
		cfg.Server = v
	}
	if v := os.Getenv("SONICLI_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("SONICLI_PASSWORD"); v != "" {
		cfg.Password = v
	}
	return cfg, nil
}

func connect(cfg *fileConfig) (*opensonic.Connection, error) {
	opts := []opensonic.Option{
		opensonic.WithAppName("sonicli"),
	}
	switch {
	case cfg.UseNetrc || cfg.Netrc != "":
		opts = append(opts, opensonic.WithNetrc(cfg.Netrc))
	default:
		opts = append(opts, opensonic.WithCredentials(cfg.Username, cfg.Password))
	}
	if cfg.Port != 0 {
		opts = append(opts, opensonic.WithPort(cfg.Port))
	}
	if cfg.ServerPath != "" {
		opts = append(opts, opensonic.WithServerPath(cfg.ServerPath))
	}
	if cfg.Insecure {
		opts = append(opts, opensonic.WithInsecure())
	}
	if cfg.LegacyAuth {
		opts = append(opts, opensonic.WithLegacyAuth())
	}
	return opensonic.New(cfg.Server, opts...)
}

func run(ctx context.Context, conn *opensonic.Connection, command string, args []string) error {
	switch command {
	case "ping":
		return cmdPing(ctx, conn)
	case "search":
		if len(args) < 1 {
			return fmt.Errorf("search requires a query")
		}
		return cmdSearch(ctx, conn, args[0])
	case "albums":
		listType := opensonic.ListNewest
		if len(args) > 0 {
			listType = args[0]
		}
		return cmdAlbums(ctx, conn, listType)
	case "cover":
		if len(args) < 2 {
			return fmt.Errorf("cover requires an id and an output file")
		}
		return cmdCover(ctx, conn, args[0], args[1])
	case "now":
		return cmdNowPlaying(ctx, conn)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func cmdPing(ctx context.Context, conn *opensonic.Connection) error {
	ok, err := conn.Ping(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not report ok status")
	}
	fmt.Println("ok")
	return nil
}

func cmdSearch(ctx context.Context, conn *opensonic.Connection, query string) error {
	result, err := conn.Search3(ctx, query, nil)
	if err != nil {
		return err
	}
	for _, artist := range result.Artists {
		fmt.Printf("artist  %-8s %s\n", artist.ID, artist.Name)
	}
	for _, album := range result.Albums {
		fmt.Printf("album   %-8s %s (%d songs, %s)\n",
			album.ID, album.Name, album.SongCount, format.Duration(album.Duration))
	}
	for _, song := range result.Songs {
		line := fmt.Sprintf("song    %-8s %s - %s [%s]",
			song.ID, song.Artist, song.Title, format.Duration(song.Duration))
		if br := format.BitRate(song.BitRate); br != "" {
			line += " " + br
		}
		fmt.Println(line)
	}
	return nil
}

func cmdAlbums(ctx context.Context, conn *opensonic.Connection, listType string) error {
	albums, err := conn.GetAlbumList2(ctx, listType, &opensonic.AlbumListOptions{Size: 25})
	if err != nil {
		return err
	}
	for _, album := range albums {
		fmt.Printf("%-8s %-40s %s\n", album.ID, album.Name, format.Duration(album.Duration))
	}
	return nil
}

func cmdCover(ctx context.Context, conn *opensonic.Connection, id, path string) error {
	resp, err := conn.GetCoverArt(ctx, id, 0)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s)\n", path, format.Size(n))
	return nil
}

func cmdNowPlaying(ctx context.Context, conn *opensonic.Connection) error {
	playing, err := conn.GetNowPlaying(ctx)
	if err != nil {
		return err
	}
	if len(playing) == 0 {
		fmt.Println("nothing playing")
		return nil
	}
	for user, song := range playing {
		fmt.Printf("%-12s %s - %s\n", user, song.Artist, song.Title)
	}
	return nil
}

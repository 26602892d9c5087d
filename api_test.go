package opensonic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"
)

// testConn starts an httptest server and returns a Connection pointed
// at it.
func testConn(t *testing.T, handler http.HandlerFunc) *Connection {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatal(err)
	}
	conn, err := New(u.Scheme+"://"+u.Hostname(),
		WithPort(port),
		WithCredentials("admin", "sesame"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return conn
}

func okJSON(w http.ResponseWriter, fragment string) {
	w.Header().Set("Content-Type", "application/json")
	body := `{"subsonic-response":{"status":"ok","version":"1.16.1"`
	if fragment != "" {
		body += "," + fragment
	}
	body += `}}`
	fmt.Fprint(w, body)
}

func failJSON(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w,
		`{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":%d,"message":%q}}}`,
		code, message)
}

func TestPing(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/ping.view" {
			t.Errorf("path = %q", r.URL.Path)
		}
		okJSON(w, "")
	})

	ok, err := conn.Ping(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Ping = false on ok status")
	}
}

func TestPingRejectedCredentials(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		failJSON(w, 40, "Wrong username or password.")
	})

	ok, err := conn.Ping(context.Background())
	if ok {
		t.Error("Ping = true on failed status")
	}
	if !errors.Is(err, ErrWrongCredentials) {
		t.Errorf("err = %v, want ErrWrongCredentials", err)
	}
}

func TestGetAlbumList2(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("type"); got != "newest" {
			t.Errorf("type = %q", got)
		}
		okJSON(w, `"albumList2":{"album":[{"id":"al-1","name":"A","songCount":3,"created":"2024-01-01T00:00:00Z","duration":600}]}`)
	})

	albums, err := conn.GetAlbumList2(context.Background(), ListNewest, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(albums) != 1 {
		t.Fatalf("got %d albums", len(albums))
	}
	album := albums[0]
	if album.Name != "A" || album.SongCount != 3 {
		t.Errorf("album = %+v", album)
	}
	if album.Songs == nil || len(album.Songs) != 0 {
		t.Errorf("list entries must carry an empty song list, got %v", album.Songs)
	}
}

func TestGetAlbumListValidation(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid arguments must not reach the server")
	})

	if _, err := conn.GetAlbumList(context.Background(), "", nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("missing type: err = %v", err)
	}
	if _, err := conn.GetAlbumList(context.Background(), ListByYear, nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("byYear without range: err = %v", err)
	}
	if _, err := conn.GetAlbumList(context.Background(), ListByGenre, nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("byGenre without genre: err = %v", err)
	}
}

func TestSetRating(t *testing.T) {
	var lastRating string
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		lastRating = r.PostForm.Get("rating")
		okJSON(w, "")
	})

	for rating := 0; rating <= 5; rating++ {
		if err := conn.SetRating(context.Background(), "song-1", rating); err != nil {
			t.Errorf("SetRating(%d) = %v", rating, err)
		}
		if want := strconv.Itoa(rating); lastRating != want {
			t.Errorf("sent rating %q, want %q", lastRating, want)
		}
	}
	for _, rating := range []int{-1, 6, 100} {
		if err := conn.SetRating(context.Background(), "song-1", rating); !errors.Is(err, ErrBadArgument) {
			t.Errorf("SetRating(%d) = %v, want ErrBadArgument", rating, err)
		}
	}
}

func TestCreatePlaylistValidation(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid arguments must not reach the server")
	})

	if err := conn.CreatePlaylist(context.Background(), "", "", nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("neither id nor name: err = %v", err)
	}
	if err := conn.CreatePlaylist(context.Background(), "pl-1", "New", nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("both id and name: err = %v", err)
	}
}

func TestUpdatePlaylistLists(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		adds := r.PostForm["songIdToAdd"]
		if len(adds) != 2 || adds[0] != "s-10" || adds[1] != "s-2" {
			t.Errorf("songIdToAdd = %v", adds)
		}
		removes := r.PostForm["songIndexToRemove"]
		if len(removes) != 3 || removes[0] != "0" || removes[1] != "4" || removes[2] != "2" {
			t.Errorf("songIndexToRemove = %v", removes)
		}
		okJSON(w, "")
	})

	err := conn.UpdatePlaylist(context.Background(), "pl-1", UpdatePlaylistOptions{
		SongIDsToAdd:        []string{"s-10", "s-2"},
		SongIndexesToRemove: []int{0, 4, 2},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStarTargets(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm["id"]; len(got) != 2 {
			t.Errorf("id = %v", got)
		}
		if got := r.PostForm["albumId"]; len(got) != 1 || got[0] != "al-1" {
			t.Errorf("albumId = %v", got)
		}
		if _, ok := r.PostForm["artistId"]; ok {
			t.Error("empty artist list was sent")
		}
		okJSON(w, "")
	})

	err := conn.Star(context.Background(), StarTargets{
		SongIDs:  []string{"s-1", "s-2"},
		AlbumIDs: []string{"al-1"},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestGetStarredEmpty(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `"starred":{}`)
	})

	starred, err := conn.GetStarred(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if starred.Artists == nil || starred.Albums == nil || starred.Songs == nil {
		t.Error("absent groups must be empty slices, not nil")
	}
	if len(starred.Songs) != 0 {
		t.Errorf("songs = %v", starred.Songs)
	}
}

func TestSearch3(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `"searchResult3":{"artist":[{"id":"ar-1","name":"Miles"}],"song":[{"id":"s-1","title":"So What","duration":540}]}`)
	})

	result, err := conn.Search3(context.Background(), "miles", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Artists) != 1 || result.Artists[0].Name != "Miles" {
		t.Errorf("artists = %v", result.Artists)
	}
	if len(result.Songs) != 1 || result.Songs[0].Title != "So What" {
		t.Errorf("songs = %v", result.Songs)
	}
	if len(result.Albums) != 0 {
		t.Errorf("albums = %v", result.Albums)
	}

	if _, err := conn.Search3(context.Background(), "", nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("empty query: err = %v", err)
	}
}

func TestStreamBinaryPassthrough(t *testing.T) {
	// A body that happens to start with a brace is still binary when
	// the declared type is audio.
	payload := `{"not":"json-but-audio"}`
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		fmt.Fprint(w, payload)
	})

	resp, err := conn.Stream(context.Background(), "s-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != payload {
		t.Errorf("body = %q", body)
	}
}

func TestGetCoverArtServerError(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		failJSON(w, 70, "Cover art not found")
	})

	_, err := conn.GetCoverArt(context.Background(), "missing", 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetAvatarMissingIsNotAnError(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		failJSON(w, 70, "No avatar")
	})

	resp, err := conn.GetAvatar(context.Background(), "alice")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if resp != nil {
		t.Error("missing avatar should yield a nil response")
	}
}

func TestJukeboxControlValidation(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("action"); got != "add" {
			t.Errorf("action = %q", got)
		}
		if got := r.PostForm["id"]; len(got) != 2 {
			t.Errorf("id = %v", got)
		}
		okJSON(w, `"jukeboxStatus":{"currentIndex":0,"playing":false,"gain":0.9}`)
	})

	if _, err := conn.JukeboxControl(context.Background(), "explode", nil); !errors.Is(err, ErrBadArgument) {
		t.Errorf("unknown action: err = %v", err)
	}

	rec, err := conn.JukeboxControl(context.Background(), "add", &JukeboxOptions{SongIDs: []string{"s-1", "s-2"}})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Child("jukeboxStatus") == nil {
		t.Error("jukebox status missing from result")
	}
}

func TestScrobbleSubmissionFlag(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("submission"); got != "false" {
			t.Errorf("submission = %q, want explicit false", got)
		}
		okJSON(w, "")
	})

	if err := conn.Scrobble(context.Background(), "s-1", false, time.Time{}); err != nil {
		t.Fatal(err)
	}
}

func TestCreateUserDefaults(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("password"); got != "enc:4142" {
			t.Errorf("password = %q, want hex-obfuscated", got)
		}
		if got := r.PostForm.Get("streamRole"); got != "true" {
			t.Errorf("streamRole = %q", got)
		}
		if got := r.PostForm.Get("adminRole"); got != "false" {
			t.Errorf("adminRole = %q", got)
		}
		okJSON(w, "")
	})

	if err := conn.CreateUser(context.Background(), "bob", "AB", "bob@example.com", nil); err != nil {
		t.Fatal(err)
	}
}

func TestGetLyricsBySongId(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/getLyricsBySongId.view" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("id"); got != "s-1" {
			t.Errorf("id = %q", got)
		}
		okJSON(w, `"lyricsList":{"structuredLyrics":[{"lang":"eng","synced":true,"line":[{"start":0,"value":"It's bugging me"}]}]}`)
	})

	rec, err := conn.GetLyricsBySongId(context.Background(), "s-1")
	if err != nil {
		t.Fatal(err)
	}
	lyricsList := rec.Child("lyricsList")
	if lyricsList == nil {
		t.Fatal("lyricsList missing from result")
	}
	structured := lyricsList.List("structuredLyrics")
	if len(structured) != 1 || !structured[0].Bool("synced") {
		t.Errorf("structuredLyrics = %v", structured)
	}
}

func TestGetPodcasts(t *testing.T) {
	conn := testConn(t, func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, `"podcasts":{"channel":[{"id":"pc-1","url":"https://feeds.example.com/a.xml","title":"A Show","status":"completed","episode":[{"id":"ep-1","title":"Pilot","status":"completed"}]}]}`)
	})

	channels, err := conn.GetPodcasts(context.Background(), true, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(channels) != 1 {
		t.Fatalf("got %d channels", len(channels))
	}
	if channels[0].Title != "A Show" || len(channels[0].Episodes) != 1 {
		t.Errorf("channel = %+v", channels[0])
	}
}

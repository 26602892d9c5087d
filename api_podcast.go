package opensonic

import (
	"context"

	"github.com/opensonic/opensonic-go/media"
)

// GetPodcasts returns the podcast channels the server subscribes to.
// includeEpisodes controls whether each channel carries its episode
// list; id restricts the result to one channel.
func (c *Connection) GetPodcasts(ctx context.Context, includeEpisodes bool, id string) ([]media.PodcastChannel, error) {
	p := newParams()
	p.flag("includeEpisodes", includeEpisodes)
	p.str("id", id)

	rec, err := c.request(ctx, "getPodcasts", p)
	if err != nil {
		return nil, err
	}
	out := []media.PodcastChannel{}
	podcasts := rec.Child("podcasts")
	if podcasts == nil {
		return out, nil
	}
	for _, entry := range podcasts.List("channel") {
		out = append(out, *media.NewPodcastChannel(entry))
	}
	return out, nil
}

// GetNewestPodcasts returns the most recently published episodes
// across all channels.
func (c *Connection) GetNewestPodcasts(ctx context.Context, count int) ([]media.PodcastEpisode, error) {
	p := newParams()
	p.int("count", count)

	rec, err := c.request(ctx, "getNewestPodcasts", p)
	if err != nil {
		return nil, err
	}
	out := []media.PodcastEpisode{}
	newest := rec.Child("newestPodcasts")
	if newest == nil {
		return out, nil
	}
	for _, entry := range newest.List("episode") {
		out = append(out, *media.NewPodcastEpisode(entry))
	}
	return out, nil
}

// RefreshPodcasts asks the server to check for new episodes. Requires
// podcast administration rights.
func (c *Connection) RefreshPodcasts(ctx context.Context) error {
	_, err := c.request(ctx, "refreshPodcasts", newParams())
	return err
}

// CreatePodcastChannel subscribes the server to a new podcast feed.
func (c *Connection) CreatePodcastChannel(ctx context.Context, url string) error {
	if url == "" {
		return argErrorf("podcast feed url is required")
	}
	p := newParams()
	p.str("url", url)
	_, err := c.request(ctx, "createPodcastChannel", p)
	return err
}

// DeletePodcastChannel removes a podcast channel.
func (c *Connection) DeletePodcastChannel(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deletePodcastChannel", p)
	return err
}

// DeletePodcastEpisode removes a single podcast episode.
func (c *Connection) DeletePodcastEpisode(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "deletePodcastEpisode", p)
	return err
}

// DownloadPodcastEpisode asks the server to download an episode; the
// episode becomes streamable once its status reaches completed.
func (c *Connection) DownloadPodcastEpisode(ctx context.Context, id string) error {
	p := newParams()
	p.str("id", id)
	_, err := c.request(ctx, "downloadPodcastEpisode", p)
	return err
}

package media

// PodcastChannel is a podcast subscription owning its episode list.
type PodcastChannel struct {
	MediaBase

	URL              string
	Title            string
	Description      string
	Status           string
	OriginalImageURL string
	Episodes         []PodcastEpisode
}

// NewPodcastChannel builds a PodcastChannel from one decoded response
// fragment.
func NewPodcastChannel(rec Record) *PodcastChannel {
	c := &PodcastChannel{
		MediaBase:        newMediaBase("podcastChannel", rec),
		URL:              rec.Str("url"),
		Title:            rec.Str("title"),
		Description:      rec.Str("description"),
		Status:           rec.Str("status"),
		OriginalImageURL: rec.Str("originalImageUrl"),
		Episodes:         []PodcastEpisode{},
	}
	for _, entry := range rec.List("episode") {
		c.Episodes = append(c.Episodes, *NewPodcastEpisode(entry))
	}
	return c
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (c *PodcastChannel) ToRecord() Record {
	rec := c.baseRecord()
	rec.setIf("url", c.URL)
	rec.setIf("title", c.Title)
	rec.setIf("description", c.Description)
	rec.setIf("status", c.Status)
	rec.setIf("originalImageUrl", c.OriginalImageURL)
	if len(c.Episodes) > 0 {
		entries := make([]Record, 0, len(c.Episodes))
		for i := range c.Episodes {
			entries = append(entries, c.Episodes[i].ToRecord())
		}
		rec["episode"] = entries
	}
	return rec
}

// PodcastEpisode belongs to one PodcastChannel, referenced by
// channelId. The streamId is what the streaming endpoints accept once
// the episode has been downloaded server-side.
type PodcastEpisode struct {
	MediaBase

	StreamID    string
	ChannelID   string
	Title       string
	Description string
	PublishDate string
	Status      string
	Parent      string
	IsDir       bool
	Year        int
	Genre       string
	Size        int64
	Duration    int
	BitRate     int
	Path        string
	Suffix      string
	ContentType string
}

// NewPodcastEpisode builds a PodcastEpisode from one decoded response
// fragment.
func NewPodcastEpisode(rec Record) *PodcastEpisode {
	return &PodcastEpisode{
		MediaBase:   newMediaBase("podcastEpisode", rec),
		StreamID:    rec.Str("streamId"),
		ChannelID:   rec.Str("channelId"),
		Title:       rec.Str("title"),
		Description: rec.Str("description"),
		PublishDate: rec.Str("publishDate"),
		Status:      rec.Str("status"),
		Parent:      rec.Str("parent"),
		IsDir:       rec.Bool("isDir"),
		Year:        rec.Int("year"),
		Genre:       rec.Str("genre"),
		Size:        rec.Int64("size"),
		Duration:    rec.Int("duration"),
		BitRate:     rec.Int("bitrate"),
		Path:        rec.Str("path"),
		Suffix:      rec.Str("suffix"),
		ContentType: rec.Str("contentType"),
	}
}

// ToRecord reproduces the wire-shaped mapping for every modeled field.
func (e *PodcastEpisode) ToRecord() Record {
	rec := e.baseRecord()
	rec.setIf("streamId", e.StreamID)
	rec.setIf("channelId", e.ChannelID)
	rec.setIf("title", e.Title)
	rec.setIf("description", e.Description)
	rec.setIf("publishDate", e.PublishDate)
	rec.setIf("status", e.Status)
	rec.setIf("parent", e.Parent)
	rec.setIf("isDir", e.IsDir)
	rec.setIf("year", e.Year)
	rec.setIf("genre", e.Genre)
	rec.setIf("size", e.Size)
	rec.setIf("duration", e.Duration)
	rec.setIf("bitrate", e.BitRate)
	rec.setIf("path", e.Path)
	rec.setIf("suffix", e.Suffix)
	rec.setIf("contentType", e.ContentType)
	return rec
}

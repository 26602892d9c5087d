package media

// MediaBase consolidates the fields shared by every media entity.
// The id is required by the protocol; coverArt is optional.
type MediaBase struct {
	ID      string
	CoverID string

	cover *Cover
}

// Cover is a fetched cover-art payload cached on the entity it
// belongs to.
type Cover struct {
	MIMEType string
	Data     []byte
}

func newMediaBase(entity string, rec Record) MediaBase {
	return MediaBase{
		ID:      rec.RequireStr(entity, "id"),
		CoverID: rec.Str("coverArt"),
	}
}

func (m MediaBase) baseRecord() Record {
	rec := Record{"id": m.ID}
	rec.setIf("coverArt", m.CoverID)
	return rec
}

// Cover returns the cached cover art, or nil if none has been
// attached via SetCover.
func (m *MediaBase) Cover() *Cover {
	return m.cover
}

// SetCover caches the bytes returned by a cover-art fetch for this
// entity. Set exactly once by the caller; the entity never fetches it
// itself.
func (m *MediaBase) SetCover(mimeType string, data []byte) {
	m.cover = &Cover{MIMEType: mimeType, Data: data}
}

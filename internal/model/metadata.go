package model

// Item is one individually downloadable video
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Metadata is the result of resolving a URL without transferring media
type Metadata struct {
	Title      string  `json:"title"`
	Duration   float64 `json:"duration,omitempty"` // seconds, single videos only
	Collection bool    `json:"collection"`
	Items      []Item  `json:"items"`
}

// ItemCount returns the number of items the download will produce.
// A single video always counts as one item.
func (m *Metadata) ItemCount() int {
	if !m.Collection {
		return 1
	}
	return len(m.Items)
}

// Kind returns the human-friendly content kind used in status messages
func (m *Metadata) Kind() string {
	if m.Collection {
		return KindPlaylist
	}
	return KindVideo
}

// Content kinds
const (
	KindPlaylist = "Playlist"
	KindVideo    = "Video"
)

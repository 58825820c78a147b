package fetch

import (
	"context"
	"fmt"

	"github.com/kkdai/youtube/v2"
	ytget "github.com/ytget/ytdlp/v2"

	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// PlaylistResolver lists playlist items through the YouTube web API without
// spawning yt-dlp. The listing carries no playlist title, so one is asked
// from titles when set and derived from the item titles otherwise.
type PlaylistResolver struct {
	titles TitleSource
}

// NewPlaylistResolver creates a new playlist resolver; titles may be nil
func NewPlaylistResolver(titles TitleSource) *PlaylistResolver {
	return &PlaylistResolver{titles: titles}
}

// Resolve lists every item of the playlist referenced by url
func (p *PlaylistResolver) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	playlistID, err := platform.ExtractPlaylistID(url)
	if err != nil {
		return nil, err
	}

	d := ytget.New()
	entries, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	items := make([]model.Item, 0, len(entries))
	for _, it := range entries {
		items = append(items, model.Item{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   platform.VideoURL(it.VideoID),
		})
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	md := &model.Metadata{
		Title:      playlistTitle(items),
		Collection: true,
		Items:      items,
	}
	applyTitle(ctx, md, p.titles, url)
	return md, nil
}

// VideoResolver reads single video metadata from the player response
type VideoResolver struct {
	client *youtube.Client
}

// NewVideoResolver creates a new video resolver
func NewVideoResolver() *VideoResolver {
	return &VideoResolver{client: &youtube.Client{}}
}

// Resolve returns title and duration of the video referenced by url
func (v *VideoResolver) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	videoID, err := platform.ExtractVideoID(url)
	if err != nil {
		return nil, err
	}

	video, err := v.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video by link: %w", err)
	}

	title := video.Title
	if title == "" {
		title = DefaultVideoTitle
	}
	return &model.Metadata{
		Title:    title,
		Duration: video.Duration.Seconds(),
		Items: []model.Item{{
			ID:    video.ID,
			Title: title,
			URL:   platform.VideoURL(video.ID),
		}},
	}, nil
}

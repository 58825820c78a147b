package fetch

import (
	"context"
	"fmt"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

var _ TitleSource = (*DumpJSONResolver)(nil)

// DumpJSONResolver asks yt-dlp for a flat single JSON document. It is the
// slowest resolver but understands every URL yt-dlp does.
type DumpJSONResolver struct {
	executable string
}

// NewDumpJSONResolver creates a resolver running executable
func NewDumpJSONResolver(executable string) *DumpJSONResolver {
	return &DumpJSONResolver{executable: executable}
}

// Resolve runs yt-dlp --dump-single-json --flat-playlist for url
func (r *DumpJSONResolver) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	dl := goytdlp.New().
		DumpSingleJSON().
		FlatPlaylist()
	if r.executable != "" {
		dl.SetExecutable(r.executable)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata: %w", err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("no metadata returned for %s", url)
	}

	return metadataFromInfo(infos[0], platform.IsCollectionURL(url)), nil
}

// Title returns the title of the playlist at url. Only the first entry is
// listed, so this stays cheap for long playlists.
func (r *DumpJSONResolver) Title(ctx context.Context, url string) (string, error) {
	dl := goytdlp.New().
		DumpSingleJSON().
		FlatPlaylist().
		PlaylistItems("1")
	if r.executable != "" {
		dl.SetExecutable(r.executable)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to resolve playlist title: %w", err)
	}
	infos, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("failed to parse metadata: %w", err)
	}
	if len(infos) == 0 || infos[0].Title == nil {
		return "", fmt.Errorf("no playlist title returned for %s", url)
	}
	return *infos[0].Title, nil
}

func metadataFromInfo(info *goytdlp.ExtractedInfo, collection bool) *model.Metadata {
	md := &model.Metadata{
		Collection: collection || len(info.Entries) > 0,
	}
	if info.Title != nil {
		md.Title = *info.Title
	}

	if !md.Collection {
		if md.Title == "" {
			md.Title = DefaultVideoTitle
		}
		if info.Duration != nil {
			md.Duration = *info.Duration
		}
		md.Items = []model.Item{{ID: info.ID, Title: md.Title, URL: platform.VideoURL(info.ID)}}
		return md
	}

	md.Items = make([]model.Item, 0, len(info.Entries))
	for _, entry := range info.Entries {
		if entry == nil {
			continue
		}
		item := model.Item{ID: entry.ID, URL: platform.VideoURL(entry.ID)}
		if entry.Title != nil {
			item.Title = *entry.Title
		}
		md.Items = append(md.Items, item)
	}
	if md.Title == "" {
		md.Title = playlistTitle(md.Items)
	}
	return md
}

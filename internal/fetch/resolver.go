package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/ytdl-desktop/internal/logging"
	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// Default values
const (
	DefaultVideoTitle    = "Unknown Video"
	DefaultPlaylistTitle = "Unknown Playlist"
	PlaylistSuffix       = " Playlist"
	MinPrefixLength      = 10
)

// ErrNoItems is returned when a playlist resolves to zero items
var ErrNoItems = errors.New("playlist has no downloadable items")

// ChainResolver tries resolvers in order until one succeeds. Playlist URLs
// and single video URLs have separate chains.
type ChainResolver struct {
	timeout    time.Duration
	collection []Resolver
	single     []Resolver
}

// NewChainResolver builds the default chain: the native playlist listing or
// the native video player response first, yt-dlp --dump-single-json last.
func NewChainResolver(executable string, timeout time.Duration) *ChainResolver {
	fallback := NewDumpJSONResolver(executable)
	return NewChainResolverFrom(timeout,
		[]Resolver{NewPlaylistResolver(fallback), fallback},
		[]Resolver{NewVideoResolver(), fallback},
	)
}

// NewChainResolverFrom builds a chain from explicit resolvers
func NewChainResolverFrom(timeout time.Duration, collection, single []Resolver) *ChainResolver {
	if timeout <= 0 {
		timeout = DefaultResolveTimeout
	}
	return &ChainResolver{timeout: timeout, collection: collection, single: single}
}

// Resolve returns metadata from the first resolver that succeeds
func (c *ChainResolver) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	log := logging.FromContext(ctx)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chain := c.single
	if platform.IsCollectionURL(url) {
		chain = c.collection
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("no resolver configured for %s", url)
	}

	var lastErr error
	for i, r := range chain {
		md, err := r.Resolve(ctx, url)
		if err == nil {
			return md, nil
		}
		lastErr = err
		log.Debug("resolver failed", zap.Int("resolver", i), zap.Error(err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

// TitleSource looks up the title a collection page carries
type TitleSource interface {
	Title(ctx context.Context, url string) (string, error)
}

// applyTitle replaces the derived title of md with the one titles reports.
// A failed lookup keeps the derived title.
func applyTitle(ctx context.Context, md *model.Metadata, titles TitleSource, url string) {
	if titles == nil {
		return
	}
	title, err := titles.Title(ctx, url)
	if err != nil {
		logging.FromContext(ctx).Debug("playlist title lookup failed", zap.Error(err))
		return
	}
	if title = strings.TrimSpace(title); title != "" {
		md.Title = title
	}
}

// playlistTitle derives a title for a playlist from its videos when the
// listing does not carry one
func playlistTitle(items []model.Item) string {
	if len(items) == 0 {
		return DefaultPlaylistTitle
	}
	if len(items) > 1 {
		commonPrefix := findCommonPrefix(items[0].Title, items[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return items[0].Title + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}

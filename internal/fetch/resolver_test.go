package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytdl-desktop/internal/model"
)

type fakeResolver struct {
	md    *model.Metadata
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, url string) (*model.Metadata, error) {
	f.calls++
	return f.md, f.err
}

func TestChainResolverFallsBack(t *testing.T) {
	failing := &fakeResolver{err: errors.New("blocked")}
	working := &fakeResolver{md: &model.Metadata{Title: "Clip"}}
	chain := NewChainResolverFrom(time.Second, nil, []Resolver{failing, working})

	md, err := chain.Resolve(context.Background(), "https://youtu.be/abc")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if md.Title != "Clip" {
		t.Errorf("Expected title 'Clip', got %q", md.Title)
	}
	if failing.calls != 1 || working.calls != 1 {
		t.Errorf("Expected each resolver called once, got %d and %d", failing.calls, working.calls)
	}
}

func TestChainResolverSelectsChain(t *testing.T) {
	collection := &fakeResolver{md: &model.Metadata{Title: "List", Collection: true}}
	single := &fakeResolver{md: &model.Metadata{Title: "One"}}
	chain := NewChainResolverFrom(time.Second, []Resolver{collection}, []Resolver{single})

	tests := []struct {
		url   string
		title string
	}{
		{"https://www.youtube.com/playlist?list=PL123", "List"},
		{"https://www.youtube.com/watch?v=abc&list=PL123", "List"},
		{"https://www.youtube.com/watch?v=abc", "One"},
	}
	for _, tt := range tests {
		md, err := chain.Resolve(context.Background(), tt.url)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", tt.url, err)
		}
		if md.Title != tt.title {
			t.Errorf("Resolve(%q) title = %q, expected %q", tt.url, md.Title, tt.title)
		}
	}
}

func TestChainResolverReturnsLastError(t *testing.T) {
	last := errors.New("yt-dlp failed")
	chain := NewChainResolverFrom(time.Second, nil, []Resolver{
		&fakeResolver{err: errors.New("first")},
		&fakeResolver{err: last},
	})

	if _, err := chain.Resolve(context.Background(), "https://youtu.be/abc"); !errors.Is(err, last) {
		t.Errorf("Expected last resolver error, got %v", err)
	}
}

func TestChainResolverEmpty(t *testing.T) {
	chain := NewChainResolverFrom(0, nil, nil)
	if chain.timeout != DefaultResolveTimeout {
		t.Errorf("Expected default timeout, got %v", chain.timeout)
	}
	if _, err := chain.Resolve(context.Background(), "https://youtu.be/abc"); err == nil {
		t.Error("Expected error for empty chain, got nil")
	}
}

func TestPlaylistTitle(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.Item
		expected string
	}{
		{"empty", nil, DefaultPlaylistTitle},
		{"single", []model.Item{{Title: "Intro"}}, "Intro Playlist"},
		{
			"common prefix",
			[]model.Item{{Title: "Go Course Lesson 1"}, {Title: "Go Course Lesson 2"}},
			"Go Course Lesson Playlist",
		},
		{
			"short prefix",
			[]model.Item{{Title: "Song A"}, {Title: "Song B"}},
			"Song A Playlist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := playlistTitle(tt.items); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMetadataFromInfo(t *testing.T) {
	title := "Clip"
	duration := 42.5
	md := metadataFromInfo(&goytdlp.ExtractedInfo{ID: "abc", Title: &title, Duration: &duration}, false)

	if md.Collection {
		t.Error("Expected single video metadata")
	}
	if md.Title != "Clip" || md.Duration != 42.5 {
		t.Errorf("Unexpected metadata %+v", md)
	}
	if md.ItemCount() != 1 || md.Items[0].URL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("Unexpected items %+v", md.Items)
	}

	first, second := "Part 1", "Part 2"
	list := metadataFromInfo(&goytdlp.ExtractedInfo{
		ID: "PL1",
		Entries: []*goytdlp.ExtractedInfo{
			{ID: "a", Title: &first},
			nil,
			{ID: "b", Title: &second},
		},
	}, true)

	if !list.Collection {
		t.Error("Expected collection metadata")
	}
	if list.ItemCount() != 2 {
		t.Errorf("Expected 2 items, got %d", list.ItemCount())
	}
	if list.Title != "Part 1 Playlist" {
		t.Errorf("Expected derived title, got %q", list.Title)
	}
}

type fakeTitles struct {
	title string
	err   error
}

func (f fakeTitles) Title(ctx context.Context, url string) (string, error) {
	return f.title, f.err
}

func TestApplyTitle(t *testing.T) {
	tests := []struct {
		name     string
		titles   TitleSource
		expected string
	}{
		{"real title", fakeTitles{title: "  Go Conference 2024 "}, "Go Conference 2024"},
		{"lookup failed", fakeTitles{err: errors.New("yt-dlp missing")}, "Talk Playlist"},
		{"empty title", fakeTitles{title: " "}, "Talk Playlist"},
		{"no source", nil, "Talk Playlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := &model.Metadata{Title: "Talk Playlist", Collection: true}
			applyTitle(context.Background(), md, tt.titles, "https://www.youtube.com/playlist?list=PL1")
			if md.Title != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, md.Title)
			}
		})
	}
}

func TestVideoResolverRejectsMalformedID(t *testing.T) {
	_, err := NewVideoResolver().Resolve(context.Background(), "abc")
	if err == nil {
		t.Error("Expected an error for a malformed video ID")
	}
}

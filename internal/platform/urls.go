package platform

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// Collection markers, matched case-insensitively
const (
	PlaylistMarker = "playlist"
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	VideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// knownURLShapes are the YouTube URL forms accepted for download:
// watch page, playlist page, short link, any page with a list parameter, mobile domain.
var knownURLShapes = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=`),
	regexp.MustCompile(`youtube\.com/playlist\?list=`),
	regexp.MustCompile(`youtu\.be/`),
	regexp.MustCompile(`youtube\.com/.*[?&]list=`),
	regexp.MustCompile(`m\.youtube\.com/`),
}

// IsValidURL reports whether rawURL looks like a downloadable YouTube URL.
// It never touches the network.
func IsValidURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, re := range knownURLShapes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// IsCollectionURL reports whether rawURL points at a playlist
func IsCollectionURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.Contains(lower, PlaylistMarker) || strings.Contains(lower, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from the list= parameter
func ExtractPlaylistID(rawURL string) (string, error) {
	if u, err := url.Parse(rawURL); err == nil {
		if id := u.Query().Get("list"); id != "" {
			return id, nil
		}
	}

	parts := strings.SplitN(rawURL, PlaylistParam, 2)
	if len(parts) < 2 {
		return "", fmt.Errorf("URL does not contain playlist parameter")
	}
	playlistID := strings.SplitN(parts[1], ParamSeparator, 2)[0]
	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}

// ExtractVideoID returns the 11 character video ID of a watch, short or mobile URL
func ExtractVideoID(rawURL string) (string, error) {
	id, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract video id from link: %w", err)
	}
	return id, nil
}

// VideoURL builds a canonical watch URL from a video ID
func VideoURL(videoID string) string {
	return fmt.Sprintf(VideoURLTemplate, videoID)
}

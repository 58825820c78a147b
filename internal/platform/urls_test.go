package platform

import "testing"

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=abc123", true},
		{"https://youtu.be/abc123", true},
		{"https://www.youtube.com/playlist?list=XYZ", true},
		{"https://www.youtube.com/watch?v=abc&list=PL123", true},
		{"https://www.youtube.com/embed/videoseries?list=PL123", true},
		{"https://m.youtube.com/watch?v=abc123", true},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=abc123", true},
		{"https://example.com/abc", false},
		{"https://www.youtube.com/channel/UC123", false},
		{"", false},
		{"not a url", false},
	}

	for _, test := range tests {
		result := IsValidURL(test.url)
		if result != test.expected {
			t.Errorf("IsValidURL(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

func TestIsCollectionURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=abc123", false},
		{"https://youtu.be/abc123", false},
		{"https://m.youtube.com/watch?v=abc123", false},
		{"https://www.youtube.com/playlist?list=XYZ", true},
		{"https://www.youtube.com/watch?v=abc&list=PL123", true},
		{"https://www.youtube.com/watch?v=abc&LIST=PL123", true},
		{"https://www.youtube.com/PLAYLIST?foo=bar", true},
	}

	for _, test := range tests {
		result := IsCollectionURL(test.url)
		if result != test.expected {
			t.Errorf("IsCollectionURL(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{"https://www.youtube.com/playlist?list=PL123", "PL123", false},
		{"https://www.youtube.com/watch?v=abc&list=PL456&start_radio=1", "PL456", false},
		{"youtube.com/watch?v=abc&list=PL789&index=2", "PL789", false},
		{"https://www.youtube.com/watch?v=abc", "", true},
		{"https://www.youtube.com/playlist?list=", "", true},
	}

	for _, test := range tests {
		id, err := ExtractPlaylistID(test.url)
		if (err != nil) != test.wantErr {
			t.Errorf("ExtractPlaylistID(%q) error = %v, wantErr %v", test.url, err, test.wantErr)
			continue
		}
		if id != test.expected {
			t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", test.url, id, test.expected)
		}
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
		wantErr  bool
	}{
		{"https://www.youtube.com/watch?v=7UxNoFjmhBA", "7UxNoFjmhBA", false},
		{"https://youtu.be/GQtVIUdr4sk", "GQtVIUdr4sk", false},
		{"abc", "", true},
	}

	for _, test := range tests {
		id, err := ExtractVideoID(test.url)
		if (err != nil) != test.wantErr {
			t.Errorf("ExtractVideoID(%q) error = %v, wantErr %v", test.url, err, test.wantErr)
			continue
		}
		if id != test.expected {
			t.Errorf("ExtractVideoID(%q) = %q, expected %q", test.url, id, test.expected)
		}
	}
}

func TestVideoURL(t *testing.T) {
	if got := VideoURL("abc"); got != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("VideoURL = %s", got)
	}
}

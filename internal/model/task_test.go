package model

import (
	"testing"
	"time"
)

func TestFormatETA(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "?"},
		{0, "?"},
		{30, "00:30"},
		{90, "01:30"},
		{3599, "59:59"},
		{3600, "60:00"},
		{4503, "75:03"},
	}

	for _, test := range tests {
		result := FormatETA(test.etaSec)
		if result != test.expected {
			t.Errorf("FormatETA(%d) = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		url      string
		expected string
	}{
		{"Video Title", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"https://youtu.be/x", "https://youtu.be/x", "https://youtu.be/x"},
	}

	for _, test := range tests {
		task := &DownloadTask{
			Title:   test.title,
			Request: Request{URL: test.url},
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', url='%s' = '%s', expected '%s'",
				test.title, test.url, result, test.expected)
		}
	}
}

func TestNewDownloadTask(t *testing.T) {
	req := Request{URL: "https://youtube.com/watch?v=test", Dir: "downloads", Mode: ModeAudio}
	task := NewDownloadTask("task-1", req, 3)

	if task.State != TaskStateIdle {
		t.Errorf("Expected state to be Idle, got %s", task.State)
	}
	if task.Generation != 3 {
		t.Errorf("Expected generation 3, got %d", task.Generation)
	}
	if task.Progress.ETASec != -1 {
		t.Errorf("Expected unknown ETA, got %d", task.Progress.ETASec)
	}
	if task.Request != req {
		t.Errorf("Expected request %+v, got %+v", req, task.Request)
	}
	if task.StartedAt.After(time.Now()) {
		t.Error("StartedAt should not be in the future")
	}
	if task.CounterLabel() != "0/0" {
		t.Errorf("Expected counter 0/0, got %s", task.CounterLabel())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"video", ModeVideo, false},
		{" Audio ", ModeAudio, false},
		{"flac", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParseMode(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", test.in, err, test.wantErr)
		}
		if got != test.want {
			t.Errorf("ParseMode(%q) = %q, expected %q", test.in, got, test.want)
		}
	}
}

func TestMetadata_ItemCount(t *testing.T) {
	single := &Metadata{Title: "one"}
	if single.ItemCount() != 1 || single.Kind() != KindVideo {
		t.Errorf("Single video: count=%d kind=%s", single.ItemCount(), single.Kind())
	}

	list := &Metadata{Collection: true, Items: []Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	if list.ItemCount() != 3 || list.Kind() != KindPlaylist {
		t.Errorf("Playlist: count=%d kind=%s", list.ItemCount(), list.Kind())
	}

	empty := &Metadata{Collection: true}
	if empty.ItemCount() != 0 {
		t.Errorf("Empty playlist should have 0 items, got %d", empty.ItemCount())
	}
}

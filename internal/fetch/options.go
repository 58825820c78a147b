package fetch

import (
	"path/filepath"
	"regexp"

	"github.com/ytget/ytdl-desktop/internal/model"
	"github.com/ytget/ytdl-desktop/internal/platform"
)

// yt-dlp output settings
const (
	OutputNameTemplate = "%(title)s.%(ext)s"
	VideoFormat        = "bestvideo+bestaudio/best"
	VideoContainer     = "mp4"
	AudioFormat        = "bestaudio/best"
	AudioCodec         = "mp3"

	// ProgressPrefix marks lines produced by our --progress-template
	ProgressPrefix   = "[ytdl-progress] "
	ProgressTemplate = "download:" + ProgressPrefix + "%(progress)j"

	// MergeLinePrefix is what yt-dlp prints once an item's streams are merged
	MergeLinePrefix = "[Merger] Merging formats into"
)

// Profile selects the stream and post-processing set for a mode
type Profile struct {
	Mode        model.Mode
	Format      string
	MergeFormat string // video only
	AudioCodec  string // audio only
	Extension   string
}

var (
	videoProfile = Profile{
		Mode:        model.ModeVideo,
		Format:      VideoFormat,
		MergeFormat: VideoContainer,
		Extension:   VideoContainer,
	}
	audioProfile = Profile{
		Mode:       model.ModeAudio,
		Format:     AudioFormat,
		AudioCodec: AudioCodec,
		Extension:  AudioCodec,
	}
)

// ProfileFor returns the option profile for mode. Unknown modes get the video profile.
func ProfileFor(mode model.Mode) Profile {
	if mode == model.ModeAudio {
		return audioProfile
	}
	return videoProfile
}

// Options is the full option set for one Fetch call
type Options struct {
	Profile         Profile
	OutputTemplate  string
	FFmpegLocation  string
	IgnoreErrors    bool
	ForceOverwrites bool
	NoPart          bool
	GeoBypass       bool
}

// NewOptions builds the options the app always uses: overwrite existing
// files, no .part files, geo bypass, and skipping items that fail.
func NewOptions(dir string, mode model.Mode, ffmpegLocation string) Options {
	return Options{
		Profile:         ProfileFor(mode),
		OutputTemplate:  filepath.Join(dir, OutputNameTemplate),
		FFmpegLocation:  ffmpegLocation,
		IgnoreErrors:    true,
		ForceOverwrites: true,
		NoPart:          true,
		GeoBypass:       true,
	}
}

// forbiddenCharsPattern strips the same characters as platform.SanitizeFilename from titles
var forbiddenCharsPattern = "[" + regexp.QuoteMeta(platform.ForbiddenFilenameChars) + "]"

// Args renders the options as yt-dlp command line arguments for url
func (o Options) Args(url string) []string {
	args := []string{
		"--newline",
		"--no-colors",
		"--yes-playlist",
		"--progress-template", ProgressTemplate,
		"--replace-in-metadata", "title", forbiddenCharsPattern, "",
		"-o", o.OutputTemplate,
		"-f", o.Profile.Format,
	}
	if o.IgnoreErrors {
		args = append(args, "--ignore-errors")
	}
	if o.ForceOverwrites {
		args = append(args, "--force-overwrites")
	}
	if o.NoPart {
		args = append(args, "--no-part")
	}
	if o.GeoBypass {
		args = append(args, "--geo-bypass")
	}
	if o.FFmpegLocation != "" {
		args = append(args, "--ffmpeg-location", o.FFmpegLocation)
	}

	switch o.Profile.Mode {
	case model.ModeAudio:
		args = append(args, "--extract-audio", "--audio-format", o.Profile.AudioCodec)
	default:
		args = append(args, "--merge-output-format", o.Profile.MergeFormat)
	}

	return append(args, "--", url)
}

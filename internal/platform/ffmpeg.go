package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Bundled ffmpeg layout, relative to the application executable
const (
	BundledFFmpegDir = "ffmpeg"
	BundledFFmpegBin = "bin"
	FFmpegBinary     = "ffmpeg"
	FFmpegBinaryWin  = "ffmpeg.exe"
)

// FFmpegLocation returns the ffmpeg binary yt-dlp should use for merging and
// audio extraction: the configured path when set, else the copy bundled next
// to the executable when present, else "" so yt-dlp searches PATH.
func FFmpegLocation(configured string) string {
	if configured != "" {
		return configured
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return bundledFFmpeg(filepath.Dir(exe))
}

func bundledFFmpeg(baseDir string) string {
	name := FFmpegBinary
	if runtime.GOOS == OSWindows {
		name = FFmpegBinaryWin
	}
	candidate := filepath.Join(baseDir, BundledFFmpegDir, BundledFFmpegBin, name)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

// Package fetch is the media-fetch service: it resolves URL metadata and
// drives the yt-dlp executable (with ffmpeg for merging and audio
// extraction), streaming progress events and log lines back to the caller
// in the order yt-dlp emits them.
package fetch

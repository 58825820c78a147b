// Package platform contains OS integration and URL glue: YouTube URL
// classification, filename sanitizing, filesystem helpers, locating the
// bundled ffmpeg and revealing folders in the OS file manager.
package platform

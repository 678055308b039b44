// Package ffmpeg wraps the ffmpeg CLI for stream-copying the first audio
// track of a recording into an MP4 audio container.
//
// The audio is never re-encoded. Output uses the fast-start layout so the
// moov atom precedes the media data. ffmpeg's machine-readable progress
// stream is requested but only forwarded to debug logging.
package ffmpeg

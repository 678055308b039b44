// Package atomicparsley wraps the AtomicParsley CLI for rewriting the iTunes
// metadata atoms of an MP4 audio file in place.
package atomicparsley

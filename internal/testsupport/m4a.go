package testsupport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"postrec/internal/tags"
)

// iTunes item atom names for the fields postrec writes.
const (
	atomTitle    = "\xa9nam"
	atomArtist   = "\xa9ART"
	atomComposer = "\xa9wrt"
	atomAlbum    = "\xa9alb"
	atomComment  = "\xa9cmt"
)

// WriteTaggedRecording creates a minimal M4A file inside dir carrying meta in
// its moov/udta/meta/ilst atoms and returns its path. The file has no audio
// track; it only satisfies tag readers.
func WriteTaggedRecording(t testing.TB, dir, name string, meta tags.Metadata) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, TaggedM4A(meta), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// TaggedM4A encodes meta as an ftyp box followed by an iTunes-style ilst.
// Empty fields are left out.
func TaggedM4A(meta tags.Metadata) []byte {
	var items [][]byte
	for _, field := range []struct {
		atom  string
		value string
	}{
		{atomTitle, meta.Title},
		{atomArtist, meta.Artist},
		{atomComposer, meta.Composer},
		{atomAlbum, meta.Album},
		{atomComment, meta.Comment},
	} {
		if field.value == "" {
			continue
		}
		items = append(items, textItem(field.atom, field.value))
	}

	ftyp := atom("ftyp", []byte("M4A "), []byte{0, 0, 0, 0}, []byte("M4A mp42isom"))
	ilst := atom("ilst", items...)
	metaBox := atom("meta", append([][]byte{{0, 0, 0, 0}}, ilst)...)
	moov := atom("moov", atom("udta", metaBox))
	return append(ftyp, moov...)
}

// textItem wraps value in a UTF-8 "data" atom (class 1, default locale).
func textItem(name, value string) []byte {
	return atom(name, atom("data", []byte{0, 0, 0, 1}, []byte{0, 0, 0, 0}, []byte(value)))
}

func atom(name string, payload ...[]byte) []byte {
	size := 8
	for _, p := range payload {
		size += len(p)
	}
	out := make([]byte, 8, size)
	binary.BigEndian.PutUint32(out, uint32(size))
	copy(out[4:], name)
	for _, p := range payload {
		out = append(out, p...)
	}
	return out
}

package tags

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// Metadata is the set of fields written into a recording's tag block.
type Metadata struct {
	Title    string
	Artist   string
	Composer string
	Album    string
	Comment  string
}

// Fields returns the metadata as ordered label/value pairs for display.
func (m Metadata) Fields() [][2]string {
	return [][2]string{
		{"Title", m.Title},
		{"Artist", m.Artist},
		{"Composer", m.Composer},
		{"Album", m.Album},
		{"Comment", m.Comment},
	}
}

// Info is the tag block of a file on disk.
type Info struct {
	Metadata
	Format   string
	FileType string
}

// Read parses the tags of the file at path.
func Read(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Info{}, fmt.Errorf("read tags %s: %w", path, err)
	}
	return Info{
		Metadata: Metadata{
			Title:    m.Title(),
			Artist:   m.Artist(),
			Composer: m.Composer(),
			Album:    m.Album(),
			Comment:  m.Comment(),
		},
		Format:   string(m.Format()),
		FileType: string(m.FileType()),
	}, nil
}

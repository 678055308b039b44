// Package tagging derives the metadata and canonical filename for a recording
// and writes the tags through a MetadataWriter.
//
// The source filename is decoded with package naming, its title classified
// with package album, and the artist/composer pair is a fixed identity taken
// from configuration. In dry-run mode every decision is logged and the writer
// is never called.
package tagging

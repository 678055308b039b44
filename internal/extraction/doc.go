// Package extraction drives one recording from source file to canonical,
// tagged .m4a in the destination directory.
//
// The Extractor creates a uniquely named temporary container next to the final
// location, stream-copies the first audio track into it, hands it to the
// tagger, and renames it to the canonical filename. Outside dry-run mode the
// temporary file never survives a failed run.
package extraction

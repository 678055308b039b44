// Package textutil provides text normalization helpers shared by the filename
// decoder and the album classifier.
//
// The primary use cases are:
//   - Collapsing whitespace runs in free-form titles to single spaces
//   - Building compact, case-folded keys for whitespace-insensitive matching
//
// Compact keys are NFC-normalized before lower-casing so that titles read
// from decomposed filesystems (macOS) compare equal to their composed forms.
package textutil

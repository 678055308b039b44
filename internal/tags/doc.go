// Package tags defines the metadata written to processed recordings and reads
// it back from MP4 containers.
//
// Writing is delegated to an external tool (see services/atomicparsley);
// reading uses github.com/dhowden/tag so a processed file can be verified
// without extra binaries.
package tags

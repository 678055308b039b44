// Package services defines shared utilities consumed by the orchestrators and
// the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and processing stages for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can classify
//     failures (external tool vs configuration) with errors.Is.
//
// The ffmpeg and atomicparsley subpackages wrap the external binaries behind
// narrow interfaces so orchestration code can be tested with fakes.
package services

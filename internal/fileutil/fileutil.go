// Package fileutil holds filesystem helpers for placing processed recordings.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDestinationExists is returned when a move would replace an existing file.
var ErrDestinationExists = errors.New("destination already exists")

// MoveFile renames src to dst. With overwrite false the rename fails with
// ErrDestinationExists when dst is present, and the check is atomic where the
// platform supports it. With overwrite true an existing dst is replaced.
func MoveFile(src, dst string, overwrite bool) error {
	if overwrite {
		return os.Rename(src, dst)
	}
	return renameNoReplace(src, dst)
}

// RemoveIfExists deletes path, treating an already-missing file as success.
func RemoveIfExists(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func destinationExists(dst string) error {
	return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
}

// linkAndRemove emulates a no-replace rename with a hard link, which fails
// atomically when dst exists. Filesystems without hard links fall back to a
// stat check followed by a plain rename.
func linkAndRemove(src, dst string) error {
	err := os.Link(src, dst)
	switch {
	case err == nil:
		return os.Remove(src)
	case errors.Is(err, fs.ErrExist):
		return destinationExists(dst)
	case errors.Is(err, fs.ErrNotExist):
		return err
	}

	if _, statErr := os.Lstat(dst); statErr == nil {
		return destinationExists(dst)
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}
	return os.Rename(src, dst)
}

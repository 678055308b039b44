package naming

import (
	"errors"
	"fmt"
)

// ErrFilenameFormat marks filenames that do not follow the recording pattern.
var ErrFilenameFormat = errors.New("filename format error")

// FormatError reports the filename that failed to decode.
type FormatError struct {
	Filename string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("filename does not match pattern: %s", e.Filename)
}

// Is lets callers match any FormatError with errors.Is(err, ErrFilenameFormat).
func (e *FormatError) Is(target error) bool {
	return target == ErrFilenameFormat
}

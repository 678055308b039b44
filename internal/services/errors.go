package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrExternalTool  = errors.New("external tool error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ToolFailure wraps a failed subprocess run, appending its trimmed output so
// the operator sees what the tool complained about.
func ToolFailure(stage, tool string, output []byte, err error) error {
	message := strings.TrimSpace(string(output))
	if len(message) > maxToolOutput {
		cut := len(message) - maxToolOutput
		for cut < len(message) && !utf8.RuneStart(message[cut]) {
			cut++
		}
		message = "..." + message[cut:]
	}
	return Wrap(ErrExternalTool, stage, tool, message, err)
}

const maxToolOutput = 2048

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"postrec/internal/fileutil"
	"postrec/internal/naming"
	"postrec/internal/services"
)

const (
	exitFailure           = 1
	exitFilenameFormat    = 2
	exitDestinationExists = 3
	exitExternalTool      = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, naming.ErrFilenameFormat):
		return exitFilenameFormat
	case errors.Is(err, fileutil.ErrDestinationExists):
		return exitDestinationExists
	case errors.Is(err, services.ErrExternalTool):
		return exitExternalTool
	default:
		return exitFailure
	}
}

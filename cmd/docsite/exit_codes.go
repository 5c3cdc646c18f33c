package main

import (
	"errors"
	"os"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/config"
)

// Exit codes for the docsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDescriptors) ||
		errors.Is(err, docsite.ErrResetOutput) ||
		errors.Is(err, docsite.ErrCopyAssets) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, ErrNoDescriptors) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrParseDescriptors) ||
		errors.Is(err, ErrBadNodeType) ||
		errors.Is(err, ErrMissingNodeID) ||
		errors.Is(err, docsite.ErrReservedMainPage) ||
		errors.Is(err, docsite.ErrMissingOutputDir) ||
		errors.Is(err, docsite.ErrInvalidHighlight) ||
		errors.Is(err, docsite.ErrUnsupportedImageFormat) {
		return ExitUsage
	}

	return ExitGeneral
}

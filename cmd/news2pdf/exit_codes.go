package main

import (
	"errors"
	"os"

	news2pdf "github.com/alnah/go-news2pdf"
)

// Exit codes for the news2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF produced (possibly degraded, with a warning)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, PDF write failure
	ExitEngine  = 4 // Render engine failure (both attempts)
)

// errUsage marks command line usage errors.
var errUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render engine errors (exit 4)
	if errors.Is(err, news2pdf.ErrRenderEngine) {
		return ExitEngine
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, news2pdf.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, news2pdf.ErrInvalidConfig) ||
		errors.Is(err, news2pdf.ErrInvalidLayout) ||
		errors.Is(err, news2pdf.ErrInvalidTheme) ||
		errors.Is(err, news2pdf.ErrEmptyURL) {
		return ExitUsage
	}

	return ExitGeneral
}

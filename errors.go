package docsite

import "errors"

// Sentinel errors for generation operations.
var (
	// Config validation errors.
	ErrReservedMainPage = errors.New(`main page cannot be "index" (reserved for the generated redirect)`)
	ErrMissingOutputDir = errors.New("output directory is required")
	ErrInvalidHighlight = errors.New("invalid highlight mode")

	// Logo processing errors.
	ErrUnsupportedImageFormat = errors.New("unsupported logo image format (accepted: JPEG, PNG)")

	// Orchestration errors.
	ErrResetOutput    = errors.New("failed to reset output directory")
	ErrCopyAssets     = errors.New("failed to copy static assets")
	ErrNoPagesWritten = errors.New("no pages could be written")

	// Rendering errors.
	ErrMarkdownRender = errors.New("markdown rendering failed")
	ErrTemplateRender = errors.New("template rendering failed")
)

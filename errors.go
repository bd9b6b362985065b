package news2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrTransport covers any non-2xx response or request failure on an
	// HTTP call. Always fatal for the operation that issued it.
	ErrTransport = errors.New("transport request failed")

	// ErrAuthFormNotFound means the login page contained no POST form to
	// scrape credentials into. Fatal, never retried.
	ErrAuthFormNotFound = errors.New("login form not found")

	// ErrArticleBodyNotFound means the main article container is absent
	// from the fetched HTML. The pipeline aborts without rendering.
	ErrArticleBodyNotFound = errors.New("article body not found")

	// ErrPageID means the article URL does not follow the
	// ..._<digits>_<digits>.html naming convention.
	ErrPageID = errors.New("cannot extract page id from URL")

	// ErrRenderEngine covers render engine invocation failures. Render
	// recovers from a first failure with one degraded retry; a second
	// failure is propagated wrapped in this sentinel.
	ErrRenderEngine = errors.New("render engine failed")

	// ErrCommentParse means a comment record is missing a required field.
	// Fatal for that record; no partial comment is produced.
	ErrCommentParse = errors.New("comment record parse failed")

	// ErrWritePDF covers failures writing the rendered PDF to disk.
	ErrWritePDF = errors.New("failed to write PDF file")

	// Input validation errors.
	ErrEmptyURL      = errors.New("article URL cannot be empty")
	ErrInvalidLayout = errors.New("invalid layout")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrSessionClosed = errors.New("session already closed")
	ErrEmptyFragment = errors.New("fragment cannot be empty")
	ErrEmptyDocument = errors.New("document cannot be empty")
)

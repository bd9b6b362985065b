package news2pdf

import (
	"fmt"
	"log/slog"
)

// Layout selects the physical page format.
type Layout string

// Layout constants.
const (
	LayoutDesktop Layout = "desktop" // A4
	LayoutMobile  Layout = "mobile"  // A6
)

// Validate checks that the layout is a known value.
// An empty layout is valid and means LayoutDesktop.
func (l Layout) Validate() error {
	switch l {
	case "", LayoutDesktop, LayoutMobile:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidLayout, string(l))
}

// Theme selects the document color scheme.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Validate checks that the theme is a known value.
// An empty theme is valid and means ThemeLight.
func (t Theme) Validate() error {
	switch t {
	case "", ThemeLight, ThemeDark:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
}

// Page size names understood by the render engines.
const (
	PageSizeA4 = "A4"
	PageSizeA6 = "A6"
)

// RenderOptions configures a single render engine invocation. The geometry
// fields are fully determined by (Layout, Theme) via Compose; the remaining
// fields are invariant across all renders.
type RenderOptions struct {
	PageSize  string // "A4" or "A6"
	MarginMM  int    // outer page margin, all four sides
	PaddingMM int    // inner body padding (dark theme only)

	// Always set by Compose.
	Encoding        string // "UTF-8"
	DisableOutline  bool
	AcceptEncoding  string // custom Accept-Encoding header, "gzip"
	LocalFileAccess bool   // the fragment may reference local image paths
}

// RenderResult reports the outcome of a render. Success implies a PDF file
// exists at OutputPath. Warning is non-empty only when the degraded
// fallback path produced the file.
type RenderResult struct {
	Success    bool
	Warning    string
	OutputPath string
}

// Input contains the parameters for one article-to-PDF run.
type Input struct {
	URL      string // article URL (required)
	Email    string // credentials; login is skipped unless both are set
	Password string
	Layout   Layout // default LayoutDesktop
	Theme    Theme  // default ThemeLight
	OutDir   string // output directory, default current directory
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if in.URL == "" {
		return ErrEmptyURL
	}
	if err := in.Layout.Validate(); err != nil {
		return err
	}
	return in.Theme.Validate()
}

// Option configures a Service.
type Option func(*Service)

// WithEngine replaces the default render engine (wkhtmltopdf).
// Panics on nil (programmer error).
func WithEngine(e Engine) Option {
	if e == nil {
		panic("news2pdf: WithEngine engine must not be nil")
	}
	return func(s *Service) {
		s.engine = e
	}
}

// WithEngineFactory sets a constructor invoked once per Service. Use it
// instead of WithEngine when one set of options builds several services
// (e.g. a ServicePool) and each must own its engine.
func WithEngineFactory(newEngine func() Engine) Option {
	if newEngine == nil {
		panic("news2pdf: WithEngineFactory constructor must not be nil")
	}
	return func(s *Service) {
		s.engine = newEngine()
	}
}

// WithLogger sets the structured logger used across the pipeline.
// Panics on nil (programmer error).
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic("news2pdf: WithLogger logger must not be nil")
	}
	return func(s *Service) {
		s.log = log
	}
}

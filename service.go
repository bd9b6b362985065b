package news2pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Service composes the session, extractor, and renderer into the one-call
// "fetch article to PDF" operation. Create with NewService, use FetchPDF,
// and Close when done; Close tears the session down even after pipeline
// errors.
type Service struct {
	cfg       Config
	client    *Client
	extractor *Extractor
	renderer  *Renderer
	engine    Engine
	log       *slog.Logger
}

// NewService creates a Service with default configuration: a fresh
// session bound to cfg's hosts and the wkhtmltopdf engine. Use options to
// customize (e.g. WithEngine, WithLogger).
func NewService(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg: cfg,
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	client, err := NewClient(cfg, WithClientLogger(s.log))
	if err != nil {
		return nil, err
	}
	s.client = client
	s.extractor = NewExtractor(cfg, s.log)

	if s.engine == nil {
		s.engine = NewWKEngine()
	}
	s.renderer = NewRenderer(s.engine, s.log)

	return s, nil
}

// Client exposes the underlying session for step-by-step use.
func (s *Service) Client() *Client {
	return s.client
}

// FetchPDF runs the full pipeline:
//
//  1. Login when both credentials are supplied. A failed login is
//     non-fatal: the run continues unauthenticated and the article comes
//     back paywalled.
//  2. Fetch the raw article HTML.
//  3. Extract and clean the article body. No body aborts the run before
//     the renderer is ever invoked.
//  4. Compose the themed document and render options.
//  5. Derive the output filename from the article URL.
//  6. Render with the degraded-retry fallback.
func (s *Service) FetchPDF(ctx context.Context, input Input) (RenderResult, error) {
	if err := input.Validate(); err != nil {
		return RenderResult{}, err
	}

	if input.Email != "" && input.Password != "" {
		ok, err := s.client.Login(ctx, input.Email, input.Password)
		if err != nil {
			return RenderResult{}, fmt.Errorf("login: %w", err)
		}
		if !ok {
			s.log.Warn("continuing unauthenticated, article may be paywalled")
		}
	}

	rawHTML, err := s.client.Fetch(ctx, input.URL)
	if err != nil {
		return RenderResult{}, fmt.Errorf("fetching article: %w", err)
	}

	fragment, err := s.extractor.Extract(rawHTML)
	if err != nil {
		return RenderResult{}, fmt.Errorf("extracting article: %w", err)
	}

	doc, opts, err := Compose(fragment, input.Layout, input.Theme)
	if err != nil {
		return RenderResult{}, fmt.Errorf("composing document: %w", err)
	}

	outputPath := MakePDFName(input.URL)
	if input.OutDir != "" {
		outputPath = filepath.Join(input.OutDir, outputPath)
	}

	result, err := s.renderer.Render(ctx, doc, opts, outputPath)
	if err != nil {
		return RenderResult{}, err
	}
	return result, nil
}

// Comments fetches one page of reader comments for an article and
// reconstructs the reply tree. The page id is derived from the URL; the
// server's likes-descending ordering is preserved as-is.
func (s *Service) Comments(ctx context.Context, articleURL string, page, limit int) ([]Comment, error) {
	pageID, err := ExtractPageID(articleURL)
	if err != nil {
		return nil, err
	}

	commentsPage, err := s.client.FetchComments(ctx, pageID, page, limit)
	if err != nil {
		return nil, err
	}
	return commentsPage.Parse()
}

// Close releases the session and the render engine. Both are always
// attempted; errors are joined.
func (s *Service) Close() error {
	return errors.Join(s.client.Close(), s.renderer.Close())
}

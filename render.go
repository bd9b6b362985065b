package news2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Engine converts a full HTML document into a PDF file at outputPath.
type Engine interface {
	Render(ctx context.Context, htmlDoc string, opts RenderOptions, outputPath string) error
	Close() error
}

// multimediaSelector matches the embed blocks some engines cannot render.
const multimediaSelector = "div.multimedia-embed"

// WarningMultimediaRemoved is the only user-visible non-fatal condition:
// the PDF was produced after stripping multimedia embeds the engine
// could not handle.
const WarningMultimediaRemoved = "multimedia content was removed because the render engine could not embed it"

// Renderer drives an Engine with the degraded-retry fallback.
type Renderer struct {
	engine Engine
	log    *slog.Logger
}

// NewRenderer wraps an engine. A nil logger falls back to slog.Default.
func NewRenderer(engine Engine, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{engine: engine, log: log}
}

// Render produces a PDF at outputPath, recovering from one engine failure:
//
//  1. Render the full document. Success returns a clean result.
//  2. On engine failure, strip every multimedia-embed block and retry once.
//  3. A successful retry returns success with a warning.
//  4. A failed retry is fatal; no output file is left behind.
func (r *Renderer) Render(ctx context.Context, htmlDoc string, opts RenderOptions, outputPath string) (RenderResult, error) {
	if htmlDoc == "" {
		return RenderResult{}, ErrEmptyDocument
	}

	err := r.engine.Render(ctx, htmlDoc, opts, outputPath)
	if err == nil {
		return RenderResult{Success: true, OutputPath: outputPath}, nil
	}

	r.log.Error("render engine failed on first attempt", "error", err)
	r.log.Warn("retrying after removing multimedia embeds")

	stripped, stripErr := stripMultimedia(htmlDoc)
	if stripErr != nil {
		removeOutput(outputPath)
		return RenderResult{}, fmt.Errorf("%w: stripping multimedia: %v", ErrRenderEngine, stripErr)
	}

	if retryErr := r.engine.Render(ctx, stripped, opts, outputPath); retryErr != nil {
		r.log.Error("render engine failed on second attempt", "error", retryErr)
		removeOutput(outputPath)
		return RenderResult{}, fmt.Errorf("%w: %v", ErrRenderEngine, retryErr)
	}

	return RenderResult{
		Success:    true,
		Warning:    WarningMultimediaRemoved,
		OutputPath: outputPath,
	}, nil
}

// Close releases engine resources.
func (r *Renderer) Close() error {
	return r.engine.Close()
}

// stripMultimedia removes every multimedia-embed block from a full
// document and reserializes it.
func stripMultimedia(htmlDoc string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlDoc))
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}
	doc.Find(multimediaSelector).Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing document: %w", err)
	}
	return cleaned, nil
}

// removeOutput deletes a partial output file. Fatal render failures must
// not leave an artifact behind.
func removeOutput(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(path)
}

package news2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-news2pdf/internal/fileutil"
)

// Engine-level failures for the Chrome backend.
var (
	errBrowserConnect = fmt.Errorf("%w: cannot connect to browser", ErrRenderEngine)
	errPageCreate     = fmt.Errorf("%w: cannot create browser page", ErrRenderEngine)
	errPageLoad       = fmt.Errorf("%w: cannot load page", ErrRenderEngine)
)

// Paper dimensions in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	a6WidthInches  = 4.13
	a6HeightInches = 5.83

	mmPerInch = 25.4
)

// ChromeEngine renders PDFs through headless Chrome via go-rod. The
// browser is launched lazily on first render and reused until Close.
// Rod downloads a managed Chromium on first run if none is found.
type ChromeEngine struct {
	browser *rod.Browser
	timeout time.Duration
}

// Compile-time interface check.
var _ Engine = (*ChromeEngine)(nil)

// NewChromeEngine creates a ChromeEngine with the given page-load timeout.
func NewChromeEngine(timeout time.Duration) *ChromeEngine {
	return &ChromeEngine{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (e *ChromeEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker, CI).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", errBrowserConnect, err)
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v", errBrowserConnect, err)
	}
	return nil
}

// Render writes htmlDoc to a temp file, loads it over file:// (local file
// access is inherent to this backend), and prints it to PDF.
func (e *ChromeEngine) Render(ctx context.Context, htmlDoc string, opts RenderOptions, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlDoc, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := e.ensureBrowser(); err != nil {
		return err
	}

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", errPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", errPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	reader, err := page.PDF(buildChromePDFOptions(opts))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderEngine, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrRenderEngine, err)
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(outputPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// Close releases browser resources.
func (e *ChromeEngine) Close() error {
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// buildChromePDFOptions maps RenderOptions to Chrome's print parameters.
// Chrome PDFs carry no outline, so DisableOutline needs no mapping; the
// inner padding lives in the document CSS.
func buildChromePDFOptions(opts RenderOptions) *proto.PagePrintToPDF {
	width, height := paperSizeInches(opts.PageSize)
	margin := mmToInches(opts.MarginMM)

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(margin),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}
}

// paperSizeInches returns the physical dimensions for a page size name.
func paperSizeInches(pageSize string) (width, height float64) {
	if pageSize == PageSizeA6 {
		return a6WidthInches, a6HeightInches
	}
	return a4WidthInches, a4HeightInches
}

// mmToInches converts a millimeter length for Chrome's inch-based API.
func mmToInches(mm int) float64 {
	return float64(mm) / mmPerInch
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

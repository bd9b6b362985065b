package news2pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/alnah/go-news2pdf/internal/fileutil"
)

// defaultWKBinary is the wkhtmltopdf binary resolved from PATH.
const defaultWKBinary = "wkhtmltopdf"

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes the command, capturing stdout and stderr separately.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// WKEngine renders PDFs by invoking the external wkhtmltopdf binary.
// The document is written to a temporary file first; wkhtmltopdf resolves
// relative image paths against it when local file access is enabled.
type WKEngine struct {
	Runner CommandRunner
	Binary string
}

// Compile-time interface check.
var _ Engine = (*WKEngine)(nil)

// NewWKEngine creates a WKEngine with a real command runner.
func NewWKEngine() *WKEngine {
	return &WKEngine{Runner: &ExecRunner{}, Binary: defaultWKBinary}
}

// Render writes htmlDoc to a temp file and invokes wkhtmltopdf on it.
func (e *WKEngine) Render(ctx context.Context, htmlDoc string, opts RenderOptions, outputPath string) error {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlDoc, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	args := buildWKArgs(opts)
	args = append(args, tmpPath, outputPath)

	if _, stderr, err := e.Runner.Run(ctx, e.Binary, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderEngine, stderr, err)
	}
	return nil
}

// Close is a no-op: the engine holds no persistent resources.
func (e *WKEngine) Close() error {
	return nil
}

// buildWKArgs maps RenderOptions to wkhtmltopdf flags.
func buildWKArgs(opts RenderOptions) []string {
	margin := strconv.Itoa(opts.MarginMM) + "mm"
	args := []string{
		"--page-size", opts.PageSize,
		"--margin-top", margin,
		"--margin-right", margin,
		"--margin-bottom", margin,
		"--margin-left", margin,
		"--encoding", opts.Encoding,
	}
	if opts.DisableOutline {
		args = append(args, "--no-outline")
	}
	if opts.AcceptEncoding != "" {
		args = append(args, "--custom-header", "Accept-Encoding", opts.AcceptEncoding)
	}
	if opts.LocalFileAccess {
		args = append(args, "--enable-local-file-access")
	}
	return args
}

package news2pdf

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// discardLogger returns a logger that swallows all output, keeping test
// logs readable.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockEngine is a scriptable Engine for renderer and service tests. Each
// Render call consumes one entry from errs (nil past the end means
// success), records the document it received, and writes a placeholder
// output file on success.
type mockEngine struct {
	mu     sync.Mutex
	errs   []error
	calls  []string
	paths  []string
	opts   []RenderOptions
	closed bool
}

func (m *mockEngine) Render(_ context.Context, htmlDoc string, opts RenderOptions, outputPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := len(m.calls)
	m.calls = append(m.calls, htmlDoc)
	m.paths = append(m.paths, outputPath)
	m.opts = append(m.opts, opts)

	if call < len(m.errs) && m.errs[call] != nil {
		return m.errs[call]
	}
	return os.WriteFile(outputPath, []byte("%PDF-mock"), 0o644)
}

func (m *mockEngine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockEngine) renderCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

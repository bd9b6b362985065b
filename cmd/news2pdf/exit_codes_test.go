package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	news2pdf "github.com/alnah/go-news2pdf"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"render engine", news2pdf.ErrRenderEngine, ExitEngine},
		{"wrapped render engine", fmt.Errorf("rendering: %w", news2pdf.ErrRenderEngine), ExitEngine},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"pdf write", news2pdf.ErrWritePDF, ExitIO},
		{"usage", errUsage, ExitUsage},
		{"config not found", ErrConfigNotFound, ExitUsage},
		{"config parse", ErrConfigParse, ExitUsage},
		{"invalid config", news2pdf.ErrInvalidConfig, ExitUsage},
		{"invalid layout", news2pdf.ErrInvalidLayout, ExitUsage},
		{"invalid theme", news2pdf.ErrInvalidTheme, ExitUsage},
		{"empty url", news2pdf.ErrEmptyURL, ExitUsage},
		{"transport", news2pdf.ErrTransport, ExitGeneral},
		{"unknown", errors.New("anything else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

package news2pdf

import (
	"errors"
	"testing"
)

func TestLayoutValidate(t *testing.T) {
	t.Parallel()

	for _, l := range []Layout{"", LayoutDesktop, LayoutMobile} {
		if err := l.Validate(); err != nil {
			t.Errorf("Layout(%q).Validate() = %v, want nil", l, err)
		}
	}
	if err := Layout("tablet").Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("Validate = %v, want ErrInvalidLayout", err)
	}
}

func TestThemeValidate(t *testing.T) {
	t.Parallel()

	for _, th := range []Theme{"", ThemeLight, ThemeDark} {
		if err := th.Validate(); err != nil {
			t.Errorf("Theme(%q).Validate() = %v, want nil", th, err)
		}
	}
	if err := Theme("sepia").Validate(); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("Validate = %v, want ErrInvalidTheme", err)
	}
}

func TestInputValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:  "minimal valid",
			input: Input{URL: "https://site/a_1_2.html"},
		},
		{
			name:  "all fields",
			input: Input{URL: "https://site/a_1_2.html", Layout: LayoutMobile, Theme: ThemeDark, OutDir: "/tmp"},
		},
		{
			name:    "missing URL",
			input:   Input{Layout: LayoutDesktop},
			wantErr: ErrEmptyURL,
		},
		{
			name:    "bad layout",
			input:   Input{URL: "https://site/a_1_2.html", Layout: "tablet"},
			wantErr: ErrInvalidLayout,
		},
		{
			name:    "bad theme",
			input:   Input{URL: "https://site/a_1_2.html", Theme: "sepia"},
			wantErr: ErrInvalidTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithEnginePanicsOnNil(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithEngine(nil) did not panic")
		}
	}()
	WithEngine(nil)
}

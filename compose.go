package news2pdf

import (
	"fmt"
	"strings"
)

// Spacing rules in millimeters. Light themes inset content with a page
// margin; dark themes must paint the background to the physical page edge,
// so the margin collapses to zero and the inset moves to body padding.
const (
	desktopSpacingMM = 20
	mobileSpacingMM  = 7
)

// documentEncoding is declared in the document head and passed to the
// render engine.
const documentEncoding = "UTF-8"

// Compose wraps a cleaned fragment into a full themed HTML document and
// derives the render options. Geometry is fully determined by the
// (layout, theme) pair: desktop means A4, mobile means A6; light themes
// carry the inset as margin, dark themes as padding.
func Compose(fragment string, layout Layout, theme Theme) (string, RenderOptions, error) {
	if fragment == "" {
		return "", RenderOptions{}, ErrEmptyFragment
	}
	if err := layout.Validate(); err != nil {
		return "", RenderOptions{}, err
	}
	if err := theme.Validate(); err != nil {
		return "", RenderOptions{}, err
	}

	pageSize := PageSizeA4
	spacing := desktopSpacingMM
	if layout == LayoutMobile {
		pageSize = PageSizeA6
		spacing = mobileSpacingMM
	}

	marginMM, paddingMM := spacing, 0
	if theme == ThemeDark {
		marginMM, paddingMM = 0, spacing
	}

	opts := RenderOptions{
		PageSize:        pageSize,
		MarginMM:        marginMM,
		PaddingMM:       paddingMM,
		Encoding:        documentEncoding,
		DisableOutline:  true,
		AcceptEncoding:  "gzip",
		LocalFileAccess: true,
	}

	var css string
	if theme == ThemeDark {
		css = buildDarkCSS(paddingMM)
	} else {
		css = buildLightCSS()
	}

	doc := fmt.Sprintf(`<html>
<head>
<meta charset=%q>
%s
</head>
<body>
%s
</body>
</html>`, documentEncoding, css, fragment)

	return strings.TrimSpace(doc), opts, nil
}

// buildDarkCSS generates the night-reading stylesheet: dark page
// background filling to the physical edge, light foreground, link color
// tuned for contrast, images slightly dimmed and contrast-boosted.
func buildDarkCSS(paddingMM int) string {
	return fmt.Sprintf(`<style>
  html {
    background: #121212;
  }
  body {
    background: transparent;
    color: #e0e0e0;
    margin: 0;
    padding: %dmm;
    font-family: sans-serif;
    font-size: 12pt;
    line-height: 1.6;
    box-sizing: border-box;
  }
  a {
    color: #90caf9;
  }
  img {
    filter: brightness(0.8) contrast(1.2);
    max-width: 100%%;
    height: auto;
  }
</style>`, paddingMM)
}

// buildLightCSS generates the default sans-serif body styling.
func buildLightCSS() string {
	return `<style>
  body {
    font-family: sans-serif;
    font-size: 12pt;
    line-height: 1.6;
  }
</style>`
}

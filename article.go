package news2pdf

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Article is one retrieved article moving through the pipeline. Fragment
// stays empty until extraction succeeds.
type Article struct {
	URL      string
	PageID   string
	RawHTML  string
	Fragment string
}

// pageIDPattern matches the site's article naming convention:
// the URL path ends in _<pageID>_<variant>.html.
var pageIDPattern = regexp.MustCompile(`_(\d+)_\d+\.html$`)

// ExtractPageID derives the comments page id from an article URL.
// Returns ErrPageID when the URL does not follow the naming convention.
func ExtractPageID(rawURL string) (string, error) {
	m := pageIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrPageID, rawURL)
	}
	return m[1], nil
}

// MakePDFName derives a PDF filename from an article URL: the final
// path segment with its extension stripped, plus ".pdf".
func MakePDFName(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	slug := path.Base(p)
	base := strings.TrimSuffix(slug, path.Ext(slug))
	return base + ".pdf"
}

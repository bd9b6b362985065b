package news2pdf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// articleSelector locates the main article container. Structural: the
// content block is always a direct child of <main>.
const articleSelector = "main > .article--content"

// Lazy-loading attributes used by the site's image markup.
const (
	attrSrcset  = "data-srcset"
	attrLazySrc = "data-src"
)

// Extractor parses raw article HTML into a cleaned, image-normalized
// fragment. Each Extract call builds its own document tree, so a shared
// Extractor is safe for concurrent use.
type Extractor struct {
	noise []string
	log   *slog.Logger
}

// NewExtractor creates an Extractor using the UI-noise denylist from cfg.
func NewExtractor(cfg Config, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{noise: cfg.UINoise, log: log}
}

// Extract locates the article body, removes UI noise, normalizes
// lazy-loaded images, and returns the serialized fragment.
//
// A page without the article container returns ErrArticleBodyNotFound;
// the caller must abort the pipeline without rendering. Extract never
// panics on malformed HTML.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parsing article HTML: %w", err)
	}

	body := doc.Find(articleSelector).First()
	if body.Length() == 0 {
		return "", ErrArticleBodyNotFound
	}

	e.removeNoise(body)
	normalizeImages(body)

	fragment, err := goquery.OuterHtml(body)
	if err != nil {
		return "", fmt.Errorf("serializing fragment: %w", err)
	}
	return fragment, nil
}

// removeNoise drops every denylisted element under the article body.
// Selectors matching nothing are skipped silently.
func (e *Extractor) removeNoise(body *goquery.Selection) {
	for _, sel := range e.noise {
		matched := body.Find(sel)
		if matched.Length() == 0 {
			continue
		}
		matched.Remove()
		e.log.Debug("removed UI noise", "selector", sel, "count", matched.Length())
	}
}

// normalizeImages gives every lazy-loaded image a usable src attribute.
// Static render engines ignore data-srcset/data-src, which would leave the
// images blank in the PDF.
func normalizeImages(body *goquery.Selection) {
	body.Find("img").Each(func(_ int, img *goquery.Selection) {
		if srcset := img.AttrOr(attrSrcset, ""); srcset != "" {
			if src, ok := pickSrcsetCandidate(srcset); ok {
				img.SetAttr("src", src)
			}
			return
		}
		if lazy := img.AttrOr(attrLazySrc, ""); lazy != "" {
			img.SetAttr("src", lazy)
		}
	})
}

// pickSrcsetCandidate scans comma-separated "URL descriptor" candidates in
// list order and selects the first whose descriptor contains "664w" or
// equals "1x". Candidates without any marker leave the image unmodified.
func pickSrcsetCandidate(srcset string) (string, bool) {
	for _, candidate := range strings.Split(srcset, ",") {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		for _, descriptor := range fields[1:] {
			if strings.Contains(descriptor, "664w") || descriptor == "1x" {
				return fields[0], true
			}
		}
	}
	return "", false
}

package main

import (
	"fmt"
	"io"
)

const usageText = `news2pdf - fetch news articles and render them to themed PDFs

Usage:
  news2pdf [flags] <article-url> [article-url...]

Flags:
      --email string          account email (env NEWS2PDF_EMAIL)
      --password string       account password (env NEWS2PDF_PASSWORD)
      --mobile                compact A6 layout instead of A4
      --dark                  dark theme for night reading
      --engine string         render engine: wkhtmltopdf or chrome (default wkhtmltopdf)
  -o, --out string            output directory (default: current directory)
      --comments              print the article's reader comment tree
      --comments-page int     comment page number (default 1)
      --comments-limit int    comments per page (default 20)
  -c, --config string         config file name or path
  -w, --workers int           parallel sessions for batch runs (0 = auto)
      --async                 use the suspension-based execution model
  -v, --verbose               verbose logging
  -h, --help                  show help

Without credentials the article is fetched unauthenticated and may come
back paywalled. A warning on stdout means the PDF was produced in
degraded mode (multimedia embeds removed).

Examples:
  news2pdf https://www.example.com/article/2024/01/02/title_123_456.html
  news2pdf --dark --mobile --email me@example.com --password secret <url>
  news2pdf --comments --comments-limit 5 <url>
  news2pdf -w 4 <url1> <url2> <url3>
`

// printUsage writes the help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

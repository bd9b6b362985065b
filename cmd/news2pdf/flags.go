package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// Engine backend names accepted by --engine.
const (
	engineWK     = "wkhtmltopdf"
	engineChrome = "chrome"
)

// cliFlags holds all parsed command line options.
type cliFlags struct {
	email    string
	password string

	mobile bool
	dark   bool
	engine string
	outDir string

	comments      bool
	commentsPage  int
	commentsLimit int

	config  string
	workers int
	async   bool
	verbose bool
	help    bool
}

// parseFlags parses args (excluding the program name) and returns the
// flags plus the positional article URLs.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("news2pdf", flag.ContinueOnError)
	fs.Usage = func() {} // help text is printed by run

	fs.StringVar(&f.email, "email", "", "account email (env NEWS2PDF_EMAIL)")
	fs.StringVar(&f.password, "password", "", "account password (env NEWS2PDF_PASSWORD)")

	fs.BoolVar(&f.mobile, "mobile", false, "compact A6 layout instead of A4")
	fs.BoolVar(&f.dark, "dark", false, "dark theme for night reading")
	fs.StringVar(&f.engine, "engine", engineWK, "render engine: wkhtmltopdf or chrome")
	fs.StringVarP(&f.outDir, "out", "o", "", "output directory (default: current directory)")

	fs.BoolVar(&f.comments, "comments", false, "print the article's reader comment tree")
	fs.IntVar(&f.commentsPage, "comments-page", 1, "comment page number")
	fs.IntVar(&f.commentsLimit, "comments-limit", 20, "comments per page")

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel sessions for batch runs (0 = auto)")
	fs.BoolVar(&f.async, "async", false, "use the suspension-based execution model")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	if f.engine != engineWK && f.engine != engineChrome {
		return nil, nil, fmt.Errorf("%w: unknown engine %q", errUsage, f.engine)
	}

	return f, fs.Args(), nil
}

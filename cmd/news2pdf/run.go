package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	news2pdf "github.com/alnah/go-news2pdf"
	"github.com/alnah/go-news2pdf/internal/fileutil"
)

// run resolves configuration and drives the pipeline for every URL.
func run(f *cliFlags, urls []string, lookup envLookup, stdout, stderr io.Writer) error {
	if f.help {
		printUsage(stdout)
		return nil
	}
	if len(urls) == 0 {
		printUsage(stderr)
		return fmt.Errorf("%w: at least one article URL is required", errUsage)
	}
	for _, u := range urls {
		if !fileutil.IsURL(u) {
			return fmt.Errorf("%w: %q is not an http(s) URL", errUsage, u)
		}
	}

	applyEnv(f, lookup)

	cfg, err := buildConfig(f, lookup)
	if err != nil {
		return err
	}

	log := newLogger(stderr, f.verbose)
	opts := []news2pdf.Option{
		news2pdf.WithLogger(log),
		news2pdf.WithEngineFactory(engineFactory(f, cfg)),
	}

	ctx := context.Background()

	switch {
	case f.async:
		return runAsync(ctx, f, urls, cfg, opts, stdout)
	case len(urls) > 1:
		return runBatch(ctx, f, urls, cfg, opts, stdout, stderr)
	default:
		return runSingle(ctx, f, urls[0], cfg, opts, stdout)
	}
}

// newLogger builds the CLI's structured logger.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// engineFactory returns a constructor for the selected render engine.
func engineFactory(f *cliFlags, cfg news2pdf.Config) func() news2pdf.Engine {
	if f.engine == engineChrome {
		return func() news2pdf.Engine { return news2pdf.NewChromeEngine(cfg.Timeout) }
	}
	return func() news2pdf.Engine { return news2pdf.NewWKEngine() }
}

// inputFor maps flags and one URL to a pipeline input.
func inputFor(f *cliFlags, url string) news2pdf.Input {
	layout := news2pdf.LayoutDesktop
	if f.mobile {
		layout = news2pdf.LayoutMobile
	}
	theme := news2pdf.ThemeLight
	if f.dark {
		theme = news2pdf.ThemeDark
	}
	return news2pdf.Input{
		URL:      url,
		Email:    f.email,
		Password: f.password,
		Layout:   layout,
		Theme:    theme,
		OutDir:   f.outDir,
	}
}

// runSingle processes one article on a blocking service.
func runSingle(ctx context.Context, f *cliFlags, url string, cfg news2pdf.Config, opts []news2pdf.Option, stdout io.Writer) error {
	svc, err := news2pdf.NewService(cfg, opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.FetchPDF(ctx, inputFor(f, url))
	if err != nil {
		return err
	}
	reportResult(stdout, result)

	if f.comments {
		comments, err := svc.Comments(ctx, url, f.commentsPage, f.commentsLimit)
		if err != nil {
			return err
		}
		printComments(stdout, comments, 0)
	}
	return nil
}

// runAsync processes every article through the suspension-based model on
// one session: all runs are submitted up front and awaited in order.
func runAsync(ctx context.Context, f *cliFlags, urls []string, cfg news2pdf.Config, opts []news2pdf.Option, stdout io.Writer) error {
	svc, err := news2pdf.NewAsyncService(cfg, opts...)
	if err != nil {
		return err
	}
	defer svc.Close()

	futures := make([]*news2pdf.Future[news2pdf.RenderResult], len(urls))
	for i, u := range urls {
		futures[i] = svc.FetchPDF(ctx, inputFor(f, u))
	}

	var firstErr error
	for i, fut := range futures {
		result, err := fut.Await(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", urls[i], err)
			}
			continue
		}
		reportResult(stdout, result)
	}
	return firstErr
}

// runBatch fans article URLs out over a pool of blocking services.
func runBatch(ctx context.Context, f *cliFlags, urls []string, cfg news2pdf.Config, opts []news2pdf.Option, stdout, stderr io.Writer) error {
	pool := news2pdf.NewServicePool(news2pdf.ResolvePoolSize(f.workers), cfg, opts...)
	defer pool.Close()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, u := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()

			svc, err := pool.Acquire()
			if err == nil {
				defer pool.Release(svc)
				var result news2pdf.RenderResult
				result, err = svc.FetchPDF(ctx, inputFor(f, url))
				if err == nil {
					mu.Lock()
					reportResult(stdout, result)
					mu.Unlock()
					return
				}
			}

			mu.Lock()
			fmt.Fprintf(stderr, "%s: %v\n", url, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", url, err)
			}
			mu.Unlock()
		}(u)
	}

	wg.Wait()
	return firstErr
}

// reportResult prints one successful outcome, including the degraded-mode
// warning when the fallback path produced the file.
func reportResult(stdout io.Writer, result news2pdf.RenderResult) {
	fmt.Fprintf(stdout, "Created %s\n", result.OutputPath)
	if result.Warning != "" {
		fmt.Fprintf(stdout, "Warning: %s\n", result.Warning)
	}
}

// printComments renders the reply tree with two-space indentation per
// nesting level, preserving server order.
func printComments(stdout io.Writer, comments []news2pdf.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range comments {
		fmt.Fprintf(stdout, "%s- %s (%s) [%d likes]\n", indent, c.Author, c.CreatedAt.Format("2006-01-02 15:04"), c.Likes)
		fmt.Fprintf(stdout, "%s  %s\n", indent, c.Content)
		printComments(stdout, c.Replies, depth+1)
	}
}

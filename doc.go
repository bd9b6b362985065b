// Package news2pdf retrieves paywalled news articles and renders them to
// themed PDF documents.
//
// # Quick Start
//
// Create a service, fetch an article, and close when done:
//
//	svc, err := news2pdf.NewService(news2pdf.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	result, err := svc.FetchPDF(ctx, news2pdf.Input{
//	    URL:      "https://www.example.com/article/2024/01/02/title_123_456.html",
//	    Email:    email,
//	    Password: password,
//	    Layout:   news2pdf.LayoutDesktop,
//	    Theme:    news2pdf.ThemeDark,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// A non-empty result.Warning means the PDF was produced in degraded mode:
// multimedia embeds were removed because the render engine could not
// handle them.
//
// # Pipeline
//
// FetchPDF chains four stages:
//
//  1. Session login (optional; a missing premium cookie is reported, not fatal)
//  2. Authenticated article fetch
//  3. Content extraction (UI noise removal, lazy-image normalization) via goquery
//  4. Themed document composition and PDF rendering with a one-shot
//     degraded retry on engine failure
//
// Reader comments are a side path: Service.Comments fetches a page of the
// comment listing endpoint and reconstructs the threaded reply tree.
//
// # Configuration
//
// Hosts, endpoints, the premium cookie name, and the UI-noise denylist live
// in a Config value constructed once and passed into each component:
//
//	cfg := news2pdf.DefaultConfig()
//	cfg.ContentHost = "https://www.example.com"
//	cfg.SecureHost = "https://secure.example.com"
//	svc, err := news2pdf.NewService(cfg,
//	    news2pdf.WithLogger(slog.Default()),
//	    news2pdf.WithEngine(news2pdf.NewChromeEngine(10*time.Second)),
//	)
//
// # Execution Models
//
// Every session operation exists in two observably equivalent forms: the
// blocking methods on Client and Service, and the future-returning methods
// on AsyncClient and AsyncService. The async variants serialize operations
// on one worker goroutine per session and delegate to the same blocking
// algorithm, so semantics (endpoints, delays, success detection) never
// diverge between the two models.
//
// # Render Engines
//
// Two engine backends are available: WKEngine drives the external
// wkhtmltopdf binary (default), and ChromeEngine renders through headless
// Chrome via go-rod. ChromeEngine downloads a managed Chromium on first run;
// set ROD_BROWSER_BIN to use a pre-installed browser, and ROD_NO_SANDBOX=1
// in containers.
package news2pdf

package news2pdf

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Default session parameters.
const (
	// DefaultTimeout bounds every HTTP request issued by a session.
	DefaultTimeout = 10 * time.Second

	// DefaultLoginDelay is the fixed pause inserted before and after the
	// credential POST. The login endpoint rate-limits bursts.
	DefaultLoginDelay = 500 * time.Millisecond

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// defaultUINoise lists the UI elements stripped from article pages before
// rendering: social widgets, breadcrumbs, reaction blocks, related-content
// asides, and ad slots.
var defaultUINoise = []string{
	".meta__social",
	"ul.breadcrumb",
	"ul.ds-breadcrumb",
	"section.article__reactions",
	"section.friend",
	"section.article__siblings",
	"aside.aside__iso.old__aside",
	"section.inread",
	"div.catcher__favorite",
	"a.Header__offer",
}

// Config holds the immutable process-wide settings shared by all
// components: hosts, endpoints, the premium cookie name, default headers,
// and the UI-noise denylist. Construct it once at process start and pass
// it into NewClient or NewService; it is never read from the environment
// by the library itself.
type Config struct {
	// ContentHost serves articles and the comments API.
	ContentHost string

	// SecureHost serves the authentication endpoints.
	SecureHost string

	// Auth endpoints, relative to SecureHost.
	LoginPath  string
	LogoutPath string

	// CommentsPath is the comment listing endpoint, relative to ContentHost.
	CommentsPath string

	// PremiumCookie is the cookie whose presence after login marks an
	// authenticated, subscription-entitled session.
	PremiumCookie string

	// UserAgent is sent on every request.
	UserAgent string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// LoginDelay is the fixed anti-automation pause around the login POST.
	LoginDelay time.Duration

	// UINoise lists CSS selectors removed from article pages. A selector
	// matching nothing is not an error.
	UINoise []string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		ContentHost:   "https://www.lemonde.fr",
		SecureHost:    "https://secure.lemonde.fr",
		LoginPath:     "sfuser/connexion",
		LogoutPath:    "sfuser/deconnexion",
		CommentsPath:  "ajax/feedbacks/page",
		PremiumCookie: "lmd_a_s",
		UserAgent:     defaultUserAgent,
		Timeout:       DefaultTimeout,
		LoginDelay:    DefaultLoginDelay,
		UINoise:       defaultUINoise,
	}
}

// Validate checks that the configuration is complete and coherent.
func (c Config) Validate() error {
	for _, host := range []struct{ name, value string }{
		{"content host", c.ContentHost},
		{"secure host", c.SecureHost},
	} {
		u, err := url.Parse(host.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s %q is not an absolute URL", ErrInvalidConfig, host.name, host.value)
		}
	}
	for _, p := range []struct{ name, value string }{
		{"login path", c.LoginPath},
		{"logout path", c.LogoutPath},
		{"comments path", c.CommentsPath},
	} {
		if p.value == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidConfig, p.name)
		}
	}
	if c.PremiumCookie == "" {
		return fmt.Errorf("%w: premium cookie name cannot be empty", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("%w: login delay cannot be negative, got %s", ErrInvalidConfig, c.LoginDelay)
	}
	return nil
}

// LoginURL returns the absolute login endpoint.
func (c Config) LoginURL() string {
	return joinURL(c.SecureHost, c.LoginPath)
}

// LogoutURL returns the absolute logout endpoint.
func (c Config) LogoutURL() string {
	return joinURL(c.SecureHost, c.LogoutPath)
}

// CommentsURL returns the absolute comment listing endpoint for one page
// of comments, ordered by likes descending on the server side.
func (c Config) CommentsURL(pageID string, page, limit int) string {
	q := url.Values{}
	q.Set("pageId", pageID)
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	q.Set("order", "likes")
	return joinURL(c.ContentHost, c.CommentsPath) + "?" + q.Encode()
}

// joinURL joins a host and a relative path with exactly one slash.
func joinURL(host, path string) string {
	return strings.TrimSuffix(host, "/") + "/" + strings.TrimPrefix(path, "/")
}

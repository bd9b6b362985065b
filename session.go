package news2pdf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client is the blocking session manager. It owns exactly one HTTP
// transport with a cookie jar, shared across all requests for connection
// reuse. Close releases the transport and must be called on every exit
// path; it first attempts a best-effort logout and then unconditionally
// releases the transport.
//
// Client methods block the calling goroutine until the operation
// completes. AsyncClient exposes the same operations with identical
// semantics in future-returning form.
type Client struct {
	cfg    Config
	http   *http.Client
	log    *slog.Logger
	closed bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientLogger sets the structured logger for session operations.
func WithClientLogger(log *slog.Logger) ClientOption {
	if log == nil {
		panic("news2pdf: WithClientLogger logger must not be nil")
	}
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a session bound to the hosts in cfg. The underlying
// transport is created here and lives until Close.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		cfg: cfg,
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		log: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Login authenticates the session. It loads the login page, scrapes every
// named field of its POST form, merges in the credentials, and submits the
// form with a Referer header after a fixed anti-automation delay.
//
// Success means the premium cookie is present in the jar afterwards.
// A completed POST without the cookie returns (false, nil): the caller may
// proceed unauthenticated and will receive paywalled content. A missing
// login form returns ErrAuthFormNotFound and is fatal.
func (c *Client) Login(ctx context.Context, email, password string) (bool, error) {
	if c.closed {
		return false, ErrSessionClosed
	}

	loginURL := c.cfg.LoginURL()

	raw, err := c.get(ctx, loginURL, nil)
	if err != nil {
		return false, err
	}

	payload, err := loginPayload(raw, email, password)
	if err != nil {
		return false, err
	}

	if err := sleep(ctx, c.cfg.LoginDelay); err != nil {
		return false, err
	}

	headers := map[string]string{"Referer": loginURL}
	if _, err := c.postForm(ctx, loginURL, payload, headers); err != nil {
		return false, err
	}

	if err := sleep(ctx, c.cfg.LoginDelay); err != nil {
		return false, err
	}

	if !c.hasPremiumCookie() {
		c.log.Warn("login failed: premium cookie absent", "cookie", c.cfg.PremiumCookie)
		return false, nil
	}

	c.log.Info("login ok: premium cookie present")
	return true, nil
}

// Logout invalidates the session on the server. Best effort: callers on
// teardown paths swallow the returned error.
func (c *Client) Logout(ctx context.Context) error {
	if c.closed {
		return ErrSessionClosed
	}
	_, err := c.get(ctx, c.cfg.LogoutURL(), nil)
	if err != nil {
		return err
	}
	c.log.Info("logout ok")
	return nil
}

// Fetch retrieves a page over the authenticated session and returns the
// decoded HTML body. Any non-2xx status is an ErrTransport.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	if c.closed {
		return "", ErrSessionClosed
	}
	body, err := c.get(ctx, rawURL, nil)
	if err != nil {
		return "", err
	}
	c.log.Debug("page fetched", "url", rawURL)
	return body, nil
}

// FetchComments retrieves one page of the comment listing endpoint. The
// server orders records by likes descending; the order is trusted as-is.
func (c *Client) FetchComments(ctx context.Context, pageID string, page, limit int) (*CommentsPage, error) {
	if c.closed {
		return nil, ErrSessionClosed
	}
	body, err := c.get(ctx, c.cfg.CommentsURL(pageID, page, limit), nil)
	if err != nil {
		return nil, err
	}
	return decodeCommentsPage([]byte(body))
}

// LoggedIn reports whether the premium cookie is currently in the jar.
func (c *Client) LoggedIn() bool {
	return c.hasPremiumCookie()
}

// Close tears the session down: a best-effort logout whose failure is
// logged and swallowed, then an unconditional release of the transport.
// Safe to call on every exit path, including after pipeline errors.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Timeout)
	defer cancel()
	if err := c.Logout(ctx); err != nil {
		c.log.Error("logout failed during teardown", "error", err)
	}

	c.closed = true
	c.http.CloseIdleConnections()
	return nil
}

// get issues a GET with the session's default headers plus extra ones.
func (c *Client) get(ctx context.Context, rawURL string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	return c.do(req, headers)
}

// postForm issues a form-encoded POST.
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, headers)
}

// do executes a request and enforces the 2xx contract.
func (c *Client) do(req *http.Request, headers map[string]string) (string, error) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s %s: %v", ErrTransport, req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d for %s", ErrTransport, resp.StatusCode, req.URL)
	}

	return string(body), nil
}

// hasPremiumCookie scans the jar for the premium cookie under either host.
func (c *Client) hasPremiumCookie() bool {
	for _, host := range []string{c.cfg.SecureHost, c.cfg.ContentHost} {
		u, err := url.Parse(host)
		if err != nil {
			continue
		}
		for _, ck := range c.http.Jar.Cookies(u) {
			if ck.Name == c.cfg.PremiumCookie {
				return true
			}
		}
	}
	return false
}

// loginPayload scrapes the first POST form on the login page and merges
// the credentials into its named fields. Hidden fields (CSRF tokens,
// redirect targets) keep their server-supplied values.
func loginPayload(rawHTML, email, password string) (url.Values, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing login page: %w", err)
	}

	form := doc.Find(`form[method="post"]`).First()
	if form.Length() == 0 {
		return nil, ErrAuthFormNotFound
	}

	payload := url.Values{}
	form.Find("input").Each(func(_ int, input *goquery.Selection) {
		name, ok := input.Attr("name")
		if !ok {
			return
		}
		payload.Set(name, input.AttrOr("value", ""))
	})

	payload.Set("email", email)
	payload.Set("password", password)
	return payload, nil
}

// sleep pauses for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package news2pdf

import (
	"context"
	"sync"
)

// Future is the pending result of an operation submitted to an async
// session. Await blocks until the operation completes or ctx is done.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Await returns the operation's result. The operation itself keeps
// running when ctx expires first; only the wait is abandoned.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// resolved returns an already-completed future.
func resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.val, f.err = val, err
	close(f.done)
	return f
}

// worker serializes submitted operations on one goroutine. Operations
// within a session are strictly sequential; submitting never blocks the
// caller beyond queueing.
type worker struct {
	mu     sync.Mutex
	tasks  chan func()
	closed bool
}

func newWorker() *worker {
	w := &worker{tasks: make(chan func(), 16)}
	go func() {
		for task := range w.tasks {
			task()
		}
	}()
	return w
}

// submit queues fn and returns its future. A closed worker resolves the
// future immediately with ErrSessionClosed.
func submit[T any](w *worker, fn func() (T, error)) *Future[T] {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		var zero T
		return resolved(zero, ErrSessionClosed)
	}

	f := &Future[T]{done: make(chan struct{})}
	w.tasks <- func() {
		f.val, f.err = fn()
		close(f.done)
	}
	return f
}

// close stops the worker after draining queued operations.
func (w *worker) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.tasks)
	}
}

// AsyncClient is the suspension-based execution model of Client: the same
// operations, same endpoints, same delays, and same success-detection
// rule, but each call returns a Future instead of blocking. Operations of
// one session run strictly sequentially on a single worker goroutine and
// delegate to the blocking algorithm, so the two models cannot diverge.
type AsyncClient struct {
	c *Client
	w *worker
}

// NewAsyncClient creates an async session bound to the hosts in cfg.
func NewAsyncClient(cfg Config, opts ...ClientOption) (*AsyncClient, error) {
	c, err := NewClient(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c, w: newWorker()}, nil
}

// Login submits an authentication attempt. See Client.Login.
func (a *AsyncClient) Login(ctx context.Context, email, password string) *Future[bool] {
	return submit(a.w, func() (bool, error) {
		return a.c.Login(ctx, email, password)
	})
}

// Fetch submits an authenticated page retrieval. See Client.Fetch.
func (a *AsyncClient) Fetch(ctx context.Context, rawURL string) *Future[string] {
	return submit(a.w, func() (string, error) {
		return a.c.Fetch(ctx, rawURL)
	})
}

// FetchComments submits a comment page retrieval. See Client.FetchComments.
func (a *AsyncClient) FetchComments(ctx context.Context, pageID string, page, limit int) *Future[*CommentsPage] {
	return submit(a.w, func() (*CommentsPage, error) {
		return a.c.FetchComments(ctx, pageID, page, limit)
	})
}

// Logout submits a best-effort session invalidation. See Client.Logout.
func (a *AsyncClient) Logout(ctx context.Context) *Future[struct{}] {
	return submit(a.w, func() (struct{}, error) {
		return struct{}{}, a.c.Logout(ctx)
	})
}

// Close stops the worker and tears the session down (best-effort logout,
// then transport release), blocking until done.
func (a *AsyncClient) Close() error {
	a.w.close()
	return a.c.Close()
}

// AsyncService is the suspension-based execution model of Service. Each
// pipeline run executes the exact blocking pipeline on the session's
// worker goroutine.
type AsyncService struct {
	s *Service
	w *worker
}

// NewAsyncService creates an async Service. Options are the same as
// NewService.
func NewAsyncService(cfg Config, opts ...Option) (*AsyncService, error) {
	s, err := NewService(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncService{s: s, w: newWorker()}, nil
}

// FetchPDF submits a full article-to-PDF run. See Service.FetchPDF.
func (a *AsyncService) FetchPDF(ctx context.Context, input Input) *Future[RenderResult] {
	return submit(a.w, func() (RenderResult, error) {
		return a.s.FetchPDF(ctx, input)
	})
}

// Comments submits a comment tree retrieval. See Service.Comments.
func (a *AsyncService) Comments(ctx context.Context, articleURL string, page, limit int) *Future[[]Comment] {
	return submit(a.w, func() ([]Comment, error) {
		return a.s.Comments(ctx, articleURL, page, limit)
	})
}

// Close stops the worker and releases the session and engine.
func (a *AsyncService) Close() error {
	a.w.close()
	return a.s.Close()
}

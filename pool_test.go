package news2pdf

import (
	"runtime"
	"testing"
	"time"
)

// poolConfig points the pool at an unreachable loopback port; pool tests
// never issue requests, they only exercise lifecycle and sizing.
func poolConfig() Config {
	cfg := DefaultConfig()
	cfg.ContentHost = "http://127.0.0.1:1"
	cfg.SecureHost = "http://127.0.0.1:1"
	cfg.Timeout = 100 * time.Millisecond
	cfg.LoginDelay = 0
	return cfg
}

// poolOptions gives every pooled service its own mock engine.
func poolOptions() []Option {
	return []Option{
		WithEngineFactory(func() Engine { return &mockEngine{} }),
		WithLogger(discardLogger()),
	}
}

// ---------------------------------------------------------------------------
// TestServicePool - Acquire/Release lifecycle
// ---------------------------------------------------------------------------

func TestServicePoolAcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2, poolConfig(), poolOptions()...)
	defer pool.Close()

	svc1, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	svc2, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if svc1 == svc2 {
		t.Error("two concurrent acquires returned the same service")
	}

	pool.Release(svc1)
	svc3, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire after Release: %v", err)
	}
	if svc3 != svc1 {
		t.Error("released service was not reused")
	}
	pool.Release(svc2)
	pool.Release(svc3)
}

func TestServicePoolEachServiceOwnsItsEngine(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2, poolConfig(), poolOptions()...)
	defer pool.Close()

	svc1, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	svc2, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if svc1.engine == svc2.engine {
		t.Error("pooled services share one engine instance")
	}
	pool.Release(svc1)
	pool.Release(svc2)
}

func TestServicePoolBlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1, poolConfig(), poolOptions()...)
	defer pool.Close()

	svc, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}

	acquired := make(chan *Service)
	go func() {
		second, err := pool.Acquire()
		if err != nil {
			t.Error(err)
		}
		acquired <- second
	}()

	select {
	case <-acquired:
		t.Fatal("Acquire returned while the only service was in use")
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(svc)
	select {
	case second := <-acquired:
		if second != svc {
			t.Error("blocked Acquire received a different service")
		}
		pool.Release(second)
	case <-time.After(time.Second):
		t.Fatal("blocked Acquire never woke up after Release")
	}
}

func TestServicePoolMinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(0, poolConfig(), poolOptions()...)
	defer pool.Close()

	if got := pool.Size(); got != 1 {
		t.Errorf("Size() = %d, want 1 for a zero-capacity request", got)
	}
}

func TestServicePoolCloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2, poolConfig(), poolOptions()...)

	svc, err := pool.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	pool.Release(svc)

	if err := pool.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("second Close = %v, want nil", err)
	}

	// Release after Close must not panic on the closed channel.
	pool.Release(svc)
}

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Sizing policy
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit in range", 3, 3},
		{"explicit minimum", 1, 1},
		{"explicit above cap", 99, MaxPoolSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSizeAutomatic(t *testing.T) {
	t.Parallel()

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Fatalf("ResolvePoolSize(0) = %d, outside [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}
	if want := runtime.GOMAXPROCS(0) / 2; want >= MinPoolSize && want <= MaxPoolSize && got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
	}
}

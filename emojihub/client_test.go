package emojihub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newFixtureServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	body, err := os.ReadFile("../testdata/emojis.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			http.Error(w, "missing user agent", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchEmojis(t *testing.T) {
	var hits int32
	srv := newFixtureServer(t, &hits)

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	emojis, err := c.FetchEmojis(context.Background())
	if err != nil {
		t.Fatalf("FetchEmojis: %v", err)
	}
	if len(emojis) != 18 {
		t.Fatalf("expected 18 emojis, got %d", len(emojis))
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
}

func TestFetchEmojis_CachesSnapshot(t *testing.T) {
	var hits int32
	srv := newFixtureServer(t, &hits)

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	first, err := c.FetchEmojis(context.Background())
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := c.FetchEmojis(context.Background())
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("snapshot changed: %d vs %d", len(first), len(second))
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected a single request, got %d", got)
	}

	c.ClearCache()
	if _, err := c.FetchEmojis(context.Background()); err != nil {
		t.Fatalf("fetch after clear: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected a second request after ClearCache, got %d", got)
	}
}

func TestFetchEmojis_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.FetchEmojis(context.Background())
	if err == nil {
		t.Fatal("expected error for 502")
	}
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("error %v does not wrap ErrUnexpectedStatus", err)
	}
}

func TestFetchEmojis_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	_, err := c.FetchEmojis(context.Background())
	if !errors.Is(err, ErrMalformedCatalog) {
		t.Fatalf("expected ErrMalformedCatalog, got %v", err)
	}

	// failures are not cached
	c.mu.Lock()
	cached := c.cached
	c.mu.Unlock()
	if cached {
		t.Error("failed fetch must not populate the cache")
	}
}

func TestFetchEmojis_Cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := New(srv.URL, WithHTTPClient(srv.Client()))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := c.FetchEmojis(ctx)
		errc <- err
	}()

	cancel()
	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("FetchEmojis did not return after cancel")
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New("")
	if c.URL() != DefaultURL {
		t.Errorf("URL = %q, want %q", c.URL(), DefaultURL)
	}
	if c.userAgent != DefaultUserAgent {
		t.Errorf("user agent = %q", c.userAgent)
	}

	c = New("http://example.invalid/api/all", WithUserAgent("custom/1.0"))
	if c.userAgent != "custom/1.0" {
		t.Errorf("user agent option not applied: %q", c.userAgent)
	}
}

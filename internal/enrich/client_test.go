package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/John%203:16", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"reference": "John 3:16", "text": "For God so loved the world..."}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry()))
	text, err := c.Lookup(context.Background(), "John 3:16")
	require.NoError(t, err)
	assert.Equal(t, "For God so loved the world...", text)
}

func TestLookupRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"text": "verse text"}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry()))
	text, err := c.Lookup(context.Background(), "Psalm 23:1")
	require.NoError(t, err)
	assert.Equal(t, "verse text", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLookupExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry()))
	_, err := c.Lookup(context.Background(), "Psalm 23:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestLookupEmptyTextIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text": "   "}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry()))
	_, err := c.Lookup(context.Background(), "Psalm 23:1")
	require.Error(t, err)
}

func TestLookupEmptyReference(t *testing.T) {
	c := NewClient(WithRetry(fastRetry()))
	_, err := c.Lookup(context.Background(), "  ")
	require.Error(t, err)
}

func TestLookupContextCancelNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry()))
	_, err := c.Lookup(ctx, "Psalm 23:1")
	require.Error(t, err)
	assert.LessOrEqual(t, calls.Load(), int32(1))
}

func TestFetcherResolveAppliesAsync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text": "resolved text"}`))
	}))
	defer srv.Close()

	f := NewFetcher(NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry())))

	var mu sync.Mutex
	var got string
	f.Resolve(context.Background(), "John 3:16", func(text string) {
		mu.Lock()
		defer mu.Unlock()
		got = text
	})
	f.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "resolved text", got)
}

func TestFetcherDropsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(NewClient(WithBaseURL(srv.URL), WithRetry(fastRetry())))

	called := false
	f.Resolve(context.Background(), "Nowhere 1:1", func(string) { called = true })
	f.Wait()

	assert.False(t, called, "apply must not run on failure")
}

func TestFetcherEmptyReferenceNoop(t *testing.T) {
	f := NewFetcher(NewClient(WithRetry(fastRetry())))
	f.Resolve(context.Background(), "", func(string) {
		t.Error("apply must not run for empty reference")
	})
	f.Wait()
}

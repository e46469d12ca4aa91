package enrich

import (
	"context"
	"sync"
)

// Fetcher resolves verse text in the background. Each Resolve call spawns
// one lookup; on success the apply callback runs with the text, on
// failure the result is dropped. Resolve never blocks the caller, so
// recording an answer is never held up by enrichment.
type Fetcher struct {
	client *Client
	wg     sync.WaitGroup
}

// NewFetcher creates a Fetcher over the given client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Resolve fetches the text for reference asynchronously and invokes
// apply with the result when it arrives. apply must be safe to call from
// another goroutine. Failures are silent.
func (f *Fetcher) Resolve(ctx context.Context, reference string, apply func(text string)) {
	if reference == "" {
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		text, err := f.client.Lookup(ctx, reference)
		if err != nil {
			return
		}
		apply(text)
	}()
}

// Wait blocks until all in-flight lookups settle. Used on shutdown and
// in tests; the interactive path never calls it.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

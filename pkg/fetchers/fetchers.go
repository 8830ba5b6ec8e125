// Package fetchers implements the PBF and DEM tile download collaborators
// treated as external interfaces per spec §6: a small Fetcher interface
// plus a fasthttp-backed implementation, modeled on the corpus's
// valhalla-http-client-go fasthttp wiring.
package fetchers

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/valyala/fasthttp"
)

// Fetcher downloads a single remote resource (a PBF extract or a DEM tile
// archive) into dst, given its URL. Implementations must be safe for
// concurrent use, since §5 allows tile downloads to be parallelized.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dst io.Writer) error
}

// HTTPFetcher is a Fetcher backed by a shared fasthttp.Client, reused
// across requests the way the corpus's valhalla client reuses one client
// per collaborator.
type HTTPFetcher struct {
	client  *fasthttp.Client
	Timeout time.Duration
}

// NewHTTPFetcher returns a fetcher with sensible defaults.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &fasthttp.Client{
			Name: "osw-network-fetcher",
		},
		Timeout: 60 * time.Second,
	}
}

// fetchResult carries everything the caller needs out of a completed
// request (the body is copied out), so the request/response pair can be
// released back to fasthttp's pool inside the goroutine that used them,
// regardless of which side of the select below wins.
type fetchResult struct {
	status int
	body   []byte
	err    error
}

// Fetch downloads url and copies its body to dst. A non-2xx status is
// reported as ErrNotFound. On context cancellation Fetch returns ctx.Err()
// at once; the in-flight request itself is not aborted; it runs until it
// completes or hits its deadline, and its result is discarded.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, dst io.Writer) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(f.Timeout)
	}

	results := make(chan fetchResult, 1)
	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)

		if err := f.client.DoDeadline(req, resp, deadline); err != nil {
			results <- fetchResult{err: err}
			return
		}
		body := append([]byte(nil), resp.Body()...)
		results <- fetchResult{status: resp.StatusCode(), body: body}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-results:
		if res.err != nil {
			return fmt.Errorf("fetchers: request %s: %w", url, res.err)
		}
		if res.status < 200 || res.status >= 300 {
			return fmt.Errorf("%w: %s returned status %d", ErrNotFound, url, res.status)
		}
		if _, err := dst.Write(res.body); err != nil {
			return fmt.Errorf("fetchers: write body from %s: %w", url, err)
		}
		return nil
	}
}

package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/xhuliohasa/flight-search-engine/internal/flightsearch/entity"
)

// rateLimiter spaces calls to the Amadeus self-service API. The test
// environment allows one request per 100ms per client and answers bursts with
// 429, which would otherwise surface as failed lookups.
type rateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{interval: interval}
}

// Wait blocks until at least interval has passed since the previous call
// returned, or ctx is done.
func (r *rateLimiter) Wait(ctx context.Context) error {
	if r.interval <= 0 {
		return nil
	}
	for {
		now := time.Now()
		r.mu.Lock()
		if r.last.IsZero() || now.Sub(r.last) >= r.interval {
			r.last = now
			r.mu.Unlock()
			return nil
		}
		wait := r.interval - now.Sub(r.last)
		r.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

type rateLimitedProvider struct {
	provider Provider
	limiter  *rateLimiter
}

// NewRateLimitedProvider spaces upstream calls of both operations by at least
// interval, keeping a shared deployment within the Amadeus request quota.
// Short keywords bypass the limiter since they never reach upstream.
func NewRateLimitedProvider(p Provider, interval time.Duration) Provider {
	return &rateLimitedProvider{
		provider: p,
		limiter:  newRateLimiter(interval),
	}
}

func (r *rateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *rateLimitedProvider) SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error) {
	if utf8.RuneCountInString(strings.TrimSpace(keyword)) >= MinKeywordLength {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLookup, err)
		}
	}
	return r.provider.SearchLocations(ctx, keyword)
}

func (r *rateLimitedProvider) Search(ctx context.Context, req SearchRequest) ([]entity.Flight, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearch, err)
	}
	return r.provider.Search(ctx, req)
}

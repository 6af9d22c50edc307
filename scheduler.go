package tweetkit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Rate limit headers advertised by the API on every response.
const (
	headerRateLimitLimit     = "x-rate-limit-limit"
	headerRateLimitRemaining = "x-rate-limit-remaining"
	headerRateLimitReset     = "x-rate-limit-reset"
)

// rateLimitWindow is the server's quota window. An advertised ceiling is
// spread evenly across it rather than burned in a burst.
const rateLimitWindow = 15 * time.Minute

// DefaultRequestsPerSecond is the pacing applied before the server has
// advertised any quota.
const DefaultRequestsPerSecond = 1.0

// Scheduler paces outgoing requests for one client. All requests issued by a
// client share a single Scheduler, because the quota is global to the
// authentication token.
//
// Wait and Update are safe for concurrent use, but two goroutines sharing
// one Scheduler still share one quota; callers wanting real concurrency must
// accept the combined pacing.
type Scheduler struct {
	limiter *rate.Limiter

	mu           sync.Mutex
	lastRequest  time.Time
	remaining    int
	hasRemaining bool
	reset        time.Time
}

// NewScheduler returns a Scheduler pacing at DefaultRequestsPerSecond until
// the first server feedback arrives.
func NewScheduler() *Scheduler {
	return &Scheduler{
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
}

// Wait blocks until the minimum inter-request interval has elapsed since the
// previous request, or the context is canceled.
func (s *Scheduler) Wait(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

// Update stamps now as the last-request time and recomputes the pacing rate
// from the response's quota headers. Missing or unparseable headers leave
// the previous rate untouched. Called after every request, failed ones
// included: a rejected call consumes quota all the same.
func (s *Scheduler) Update(h http.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRequest = time.Now()
	if h == nil {
		return
	}

	if v := h.Get(headerRateLimitLimit); v != "" {
		if ceiling, err := strconv.ParseFloat(v, 64); err == nil && ceiling > 0 {
			s.limiter.SetLimit(rate.Limit(ceiling / rateLimitWindow.Seconds()))
		}
	}
	if v := h.Get(headerRateLimitRemaining); v != "" {
		if remaining, err := strconv.Atoi(v); err == nil {
			s.remaining = remaining
			s.hasRemaining = true
		}
	}
	if v := h.Get(headerRateLimitReset); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.reset = time.Unix(epoch, 0)
		}
	}
}

// Limit returns the current pacing rate in requests per second.
func (s *Scheduler) Limit() float64 {
	return float64(s.limiter.Limit())
}

// Remaining returns the request count left in the current quota window, if
// the server has reported one.
func (s *Scheduler) Remaining() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining, s.hasRemaining
}

// Reset returns the time the quota window resets, if the server has
// reported one.
func (s *Scheduler) Reset() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset, !s.reset.IsZero()
}

// LastRequest returns the time of the most recent request, successful or
// not.
func (s *Scheduler) LastRequest() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequest, !s.lastRequest.IsZero()
}

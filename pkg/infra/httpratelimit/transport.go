package httpratelimit

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"golang.org/x/time/rate"
)

// GitHub rate limit headers in Go canonical form.
// https://docs.github.com/en/rest/using-the-rest-api/rate-limits-for-the-rest-api#checking-the-status-of-your-rate-limit
const (
	HeaderRetryAfter          = "Retry-After"
	HeaderXRateLimitReset     = "X-Ratelimit-Reset"
	HeaderXRateLimitRemaining = "X-Ratelimit-Remaining"
)

const (
	DefaultRetryAfter = time.Minute
	DefaultMaxRetries = 3
)

// Transport pauses every request going through it once GitHub reports that
// the rate limit is exceeded, and retries the limited request after the pause.
type Transport struct {
	base              http.RoundTripper
	limiter           *limiter
	defaultRetryAfter time.Duration
	maxRetries        int
}

type Option func(*Transport)

// WithDefaultRetryAfter sets the pause used when a limited response carries no hint.
func WithDefaultRetryAfter(d time.Duration) Option {
	return func(x *Transport) {
		if d > 0 {
			x.defaultRetryAfter = d
		}
	}
}

func WithMaxRetries(n int) Option {
	return func(x *Transport) {
		x.maxRetries = n
	}
}

// WithRate limits requests per second in addition to pauses. Default is unlimited.
func WithRate(r rate.Limit, burst int) Option {
	return func(x *Transport) {
		x.limiter.base = rate.NewLimiter(r, burst)
	}
}

func NewTransport(base http.RoundTripper, options ...Option) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	x := &Transport{
		base: base,
		limiter: &limiter{
			base: rate.NewLimiter(rate.Inf, 100),
		},
		defaultRetryAfter: DefaultRetryAfter,
		maxRetries:        DefaultMaxRetries,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		if err := x.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := x.base.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		wait, limited := x.pauseOf(resp)
		if !limited {
			return resp, nil
		}

		logging.From(ctx).Warn("GitHub rate limit hit, pausing requests",
			slog.String("url", req.URL.String()),
			slog.Duration("retry_after", wait),
			slog.Int("attempt", attempt),
		)
		x.limiter.PauseFor(wait)

		// Request bodies are not replayable in general.
		if attempt >= x.maxRetries || (req.Body != nil && req.GetBody == nil) {
			return resp, nil
		}
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return resp, nil
			}
			req = req.Clone(ctx)
			req.Body = body
		}
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}
}

// pauseOf reports whether resp is a rate limit response and how long to wait.
// A 403 without rate limit headers is a permission error and passes through.
// https://docs.github.com/en/rest/using-the-rest-api/rate-limits-for-the-rest-api#exceeding-the-rate-limit
func (x *Transport) pauseOf(resp *http.Response) (time.Duration, bool) {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return 0, false
	}

	if v := resp.Header.Get(HeaderRetryAfter); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second, true
		}
	}

	if resp.Header.Get(HeaderXRateLimitRemaining) == "0" {
		if v := resp.Header.Get(HeaderXRateLimitReset); v != "" {
			if seconds, err := strconv.ParseInt(v, 10, 64); err == nil {
				if d := time.Until(time.Unix(seconds, 0)); d > 0 {
					return d, true
				}
			}
		}
		return x.defaultRetryAfter, true
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return x.defaultRetryAfter, true
	}
	return 0, false
}

// limiter is a rate limiter that can block all requests for a while.
type limiter struct {
	base       *rate.Limiter
	mu         sync.Mutex
	pauseUntil time.Time
	pauseCh    chan struct{}
}

func (l *limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	pauseCh := l.pauseCh
	l.mu.Unlock()

	if pauseCh != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pauseCh:
		}
	}

	return l.base.Wait(ctx)
}

// PauseFor blocks requests for d. An active longer pause is kept.
func (l *limiter) PauseFor(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	until := time.Now().Add(d)
	if !until.After(l.pauseUntil) {
		return
	}
	l.pauseUntil = until

	if l.pauseCh != nil {
		close(l.pauseCh)
	}
	l.pauseCh = make(chan struct{})

	go func(ch chan struct{}) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		<-timer.C

		l.mu.Lock()
		if ch == l.pauseCh {
			close(ch)
			l.pauseCh = nil
			l.pauseUntil = time.Time{}
		}
		l.mu.Unlock()
	}(l.pauseCh)
}

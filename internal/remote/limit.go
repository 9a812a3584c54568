package remote

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// NewLimitedReader wraps r so reads stay within the limiter's
// bytes-per-second budget. Reads larger than the limiter's burst are
// clipped, never rejected.
func NewLimitedReader(ctx context.Context, r io.Reader, limiter *rate.Limiter) io.Reader {
	return &limitedReader{ctx: ctx, r: r, limiter: limiter}
}

type limitedReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if burst := l.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := l.r.Read(p)
	if n > 0 {
		if werr := l.limiter.WaitN(l.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

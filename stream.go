package tweetkit

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
)

// Stream line sizes: a tweet with full expansions routinely exceeds
// bufio.Scanner's 64KB default.
const (
	streamInitialBuffer = 64 * 1024
	streamMaxLine       = 1 << 20
)

// StreamResponse wraps a live newline-delimited JSON connection. Each
// non-blank line is one Response envelope; blank keep-alive lines are
// skipped silently. The stream owns the connection and must be closed.
type StreamResponse struct {
	dtype    string
	httpResp *http.Response
	scanner  *bufio.Scanner
	body     io.Closer

	mu     sync.Mutex
	closed bool
}

func newStreamResponse(resp *http.Response, dtype string) *StreamResponse {
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, streamInitialBuffer), streamMaxLine)
	return &StreamResponse{
		dtype:    dtype,
		httpResp: resp,
		scanner:  scanner,
		body:     resp.Body,
	}
}

// Next blocks until the next non-blank line arrives and wraps it in a
// Response. It returns io.EOF once the stream ends or has been closed.
func (s *StreamResponse) Next() (*Response, error) {
	for {
		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return nil, io.EOF
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, &errors.RequestError{Err: err}
			}
			return nil, io.EOF
		}

		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			// keep-alive
			continue
		}
		// The scanner reuses its buffer between lines.
		buf := make([]byte, len(line))
		copy(buf, line)
		return NewResponse(buf, s.dtype, s.httpResp)
	}
}

// Close releases the underlying connection. It is idempotent and reports
// whether a live connection was actually closed.
func (s *StreamResponse) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.body == nil {
		return false
	}
	s.closed = true
	s.body.Close()
	return true
}

// HTTPResponse returns the long-lived HTTP response backing the stream.
func (s *StreamResponse) HTTPResponse() *http.Response {
	return s.httpResp
}

// Each pulls envelopes until the stream ends, fn fails, or the context is
// canceled, and closes the connection on the way out.
func (s *StreamResponse) Each(ctx context.Context, fn func(*Response) error) error {
	defer s.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		resp, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(resp); err != nil {
			return err
		}
	}
}

package tweetkit

import (
	"context"
	stderrors "errors"

	"github.com/tweetkit/tweetkit-go/pkg/types"
)

// ErrExhausted is returned by Next and NextPage once a traversal has seen a
// page without a next-page token. Reset starts a fresh traversal.
var ErrExhausted = stderrors.New("tweetkit: paginator exhausted")

const defaultPageParam = "next_token"

// Paginator drives a request across pages by threading each response's
// next-page token back into the request's pagination query parameter until
// the server stops returning one. It is restartable via Reset but not
// resumable past exhaustion.
type Paginator struct {
	req       *Request
	nextToken string
	exhausted bool

	buffer    []types.Object
	bufferIdx int
}

func newPaginator(req *Request) *Paginator {
	return &Paginator{req: req}
}

func (p *Paginator) pageParam() string {
	if p.req.PageParam != "" {
		return p.req.PageParam
	}
	return defaultPageParam
}

// HasNextPage reports whether another page may exist.
func (p *Paginator) HasNextPage() bool {
	return !p.exhausted
}

// NextPage fetches the next page. A failed fetch leaves the pagination
// state untouched, so the same page can be retried. After the last page it
// returns ErrExhausted.
func (p *Paginator) NextPage(ctx context.Context) (*Response, error) {
	if p.exhausted {
		return nil, ErrExhausted
	}

	if p.nextToken != "" {
		p.req.Query[p.pageParam()] = p.nextToken
	} else {
		delete(p.req.Query, p.pageParam())
	}

	resp, err := p.req.Send(ctx)
	if err != nil {
		return nil, err
	}

	p.nextToken = resp.Meta().NextToken()
	if p.nextToken == "" {
		p.exhausted = true
	}
	return resp, nil
}

// HasNext reports whether another item may be available.
func (p *Paginator) HasNext() bool {
	return p.bufferIdx < len(p.buffer) || !p.exhausted
}

// Next returns the next primary item, fetching pages as needed. Each page's
// data flattens one level: collections yield their elements, singletons
// yield themselves.
func (p *Paginator) Next(ctx context.Context) (types.Object, error) {
	for p.bufferIdx >= len(p.buffer) {
		if p.exhausted {
			return nil, ErrExhausted
		}
		resp, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		p.buffer = resp.Items()
		p.bufferIdx = 0
	}

	item := p.buffer[p.bufferIdx]
	p.bufferIdx++
	return item, nil
}

// Collect gathers up to maxItems items across pages; maxItems <= 0 means
// everything the server has.
func (p *Paginator) Collect(ctx context.Context, maxItems int) ([]types.Object, error) {
	var items []types.Object
	for p.HasNext() && (maxItems <= 0 || len(items) < maxItems) {
		item, err := p.Next(ctx)
		if err == ErrExhausted {
			break
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Reset clears the traversal state so the next fetch starts over from page
// one.
func (p *Paginator) Reset() {
	p.nextToken = ""
	p.exhausted = false
	p.buffer = nil
	p.bufferIdx = 0
	delete(p.req.Query, p.pageParam())
}

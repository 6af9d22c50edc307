package tweetkit

import (
	"encoding/json"
	"net/http"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
	"github.com/tweetkit/tweetkit-go/pkg/types"
)

// Response wraps one parsed API payload: a full HTTP response body or a
// single line of a stream. It is immutable after construction; the
// denormalizing Data accessor works on copies.
type Response struct {
	raw      []byte
	httpResp *http.Response
	dtype    string

	data     any
	includes types.Object
	errs     []types.Object
	meta     types.Meta
}

// NewResponse parses body into a Response envelope. The top-level data key
// becomes the primary payload; a body without one (the openapi.json
// endpoint) is treated as the payload itself. A single bare error object is
// normalized into a one-element errors list.
func NewResponse(body []byte, dtype string, httpResp *http.Response) (*Response, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &errors.DecodeError{Body: body, Err: err}
	}

	r := &Response{raw: body, httpResp: httpResp, dtype: dtype}
	top, ok := decoded.(map[string]any)
	if !ok {
		r.data = decoded
		return r, nil
	}

	obj := types.Object(top)
	if obj.Has("data") {
		r.data = obj["data"]
	} else {
		r.data = obj
	}
	r.includes = obj.GetObject("includes")
	r.meta = types.Meta(obj.GetObject("meta"))

	switch errs := obj["errors"].(type) {
	case []any:
		for _, e := range errs {
			if m, ok := e.(map[string]any); ok {
				r.errs = append(r.errs, types.Object(m))
			}
		}
	case map[string]any:
		r.errs = []types.Object{types.Object(errs)}
	}

	return r, nil
}

// Raw returns the body bytes the envelope was built from.
func (r *Response) Raw() []byte {
	return r.raw
}

// HTTPResponse returns the originating HTTP response. Envelopes built from
// stream lines share the stream's response.
func (r *Response) HTTPResponse() *http.Response {
	return r.httpResp
}

// DType returns the entity-type tag carried over from the request.
func (r *Response) DType() string {
	return r.dtype
}

// RawData returns the primary payload exactly as received: a types.Object
// for singleton endpoints, a []any for collection endpoints. Callers must
// not mutate it.
func (r *Response) RawData() any {
	return r.data
}

// Includes returns the side-object collections bundled with the response.
func (r *Response) Includes() types.Object {
	return r.includes
}

// Meta returns the pagination and result-count block.
func (r *Response) Meta() types.Meta {
	return r.meta
}

// Errors returns the per-item problems reported alongside an otherwise
// successful response, or nil when there were none. Whole-call failures are
// returned as errors from Send instead.
func (r *Response) Errors() []*errors.Problem {
	if r.errs == nil {
		return nil
	}
	problems := make([]*errors.Problem, len(r.errs))
	for i, fields := range r.errs {
		problems[i] = errors.ProblemFromObject(fields)
	}
	return problems
}

// HasErrors reports whether the response carried per-item problems.
func (r *Response) HasErrors() bool {
	return len(r.errs) > 0
}

// Data returns a denormalized deep copy of the primary payload: an index is
// built from the includes block plus the payload itself, then every id
// reference the entity type defines is replaced by the entity it points to.
// The stored payload is never mutated, so Data may be called repeatedly.
func (r *Response) Data() any {
	exp := NewExpansions(r.includes)
	exp.Add(r.data, r.dtype)
	return exp.Expand(r.data, r.dtype)
}

// Get looks key up in the primary payload. When the payload is a list the
// lookup broadcasts: the result is one value per item, each independently
// defaulted.
func (r *Response) Get(key string, def any) any {
	switch data := r.data.(type) {
	case []any:
		out := make([]any, len(data))
		for i, item := range data {
			if obj, ok := item.(map[string]any); ok {
				out[i] = types.Object(obj).Get(key, def)
			} else {
				out[i] = def
			}
		}
		return out
	case map[string]any:
		return types.Object(data).Get(key, def)
	case types.Object:
		return data.Get(key, def)
	}
	return def
}

// Items flattens the list/object duality of the primary payload into a
// uniform slice: a collection yields one entry per element, a singleton
// yields a single entry. Exactly one level is flattened.
func (r *Response) Items() []types.Object {
	switch data := r.data.(type) {
	case []any:
		items := make([]types.Object, 0, len(data))
		for _, item := range data {
			if obj, ok := item.(map[string]any); ok {
				items = append(items, types.Object(obj))
			}
		}
		return items
	case map[string]any:
		return []types.Object{types.Object(data)}
	case types.Object:
		return []types.Object{data}
	}
	return nil
}

package tweetkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
)

// Params holds the query parameters of a request. Values may be scalars or
// slices; a slice serializes as a single comma-joined parameter, which is
// how the API expects multi-value fields like ids and tweet.fields.
type Params map[string]any

// Merge copies every entry of extra into p, overwriting existing keys.
func (p Params) Merge(extra Params) Params {
	for k, v := range extra {
		p[k] = v
	}
	return p
}

// Request is one logical API call: a path template plus everything needed to
// execute it once through the HTTP transport and classify the result.
//
// Fields are exported so endpoint layers outside this package can target
// endpoints the bundled services have no helper for. A Request is not safe
// for concurrent use; the paginator mutates its pagination query parameter
// between sends.
type Request struct {
	// URL is the path template relative to the client base URL, with
	// {name} placeholders filled from PathParams.
	URL string
	// Method is the HTTP method: GET, POST, PUT or DELETE.
	Method string
	// Query holds the query parameters.
	Query Params
	// PathParams fills the {name} placeholders of URL. Every placeholder
	// must have an entry; a missing one is a caller error.
	PathParams map[string]string
	// Body is the JSON request payload, if any.
	Body any
	// Streaming marks the request for streaming consumption; Send refuses
	// a request carrying it, since buffering a live stream never returns.
	Streaming bool
	// DType tags the primary entity type of the response ("Tweet",
	// "User", "Space", ... or "data" for untyped payloads) and selects
	// the reference-resolution rule set applied on denormalization.
	DType string
	// PageParam is the query parameter the paginator threads the
	// next-page token through. Defaults to "next_token"; timeline
	// endpoints take "pagination_token" instead.
	PageParam string

	client *Client
}

// Send executes the request once and classifies the result: a Response for
// a successful JSON body, a typed error otherwise. The client's scheduler
// is consulted before the call and updated after it, whatever the outcome.
func (r *Request) Send(ctx context.Context) (*Response, error) {
	if r.Streaming {
		return nil, &errors.ConfigError{Field: "Streaming", Message: "streaming endpoint must be consumed with Stream"}
	}
	resp, err := r.do(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.RequestError{StatusCode: resp.StatusCode, Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if isJSONContent(contentType) {
			return NewResponse(body, r.DType, resp)
		}
		return nil, &errors.RequestError{StatusCode: resp.StatusCode, ContentType: contentType, Body: body}
	}
	return nil, classifyFailure(resp.StatusCode, contentType, body)
}

// Stream executes the request and hands the open connection to a
// StreamResponse without buffering the body. The caller owns the stream and
// must close it.
func (r *Request) Stream(ctx context.Context) (*StreamResponse, error) {
	r.Streaming = true
	resp, err := r.do(ctx)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if contentType == "" || isJSONContent(contentType) {
			return newStreamResponse(resp, r.DType), nil
		}
	}

	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, &errors.RequestError{StatusCode: resp.StatusCode, ContentType: contentType, Err: readErr}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil, &errors.RequestError{StatusCode: resp.StatusCode, ContentType: contentType, Body: body}
	}
	return nil, classifyFailure(resp.StatusCode, contentType, body)
}

// Paginate wraps the request in a Paginator instead of sending it. No
// network traffic happens until the first page is pulled.
func (r *Request) Paginate() *Paginator {
	return newPaginator(r)
}

// do substitutes path parameters, serializes the query, signs the request,
// waits on the scheduler, executes the call, and feeds the response headers
// back into the scheduler.
func (r *Request) do(ctx context.Context) (*http.Response, error) {
	c := r.client

	path, err := expandPath(r.URL, r.PathParams)
	if err != nil {
		return nil, err
	}
	u, err := c.baseURL.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, &errors.RequestError{Err: err}
	}
	u.RawQuery = encodeQuery(r.Query)

	var body io.Reader
	if r.Body != nil {
		payload, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &errors.RequestError{Err: fmt.Errorf("encoding request body: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, u.String(), body)
	if err != nil {
		return nil, &errors.RequestError{Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		if err := c.auth.Sign(req); err != nil {
			return nil, &errors.RequestError{Err: err}
		}
	}

	if err := c.scheduler.Wait(ctx); err != nil {
		return nil, &errors.RequestError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.RequestError{Err: err}
	}

	// Failed calls consume quota too.
	c.scheduler.Update(resp.Header)

	if c.logger != nil {
		c.logger.Debug("twitter API call",
			"method", r.Method,
			"url", u.Redacted(),
			"status", resp.StatusCode,
			"rate_remaining", resp.Header.Get(headerRateLimitRemaining),
		)
	}

	return resp, nil
}

// classifyFailure turns a non-2xx response into the matching typed error.
func classifyFailure(statusCode int, contentType string, body []byte) error {
	if isJSONContent(contentType) || isProblemContent(contentType) {
		if err := errors.Classify(statusCode, body); err != nil {
			return err
		}
	}
	return &errors.RequestError{StatusCode: statusCode, ContentType: contentType, Body: body}
}

func isJSONContent(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json")
}

func isProblemContent(contentType string) bool {
	return strings.HasPrefix(contentType, "application/problem+json")
}

// expandPath fills every {name} placeholder of template from params.
func expandPath(template string, params map[string]string) (string, error) {
	path := template
	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if open := strings.IndexByte(path, '{'); open >= 0 {
		if close := strings.IndexByte(path[open:], '}'); close > 0 {
			return "", &errors.ConfigError{
				Field:   path[open+1 : open+close],
				Message: "missing path parameter for template " + template,
			}
		}
	}
	return path, nil
}

// encodeQuery serializes the query map. Slices join with commas; nil and
// empty-string values are dropped, which is what lets the paginator clear
// the page token between traversals.
func encodeQuery(query Params) string {
	values := url.Values{}
	for key, value := range query {
		if s, ok := queryValue(value); ok {
			values.Set(key, s)
		}
	}
	return values.Encode()
}

func queryValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case []string:
		return strings.Join(v, ","), true
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ","), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		return v.UTC().Format(time.RFC3339), true
	default:
		return fmt.Sprint(v), true
	}
}

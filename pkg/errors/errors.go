// Package errors defines the error taxonomy used throughout the Twitter API
// client.
//
// A failed call surfaces as exactly one of four kinds: APIError for the
// legacy {code, message} body shape, Problem for the RFC-7807
// {type, title, detail, status} shape, DecodeError for malformed JSON where
// JSON was expected, and RequestError for everything else that went wrong on
// the wire. Per-item errors inside an otherwise successful response are
// exposed as Problem values by the response envelope instead of being
// raised.
package errors

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/tweetkit/tweetkit-go/pkg/types"
)

const defaultProblemMessage = "a problem occurred, unknown reason"

// ConfigError indicates a problem with the client configuration.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// APIError is a server-reported application error carrying the legacy
// {code, message} body shape.
type APIError struct {
	// StatusCode is the HTTP status code of the failed call
	StatusCode int
	// Code is the application error code from the body, 0 when non-numeric
	Code int
	// Message is the human-readable error message from the body
	Message string
	// Body contains the raw response body
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter API error (code %d): %s", e.Code, e.Message)
}

// Problem is a server-reported RFC-7807 problem. The same shape is used for
// per-item errors inside partially successful responses, in which case
// StatusCode is zero.
type Problem struct {
	// StatusCode is the HTTP status code of the failed call, 0 for an
	// in-envelope partial failure
	StatusCode int
	// Fields holds the decoded problem object as received
	Fields types.Object
	// Body contains the raw response body, nil for in-envelope problems
	Body []byte
}

// ProblemFromObject wraps a per-item error object from a response envelope.
func ProblemFromObject(fields types.Object) *Problem {
	return &Problem{Fields: fields}
}

// Type returns the problem type URI, if any.
func (e *Problem) Type() string {
	return e.Fields.GetString("type")
}

// Title returns the short problem summary, if any.
func (e *Problem) Title() string {
	return e.Fields.GetString("title")
}

// Detail returns the long-form problem description, if any.
func (e *Problem) Detail() string {
	return e.Fields.GetString("detail")
}

// Message returns the most specific human-readable description available:
// detail, then title, then a plain message field, then a generic default.
func (e *Problem) Message() string {
	for _, key := range []string{"detail", "title", "message"} {
		if s := e.Fields.GetString(key); s != "" {
			return s
		}
	}
	return defaultProblemMessage
}

// Code returns the numeric code for the problem: the status field of the
// body when present, the body's code field next, the HTTP status last.
func (e *Problem) Code() int {
	if n, ok := e.Fields.GetInt("status"); ok {
		return int(n)
	}
	if n, ok := e.Fields.GetInt("code"); ok {
		return int(n)
	}
	return e.StatusCode
}

func (e *Problem) Error() string {
	return fmt.Sprintf("twitter API problem (code %d): %s", e.Code(), e.Message())
}

// RequestError is the catch-all for a response that matched neither
// recognized error shape: unexpected content type, unparseable error body,
// or a non-2xx status without a structured body. The raw response is kept
// for caller inspection.
type RequestError struct {
	// StatusCode is the HTTP status code, 0 when the request never completed
	StatusCode int
	// ContentType is the content-type header of the response, if any
	ContentType string
	// Body contains the raw response body, if one was read
	Body []byte
	// Err contains the underlying transport error, if any
	Err error
}

func (e *RequestError) Error() string {
	if e.Err != nil && e.StatusCode == 0 {
		return fmt.Sprintf("request error: %v", e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("request error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request error (status %d): unexpected response", e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a malformed JSON body where JSON was expected. It is
// a transport-level defect rather than an application-level refusal.
type DecodeError struct {
	// Body contains the undecodable input
	Body []byte
	// Err contains the underlying decoding error
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Classify inspects a non-2xx JSON error body and returns the matching typed
// error: an APIError for the {code, message} shape, a Problem for the
// {type, title} shape, nil when the body matches neither. Both shapes are
// recognized at the top level and wrapped as the first element of an errors
// array. Field presence is probed without decoding the whole body.
func Classify(statusCode int, body []byte) error {
	if err := classifyObject(statusCode, body, body); err != nil {
		return err
	}
	if first, dataType, _, err := jsonparser.Get(body, "errors", "[0]"); err == nil && dataType == jsonparser.Object {
		return classifyObject(statusCode, first, body)
	}
	return nil
}

// classifyObject probes one candidate error object; body is the full
// response, kept on the returned error for caller inspection.
func classifyObject(statusCode int, obj, body []byte) error {
	_, codeType, _, codeErr := jsonparser.Get(obj, "code")
	message, msgErr := jsonparser.GetString(obj, "message")
	if codeErr == nil && msgErr == nil {
		code := 0
		if codeType == jsonparser.Number {
			if n, err := jsonparser.GetInt(obj, "code"); err == nil {
				code = int(n)
			}
		} else if codeType == jsonparser.String {
			if s, err := jsonparser.GetString(obj, "code"); err == nil {
				fmt.Sscanf(s, "%d", &code)
			}
		}
		return &APIError{StatusCode: statusCode, Code: code, Message: message, Body: body}
	}

	_, _, _, typeErr := jsonparser.Get(obj, "type")
	_, _, _, titleErr := jsonparser.Get(obj, "title")
	if typeErr == nil && titleErr == nil {
		var fields types.Object
		if err := json.Unmarshal(obj, &fields); err != nil {
			return nil
		}
		return &Problem{StatusCode: statusCode, Fields: fields, Body: body}
	}

	return nil
}

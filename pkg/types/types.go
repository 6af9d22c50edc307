// Package types defines the generic JSON containers shared across the client.
//
// Twitter API v2 payloads are schemaless from the client's point of view: the
// set of fields present depends entirely on the field/expansion query
// parameters of the originating request. Instead of one wire struct per
// endpoint, responses are held as Object values and read through typed
// accessors.
package types

import "strconv"

// Object is a single decoded JSON object.
type Object map[string]any

// Get returns the value stored under key, or def when the key is absent.
func (o Object) Get(key string, def any) any {
	if v, ok := o[key]; ok {
		return v
	}
	return def
}

// Has reports whether key is present, even when its value is nil.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// GetString returns the string stored under key, or "" when the key is
// absent or holds a non-string value.
func (o Object) GetString(key string) string {
	s, _ := o[key].(string)
	return s
}

// GetInt returns the numeric value stored under key as an int64. JSON
// numbers decode as float64; numeric strings are accepted as well since the
// API is not consistent about quoting codes.
func (o Object) GetInt(key string) (int64, bool) {
	switch v := o[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// GetObject returns the nested object stored under key, or nil.
func (o Object) GetObject(key string) Object {
	switch v := o[key].(type) {
	case Object:
		return v
	case map[string]any:
		return Object(v)
	}
	return nil
}

// GetList returns the array stored under key, or nil.
func (o Object) GetList(key string) []any {
	l, _ := o[key].([]any)
	return l
}

// GetStrings returns the array stored under key with every element rendered
// as a string. Non-scalar elements are skipped.
func (o Object) GetStrings(key string) []string {
	list := o.GetList(key)
	if list == nil {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s := Key(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	c, _ := DeepCopy(o).(Object)
	return c
}

// DeepCopy recursively copies a decoded JSON value. Maps and slices are
// duplicated; scalars are returned as-is.
func DeepCopy(v any) any {
	switch v := v.(type) {
	case Object:
		c := make(Object, len(v))
		for k, e := range v {
			c[k] = DeepCopy(e)
		}
		return c
	case map[string]any:
		c := make(Object, len(v))
		for k, e := range v {
			c[k] = DeepCopy(e)
		}
		return c
	case []any:
		c := make([]any, len(v))
		for i, e := range v {
			c[i] = DeepCopy(e)
		}
		return c
	default:
		return v
	}
}

// Key renders a natural-key value as a map key. Entity ids are strings on
// the wire; numbers are formatted with a stable representation.
func Key(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	}
	return ""
}

// Meta is the pagination and result-count block of a response envelope.
type Meta Object

// NextToken returns the opaque cursor for the next page, or "" when the
// server reported no further pages.
func (m Meta) NextToken() string {
	return Object(m).GetString("next_token")
}

// PreviousToken returns the cursor for the previous page, if any.
func (m Meta) PreviousToken() string {
	return Object(m).GetString("previous_token")
}

// ResultCount returns the number of results the server reported for the
// current page, or 0 when absent.
func (m Meta) ResultCount() int {
	n, _ := Object(m).GetInt("result_count")
	return int(n)
}

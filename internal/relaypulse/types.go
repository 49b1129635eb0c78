package relaypulse

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Report is one parsed /api/status document. Root holds a generic tree of
// map[string]any, []any, json.Number, string, bool and nil values; no schema
// is applied.
type Report struct {
	Root any
}

// Kind names the JSON type at the root: object, array, string, number,
// bool, null.
func (r Report) Kind() string {
	return kindOf(r.Root)
}

// Keys returns the sorted top-level keys when the root is an object.
func (r Report) Keys() []string {
	obj, ok := r.Root.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary describes the document shape in one line, e.g. "object with 3 keys".
func (r Report) Summary() string {
	switch v := r.Root.(type) {
	case map[string]any:
		return fmt.Sprintf("object with %d keys", len(v))
	case []any:
		return fmt.Sprintf("array with %d items", len(v))
	default:
		return kindOf(v)
	}
}

// Pretty renders the tree as indented JSON.
func (r Report) Pretty() string {
	out, err := json.MarshalIndent(r.Root, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", r.Root)
	}
	return string(out)
}

// Plain converts the tree into values other encoders understand: json.Number
// becomes int64 or float64.
func (r Report) Plain() any {
	return plain(r.Root)
}

func plain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = plain(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = plain(child)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return t
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ErrorKind classifies fetch failures.
type ErrorKind int

const (
	// KindTransport covers DNS, connection and timeout failures.
	KindTransport ErrorKind = iota
	// KindDecode means the body could not be read as text.
	KindDecode
	// KindParse means the body is not a single well-formed JSON document.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FetchError is returned by Client.FetchStatus for every failure.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " error"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

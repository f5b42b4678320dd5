// Package partial reads loosely structured JSON documents.
//
// Source documents are treated as partial by default: every accessor returns
// the zero value of its type ("", 0, empty object, nil list) when a key is
// missing or holds a value of the wrong shape. Callers never branch on
// document completeness; the default policy lives here and nowhere else.
//
// Objects keep their keys in document order, so lookups that depend on
// iteration order ("first key with this prefix") behave the same way the
// source documents are written.
package partial

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Object is an order-preserving JSON object.
// A nil *Object is valid and behaves as an empty object.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty, writable object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set stores v under key. A new key is appended to the key order; an existing
// key keeps its position and takes the new value.
func (o *Object) Set(key string, v any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the raw value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present, whatever its value.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Obj returns the object stored under key, or an empty object.
func (o *Object) Obj(key string) *Object {
	if child, ok := o.ObjOK(key); ok {
		return child
	}
	return NewObject()
}

// ObjOK returns the object stored under key and whether it was an object.
func (o *Object) ObjOK(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return AsObject(v)
}

// Str returns the string stored under key, or "".
func (o *Object) Str(key string) string {
	return o.StrOr(key, "")
}

// StrOr returns the string stored under key, or def when the key is missing
// or does not hold a string.
func (o *Object) StrOr(key, def string) string {
	v, ok := o.Get(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// Int returns the number stored under key truncated to an integer, or 0.
func (o *Object) Int(key string) int64 {
	v, _ := o.Get(key)
	return ToInt(v)
}

// Float returns the number stored under key, or 0.
func (o *Object) Float(key string) float64 {
	v, _ := o.Get(key)
	return ToFloat(v)
}

// List returns the array stored under key, or nil.
func (o *Object) List(key string) []any {
	v, _ := o.Get(key)
	l, _ := v.([]any)
	return l
}

// Clone returns a shallow copy: nested objects and lists are shared.
func (o *Object) Clone() *Object {
	c := NewObject()
	if o == nil {
		return c
	}
	for _, k := range o.keys {
		c.Set(k, o.vals[k])
	}
	return c
}

// MarshalJSON writes the object with its keys in document order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (o *Object) UnmarshalJSON(b []byte) error {
	v, err := DecodeBytes(b)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return fmt.Errorf("partial: expected object, got %T", v)
	}
	*o = *obj
	return nil
}

// AsObject converts a decoded value to an object.
func AsObject(v any) (*Object, bool) {
	obj, ok := v.(*Object)
	if !ok || obj == nil {
		return nil, false
	}
	return obj, true
}

// ToInt converts a decoded value to an integer. Numeric strings are accepted;
// anything else is 0.
func ToInt(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return truncate(f)
	case float64:
		return truncate(n)
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return truncate(f)
		}
	}
	return 0
}

// ToFloat converts a decoded value to a float. Numeric strings are accepted;
// anything else is 0.
func ToFloat(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

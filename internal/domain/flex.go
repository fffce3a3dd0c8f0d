package domain

import (
	"bytes"
	"strings"

	"github.com/bytedance/sonic"
)

// FlexString is a source scalar that upstream may store as text, number, boolean or date.
// Empty and whitespace-only values are treated as absent.
type FlexString struct {
	s string
}

func Flex(s string) FlexString {
	return FlexString{s: s}
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		f.s = ""
	case b[0] == '"':
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		f.s = s
	default:
		// numbers, booleans, nested json: keep the literal text
		f.s = string(b)
	}
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	if f.IsEmpty() {
		return []byte("null"), nil
	}
	return sonic.Marshal(f.String())
}

// Value returns the trimmed value and whether it is present.
func (f FlexString) Value() (string, bool) {
	s := strings.TrimSpace(f.s)
	return s, s != ""
}

func (f FlexString) String() string {
	return strings.TrimSpace(f.s)
}

func (f FlexString) IsEmpty() bool {
	return f.String() == ""
}

// Or returns the first present value among f and others.
func (f FlexString) Or(others ...FlexString) FlexString {
	if !f.IsEmpty() {
		return f
	}
	for _, o := range others {
		if !o.IsEmpty() {
			return o
		}
	}
	return FlexString{}
}

// FlexJSON is a JSON-bearing column. It accepts an embedded JSON value or a string that
// contains JSON, which is how some scrapers persisted lists and objects.
type FlexJSON struct {
	raw []byte
}

func NewFlexJSON(raw string) FlexJSON {
	var f FlexJSON
	_ = f.UnmarshalJSON([]byte(raw))
	return f
}

func FlexJSONOf(v any) FlexJSON {
	b, err := sonic.Marshal(v)
	if err != nil {
		return FlexJSON{}
	}
	return FlexJSON{raw: b}
}

func (f *FlexJSON) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		f.raw = nil
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := sonic.Unmarshal(b, &s); err != nil {
			return err
		}
		inner := strings.TrimSpace(s)
		if inner == "" {
			f.raw = nil
			return nil
		}
		if strings.HasPrefix(inner, "{") || strings.HasPrefix(inner, "[") {
			var decoded any
			if err := sonic.UnmarshalString(inner, &decoded); err == nil {
				f.raw = []byte(inner)
				return nil
			}
		}
	}

	f.raw = append([]byte(nil), b...)
	return nil
}

func (f FlexJSON) MarshalJSON() ([]byte, error) {
	if len(f.raw) == 0 {
		return []byte("null"), nil
	}
	return f.raw, nil
}

func (f FlexJSON) IsEmpty() bool {
	return len(f.raw) == 0
}

// Decode returns the generic value (map[string]any, []any, string, float64 ...).
func (f FlexJSON) Decode() (any, bool) {
	if f.IsEmpty() {
		return nil, false
	}
	var v any
	if err := sonic.Unmarshal(f.raw, &v); err != nil {
		return nil, false
	}
	return v, v != nil
}

// Object returns the value as an object. A list is wrapped as {"items": [...]}.
func (f FlexJSON) Object() map[string]any {
	v, ok := f.Decode()
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		return t
	case []any:
		return map[string]any{"items": t}
	}
	return nil
}

// List returns the value as a list. A single object becomes a one-element list.
func (f FlexJSON) List() []any {
	v, ok := f.Decode()
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case []any:
		return t
	case map[string]any:
		return []any{t}
	case string:
		return []any{t}
	}
	return nil
}

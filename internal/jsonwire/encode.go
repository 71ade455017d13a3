package jsonwire

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Member is one key/value pair of an ordered object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that marshals its members in slice order, unlike a
// map. Nested Objects and []any values are marshaled recursively, so a tree
// of Objects always renders byte-identically for the same input.
type Object []Member

// MarshalJSON implements json.Marshaler with stable member order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders v as compact JSON.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// EncodeIndent renders v as indented JSON using the given indentation unit.
func EncodeIndent(v any, indent string) ([]byte, error) {
	return json.MarshalIndent(v, "", indent)
}

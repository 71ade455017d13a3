package typedjson

import (
	"bytes"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/typedjson/internal/jsonwire"
)

// Source abstracts over polymorphic input documents. Decoding is
// document-at-once; malformed input surfaces as the codec's own error,
// never as Issues.
type Source interface {
	// DecodeDocument reads the whole input and returns it as a JSON-shaped
	// value tree (map[string]any / []any / json.Number / string / bool / nil).
	DecodeDocument() (any, error)
	// Name identifies the wire format for diagnostics.
	Name() string
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) DecodeDocument() (any, error) { return jsonwire.DecodeDocument(s.r) }
func (s jsonSource) Name() string                 { return "json" }

type yamlSource struct{ r io.Reader }

func (s yamlSource) DecodeDocument() (any, error) {
	dec := yaml.NewDecoder(s.r)
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	return yamlNormalizeValue(node), nil
}

func (s yamlSource) Name() string { return "yaml" }

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any and native Go numbers) into the JSON shape the mapper expects.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		return v
	}
}

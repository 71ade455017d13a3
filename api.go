package typedjson

import (
	"fmt"
	"io"
	"reflect"

	"github.com/reoring/typedjson/internal/jsonwire"
)

// Load deserializes JSON text into a value of T. T's own declaration is the
// schema: every exported field must be present in the document or carry a
// `default` tag, and every present value must match its field's type. Nested
// record fields are resolved and constructed recursively. Load either returns
// a fully constructed value or no value at all.
func Load[T any](data []byte, opts ...Options) (T, error) {
	return LoadSource[T](JSONBytes(data), opts...)
}

// LoadFrom is Load reading JSON text from r.
func LoadFrom[T any](r io.Reader, opts ...Options) (T, error) {
	return LoadSource[T](JSONReader(r), opts...)
}

// LoadSource is the primary entry point: it resolves T's schema, decodes one
// document from the Source, validates it against the schema, and constructs
// the value. Schema errors are raised before any data is inspected; malformed
// input surfaces as the codec's error, not as Issues.
func LoadSource[T any](src Source, opts ...Options) (T, error) {
	return loadSource[T](src, nil, normalizeOptions(opts))
}

// LoadWithMeta is Load returning presence metadata alongside the value: which
// fields were seen in the input, which were null, and which were materialized
// from defaults.
func LoadWithMeta[T any](data []byte, opts ...Options) (Decoded[T], error) {
	return LoadSourceWithMeta[T](JSONBytes(data), opts...)
}

// LoadSourceWithMeta is LoadSource with presence collection.
func LoadSourceWithMeta[T any](src Source, opts ...Options) (Decoded[T], error) {
	pm := PresenceMap{}
	v, err := loadSource[T](src, pm, normalizeOptions(opts))
	if err != nil {
		return Decoded[T]{}, err
	}
	return Decoded[T]{Value: v, Presence: pm}, nil
}

// Check validates JSON text against T's schema without constructing a value.
func Check[T any](data []byte, opts ...Options) error {
	opt := normalizeOptions(opts)
	schema, doc, err := resolveAndDecode[T](JSONBytes(data))
	if err != nil {
		return err
	}
	return schema.Validate(doc, opt)
}

// Dumps serializes a struct value to JSON text. Fields are emitted in
// declaration order, so repeated calls over an unmutated value yield
// byte-identical output. Nested record fields and list elements are
// serialized recursively.
func Dumps(v any, opts ...Options) ([]byte, error) {
	opt := normalizeOptions(opts)
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, singleIssue("/", CodeSchema, "cannot serialize nil")
	}
	obj, iss := serializeValue(rv, "", 0, opt)
	if len(iss) > 0 {
		return nil, iss
	}
	if opt.Indent != "" {
		return jsonwire.EncodeIndent(obj, opt.Indent)
	}
	return jsonwire.Encode(obj)
}

func loadSource[T any](src Source, pm PresenceMap, opt Options) (T, error) {
	var zero T
	schema, doc, err := resolveAndDecode[T](src)
	if err != nil {
		return zero, err
	}
	if err := schema.Validate(doc, opt); err != nil {
		return zero, err
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	rv, iss := constructValue(t, doc, "", 0, opt, pm)
	if len(iss) > 0 {
		return zero, iss
	}
	return rv.Interface().(T), nil
}

// resolveAndDecode orders the failure modes: ineligible target types reject
// before the input is touched, then decoder errors surface as-is, then a
// non-object root is a type mismatch at the document root.
func resolveAndDecode[T any](src Source) (*TypeSchema, map[string]any, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	schema, err := ResolveSchema(t)
	if err != nil {
		return nil, nil, err
	}
	raw, err := src.DecodeDocument()
	if err != nil {
		return nil, nil, fmt.Errorf("typedjson: %s: malformed document: %w", src.Name(), err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, nil, AppendIssues(nil, Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("document root is not an object, cannot map onto %s", t),
			Params:  map[string]any{"expected": t.String(), "got": raw},
		})
	}
	return schema, doc, nil
}

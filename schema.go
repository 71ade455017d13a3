package typedjson

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

// FieldKind is the closed set of shapes a schema field can take. Primitives
// are matched against input by kind; lists recurse per element; nested records
// re-resolve their own schema.
type FieldKind int

const (
	KindBool FieldKind = iota
	KindNumber
	KindString
	KindList
	KindNested
)

func (k FieldKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindNested:
		return "object"
	default:
		return "unknown"
	}
}

// FieldSpec describes one schema field: one exported struct field playing the
// role a constructor parameter plays in dynamically typed mappers.
type FieldSpec struct {
	Name string       // Resolved JSON key, unique within the schema.
	Type reflect.Type // Declared Go type of the field.
	Kind FieldKind
	Elem *FieldSpec // Element shape; set iff Kind == KindList.
	// HasDefault reports whether the field carries a `default` tag. Default
	// holds the tag's JSON literal; it is decoded fresh into every
	// constructed value so defaults never alias across instances.
	HasDefault bool
	Default    []byte
	Index      int // Struct field index for reflect access.
}

// TypeSchema is the ordered field list resolved from a struct type. It is
// rebuilt on every Load/Dumps call and discarded afterwards; nothing is
// cached between calls.
type TypeSchema struct {
	Type   reflect.Type
	Fields []FieldSpec
}

var numberType = reflect.TypeOf(json.Number(""))

// ResolveSchema derives the schema of t. t must be a struct or a pointer to
// one; the resolved field keys must be unique. Anything else returns Issues
// with CodeSchema: a bug in the target type, distinguishable from data
// errors by code.
//
// Key resolution priority: `json` tag name > snake_case of the Go field name;
// a `json:"-"` tag disables the field. Unexported fields are never part of
// the schema.
func ResolveSchema(t reflect.Type) (*TypeSchema, error) {
	if t == nil {
		return nil, singleIssue("/", CodeSchema, "nil target type")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, AppendIssues(nil, Issue{
			Path:    "/",
			Code:    CodeSchema,
			Message: fmt.Sprintf("target type %s is not a struct", t),
			Params:  map[string]any{"type": t.String()},
		})
	}

	s := &TypeSchema{Type: t}
	seen := map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		key := resolveFieldKey(sf)
		if key == "-" {
			continue
		}
		if prev, dup := seen[key]; dup {
			return nil, AppendIssues(nil, Issue{
				Path:    "/" + key,
				Code:    CodeSchema,
				Message: fmt.Sprintf("fields %s and %s of %s resolve to the same key %q", t.Field(prev).Name, sf.Name, t, key),
			})
		}
		seen[key] = i

		kind, elem, err := fieldShape(sf.Type)
		if err != nil {
			return nil, AppendIssues(nil, Issue{
				Path:    "/" + key,
				Code:    CodeSchema,
				Message: fmt.Sprintf("field %s of %s: %v", sf.Name, t, err),
				Params:  map[string]any{"type": sf.Type.String()},
			})
		}

		spec := FieldSpec{Name: key, Type: sf.Type, Kind: kind, Elem: elem, Index: i}
		if tag, ok := sf.Tag.Lookup("default"); ok {
			spec.HasDefault = true
			spec.Default = defaultLiteral(kind, tag)
		}
		s.Fields = append(s.Fields, spec)
	}
	return s, nil
}

// resolveFieldKey applies the repository-wide rule to resolve a struct field's
// external key used by the schema and PresenceMap.
func resolveFieldKey(sf reflect.StructField) string {
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if name := jt[:i]; name != "" {
				return name
			}
			return strcase.ToSnake(sf.Name)
		}
		return jt
	}
	return strcase.ToSnake(sf.Name)
}

// fieldShape maps a Go type onto the closed FieldKind set. Maps, channels,
// funcs, interfaces and complex numbers have no JSON field shape and are
// schema errors.
func fieldShape(t reflect.Type) (FieldKind, *FieldSpec, error) {
	if t == numberType {
		return KindNumber, nil, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return KindBool, nil, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber, nil, nil
	case reflect.String:
		return KindString, nil, nil
	case reflect.Slice:
		ek, ee, err := fieldShape(t.Elem())
		if err != nil {
			return 0, nil, err
		}
		return KindList, &FieldSpec{Name: "", Type: t.Elem(), Kind: ek, Elem: ee}, nil
	case reflect.Struct:
		return KindNested, nil, nil
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return KindNested, nil, nil
		}
		return 0, nil, fmt.Errorf("unsupported pointer type %s", t)
	default:
		return 0, nil, fmt.Errorf("unsupported field type %s", t)
	}
}

// defaultLiteral normalizes a `default` tag into a JSON literal. On string
// fields the tag text is always the string itself unless it is already a JSON
// string literal, so `default:"true"` means the text "true"; everything else
// must be valid JSON for the field type and is reported at construction time
// otherwise.
func defaultLiteral(kind FieldKind, tag string) []byte {
	raw := []byte(tag)
	if kind == KindString {
		if t := bytes.TrimSpace(raw); len(t) > 0 && t[0] == '"' && json.Valid(t) {
			return t
		}
		if quoted, err := json.Marshal(tag); err == nil {
			return quoted
		}
	}
	return raw
}

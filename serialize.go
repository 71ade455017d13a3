package typedjson

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"

	"github.com/reoring/typedjson/internal/jsonwire"
)

// serializeValue flattens a struct value into an ordered JSON object by
// walking its resolved schema in declaration order. Serialization is the
// mirror image of construction: exactly the schema fields are emitted, so
// methods and unexported state can never leak into the output. Unlike the
// historical behavior of reflection-enumeration mappers, list elements are
// recursed per element kind, so lists of records serialize correctly.
func serializeValue(rv reflect.Value, base string, depth int, opt Options) (jsonwire.Object, Issues) {
	if depth > opt.MaxDepth {
		return nil, singleIssue(pointer(base), CodeMaxDepth, "max nesting depth exceeded")
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, singleIssue(pointer(base), CodeSchema, "cannot serialize a nil pointer")
		}
		rv = rv.Elem()
	}
	schema, err := ResolveSchema(rv.Type())
	if err != nil {
		iss, _ := AsIssues(err)
		return nil, iss
	}

	out := make(jsonwire.Object, 0, len(schema.Fields))
	var iss Issues
	for i := range schema.Fields {
		f := &schema.Fields[i]
		path := base + "/" + f.Name
		v, fi := fieldJSON(rv.Field(f.Index), f, path, depth+1, opt)
		if len(fi) > 0 {
			iss = append(iss, fi...)
			if opt.FailFast {
				return nil, iss
			}
			continue
		}
		out = append(out, jsonwire.Member{Key: f.Name, Value: v})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// fieldJSON converts one field value into its JSON representation.
func fieldJSON(fv reflect.Value, f *FieldSpec, path string, depth int, opt Options) (any, Issues) {
	if depth > opt.MaxDepth {
		return nil, singleIssue(path, CodeMaxDepth, "max nesting depth exceeded")
	}
	switch f.Kind {
	case KindBool, KindString:
		return fv.Interface(), nil
	case KindNumber:
		if fv.Type() == numberType && fv.String() == "" {
			// The zero json.Number is not a valid literal; render it as 0.
			return json.Number("0"), nil
		}
		return fv.Interface(), nil
	case KindList:
		if fv.IsNil() {
			return nil, nil
		}
		list := make([]any, fv.Len())
		var iss Issues
		for i := 0; i < fv.Len(); i++ {
			ev, ei := fieldJSON(fv.Index(i), f.Elem, fmt.Sprintf("%s/%d", path, i), depth+1, opt)
			if len(ei) > 0 {
				iss = append(iss, ei...)
				if opt.FailFast {
					return nil, iss
				}
				continue
			}
			list[i] = ev
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return list, nil
	case KindNested:
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			return nil, nil
		}
		return serializeValue(fv, path, depth, opt)
	default:
		return nil, singleIssue(path, CodeSchema, fmt.Sprintf("unsupported field kind %v", f.Kind))
	}
}

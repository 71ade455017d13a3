package typedjson

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// Validate is the dry run of construction restricted to shape checking: it
// walks the schema in declaration order and reports every field whose value
// is absent without a default or does not match the declared field type.
// It exists so construction failures surface as typed, hierarchical issues
// instead of confusing reflection errors.
func (s *TypeSchema) Validate(doc map[string]any, opts ...Options) error {
	opt := normalizeOptions(opts)
	if iss := s.validate(doc, "", 0, opt); len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *TypeSchema) validate(doc map[string]any, base string, depth int, opt Options) Issues {
	if depth > opt.MaxDepth {
		return singleIssue(pointer(base), CodeMaxDepth, "max nesting depth exceeded")
	}
	var iss Issues
	for i := range s.Fields {
		f := &s.Fields[i]
		path := base + "/" + f.Name
		v, ok := doc[f.Name]
		if !ok {
			if f.HasDefault {
				continue
			}
			iss = AppendIssues(iss, Issue{
				Path:    path,
				Code:    CodeRequired,
				Message: fmt.Sprintf("field %q could not be found in the document and has no default value", f.Name),
				Params:  map[string]any{"field": f.Name},
			})
			if opt.FailFast {
				return iss
			}
			continue
		}
		iss = append(iss, checkValue(f, v, path, depth+1, opt)...)
		if opt.FailFast && len(iss) > 0 {
			return iss
		}
	}
	return iss
}

// checkValue matches a raw document value against one field shape. Primitives
// are matched by kind, lists recurse per element, nested records re-resolve
// their own schema and validate the sub-document.
func checkValue(f *FieldSpec, v any, path string, depth int, opt Options) Issues {
	if depth > opt.MaxDepth {
		return singleIssue(path, CodeMaxDepth, "max nesting depth exceeded")
	}
	switch f.Kind {
	case KindBool:
		if _, ok := v.(bool); !ok {
			return mismatch(f, v, path, nil)
		}
	case KindString:
		if _, ok := v.(string); !ok {
			return mismatch(f, v, path, nil)
		}
	case KindNumber:
		n, ok := numberValue(v)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		if !numberFits(f.Type, n) {
			return mismatch(f, v, path, nil)
		}
	case KindList:
		if v == nil {
			// null round-trips with the nil slice.
			return nil
		}
		list, ok := v.([]any)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		var iss Issues
		for i, ev := range list {
			iss = append(iss, checkValue(f.Elem, ev, fmt.Sprintf("%s/%d", path, i), depth+1, opt)...)
			if opt.FailFast && len(iss) > 0 {
				return iss
			}
		}
		return iss
	case KindNested:
		if v == nil && f.Type.Kind() == reflect.Pointer {
			return nil
		}
		sub, ok := v.(map[string]any)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		nested, err := ResolveSchema(f.Type)
		if err != nil {
			return AppendIssues(nil, Issue{
				Path:    path,
				Code:    CodeSchema,
				Message: fmt.Sprintf("nested type %s is not mappable", f.Type),
				Cause:   err,
			})
		}
		if ni := nested.validate(sub, path, depth+1, opt); len(ni) > 0 {
			return mismatch(f, v, path, ni)
		}
	}
	return nil
}

// mismatch builds the CodeInvalidType issue for a field, threading nested
// issues through Cause so the path to the failing leaf stays reconstructable.
func mismatch(f *FieldSpec, v any, path string, cause Issues) Issues {
	it := Issue{
		Path:    path,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("value %v cannot be cast as %s", compactValue(v), f.Type),
		Params:  map[string]any{"expected": f.Type.String(), "got": v},
	}
	if cause != nil {
		it.Cause = cause
	}
	return AppendIssues(nil, it)
}

// compactValue renders the offending value for messages without flooding them.
func compactValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	const maxShown = 64
	if len(b) > maxShown {
		return string(b[:maxShown]) + "..."
	}
	return string(b)
}

func pointer(base string) string {
	if base == "" {
		return "/"
	}
	return base
}

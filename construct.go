package typedjson

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

// constructValue builds a value of t from a validated document. Construction
// is all-or-nothing: when any issue is found the zero Value is returned and
// no partially built instance escapes. Presence flags are recorded into pm
// (when non-nil) under each field's JSON Pointer.
func constructValue(t reflect.Type, doc map[string]any, base string, depth int, opt Options, pm PresenceMap) (reflect.Value, Issues) {
	if depth > opt.MaxDepth {
		return reflect.Value{}, singleIssue(pointer(base), CodeMaxDepth, "max nesting depth exceeded")
	}
	if t.Kind() == reflect.Pointer {
		inner, iss := constructValue(t.Elem(), doc, base, depth, opt, pm)
		if len(iss) > 0 {
			return reflect.Value{}, iss
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(inner)
		return p, nil
	}

	schema, err := ResolveSchema(t)
	if err != nil {
		iss, _ := AsIssues(err)
		return reflect.Value{}, iss
	}

	rv := reflect.New(t).Elem()
	var iss Issues
	for i := range schema.Fields {
		f := &schema.Fields[i]
		path := base + "/" + f.Name
		v, ok := doc[f.Name]
		if !ok {
			if !f.HasDefault {
				iss = AppendIssues(iss, Issue{
					Path:    path,
					Code:    CodeRequired,
					Message: fmt.Sprintf("field %q could not be found in the document and has no default value", f.Name),
					Params:  map[string]any{"field": f.Name},
				})
				continue
			}
			// Decode the default literal fresh for every construction so a
			// mutable default is never shared between instances.
			if err := json.Unmarshal(f.Default, rv.Field(f.Index).Addr().Interface()); err != nil {
				iss = AppendIssues(iss, Issue{
					Path:    path,
					Code:    CodeSchema,
					Message: fmt.Sprintf("default literal %q is not valid for field type %s", f.Default, f.Type),
					Cause:   err,
				})
				continue
			}
			markPresence(pm, path, PresenceDefaultApplied)
			continue
		}
		markPresence(pm, path, PresenceSeen)
		iss = append(iss, assignField(rv.Field(f.Index), f, v, path, depth+1, opt, pm)...)
	}
	if len(iss) > 0 {
		return reflect.Value{}, iss
	}
	return rv, nil
}

// assignField stores one document value into an addressable field value,
// recursing for list elements and nested records.
func assignField(fv reflect.Value, f *FieldSpec, v any, path string, depth int, opt Options, pm PresenceMap) Issues {
	if depth > opt.MaxDepth {
		return singleIssue(path, CodeMaxDepth, "max nesting depth exceeded")
	}
	switch f.Kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		fv.SetBool(b)
	case KindString:
		s, ok := v.(string)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		fv.SetString(s)
	case KindNumber:
		n, ok := numberValue(v)
		if !ok || !assignNumber(fv, n) {
			return mismatch(f, v, path, nil)
		}
	case KindList:
		if v == nil {
			// Leave the slice nil so a serialized zero value reconstructs as-is.
			markPresence(pm, path, PresenceWasNull)
			return nil
		}
		list, ok := v.([]any)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		out := reflect.MakeSlice(fv.Type(), len(list), len(list))
		var iss Issues
		for i, ev := range list {
			iss = append(iss, assignField(out.Index(i), f.Elem, ev, fmt.Sprintf("%s/%d", path, i), depth+1, opt, pm)...)
			if opt.FailFast && len(iss) > 0 {
				return iss
			}
		}
		if len(iss) > 0 {
			return iss
		}
		fv.Set(out)
	case KindNested:
		if v == nil {
			if fv.Kind() != reflect.Pointer {
				return mismatch(f, v, path, nil)
			}
			markPresence(pm, path, PresenceWasNull)
			return nil
		}
		sub, ok := v.(map[string]any)
		if !ok {
			return mismatch(f, v, path, nil)
		}
		nested, iss := constructValue(fv.Type(), sub, path, depth+1, opt, pm)
		if len(iss) > 0 {
			// Propagate with the enclosing field visible on the wrapper issue.
			return mismatch(f, v, path, iss)
		}
		fv.Set(nested)
	}
	return nil
}

func markPresence(pm PresenceMap, path string, p Presence) {
	if pm == nil {
		return
	}
	pm[path] |= p
}

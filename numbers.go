package typedjson

import (
	"math"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
)

// numberValue normalizes the number representations a document can carry.
// Decoded documents hold json.Number; hand-built or YAML-normalized documents
// may carry native Go numbers.
func numberValue(v any) (json.Number, bool) {
	switch n := v.(type) {
	case json.Number:
		return n, true
	case float64:
		return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), true
	case float32:
		return json.Number(strconv.FormatFloat(float64(n), 'g', -1, 32)), true
	case int:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(n, 10)), true
	default:
		return "", false
	}
}

// numberFits reports whether n is representable in the numeric field type t
// without cross-kind coercion: integer fields reject fractional values and
// out-of-range magnitudes, json.Number fields accept any JSON number.
func numberFits(t reflect.Type, n json.Number) bool {
	if t == numberType {
		return true
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return false
		}
		return !reflect.New(t).Elem().OverflowInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return false
		}
		return !reflect.New(t).Elem().OverflowUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := n.Float64()
		if err != nil {
			return false
		}
		if t.Kind() == reflect.Float32 && !math.IsInf(f, 0) && math.IsInf(float64(float32(f)), 0) {
			return false
		}
		return true
	default:
		return false
	}
}

// assignNumber stores n into the numeric field value fv. numberFits must have
// accepted the pair already; failures here indicate a caller bug.
func assignNumber(fv reflect.Value, n json.Number) bool {
	if fv.Type() == numberType {
		fv.SetString(n.String())
		return true
	}
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil || fv.OverflowInt(i) {
			return false
		}
		fv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil || fv.OverflowUint(u) {
			return false
		}
		fv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := n.Float64()
		if err != nil {
			return false
		}
		fv.SetFloat(f)
	default:
		return false
	}
	return true
}

package typedjson

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeSchema marks an ineligible target type: the value being mapped is
	// not a struct, or its resolved field keys collide. This is a bug in the
	// caller's type definition, not in the input data.
	CodeSchema = "schema_error"
	// CodeRequired marks a field with no default that is absent from the input.
	CodeRequired = "required"
	// CodeInvalidType marks a field whose JSON value does not match the
	// declared field type, including failed nested validation (see Cause).
	CodeInvalidType = "invalid_type"
	// CodeMaxDepth marks a document or type graph deeper than Options.MaxDepth.
	CodeMaxDepth = "max_depth"
)

// Issue represents a single mapping error.
type Issue struct {
	Path    string // JSON Pointer (for example: /inner/id).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: nested Issues or the underlying decoder error.
	// Params carries structured parameters (e.g., {"expected":"int", "got":"string"})
	// for diagnostics and observability.
	Params map[string]any
}

// Issues is a collection of mapping errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path: message
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes of the collected issues so errors.Is/As can walk
// through nested validation failures.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code anywhere in
// its cause chain. Callers use it to tell type-definition bugs (CodeSchema)
// apart from data problems (CodeRequired, CodeInvalidType) programmatically.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
		if it.Cause != nil && HasCode(it.Cause, code) {
			return true
		}
	}
	return false
}

// LeafIssues returns the deepest issues of the cause chain rooted at err:
// for a nested mismatch this is the set of issues naming the leaf fields that
// ultimately failed. Issues without causes are their own leaves.
func LeafIssues(err error) Issues {
	iss, ok := AsIssues(err)
	if !ok {
		return nil
	}
	var out Issues
	for _, it := range iss {
		if it.Cause != nil {
			if sub := LeafIssues(it.Cause); len(sub) > 0 {
				out = append(out, sub...)
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func singleIssue(path, code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: path, Code: code, Message: msg})
}

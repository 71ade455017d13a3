package typedjson

// DefaultMaxDepth bounds recursion into nested records and list elements.
const DefaultMaxDepth = 1000

// Options bundles mapping options.
type Options struct {
	// MaxDepth caps nesting during validation, construction and
	// serialization so a pathological self-referential type graph fails fast
	// with CodeMaxDepth instead of overflowing the stack. Zero means
	// DefaultMaxDepth.
	MaxDepth int
	// FailFast stops validation at the first issue instead of collecting
	// every field's issues.
	FailFast bool
	// Indent, when non-empty, pretty-prints Dumps output with the given
	// indentation unit.
	Indent string
}

// normalizeOptions applies the last-wins rule for variadic option arguments.
func normalizeOptions(opts []Options) Options {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}

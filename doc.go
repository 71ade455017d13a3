// Package typedjson converts between JSON text and Go struct values using the
// struct's own declaration as the schema:
//
// - Load/Dumps map documents onto exported struct fields (no schema language,
//   no code generation; the type is the schema)
// - A stable error model via Issues (JSON Pointer, code, message, cause chain)
// - Default values via the `default` struct tag, applied when a field is
//   absent from the input
// - Presence metadata (seen / was-null / default-applied) through the
//   WithMeta APIs
//
// Design policy:
// - Keep only public APIs in the root package; put wire-format details under
//   internal/jsonwire and the CLI under cmd/typedjson.
// - Schemas are resolved fresh on every call and never cached; every Load and
//   Dumps invocation is independent and stateless.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct {
//		Name  string `json:"name"`
//		Count int    `default:"0"`
//	}
//
//	u, err := typedjson.Load[User]([]byte(`{"name":"ada"}`))
//	out, err := typedjson.Dumps(u)
//
// Dumps emits fields in declaration order, so repeated calls over an
// unmutated value are byte-identical.
package typedjson

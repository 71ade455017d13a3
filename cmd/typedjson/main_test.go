package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_JSON(t *testing.T) {
	out, err := canonicalize([]byte(`{ "b" : 2, "a" : 1 }`), false, "")
	require.NoError(t, err)
	// Plain maps render with sorted keys, so output is deterministic.
	assert.Equal(t, `{"a":1,"b":2}`, string(out))
}

func TestCanonicalize_JSONIndent(t *testing.T) {
	out, err := canonicalize([]byte(`{"a":1}`), false, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(out))
}

func TestCanonicalize_YAML(t *testing.T) {
	out, err := canonicalize([]byte("b: 2\na: 1\n"), true, "")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, string(out))
}

func TestCanonicalize_Malformed(t *testing.T) {
	_, err := canonicalize([]byte(`{"a":`), false, "")
	require.Error(t, err)
}

func TestCanonicalize_NumberFidelity(t *testing.T) {
	out, err := canonicalize([]byte(`{"n":0.30000000000000004}`), false, "")
	require.NoError(t, err)
	assert.Equal(t, `{"n":0.30000000000000004}`, string(out))
}

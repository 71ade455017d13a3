package typedjson_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typedjson "github.com/reoring/typedjson"
)

func TestJSONSource_DecodesNumbersVerbatim(t *testing.T) {
	doc, err := typedjson.JSONBytes([]byte(`{"n":12345678901234567890,"f":1.5}`)).DecodeDocument()
	require.NoError(t, err)
	m := doc.(map[string]any)
	assert.Equal(t, json.Number("12345678901234567890"), m["n"])
	assert.Equal(t, json.Number("1.5"), m["f"])
}

func TestJSONSource_RejectsTrailingData(t *testing.T) {
	_, err := typedjson.JSONBytes([]byte(`{"a":1} {"b":2}`)).DecodeDocument()
	require.Error(t, err)
}

func TestJSONReader_Source(t *testing.T) {
	doc, err := typedjson.JSONReader(strings.NewReader(`{"a":true}`)).DecodeDocument()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": true}, doc)
}

func TestYAMLSource_NormalizesToJSONShape(t *testing.T) {
	in := strings.TrimSpace(`
name: ada
count: 3
score: 1.5
tags:
  - x
  - y
inner:
  id: 7
`)
	doc, err := typedjson.YAMLBytes([]byte(in)).DecodeDocument()
	require.NoError(t, err)

	m, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", m["name"])
	assert.Equal(t, json.Number("3"), m["count"])
	assert.Equal(t, json.Number("1.5"), m["score"])
	assert.Equal(t, []any{"x", "y"}, m["tags"])
	inner, ok := m["inner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("7"), inner["id"])
}

func TestYAMLSource_MalformedDocument(t *testing.T) {
	_, err := typedjson.YAMLBytes([]byte("a: [unclosed")).DecodeDocument()
	require.Error(t, err)
}

func TestSource_Names(t *testing.T) {
	assert.Equal(t, "json", typedjson.JSONBytes(nil).Name())
	assert.Equal(t, "yaml", typedjson.YAMLBytes(nil).Name())
}

package typedjson_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typedjson "github.com/reoring/typedjson"
)

func TestResolveSchema_FieldKeys(t *testing.T) {
	type sample struct {
		UserName string `json:"login"`
		LastSeen string
		Hidden   string `json:"-"`
		internal string
	}
	_ = sample{internal: ""}

	s, err := typedjson.ResolveSchema(reflect.TypeOf(sample{}))
	require.NoError(t, err)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "login", s.Fields[0].Name)
	assert.Equal(t, "last_seen", s.Fields[1].Name)
}

func TestResolveSchema_DeclarationOrder(t *testing.T) {
	type ordered struct {
		B int `json:"b"`
		A int `json:"a"`
		C int `json:"c"`
	}
	s, err := typedjson.ResolveSchema(reflect.TypeOf(ordered{}))
	require.NoError(t, err)
	keys := []string{s.Fields[0].Name, s.Fields[1].Name, s.Fields[2].Name}
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}

func TestResolveSchema_RejectsNonStruct(t *testing.T) {
	_, err := typedjson.ResolveSchema(reflect.TypeOf(42))
	require.Error(t, err)
	assert.True(t, typedjson.HasCode(err, typedjson.CodeSchema))
}

func TestResolveSchema_RejectsKeyCollision(t *testing.T) {
	type dup struct {
		A string `json:"x"`
		B string `json:"x"`
	}
	_, err := typedjson.ResolveSchema(reflect.TypeOf(dup{}))
	require.Error(t, err)
	assert.True(t, typedjson.HasCode(err, typedjson.CodeSchema))
}

func TestResolveSchema_RejectsUnsupportedFieldTypes(t *testing.T) {
	type withMap struct {
		M map[string]int `json:"m"`
	}
	_, err := typedjson.ResolveSchema(reflect.TypeOf(withMap{}))
	require.Error(t, err)
	assert.True(t, typedjson.HasCode(err, typedjson.CodeSchema))

	type withChan struct {
		C chan int `json:"c"`
	}
	_, err = typedjson.ResolveSchema(reflect.TypeOf(withChan{}))
	require.Error(t, err)
	assert.True(t, typedjson.HasCode(err, typedjson.CodeSchema))
}

func TestResolveSchema_PointerTargetAndNestedLists(t *testing.T) {
	type leaf struct {
		ID int `json:"id"`
	}
	type root struct {
		Grid  [][]int `json:"grid"`
		Items []leaf  `json:"items"`
	}
	s, err := typedjson.ResolveSchema(reflect.TypeOf(&root{}))
	require.NoError(t, err)
	require.Len(t, s.Fields, 2)

	grid := s.Fields[0]
	assert.Equal(t, typedjson.KindList, grid.Kind)
	require.NotNil(t, grid.Elem)
	assert.Equal(t, typedjson.KindList, grid.Elem.Kind)
	require.NotNil(t, grid.Elem.Elem)
	assert.Equal(t, typedjson.KindNumber, grid.Elem.Elem.Kind)

	items := s.Fields[1]
	assert.Equal(t, typedjson.KindList, items.Kind)
	require.NotNil(t, items.Elem)
	assert.Equal(t, typedjson.KindNested, items.Elem.Kind)
}

func TestResolveSchema_DefaultLiterals(t *testing.T) {
	type withDefaults struct {
		Count int    `json:"count" default:"0"`
		Name  string `json:"name" default:"anonymous"`
		Quote string `json:"quote" default:"\"literal\""`
		Flag  string `json:"flag" default:"true"`
	}
	s, err := typedjson.ResolveSchema(reflect.TypeOf(withDefaults{}))
	require.NoError(t, err)

	assert.True(t, s.Fields[0].HasDefault)
	assert.Equal(t, `0`, string(s.Fields[0].Default))
	// Bare text on a string field is quoted into a JSON literal, even when it
	// happens to spell a non-string JSON value.
	assert.Equal(t, `"anonymous"`, string(s.Fields[1].Default))
	assert.Equal(t, `"literal"`, string(s.Fields[2].Default))
	assert.Equal(t, `"true"`, string(s.Fields[3].Default))
}

func TestLoad_StringDefaultIsAlwaysText(t *testing.T) {
	type flags struct {
		Mode string `json:"mode" default:"true"`
		Port string `json:"port" default:"123"`
	}
	v, err := typedjson.Load[flags]([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "true", v.Mode)
	assert.Equal(t, "123", v.Port)
}

func TestValidate_ReportsPerFieldPaths(t *testing.T) {
	type leaf struct {
		ID int `json:"id"`
	}
	type root struct {
		Items []leaf `json:"items"`
	}
	s, err := typedjson.ResolveSchema(reflect.TypeOf(root{}))
	require.NoError(t, err)

	err = s.Validate(map[string]any{
		"items": []any{
			map[string]any{"id": 1},
			map[string]any{"id": "two"},
		},
	})
	require.Error(t, err)
	iss, ok := typedjson.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/items/1", iss[0].Path)

	leaves := typedjson.LeafIssues(err)
	require.NotEmpty(t, leaves)
	assert.Equal(t, "/items/1/id", leaves[0].Path)
}

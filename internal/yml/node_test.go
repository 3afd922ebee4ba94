package yml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesOrder(t *testing.T) {
	root, err := Decode([]byte(`{"b":1,"a":{"z":[1,"x",true,null],"y":2.5}}`))
	require.NoError(t, err)
	require.True(t, root.IsMapping())

	assert.Equal(t, "1", root.Lookup("b").Text())
	assert.Equal(t, `{"z":[1,"x",true,null],"y":2.5}`, root.Lookup("a").Text())
	assert.Equal(t, `{"b":1,"a":{"z":[1,"x",true,null],"y":2.5}}`, root.Text())
}

func TestNode_Lookup(t *testing.T) {
	root, err := Decode([]byte(`{"id":"s1","id":"s2","empty":null,"list":[1,2,3]}`))
	require.NoError(t, err)

	assert.Equal(t, "s2", root.Lookup("id").Text())
	assert.True(t, root.Has("empty"))
	assert.True(t, root.Lookup("empty").IsNull())
	assert.Equal(t, "null", root.Lookup("empty").Text())
	assert.False(t, root.Has("missing"))
	assert.Nil(t, root.Lookup("list").Lookup("x"))
	assert.Equal(t, 3, root.Lookup("list").Len())
	assert.Equal(t, 0, root.Lookup("id").Len())

	var nilNode *Node
	assert.Nil(t, nilNode.Lookup("x"))
	assert.Equal(t, 0, nilNode.Len())
	assert.Equal(t, "", nilNode.Text())
}

func TestNode_Items(t *testing.T) {
	root, err := Decode([]byte(`["a","b","c"]`))
	require.NoError(t, err)

	var visited []string
	err = root.Items(func(index int, node *Node) error {
		visited = append(visited, node.Text())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestNode_Bool(t *testing.T) {
	root, err := Decode([]byte(`{"t":true,"f":false,"s":"true","n":1}`))
	require.NoError(t, err)

	testCases := []struct {
		key       string
		expect    bool
		expectsOK bool
	}{
		{key: "t", expect: true, expectsOK: true},
		{key: "f", expect: false, expectsOK: true},
		{key: "s", expect: false, expectsOK: false},
		{key: "n", expect: false, expectsOK: false},
		{key: "missing", expect: false, expectsOK: false},
	}
	for _, tc := range testCases {
		value, ok := root.Lookup(tc.key).Bool()
		assert.Equal(t, tc.expect, value, tc.key)
		assert.Equal(t, tc.expectsOK, ok, tc.key)
	}
}

func TestNode_TextEscapes(t *testing.T) {
	root, err := Decode([]byte(`{"v":{"q":"say \"hi\"","u":"Bước 1"}}`))
	require.NoError(t, err)
	assert.Equal(t, `{"q":"say \"hi\"","u":"Bước 1"}`, root.Lookup("v").Text())
	assert.Equal(t, `say "hi"`, root.Lookup("v").Lookup("q").Text())
}

func TestDecode_JSONText(t *testing.T) {
	longKey := strings.Repeat("k", 1100)
	testCases := []struct {
		name   string
		data   string
		key    string
		expect string
	}{
		{name: "escaped solidus", data: `{"url":"https:\/\/host\/t.docx"}`, key: "url", expect: "https://host/t.docx"},
		{name: "unicode escape", data: `{"u":"B\u01b0\u1edbc"}`, key: "u", expect: "Bước"},
		{name: "long key", data: `{"` + longKey + `":"v"}`, key: longKey, expect: "v"},
		{name: "tab indentation", data: "{\n\t\"id\":\t\"s1\"\n}", key: "id", expect: "s1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := Decode([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, root.Lookup(tc.key).Text())
		})
	}
}

func TestDecode_ScalarRoot(t *testing.T) {
	root, err := Decode([]byte(`null`))
	require.NoError(t, err)
	assert.True(t, root.IsNull())
	assert.False(t, root.IsMapping())
	assert.Nil(t, root.Lookup("relatives"))
}

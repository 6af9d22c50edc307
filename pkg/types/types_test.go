package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAccessors(t *testing.T) {
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "20",
		"count": 42,
		"ratio": 1.5,
		"quoted": "7",
		"nested": {"key": "value"},
		"list": [1, "two"],
		"ids": ["1", "2"],
		"empty": null
	}`), &obj))

	assert.Equal(t, "20", obj.GetString("id"))
	assert.Equal(t, "", obj.GetString("count"))
	assert.Equal(t, "fallback", obj.Get("missing", "fallback"))
	assert.Nil(t, obj.Get("empty", "fallback"))

	assert.True(t, obj.Has("empty"))
	assert.False(t, obj.Has("missing"))

	n, ok := obj.GetInt("count")
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	n, ok = obj.GetInt("quoted")
	require.True(t, ok)
	assert.Equal(t, int64(7), n)

	_, ok = obj.GetInt("id")
	assert.True(t, ok) // "20" parses
	_, ok = obj.GetInt("nested")
	assert.False(t, ok)

	nested := obj.GetObject("nested")
	require.NotNil(t, nested)
	assert.Equal(t, "value", nested.GetString("key"))
	assert.Nil(t, obj.GetObject("id"))

	assert.Len(t, obj.GetList("list"), 2)
	assert.Equal(t, []string{"1", "2"}, obj.GetStrings("ids"))
}

func TestDeepCopyIndependence(t *testing.T) {
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "1",
		"nested": {"inner": {"flag": true}},
		"list": [{"id": "a"}]
	}`), &obj))

	clone := obj.Clone()
	clone.GetObject("nested").GetObject("inner")["flag"] = false
	clone.GetList("list")[0].(Object)["id"] = "b"
	clone["added"] = 1

	assert.Equal(t, true, obj.GetObject("nested").GetObject("inner")["flag"])
	inner, ok := obj.GetList("list")[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a", inner["id"])
	assert.False(t, obj.Has("added"))
}

func TestDeepCopyNormalizesMaps(t *testing.T) {
	// Nested plain maps come back as Object so accessors chain.
	copied := DeepCopy(map[string]any{"a": map[string]any{"b": "c"}})
	obj, ok := copied.(Object)
	require.True(t, ok)
	assert.Equal(t, "c", obj.GetObject("a").GetString("b"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "abc", Key("abc"))
	assert.Equal(t, "1503", Key(float64(1503)))
	assert.Equal(t, "1.5", Key(1.5))
	assert.Equal(t, "42", Key(int64(42)))
	assert.Equal(t, "7", Key(7))
	assert.Equal(t, "", Key(nil))
	assert.Equal(t, "", Key([]any{}))
}

func TestMeta(t *testing.T) {
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{
		"result_count": 10,
		"next_token": "b26v89c19zqg8o3f",
		"previous_token": "77qpymm88g5h9vqkluu"
	}`), &obj))
	meta := Meta(obj)

	assert.Equal(t, "b26v89c19zqg8o3f", meta.NextToken())
	assert.Equal(t, "77qpymm88g5h9vqkluu", meta.PreviousToken())
	assert.Equal(t, 10, meta.ResultCount())

	empty := Meta{}
	assert.Equal(t, "", empty.NextToken())
	assert.Equal(t, 0, empty.ResultCount())
}

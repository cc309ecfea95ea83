package flatten

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/journalgate/pkg/models"
)

func TestObjectScalars(t *testing.T) {
	rec := Object(map[string]interface{}{
		"message": "hello",
		"count":   float64(3),
		"ok":      true,
		"gone":    nil,
	})

	expected := models.Record{
		{Name: "count", Value: models.FloatValue(3)},
		{Name: "gone", Value: models.NullValue()},
		{Name: "message", Value: models.TextValue("hello")},
		{Name: "ok", Value: models.BoolValue(true)},
	}

	assert.Equal(t, expected, rec)
}

func TestObjectNested(t *testing.T) {
	var obj map[string]interface{}

	payload := `{"http":{"status":200,"request":{"path":"/v1/ping"}},"tags":["a","b"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &obj))

	rec := Object(obj)

	expected := models.Record{
		{Name: "http.request.path", Value: models.TextValue("/v1/ping")},
		{Name: "http.status", Value: models.FloatValue(200)},
		{Name: "tags.0", Value: models.TextValue("a")},
		{Name: "tags.1", Value: models.TextValue("b")},
	}

	assert.Equal(t, expected, rec)
}

func TestObjectNeverEmitsCollections(t *testing.T) {
	var obj map[string]interface{}

	payload := `{"deep":{"deeper":{"list":[{"k":"v"},[1,2]]}},"empty_obj":{},"empty_list":[]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &obj))

	for _, f := range Object(obj) {
		assert.False(t, f.Value.IsCollection(), "field %s is a collection", f.Name)
	}
}

func TestObjectTypedGoValues(t *testing.T) {
	ts := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	rec := Object(map[string]interface{}{
		"raw":  []byte{0x1},
		"at":   ts,
		"size": int64(9),
	})

	expected := models.Record{
		{Name: "at", Value: models.TimeValue(ts)},
		{Name: "raw", Value: models.BytesValue([]byte{0x1})},
		{Name: "size", Value: models.IntValue(9)},
	}

	assert.Equal(t, expected, rec)
}

func TestObjectDeterministicOrder(t *testing.T) {
	obj := map[string]interface{}{"b": "2", "a": "1", "c": "3"}

	first := Object(obj)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Object(obj))
	}
}

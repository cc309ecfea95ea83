package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueConstructors(t *testing.T) {
	ts := time.Now()

	assert.Equal(t, KindBytes, BytesValue([]byte{1}).Kind)
	assert.Equal(t, KindText, TextValue("x").Kind)
	assert.Equal(t, KindInt, IntValue(1).Kind)
	assert.Equal(t, KindFloat, FloatValue(1.5).Kind)
	assert.Equal(t, KindBool, BoolValue(true).Kind)
	assert.Equal(t, KindTime, TimeValue(ts).Kind)
	assert.Equal(t, KindNull, NullValue().Kind)
}

func TestValueIsCollection(t *testing.T) {
	assert.True(t, ListValue().IsCollection())
	assert.True(t, MapValue().IsCollection())
	assert.False(t, TextValue("x").IsCollection())
	assert.False(t, NullValue().IsCollection())
}

func TestRecordAddPreservesOrder(t *testing.T) {
	rec := Record{}
	rec = rec.Add("b", TextValue("2"))
	rec = rec.Add("a", TextValue("1"))

	assert.Equal(t, "b", rec[0].Name)
	assert.Equal(t, "a", rec[1].Name)
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "map", KindMap.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", ValueKind(200).String())
}

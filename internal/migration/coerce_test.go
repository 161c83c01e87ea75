package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPickValue(t *testing.T) {
	doc := bson.M{"surveyId": "s1", "survey": "s2", "empty": nil}

	assert.Equal(t, "s1", PickValue(doc, "survey_id", "surveyId", "survey"))
	assert.Equal(t, "s2", PickValue(doc, "survey"))
	// nil values do not count as present
	assert.Nil(t, PickValue(doc, "empty"))
	assert.Nil(t, PickValue(doc, "missing"))
}

func TestPickString(t *testing.T) {
	doc := bson.M{"qno": 3, "text": "  padded  "}

	assert.Equal(t, "3", PickString(doc, "qno"))
	assert.Equal(t, "padded", PickString(doc, "text"))
	assert.Equal(t, "", PickString(doc, "missing"))
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{float64(1.5), 1.5, true},
		{float32(2), 2, true},
		{int(3), 3, true},
		{int32(4), 4, true},
		{int64(5), 5, true},
		{"42", 42, true},
		{" 7.25 ", 7.25, true},
		{"red", 0, false},
		{"", 0, false},
		{nil, 0, false},
		// booleans read better as text than as 0/1
		{true, 0, false},
		{false, 0, false},
	}
	for _, c := range cases {
		got, ok := ToFloat(c.in)
		assert.Equal(t, c.ok, ok, "input %v", c.in)
		if c.ok {
			assert.Equal(t, c.want, got, "input %v", c.in)
		}
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, toBool(true))
	assert.True(t, toBool("true"))
	assert.True(t, toBool("yes"))
	assert.True(t, toBool("1"))
	assert.True(t, toBool(1))
	assert.False(t, toBool(false))
	assert.False(t, toBool("no"))
	assert.False(t, toBool(0))
	assert.False(t, toBool(nil))
}

func TestAsSliceAndAsMap(t *testing.T) {
	assert.Len(t, asSlice(bson.A{1, 2}), 2)
	assert.Len(t, asSlice([]interface{}{1}), 1)
	assert.Nil(t, asSlice("nope"))

	assert.NotNil(t, asMap(bson.M{"a": 1}))
	assert.NotNil(t, asMap(map[string]interface{}{"a": 1}))
	assert.Nil(t, asMap(bson.A{}))
}

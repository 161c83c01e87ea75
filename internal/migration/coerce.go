package migration

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// PickValue probes doc for the first candidate key holding a non-nil value.
// Legacy documents spell the same field several ways; callers list the
// spellings in priority order.
func PickValue(doc bson.M, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := doc[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// PickString probes candidate keys and stringifies the first hit, trimmed.
func PickString(doc bson.M, keys ...string) string {
	v := PickValue(doc, keys...)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// trimString stringifies and trims a raw value; nil stays nil.
func trimString(v interface{}) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	return &s
}

// foldString normalizes a raw value for case/whitespace-insensitive matching.
func foldString(v interface{}) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
}

// ToFloat converts bson scalars and numeric strings to float64. Booleans are
// not numbers here: a legacy true/false answer reads better as text.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toInt coerces order/sequence-number fields.
func toInt(v interface{}) (int, bool) {
	f, ok := ToFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// toBool accepts the truthy encodings legacy writers used for flags.
func toBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "1", "t", "true", "y", "yes":
			return true
		}
		return false
	default:
		f, ok := ToFloat(v)
		return ok && f != 0
	}
}

// asSlice normalizes bson arrays regardless of how the driver decoded them.
func asSlice(v interface{}) []interface{} {
	switch a := v.(type) {
	case bson.A:
		return a
	case []interface{}:
		return a
	}
	return nil
}

// asMap normalizes bson documents regardless of how the driver decoded them.
func asMap(v interface{}) bson.M {
	switch m := v.(type) {
	case bson.M:
		return m
	case map[string]interface{}:
		return bson.M(m)
	}
	return nil
}

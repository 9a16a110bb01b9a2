package protocol

import (
	"encoding/json"
	"strconv"
)

// Field appends a JSON key to a dot/bracket field path.
func Field(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// Index appends a list index to a field path.
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// JSONKind names the native JSON kind of a decoded value, as used in
// TypeMismatch reports.
func JSONKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case json.Number, float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return "unknown"
	}
}

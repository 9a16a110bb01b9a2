package primitive

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/danmuck/ocppcodec/internal/protocol"
)

// DecodeInteger reads an integral JSON number. Integral floats such as 300.0
// are accepted; fractions and values outside int64 are a TypeMismatch.
func DecodeInteger(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, notInteger(v)
		}
		return integral(f, v)
	case float64:
		return integral(n, v)
	case float32:
		return integral(float64(n), v)
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, notInteger(v)
		}
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, notInteger(v)
		}
		return int64(n), nil
	default:
		return 0, notInteger(v)
	}
}

func integral(f float64, raw any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, notInteger(raw)
	}
	return int64(f), nil
}

func notInteger(v any) error {
	return &protocol.TypeMismatchError{Expected: "integer", Actual: protocol.JSONKind(v)}
}

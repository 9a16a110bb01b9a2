package primitive

import (
	"encoding/json"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/shopspring/decimal"
)

// EncodeDecimal rounds d half-to-even to places fractional digits and returns
// it as a JSON number literal. Trailing zeros are not emitted.
func EncodeDecimal(d decimal.Decimal, places int32) json.Number {
	return json.Number(d.RoundBank(places).String())
}

// DecodeDecimal accepts any JSON number. A json.Number keeps its full textual
// precision; Go floats convert through their shortest representation.
func DecodeDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(string(n))
		if err != nil {
			return decimal.Decimal{}, &protocol.TypeMismatchError{Expected: "number", Actual: "string"}
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Decimal{}, &protocol.TypeMismatchError{Expected: "number", Actual: protocol.JSONKind(v)}
	}
}

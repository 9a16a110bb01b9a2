package primitive

import (
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
)

// EncodeEnum returns the declared literal for lit.
func EncodeEnum(e *schema.Enum, lit string) (string, error) {
	if !e.Contains(lit) {
		return "", invalidEnum(e, lit)
	}
	return lit, nil
}

// DecodeEnum matches a JSON string against the closed literal set of e.
func DecodeEnum(e *schema.Enum, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &protocol.TypeMismatchError{Expected: "string", Actual: protocol.JSONKind(v)}
	}
	if !e.Contains(s) {
		return "", invalidEnum(e, s)
	}
	return s, nil
}

func invalidEnum(e *schema.Enum, received string) error {
	return &protocol.InvalidEnumValueError{
		Enum:     e.Name,
		Received: received,
		Allowed:  append([]string(nil), e.Literals...),
	}
}

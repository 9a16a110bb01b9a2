package structure

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/primitive"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/shopspring/decimal"
)

// ErrPayloadType is returned when a payload value is not of the struct type
// bound to the definition it is coded against.
var ErrPayloadType = errors.New("structure: payload does not match definition")

// Serialize converts v, a value of the struct bound to t or a pointer to one,
// into a JSON object. Absent optional fields and empty optional lists are
// omitted. An empty required list is reported as a missing field; enum and
// constraint checks run on the way out as well.
func Serialize(v any, t *schema.Type) (map[string]any, error) {
	rv, err := payloadValue(v, t)
	if err != nil {
		return nil, err
	}
	return encodeObject(rv, t, "")
}

func payloadValue(v any, t *schema.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil %s for %s", ErrPayloadType, rv.Type(), t)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != t.GoType() {
		return reflect.Value{}, fmt.Errorf("%w: %T for %s (want %s)", ErrPayloadType, v, t, t.GoType())
	}
	return rv, nil
}

func encodeObject(rv reflect.Value, t *schema.Type, path string) (map[string]any, error) {
	out := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		fv := rv.FieldByIndex(f.Index())
		fpath := protocol.Field(path, f.Key)

		if f.Value.Kind == schema.KindList {
			if fv.Len() == 0 {
				if f.Required {
					return nil, &protocol.MissingFieldError{Path: fpath, Field: f.Key}
				}
				continue
			}
			list, err := encodeList(fv, *f.Value.Elem, f.Constraints, fpath)
			if err != nil {
				return nil, err
			}
			out[f.Key] = list
			continue
		}

		if !f.Required {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		enc, err := encodeValue(fv, f.Value, f.Constraints, fpath)
		if err != nil {
			return nil, err
		}
		out[f.Key] = enc
	}
	return out, nil
}

func encodeList(fv reflect.Value, elem schema.Value, c schema.Constraints, path string) ([]any, error) {
	if err := primitive.CheckItems(fv.Len(), c); err != nil {
		return nil, protocol.AtPath(err, path)
	}
	list := make([]any, fv.Len())
	for i := range list {
		enc, err := encodeValue(fv.Index(i), elem, c, protocol.Index(path, i))
		if err != nil {
			return nil, err
		}
		list[i] = enc
	}
	return list, nil
}

func encodeValue(fv reflect.Value, v schema.Value, c schema.Constraints, path string) (any, error) {
	switch v.Kind {
	case schema.KindString:
		s := fv.String()
		if err := primitive.CheckString(s, c); err != nil {
			return nil, protocol.AtPath(err, path)
		}
		return s, nil
	case schema.KindInteger:
		n := fv.Int()
		if err := primitive.CheckInteger(n, c); err != nil {
			return nil, protocol.AtPath(err, path)
		}
		return n, nil
	case schema.KindBoolean:
		return fv.Bool(), nil
	case schema.KindTimestamp:
		return primitive.EncodeTimestamp(fv.Interface().(time.Time)), nil
	case schema.KindDecimal:
		d := fv.Interface().(decimal.Decimal)
		if err := primitive.CheckDecimal(d, c); err != nil {
			return nil, protocol.AtPath(err, path)
		}
		return primitive.EncodeDecimal(d, v.Places), nil
	case schema.KindEnum:
		s, err := primitive.EncodeEnum(v.Enum, fv.String())
		if err != nil {
			return nil, protocol.AtPath(err, path)
		}
		return s, nil
	case schema.KindComplex:
		return encodeObject(fv, v.Type, path)
	case schema.KindList:
		return encodeList(fv, *v.Elem, schema.Constraints{}, path)
	default:
		panic(fmt.Sprintf("structure: cannot encode kind %s at %s", v.Kind, path))
	}
}

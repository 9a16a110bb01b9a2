package structure

import (
	"fmt"
	"reflect"

	logs "github.com/danmuck/ocppcodec/internal/logging"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/primitive"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
)

// Deserialize builds a new value of the struct bound to t from a JSON object
// and returns a pointer to it. null counts as absent, unknown keys are
// ignored and an empty optional list decodes to nil. On failure nothing is
// returned; the error carries the dotted path of the offending field.
func Deserialize(data any, t *schema.Type) (any, error) {
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, &protocol.TypeMismatchError{Expected: "object", Actual: protocol.JSONKind(data)}
	}
	out := reflect.New(t.GoType())
	if err := decodeObject(obj, out.Elem(), t, ""); err != nil {
		logs.Tracef("structure.Deserialize type=%s err=%v", t, err)
		return nil, err
	}
	return out.Interface(), nil
}

// DeserializeAs is Deserialize with the result typed. T must be the struct
// bound to t.
func DeserializeAs[T any](data any, t *schema.Type) (*T, error) {
	if want := reflect.TypeOf((*T)(nil)).Elem(); want != t.GoType() {
		return nil, fmt.Errorf("%w: %s for %s (want %s)", ErrPayloadType, want, t, t.GoType())
	}
	v, err := Deserialize(data, t)
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func decodeObject(obj map[string]any, dst reflect.Value, t *schema.Type, path string) error {
	for _, f := range t.Fields {
		fpath := protocol.Field(path, f.Key)
		raw, present := obj[f.Key]
		if !present || raw == nil {
			if f.Required {
				return &protocol.MissingFieldError{Path: fpath, Field: f.Key}
			}
			continue
		}
		fv := dst.FieldByIndex(f.Index())

		if f.Value.Kind == schema.KindList {
			arr, ok := raw.([]any)
			if !ok {
				return &protocol.TypeMismatchError{Path: fpath, Expected: "array", Actual: protocol.JSONKind(raw)}
			}
			if len(arr) == 0 {
				if f.Required {
					return &protocol.MissingFieldError{Path: fpath, Field: f.Key}
				}
				continue
			}
			list, err := decodeList(arr, fv.Type(), *f.Value.Elem, f.Constraints, fpath)
			if err != nil {
				return err
			}
			fv.Set(list)
			continue
		}

		if f.Required {
			if err := decodeValue(raw, fv, f.Value, f.Constraints, fpath); err != nil {
				return err
			}
			continue
		}
		ptr := reflect.New(fv.Type().Elem())
		if err := decodeValue(raw, ptr.Elem(), f.Value, f.Constraints, fpath); err != nil {
			return err
		}
		fv.Set(ptr)
	}
	return nil
}

func decodeList(arr []any, st reflect.Type, elem schema.Value, c schema.Constraints, path string) (reflect.Value, error) {
	if err := primitive.CheckItems(len(arr), c); err != nil {
		return reflect.Value{}, protocol.AtPath(err, path)
	}
	list := reflect.MakeSlice(st, len(arr), len(arr))
	for i, raw := range arr {
		if err := decodeValue(raw, list.Index(i), elem, c, protocol.Index(path, i)); err != nil {
			return reflect.Value{}, err
		}
	}
	return list, nil
}

func decodeValue(raw any, dst reflect.Value, v schema.Value, c schema.Constraints, path string) error {
	switch v.Kind {
	case schema.KindString:
		s, ok := raw.(string)
		if !ok {
			return &protocol.TypeMismatchError{Path: path, Expected: "string", Actual: protocol.JSONKind(raw)}
		}
		if err := primitive.CheckString(s, c); err != nil {
			return protocol.AtPath(err, path)
		}
		dst.SetString(s)
	case schema.KindInteger:
		n, err := primitive.DecodeInteger(raw)
		if err != nil {
			return protocol.AtPath(err, path)
		}
		if dst.OverflowInt(n) {
			return &protocol.TypeMismatchError{Path: path, Expected: dst.Type().String(), Actual: "number"}
		}
		if err := primitive.CheckInteger(n, c); err != nil {
			return protocol.AtPath(err, path)
		}
		dst.SetInt(n)
	case schema.KindBoolean:
		b, ok := raw.(bool)
		if !ok {
			return &protocol.TypeMismatchError{Path: path, Expected: "boolean", Actual: protocol.JSONKind(raw)}
		}
		dst.SetBool(b)
	case schema.KindTimestamp:
		ts, err := primitive.DecodeTimestamp(raw)
		if err != nil {
			return protocol.AtPath(err, path)
		}
		dst.Set(reflect.ValueOf(ts))
	case schema.KindDecimal:
		d, err := primitive.DecodeDecimal(raw)
		if err != nil {
			return protocol.AtPath(err, path)
		}
		if err := primitive.CheckDecimal(d, c); err != nil {
			return protocol.AtPath(err, path)
		}
		dst.Set(reflect.ValueOf(d))
	case schema.KindEnum:
		s, err := primitive.DecodeEnum(v.Enum, raw)
		if err != nil {
			return protocol.AtPath(err, path)
		}
		dst.SetString(s)
	case schema.KindComplex:
		obj, ok := raw.(map[string]any)
		if !ok {
			return &protocol.TypeMismatchError{Path: path, Expected: "object", Actual: protocol.JSONKind(raw)}
		}
		return decodeObject(obj, dst, v.Type, path)
	case schema.KindList:
		arr, ok := raw.([]any)
		if !ok {
			return &protocol.TypeMismatchError{Path: path, Expected: "array", Actual: protocol.JSONKind(raw)}
		}
		list, err := decodeList(arr, dst.Type(), *v.Elem, schema.Constraints{}, path)
		if err != nil {
			return err
		}
		dst.Set(list)
	default:
		panic(fmt.Sprintf("structure: cannot decode kind %s at %s", v.Kind, path))
	}
	return nil
}

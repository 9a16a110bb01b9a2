package schema

import (
	"fmt"
	"reflect"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf((*time.Time)(nil)).Elem()
	decimalType = reflect.TypeOf((*decimal.Decimal)(nil)).Elem()
)

// Type is a message type definition: an ordered set of field descriptors bound
// to one Go struct type. Version and Direction are stamped when the type joins
// a Catalog; Direction stays zero for nested datatypes.
type Type struct {
	Name      string
	Version   protocol.Version
	Direction protocol.Direction
	Action    string
	Fields    []Field

	goType reflect.Type
	byKey  map[string]int
}

// Define binds a definition to struct type T. A descriptor that does not match
// T (missing field, incompatible Go type, duplicate key) panics.
func Define[T any](name string, fields ...Field) *Type {
	t := &Type{
		Name:   name,
		Fields: append([]Field(nil), fields...),
		goType: reflect.TypeOf((*T)(nil)).Elem(),
		byKey:  make(map[string]int, len(fields)),
	}
	t.bind()
	return t
}

// GoType is the struct type values of this definition have.
func (t *Type) GoType() reflect.Type {
	return t.goType
}

// Field returns the descriptor with the given JSON key.
func (t *Type) Field(key string) (Field, bool) {
	i, ok := t.byKey[key]
	if !ok {
		return Field{}, false
	}
	return t.Fields[i], true
}

// New allocates a zero value of the bound struct and returns a pointer to it.
func (t *Type) New() any {
	return reflect.New(t.goType).Interface()
}

func (t *Type) String() string {
	if t.Action == "" {
		return t.Name
	}
	return fmt.Sprintf("%s %s.%s", t.Version, t.Action, t.Direction)
}

func (t *Type) bind() {
	if t.goType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: %s bound to non-struct %s", t.Name, t.goType))
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Key == "" {
			panic(fmt.Sprintf("schema: %s field %s has no JSON key", t.Name, f.Name))
		}
		if _, dup := t.byKey[f.Key]; dup {
			panic(fmt.Sprintf("schema: %s declares key %q twice", t.Name, f.Key))
		}
		t.byKey[f.Key] = i

		sf, ok := t.goType.FieldByName(f.Name)
		if !ok || !sf.IsExported() {
			panic(fmt.Sprintf("schema: %s has no exported field %s", t.goType, f.Name))
		}
		if err := checkField(*f, sf.Type); err != nil {
			panic(fmt.Sprintf("schema: %s.%s: %v", t.Name, f.Name, err))
		}
		f.index = sf.Index
	}
}

func checkField(f Field, rt reflect.Type) error {
	if f.Value.Kind == KindList {
		if rt.Kind() != reflect.Slice {
			return fmt.Errorf("%s needs a slice, struct has %s", f.Value.Name(), rt)
		}
		return checkValue(f.Value, rt)
	}
	if !f.Required {
		if rt.Kind() != reflect.Pointer {
			return fmt.Errorf("optional %s needs a pointer, struct has %s", f.Value.Name(), rt)
		}
		rt = rt.Elem()
	}
	return checkValue(f.Value, rt)
}

func checkValue(v Value, rt reflect.Type) error {
	ok := false
	switch v.Kind {
	case KindString:
		ok = rt.Kind() == reflect.String
	case KindInteger:
		switch rt.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ok = true
		}
	case KindBoolean:
		ok = rt.Kind() == reflect.Bool
	case KindTimestamp:
		ok = rt == timeType
	case KindDecimal:
		ok = rt == decimalType
	case KindEnum:
		ok = v.Enum != nil && rt.Kind() == reflect.String &&
			(v.Enum.goType == nil || rt == v.Enum.goType)
	case KindComplex:
		ok = v.Type != nil && rt == v.Type.goType
	case KindList:
		if v.Elem == nil || rt.Kind() != reflect.Slice {
			break
		}
		return checkValue(*v.Elem, rt.Elem())
	default:
		return fmt.Errorf("unknown kind %s", v.Kind)
	}
	if !ok {
		return fmt.Errorf("%s cannot be held in %s", v.Name(), rt)
	}
	return nil
}

package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the value kind of a field descriptor.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInteger
	KindBoolean
	KindTimestamp
	KindDecimal
	KindEnum
	KindComplex
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	case KindDecimal:
		return "decimal"
	case KindEnum:
		return "enum"
	case KindComplex:
		return "complex"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DefaultDecimalPlaces is the fractional digit count kept when encoding decimals.
const DefaultDecimalPlaces int32 = 6

// Value describes the kind of a field value. Enum, Type and Elem are set for
// enum, complex and list kinds respectively.
type Value struct {
	Kind   Kind
	Enum   *Enum
	Type   *Type
	Elem   *Value
	Places int32
}

func String() Value    { return Value{Kind: KindString} }
func Integer() Value   { return Value{Kind: KindInteger} }
func Boolean() Value   { return Value{Kind: KindBoolean} }
func Timestamp() Value { return Value{Kind: KindTimestamp} }

func Decimal() Value {
	return Value{Kind: KindDecimal, Places: DefaultDecimalPlaces}
}

// DecimalPlaces is a decimal kind rounded to places fractional digits on encode.
func DecimalPlaces(places int32) Value {
	return Value{Kind: KindDecimal, Places: places}
}

func EnumOf(e *Enum) Value {
	if e == nil {
		panic("schema: EnumOf(nil)")
	}
	return Value{Kind: KindEnum, Enum: e}
}

func ComplexOf(t *Type) Value {
	if t == nil {
		panic("schema: ComplexOf(nil)")
	}
	return Value{Kind: KindComplex, Type: t}
}

func ListOf(elem Value) Value {
	return Value{Kind: KindList, Elem: &elem}
}

// Name renders the kind the way field descriptors are documented, e.g.
// list<complex<MeterValue>>.
func (v Value) Name() string {
	switch v.Kind {
	case KindEnum:
		return "enum<" + v.Enum.Name + ">"
	case KindComplex:
		return "complex<" + v.Type.Name + ">"
	case KindList:
		return "list<" + v.Elem.Name() + ">"
	default:
		return v.Kind.String()
	}
}

// Enum is a closed set of string literals.
type Enum struct {
	Name     string
	Literals []string
	set      map[string]struct{}
	goType   reflect.Type
}

// NewEnum declares an enumeration. Duplicate or empty literals panic.
func NewEnum(name string, literals ...string) *Enum {
	e := &Enum{
		Name:     name,
		Literals: append([]string(nil), literals...),
		set:      make(map[string]struct{}, len(literals)),
	}
	for _, lit := range literals {
		if lit == "" {
			panic(fmt.Sprintf("schema: enum %s declares an empty literal", name))
		}
		if _, dup := e.set[lit]; dup {
			panic(fmt.Sprintf("schema: enum %s declares %q twice", name, lit))
		}
		e.set[lit] = struct{}{}
	}
	return e
}

// NewEnumOf declares an enumeration from the constants of a named string type.
func NewEnumOf[T ~string](name string, literals ...T) *Enum {
	raw := make([]string, len(literals))
	for i, lit := range literals {
		raw[i] = string(lit)
	}
	e := NewEnum(name, raw...)
	e.goType = reflect.TypeOf((*T)(nil)).Elem()
	return e
}

// GoType is the named string type the literals were declared with, or nil
// for enums built by NewEnum.
func (e *Enum) GoType() reflect.Type {
	return e.goType
}

// Contains reports whether s is one of the declared literals (case-sensitive).
func (e *Enum) Contains(s string) bool {
	_, ok := e.set[s]
	return ok
}

func (e *Enum) String() string {
	return e.Name + "{" + strings.Join(e.Literals, ",") + "}"
}

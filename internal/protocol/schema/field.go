package schema

// Constraints narrows the legal values of a field beyond its kind.
type Constraints struct {
	MaxLength   int
	MaxItems    int
	NonNegative bool
	Positive    bool
	Identifier  bool
	MaxPlaces   int32
}

// Field is one field descriptor: the Go struct field Name, its JSON Key, the
// value kind and whether the field must be present.
type Field struct {
	Name        string
	Key         string
	Value       Value
	Required    bool
	Constraints Constraints

	index []int
}

func Required(name, key string, v Value) Field {
	return Field{Name: name, Key: key, Value: v, Required: true}
}

func Optional(name, key string, v Value) Field {
	return Field{Name: name, Key: key, Value: v}
}

// MaxLen bounds string length; on list fields it applies to each element.
func (f Field) MaxLen(n int) Field {
	f.Constraints.MaxLength = n
	return f
}

func (f Field) MaxItems(n int) Field {
	f.Constraints.MaxItems = n
	return f
}

func (f Field) NonNegative() Field {
	f.Constraints.NonNegative = true
	return f
}

func (f Field) Positive() Field {
	f.Constraints.Positive = true
	return f
}

// Identifier restricts strings to the OCPP identifier character set.
func (f Field) Identifier() Field {
	f.Constraints.Identifier = true
	return f
}

// MaxPlaces rejects decimals with more than n fractional digits, both ways,
// instead of rounding them.
func (f Field) MaxPlaces(n int32) Field {
	f.Constraints.MaxPlaces = n
	return f
}

// Index is the reflect field index of the bound struct field.
func (f Field) Index() []int {
	return f.index
}

package primitive

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/shopspring/decimal"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9*_=:+|@.\-]*$`)

// CheckString enforces MaxLength (in characters) and Identifier.
func CheckString(s string, c schema.Constraints) error {
	if c.MaxLength > 0 && utf8.RuneCountInString(s) > c.MaxLength {
		return violation("maxLength="+strconv.Itoa(c.MaxLength), s)
	}
	if c.Identifier && !identifierPattern.MatchString(s) {
		return violation("identifier", s)
	}
	return nil
}

// CheckInteger enforces NonNegative and Positive.
func CheckInteger(n int64, c schema.Constraints) error {
	if c.Positive && n <= 0 {
		return violation("positive", n)
	}
	if c.NonNegative && n < 0 {
		return violation("nonNegative", n)
	}
	return nil
}

// CheckDecimal enforces MaxPlaces: d must already fit the allowed number of
// fractional digits.
func CheckDecimal(d decimal.Decimal, c schema.Constraints) error {
	if c.MaxPlaces > 0 && !d.Equal(d.Truncate(c.MaxPlaces)) {
		return violation("maxPlaces="+strconv.Itoa(int(c.MaxPlaces)), d.String())
	}
	return nil
}

// CheckItems enforces MaxItems on a list length.
func CheckItems(n int, c schema.Constraints) error {
	if c.MaxItems > 0 && n > c.MaxItems {
		return violation("maxItems="+strconv.Itoa(c.MaxItems), n)
	}
	return nil
}

func violation(constraint string, v any) error {
	return &protocol.ConstraintViolationError{Constraint: constraint, Value: v}
}

package primitive

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/danmuck/ocppcodec/internal/testutil/testlog"
	"github.com/shopspring/decimal"
)

func TestDecodeTimestampAcceptsOCPPForms(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2013-02-01T20:53:32.486000+00:00", time.Date(2013, 2, 1, 20, 53, 32, 486000000, time.UTC)},
		{"2013-02-01T20:53:32.486Z", time.Date(2013, 2, 1, 20, 53, 32, 486000000, time.UTC)},
		{"2013-02-01T20:53:32Z", time.Date(2013, 2, 1, 20, 53, 32, 0, time.UTC)},
		{"2019-01-30T12:30Z", time.Date(2019, 1, 30, 12, 30, 0, 0, time.UTC)},
		{"2013-02-01T22:53:32+02:00", time.Date(2013, 2, 1, 20, 53, 32, 0, time.UTC)},
		{"2013-02-01T20:53:32", time.Date(2013, 2, 1, 20, 53, 32, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := DecodeTimestamp(tc.in)
		if err != nil {
			t.Fatalf("decode %q: %v", tc.in, err)
		}
		if !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Fatalf("decode %q: got=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestDecodeTimestampKeepsMicroseconds(t *testing.T) {
	testlog.Start(t)
	got, err := DecodeTimestamp("2013-02-01T20:53:32.486000+00:00")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if us := got.Nanosecond() / 1000; us != 486000 {
		t.Fatalf("microsecond=%d want 486000", us)
	}
}

func TestDecodeTimestampRejectsGarbage(t *testing.T) {
	testlog.Start(t)
	_, err := DecodeTimestamp("yesterday")
	if !errors.Is(err, protocol.ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
	_, err = DecodeTimestamp(json.Number("12"))
	if !errors.Is(err, protocol.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for number, got %v", err)
	}
}

func TestEncodeTimestampUsesNumericUTCOffset(t *testing.T) {
	testlog.Start(t)
	zone := time.FixedZone("CET", 3600)
	in := time.Date(2013, 2, 1, 21, 53, 32, 486000999, zone)
	if got, want := EncodeTimestamp(in), "2013-02-01T20:53:32.486000+00:00"; got != want {
		t.Fatalf("encode: got=%q want=%q", got, want)
	}
	back, err := DecodeTimestamp(EncodeTimestamp(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !back.Equal(in.Truncate(time.Microsecond)) {
		t.Fatalf("round trip: got=%v want=%v", back, in)
	}
}

func TestEncodeDecimalRoundsHalfEven(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"1.23456789": "1.234568",
		"0.0000005":  "0",
		"0.0000015":  "0.000002",
		"12.5":       "12.5",
		"300":        "300",
	}
	for in, want := range cases {
		got := EncodeDecimal(decimal.RequireFromString(in), schema.DefaultDecimalPlaces)
		if string(got) != want {
			t.Fatalf("encode %s: got=%s want=%s", in, got, want)
		}
	}
}

func TestDecodeDecimalKeepsPrecision(t *testing.T) {
	testlog.Start(t)
	got, err := DecodeDecimal(json.Number("1.23456789"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.String() != "1.23456789" {
		t.Fatalf("decode: got=%s", got)
	}
	if _, err := DecodeDecimal("1.5"); !errors.Is(err, protocol.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch for string, got %v", err)
	}
}

func TestDecodeInteger(t *testing.T) {
	testlog.Start(t)
	for _, in := range []any{json.Number("300"), json.Number("300.0"), float64(300), 300} {
		got, err := DecodeInteger(in)
		if err != nil || got != 300 {
			t.Fatalf("decode %v: got=%d err=%v", in, got, err)
		}
	}
	for _, in := range []any{json.Number("1.5"), "300", true, json.Number("1e30"), nil} {
		if _, err := DecodeInteger(in); !errors.Is(err, protocol.ErrTypeMismatch) {
			t.Fatalf("decode %v: expected ErrTypeMismatch, got %v", in, err)
		}
	}
}

func TestEnumCodec(t *testing.T) {
	testlog.Start(t)
	status := schema.NewEnum("RegistrationStatus", "Accepted", "Pending", "Rejected")
	if got, err := DecodeEnum(status, "Pending"); err != nil || got != "Pending" {
		t.Fatalf("decode: got=%q err=%v", got, err)
	}
	_, err := DecodeEnum(status, "accepted")
	var enumErr *protocol.InvalidEnumValueError
	if !errors.As(err, &enumErr) {
		t.Fatalf("expected InvalidEnumValueError, got %v", err)
	}
	if enumErr.Enum != "RegistrationStatus" || enumErr.Received != "accepted" || len(enumErr.Allowed) != 3 {
		t.Fatalf("unexpected error detail: %+v", enumErr)
	}
	if _, err := DecodeEnum(status, json.Number("1")); !errors.Is(err, protocol.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if _, err := EncodeEnum(status, "Bogus"); !errors.Is(err, protocol.ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue on encode, got %v", err)
	}
}

func TestConstraints(t *testing.T) {
	testlog.Start(t)
	if err := CheckString("ABCDEFGHIJKLMNOPQRSTU", schema.Constraints{MaxLength: 20}); !errors.Is(err, protocol.ErrConstraintViolation) {
		t.Fatalf("expected maxLength violation, got %v", err)
	}
	if err := CheckString("élan", schema.Constraints{MaxLength: 4}); err != nil {
		t.Fatalf("length counts characters: %v", err)
	}
	if err := CheckString("tag:01@a.b", schema.Constraints{Identifier: true}); err != nil {
		t.Fatalf("identifier: %v", err)
	}
	if err := CheckString("two words", schema.Constraints{Identifier: true}); !errors.Is(err, protocol.ErrConstraintViolation) {
		t.Fatalf("expected identifier violation, got %v", err)
	}
	if err := CheckInteger(0, schema.Constraints{Positive: true}); !errors.Is(err, protocol.ErrConstraintViolation) {
		t.Fatalf("expected positive violation, got %v", err)
	}
	if err := CheckInteger(0, schema.Constraints{NonNegative: true}); err != nil {
		t.Fatalf("nonNegative: %v", err)
	}
	if err := CheckItems(5, schema.Constraints{MaxItems: 4}); !errors.Is(err, protocol.ErrConstraintViolation) {
		t.Fatalf("expected maxItems violation, got %v", err)
	}
}

func TestCheckDecimalPlaces(t *testing.T) {
	testlog.Start(t)
	one := schema.Constraints{MaxPlaces: 1}
	for _, ok := range []string{"16.5", "16.50", "8", "-0.1", "120"} {
		if err := CheckDecimal(decimal.RequireFromString(ok), one); err != nil {
			t.Fatalf("%s: unexpected %v", ok, err)
		}
	}
	for _, bad := range []string{"16.54", "16.55", "0.05", "-3.125"} {
		err := CheckDecimal(decimal.RequireFromString(bad), one)
		var cv *protocol.ConstraintViolationError
		if !errors.As(err, &cv) || cv.Constraint != "maxPlaces=1" {
			t.Fatalf("%s: expected maxPlaces=1 violation, got %v", bad, err)
		}
	}
	if err := CheckDecimal(decimal.RequireFromString("1.23456"), schema.Constraints{}); err != nil {
		t.Fatalf("unbounded decimal rejected: %v", err)
	}
}

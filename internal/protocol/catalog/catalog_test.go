package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/primitive"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/danmuck/ocppcodec/internal/protocol/v16"
	"github.com/danmuck/ocppcodec/internal/protocol/v20"
	"github.com/danmuck/ocppcodec/internal/testutil/testlog"
)

func TestLookupPerVersion(t *testing.T) {
	testlog.Start(t)
	d16, err := Lookup(protocol.V16, "BootNotification", protocol.Request)
	if err != nil {
		t.Fatalf("lookup v16: %v", err)
	}
	d20, err := Lookup(protocol.V20, "BootNotification", protocol.Request)
	if err != nil {
		t.Fatalf("lookup v20: %v", err)
	}
	if d16 == d20 || d16.GoType() == d20.GoType() {
		t.Fatalf("versions share a definition: %s / %s", d16, d20)
	}
	if d16.Version != protocol.V16 || d20.Version != protocol.V20 || d20.Direction != protocol.Request {
		t.Fatalf("unexpected stamps: %s %s %s", d16.Version, d20.Version, d20.Direction)
	}
	if _, ok := d16.Field("chargePointVendor"); !ok {
		t.Fatalf("v1.6 BootNotification lacks chargePointVendor")
	}
	if _, ok := d20.Field("chargingStation"); !ok {
		t.Fatalf("v2.0 BootNotification lacks chargingStation")
	}
}

func TestLookupMisses(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		version protocol.Version
		action  string
		dir     protocol.Direction
	}{
		{protocol.V16, "GetVariables", protocol.Request},
		{protocol.V20, "StartTransaction", protocol.Response},
		{protocol.V20, "Heartbeat", 0},
		{protocol.Version("ocpp2.0.1"), "Heartbeat", protocol.Request},
	}
	for _, tc := range cases {
		_, err := Lookup(tc.version, tc.action, tc.dir)
		var unknown *protocol.UnknownActionError
		if !errors.As(err, &unknown) || !errors.Is(err, protocol.ErrUnknownAction) {
			t.Fatalf("%s/%s: expected UnknownAction, got %v", tc.version, tc.action, err)
		}
		if unknown.Action != tc.action || unknown.Version != tc.version {
			t.Fatalf("unexpected detail: %+v", unknown)
		}
	}
}

func TestForAndActions(t *testing.T) {
	testlog.Start(t)
	if c, ok := For(protocol.V16); !ok || c != v16.Catalog {
		t.Fatalf("For(v16) did not return the v1.6 catalog")
	}
	if c, ok := For(protocol.V20); !ok || c != v20.Catalog {
		t.Fatalf("For(v20) did not return the v2.0 catalog")
	}
	if _, ok := For("ocpp1.5"); ok {
		t.Fatalf("For(ocpp1.5) should miss")
	}
	if got := len(Actions(protocol.V16)); got != 28 {
		t.Fatalf("v1.6 actions=%d", got)
	}
	if Actions("ocpp1.5") != nil {
		t.Fatalf("unsupported version should list no actions")
	}
}

// reachableEnums collects every enum a version's messages can carry, keyed by
// the first field path that reaches it.
func reachableEnums(version protocol.Version) map[*schema.Enum]string {
	found := map[*schema.Enum]string{}
	seen := map[*schema.Type]bool{}
	var walkType func(t *schema.Type, path string)
	var walkValue func(v schema.Value, path string)
	walkValue = func(v schema.Value, path string) {
		switch v.Kind {
		case schema.KindEnum:
			if _, ok := found[v.Enum]; !ok {
				found[v.Enum] = path
			}
		case schema.KindComplex:
			walkType(v.Type, path)
		case schema.KindList:
			walkValue(*v.Elem, path+"[]")
		}
	}
	walkType = func(t *schema.Type, path string) {
		if seen[t] {
			return
		}
		seen[t] = true
		for _, f := range t.Fields {
			walkValue(f.Value, path+"."+f.Key)
		}
	}
	c, _ := For(version)
	for _, name := range c.Actions() {
		a, _ := c.Action(name)
		walkType(a.Request, name+"Request")
		walkType(a.Response, name+"Response")
	}
	return found
}

func TestEveryCatalogEnumIsClosed(t *testing.T) {
	testlog.Start(t)
	for _, version := range protocol.Versions() {
		enums := reachableEnums(version)
		if len(enums) == 0 {
			t.Fatalf("%s: no enums reachable", version)
		}
		for e, path := range enums {
			if len(e.Literals) == 0 || e.GoType() == nil {
				t.Fatalf("%s %s (%s): literals=%v go type=%v", version, e.Name, path, e.Literals, e.GoType())
			}
			for _, lit := range e.Literals {
				got, err := primitive.DecodeEnum(e, lit)
				if err != nil || got != lit {
					t.Fatalf("%s %s: decode %q = %q, %v", version, e.Name, lit, got, err)
				}
				typed := reflect.ValueOf(got).Convert(e.GoType())
				out, err := primitive.EncodeEnum(e, typed.String())
				if err != nil || out != lit {
					t.Fatalf("%s %s: encode %q = %q, %v", version, e.Name, lit, out, err)
				}
				if _, err := primitive.DecodeEnum(e, lit+"X"); !errors.Is(err, protocol.ErrInvalidEnumValue) {
					t.Fatalf("%s %s: %q decoded: %v", version, e.Name, lit+"X", err)
				}
			}
		}
	}
}

// Package catalog resolves (version, action, direction) to a message type
// definition across every supported protocol version.
package catalog

import (
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/schema"
	"github.com/danmuck/ocppcodec/internal/protocol/v16"
	"github.com/danmuck/ocppcodec/internal/protocol/v20"
)

var byVersion = map[protocol.Version]*schema.Catalog{
	protocol.V16: v16.Catalog,
	protocol.V20: v20.Catalog,
}

// For returns the schema catalog of version.
func For(version protocol.Version) (*schema.Catalog, bool) {
	c, ok := byVersion[version]
	return c, ok
}

// Lookup returns the definition for action in the given direction. An
// unsupported version fails the same way an unknown action does.
func Lookup(version protocol.Version, action string, dir protocol.Direction) (*schema.Type, error) {
	c, ok := byVersion[version]
	if !ok {
		return nil, &protocol.UnknownActionError{Version: version, Action: action, Direction: dir}
	}
	return c.Lookup(action, dir)
}

// Actions lists the action names of version in lexical order.
func Actions(version protocol.Version) []string {
	c, ok := byVersion[version]
	if !ok {
		return nil
	}
	return c.Actions()
}

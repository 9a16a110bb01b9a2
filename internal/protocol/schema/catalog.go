package schema

import (
	"fmt"
	"sort"

	"github.com/danmuck/ocppcodec/internal/protocol"
	logs "github.com/danmuck/ocppcodec/internal/logging"
)

// Action pairs the Request and Response definitions of one RPC method.
type Action struct {
	Name     string
	Request  *Type
	Response *Type
}

func NewAction(name string, request, response *Type) Action {
	return Action{Name: name, Request: request, Response: response}
}

// Catalog holds every action definition of one protocol version. It is built
// once at init and only read afterwards.
type Catalog struct {
	version protocol.Version
	actions map[string]Action
	names   []string
}

// NewCatalog stamps version and direction onto the given actions and every
// datatype they reach. A definition reachable from two versions, or an
// action declared twice, panics.
func NewCatalog(version protocol.Version, actions ...Action) *Catalog {
	c := &Catalog{
		version: version,
		actions: make(map[string]Action, len(actions)),
	}
	for _, a := range actions {
		if a.Request == nil || a.Response == nil {
			panic(fmt.Sprintf("schema: %s action %s lacks a request or response", version, a.Name))
		}
		if _, dup := c.actions[a.Name]; dup {
			panic(fmt.Sprintf("schema: %s declares action %s twice", version, a.Name))
		}
		stamp(a.Request, version, a.Name, protocol.Request)
		stamp(a.Response, version, a.Name, protocol.Response)
		c.actions[a.Name] = a
		c.names = append(c.names, a.Name)
	}
	sort.Strings(c.names)
	return c
}

func stamp(t *Type, version protocol.Version, action string, dir protocol.Direction) {
	if t.Action != "" {
		panic(fmt.Sprintf("schema: %s already serves %s.%s", t.Name, t.Action, t.Direction))
	}
	t.Action = action
	t.Direction = dir
	claim(t, version)
}

func claim(t *Type, version protocol.Version) {
	if t.Version == version {
		return
	}
	if t.Version != "" {
		panic(fmt.Sprintf("schema: %s belongs to %s, cannot join %s", t.Name, t.Version, version))
	}
	t.Version = version
	for _, f := range t.Fields {
		v := f.Value
		for v.Kind == KindList {
			v = *v.Elem
		}
		if v.Kind == KindComplex {
			claim(v.Type, version)
		}
	}
}

func (c *Catalog) Version() protocol.Version {
	return c.version
}

// Lookup returns the definition for action in the given direction.
func (c *Catalog) Lookup(action string, dir protocol.Direction) (*Type, error) {
	a, ok := c.actions[action]
	if !ok || (dir != protocol.Request && dir != protocol.Response) {
		logs.Debugf("schema.Lookup miss version=%s action=%s direction=%s", c.version, action, dir)
		return nil, &protocol.UnknownActionError{Version: c.version, Action: action, Direction: dir}
	}
	if dir == protocol.Request {
		return a.Request, nil
	}
	return a.Response, nil
}

func (c *Catalog) Action(name string) (Action, bool) {
	a, ok := c.actions[name]
	return a, ok
}

// Actions lists action names in lexical order.
func (c *Catalog) Actions() []string {
	return append([]string(nil), c.names...)
}

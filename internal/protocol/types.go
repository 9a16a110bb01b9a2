package protocol

import (
	"fmt"
	"strings"
)

// MessageTypeID is the leading integer of every OCPP-J frame.
type MessageTypeID int

const (
	MessageCall       MessageTypeID = 2
	MessageCallResult MessageTypeID = 3
	MessageCallError  MessageTypeID = 4
)

func (m MessageTypeID) String() string {
	switch m {
	case MessageCall:
		return "Call"
	case MessageCallResult:
		return "CallResult"
	case MessageCallError:
		return "CallError"
	default:
		return fmt.Sprintf("MessageTypeID(%d)", int(m))
	}
}

// Version identifies a protocol schema generation. Values match the
// websocket subprotocol names negotiated by the transport.
type Version string

const (
	V16 Version = "ocpp1.6"
	V20 Version = "ocpp2.0"
)

// Versions lists every supported protocol version.
func Versions() []Version {
	return []Version{V16, V20}
}

func (v Version) String() string {
	return string(v)
}

func (v Version) Valid() bool {
	return v == V16 || v == V20
}

// ParseVersion accepts the subprotocol name or a short form ("1.6", "16", "v16").
func ParseVersion(raw string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ocpp1.6", "1.6", "16", "v16", "ocpp16":
		return V16, nil
	case "ocpp2.0", "2.0", "20", "v20", "ocpp20":
		return V20, nil
	default:
		return "", fmt.Errorf("protocol: unsupported version %q", raw)
	}
}

// Direction selects the Request or Response variant of an action.
type Direction int

const (
	Request Direction = iota + 1
	Response
)

func (d Direction) String() string {
	switch d {
	case Request:
		return "Request"
	case Response:
		return "Response"
	default:
		return "Datatype"
	}
}

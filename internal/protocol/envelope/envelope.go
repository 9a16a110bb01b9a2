package envelope

import (
	"errors"
	"fmt"
	"unicode/utf8"

	logs "github.com/danmuck/ocppcodec/internal/logging"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/catalog"
	"github.com/danmuck/ocppcodec/internal/protocol/primitive"
	"github.com/danmuck/ocppcodec/internal/protocol/structure"
)

// MaxUniqueIDLen bounds the message id of every frame.
const MaxUniqueIDLen = 36

var (
	ErrActionRequired = errors.New("envelope: action required")
	ErrUniqueID       = errors.New("envelope: invalid unique id")
	ErrErrorCode      = errors.New("envelope: error code not valid for version")
)

// Envelope is one of *Call, *CallResult or *CallError.
type Envelope interface {
	MessageType() protocol.MessageTypeID
	ID() string
}

// Call is a request. Payload is the action's Request struct, by value or
// pointer; parsed calls carry a pointer.
type Call struct {
	UniqueID string
	Action   string
	Payload  any
}

func (c *Call) MessageType() protocol.MessageTypeID { return protocol.MessageCall }
func (c *Call) ID() string { return c.UniqueID }

// CallResult answers a Call. Action is not part of the frame; it selects the
// Response definition the payload is coded with.
type CallResult struct {
	UniqueID string
	Action   string
	Payload  any
}

func (c *CallResult) MessageType() protocol.MessageTypeID { return protocol.MessageCallResult }
func (c *CallResult) ID() string { return c.UniqueID }

// CallError answers a Call that could not be processed. ErrorDetails is
// opaque and never validated.
type CallError struct {
	UniqueID         string
	ErrorCode        ErrorCode
	ErrorDescription string
	ErrorDetails     map[string]any
}

func (c *CallError) MessageType() protocol.MessageTypeID { return protocol.MessageCallError }
func (c *CallError) ID() string { return c.UniqueID }

// FrameError is a failure inside a frame whose uniqueId was readable, so the
// peer can still be answered with a CallError for that id.
type FrameError struct {
	UniqueID string
	Action   string
	Err      error
}

func (e *FrameError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("envelope: frame %s: %v", e.UniqueID, e.Err)
	}
	return fmt.Sprintf("envelope: frame %s (%s): %v", e.UniqueID, e.Action, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Serialize renders env as a JSON array under version. Payloads are
// serialized against the action's Request or Response definition.
func Serialize(env Envelope, version protocol.Version) ([]any, error) {
	if env == nil {
		return nil, fmt.Errorf("envelope: nil envelope")
	}
	if err := checkUniqueID(env.ID()); err != nil {
		return nil, err
	}
	var (
		frame []any
		err   error
	)
	switch e := env.(type) {
	case *Call:
		frame, err = serializeCall(e, version)
	case *CallResult:
		frame, err = serializeResult(e, version)
	case *CallError:
		frame, err = serializeError(e, version)
	default:
		return nil, fmt.Errorf("envelope: unsupported envelope %T", env)
	}
	if err != nil {
		logs.Debugf("envelope.Serialize version=%s type=%s id=%s err=%v", version, env.MessageType(), env.ID(), err)
		return nil, err
	}
	return frame, nil
}

func serializeCall(c *Call, version protocol.Version) ([]any, error) {
	if c.Action == "" {
		return nil, ErrActionRequired
	}
	t, err := catalog.Lookup(version, c.Action, protocol.Request)
	if err != nil {
		return nil, err
	}
	payload, err := structure.Serialize(c.Payload, t)
	if err != nil {
		return nil, err
	}
	return []any{int(protocol.MessageCall), c.UniqueID, c.Action, payload}, nil
}

func serializeResult(c *CallResult, version protocol.Version) ([]any, error) {
	if c.Action == "" {
		return nil, ErrActionRequired
	}
	t, err := catalog.Lookup(version, c.Action, protocol.Response)
	if err != nil {
		return nil, err
	}
	payload, err := structure.Serialize(c.Payload, t)
	if err != nil {
		return nil, err
	}
	return []any{int(protocol.MessageCallResult), c.UniqueID, payload}, nil
}

func serializeError(c *CallError, version protocol.Version) ([]any, error) {
	if !c.ErrorCode.ValidFor(version) {
		return nil, fmt.Errorf("%w: %q under %s", ErrErrorCode, c.ErrorCode, version)
	}
	details := c.ErrorDetails
	if details == nil {
		details = map[string]any{}
	}
	return []any{int(protocol.MessageCallError), c.UniqueID, string(c.ErrorCode), c.ErrorDescription, details}, nil
}

// Parse builds an envelope from a decoded JSON array. action selects the
// Response definition of a CallResult and is ignored for the other frames.
// Shape failures are MalformedEnvelope errors; anything that goes wrong after
// the uniqueId has been read is wrapped in a *FrameError.
func Parse(raw any, action string, version protocol.Version) (Envelope, error) {
	env, err := parse(raw, action, version)
	if err != nil {
		logs.Debugf("envelope.Parse version=%s action=%s err=%v", version, action, err)
		return nil, err
	}
	return env, nil
}

func parse(raw any, action string, version protocol.Version) (Envelope, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, malformed(raw, "frame is not an array")
	}
	if len(arr) == 0 {
		return nil, malformed(raw, "empty frame")
	}
	id, err := primitive.DecodeInteger(arr[0])
	if err != nil {
		return nil, malformed(raw, "message type id is not an integer")
	}
	mt := protocol.MessageTypeID(id)
	switch mt {
	case protocol.MessageCall, protocol.MessageCallResult, protocol.MessageCallError:
	default:
		return nil, &protocol.MalformedEnvelopeError{
			Received:        raw,
			Reason:          fmt.Sprintf("unsupported message type id %d", id),
			UnsupportedType: true,
		}
	}
	if want := frameLen(mt); len(arr) != want {
		return nil, malformed(raw, fmt.Sprintf("%s frame has %d elements, want %d", mt, len(arr), want))
	}
	uid, ok := arr[1].(string)
	if !ok {
		return nil, malformed(raw, "uniqueId is not a string")
	}
	if err := checkUniqueID(uid); err != nil {
		return nil, malformed(raw, err.Error())
	}

	switch mt {
	case protocol.MessageCall:
		name, ok := arr[2].(string)
		if !ok || name == "" {
			return nil, malformed(raw, "action is not a string")
		}
		if !isObject(arr[3]) {
			return nil, malformed(raw, "payload is not an object")
		}
		payload, err := decodePayload(arr[3], version, name, protocol.Request)
		if err != nil {
			return nil, &FrameError{UniqueID: uid, Action: name, Err: err}
		}
		return &Call{UniqueID: uid, Action: name, Payload: payload}, nil

	case protocol.MessageCallResult:
		if !isObject(arr[2]) {
			return nil, malformed(raw, "payload is not an object")
		}
		if action == "" {
			return nil, &FrameError{UniqueID: uid, Err: ErrActionRequired}
		}
		payload, err := decodePayload(arr[2], version, action, protocol.Response)
		if err != nil {
			return nil, &FrameError{UniqueID: uid, Action: action, Err: err}
		}
		return &CallResult{UniqueID: uid, Action: action, Payload: payload}, nil

	default:
		code, ok := arr[2].(string)
		if !ok {
			return nil, malformed(raw, "errorCode is not a string")
		}
		desc, ok := arr[3].(string)
		if !ok {
			return nil, malformed(raw, "errorDescription is not a string")
		}
		details := map[string]any{}
		switch d := arr[4].(type) {
		case nil:
		case map[string]any:
			details = d
		default:
			return nil, malformed(raw, "errorDetails is not an object")
		}
		return &CallError{UniqueID: uid, ErrorCode: ErrorCode(code), ErrorDescription: desc, ErrorDetails: details}, nil
	}
}

func decodePayload(raw any, version protocol.Version, action string, dir protocol.Direction) (any, error) {
	t, err := catalog.Lookup(version, action, dir)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return structure.Deserialize(raw, t)
}

// isObject accepts a JSON object or null, the only payload shapes a frame
// may carry.
func isObject(v any) bool {
	switch v.(type) {
	case nil, map[string]any:
		return true
	}
	return false
}

func frameLen(mt protocol.MessageTypeID) int {
	switch mt {
	case protocol.MessageCall:
		return 4
	case protocol.MessageCallResult:
		return 3
	default:
		return 5
	}
}

func checkUniqueID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrUniqueID)
	}
	if n := utf8.RuneCountInString(id); n > MaxUniqueIDLen {
		return fmt.Errorf("%w: %d characters, max %d", ErrUniqueID, n, MaxUniqueIDLen)
	}
	return nil
}

func malformed(raw any, reason string) error {
	return &protocol.MalformedEnvelopeError{Received: raw, Reason: reason}
}

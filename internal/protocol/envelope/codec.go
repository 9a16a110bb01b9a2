package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
)

var ErrFrameTooLarge = errors.New("envelope: frame too large")

// Limits constrains the size of frames accepted or produced by a Codec.
type Limits struct {
	MaxFrameBytes int
}

func DefaultLimits() Limits {
	return Limits{MaxFrameBytes: 64 * 1024}
}

// Op names the direction of a codec operation.
type Op string

const (
	OpEncode Op = "encode"
	OpDecode Op = "decode"
)

// Event describes one finished Encode or Decode. MessageType is zero when
// the frame could not be classified.
type Event struct {
	Op          Op
	Version     protocol.Version
	MessageType protocol.MessageTypeID
	Action      string
	Duration    time.Duration
	Err         error
}

// Observer receives an Event for every codec operation. Implementations must
// be safe for concurrent use.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Codec binds the envelope functions to a protocol version and moves frames
// to and from bytes. The zero Observer is allowed.
type Codec struct {
	Version  protocol.Version
	Limits   Limits
	Observer Observer
}

func New(version protocol.Version) *Codec {
	return &Codec{Version: version, Limits: DefaultLimits()}
}

// Encode serializes env and marshals the frame.
func (c *Codec) Encode(env Envelope) ([]byte, error) {
	start := time.Now()
	b, err := c.encode(env)
	ev := Event{Op: OpEncode, Version: c.Version, Duration: time.Since(start), Err: err}
	if env != nil {
		ev.MessageType = env.MessageType()
		ev.Action = envelopeAction(env)
	}
	c.observe(ev)
	return b, err
}

func (c *Codec) encode(env Envelope) ([]byte, error) {
	frame, err := Serialize(env, c.Version)
	if err != nil {
		return nil, err
	}
	b, err := Marshal(frame)
	if err != nil {
		return nil, err
	}
	if c.Limits.MaxFrameBytes > 0 && len(b) > c.Limits.MaxFrameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFrameTooLarge, len(b), c.Limits.MaxFrameBytes)
	}
	return b, nil
}

// Decode unmarshals one frame and parses it. action is the expected action
// of a CallResult.
func (c *Codec) Decode(data []byte, action string) (Envelope, error) {
	start := time.Now()
	env, err := c.decode(data, action)
	ev := Event{Op: OpDecode, Version: c.Version, Action: action, Duration: time.Since(start), Err: err}
	if env != nil {
		ev.MessageType = env.MessageType()
		ev.Action = envelopeAction(env)
	} else {
		var fe *FrameError
		if errors.As(err, &fe) && fe.Action != "" {
			ev.Action = fe.Action
		}
	}
	c.observe(ev)
	return env, err
}

func (c *Codec) decode(data []byte, action string) (Envelope, error) {
	if c.Limits.MaxFrameBytes > 0 && len(data) > c.Limits.MaxFrameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFrameTooLarge, len(data), c.Limits.MaxFrameBytes)
	}
	raw, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return Parse(raw, action, c.Version)
}

func (c *Codec) observe(e Event) {
	if c.Observer != nil {
		c.Observer.Observe(e)
	}
}

func envelopeAction(env Envelope) string {
	switch e := env.(type) {
	case *Call:
		return e.Action
	case *CallResult:
		return e.Action
	default:
		return ""
	}
}

// Marshal renders a frame from Serialize as JSON.
func Marshal(frame []any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(frame); err != nil {
		return nil, fmt.Errorf("envelope: marshal frame: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal decodes exactly one JSON value with numbers kept as json.Number.
// Invalid JSON and trailing data are MalformedEnvelope errors.
func Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &protocol.MalformedEnvelopeError{Received: string(data), Reason: "invalid JSON: " + err.Error()}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &protocol.MalformedEnvelopeError{Received: string(data), Reason: "trailing data after frame"}
	}
	return v, nil
}

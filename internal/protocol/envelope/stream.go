package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/tailscale/hujson"
)

// Decoder reads successive frames from a byte stream. Frames may be
// newline-delimited or simply concatenated.
type Decoder struct {
	codec *Codec
	dec   *json.Decoder
	err   error
}

func (c *Codec) NewDecoder(r io.Reader) *Decoder {
	return &Decoder{codec: c, dec: json.NewDecoder(r)}
}

// Next decodes the next frame. It returns io.EOF once the stream is
// exhausted. A syntax error ends the stream; errors inside a well-formed
// frame do not, so the caller may reply and keep reading.
func (d *Decoder) Next(action string) (Envelope, error) {
	if d.err != nil {
		return nil, d.err
	}
	var raw json.RawMessage
	if err := d.dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			d.err = io.EOF
		} else {
			d.err = &protocol.MalformedEnvelopeError{Reason: "invalid JSON in stream: " + err.Error()}
		}
		return nil, d.err
	}
	return d.codec.Decode(raw, action)
}

// Frames splits a JSON or JSONC document into raw frames. The document is
// either one frame or an array of frames; comments and trailing commas are
// allowed.
func Frames(doc []byte) ([]json.RawMessage, error) {
	std, err := hujson.Standardize(bytes.Clone(doc))
	if err != nil {
		return nil, fmt.Errorf("envelope: parse frames document: %w", err)
	}
	var outer []json.RawMessage
	if err := json.Unmarshal(std, &outer); err != nil {
		return nil, &protocol.MalformedEnvelopeError{Received: string(std), Reason: "document is not an array"}
	}
	if len(outer) == 0 || !isArray(outer[0]) {
		return []json.RawMessage{json.RawMessage(std)}, nil
	}
	return outer, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/ocppcodec/internal/config"
	logs "github.com/danmuck/ocppcodec/internal/logging"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/catalog"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
)

var errFramesFailed = errors.New("one or more frames failed to decode")

// decodeResult is one output line of ocppctl decode.
type decodeResult struct {
	Index       int             `json:"index"`
	MessageType string          `json:"message_type,omitempty"`
	UniqueID    string          `json:"unique_id,omitempty"`
	Frame       json.RawMessage `json:"frame,omitempty"`
	Error       string          `json:"error,omitempty"`
	Class       string          `json:"class,omitempty"`
	Path        string          `json:"path,omitempty"`
	Reply       json.RawMessage `json:"reply,omitempty"`
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	version := fs.String("protocol", "ocpp1.6", "protocol version: ocpp1.6|ocpp2.0")
	action := fs.String("action", "", "expected action of CallResult frames")
	file := fs.String("file", "", "frames document (JSON or JSONC); stdin when empty")
	maxFrame := fs.Int("max-frame-bytes", envelope.DefaultLimits().MaxFrameBytes, "largest accepted frame")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logs.ConfigureRuntime()

	v, err := protocol.ParseVersion(*version)
	if err != nil {
		return err
	}
	doc, err := readInput(*file, stdin)
	if err != nil {
		return err
	}
	frames, err := envelope.Frames(doc)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.MaxFrameBytes = *maxFrame
	cfg.MetricsEnabled = false
	codec := config.NewCodec(cfg, v)

	enc := json.NewEncoder(stdout)
	failed := 0
	for i, raw := range frames {
		res := decodeOne(codec, i, raw, *action)
		if res.Error != "" {
			failed++
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	logs.Debugf("ocppctl decode protocol=%s frames=%d failed=%d", v, len(frames), failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFramesFailed, failed, len(frames))
	}
	return nil
}

func decodeOne(codec *envelope.Codec, index int, raw []byte, action string) decodeResult {
	res := decodeResult{Index: index}
	env, err := codec.Decode(raw, action)
	if err != nil {
		res.Error = err.Error()
		res.Class = protocol.ErrorClass(err)
		res.Path, _ = protocol.ErrorPath(err)
		if reply, rerr := codec.Encode(envelope.ErrorReply(err, codec.Version)); rerr == nil {
			res.Reply = reply
		}
		return res
	}
	res.MessageType = env.MessageType().String()
	res.UniqueID = env.ID()
	normalized, err := codec.Encode(env)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Frame = normalized
	return res
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}
	return data, nil
}

func runActions(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("actions", flag.ContinueOnError)
	version := fs.String("protocol", "ocpp1.6", "protocol version: ocpp1.6|ocpp2.0")
	if err := fs.Parse(args); err != nil {
		return err
	}
	v, err := protocol.ParseVersion(*version)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s actions:\n", v)
	for _, name := range catalog.Actions(v) {
		fmt.Fprintf(stdout, "  %s\n", name)
	}
	fmt.Fprintf(stdout, "%s error codes:\n", v)
	for _, code := range envelope.ErrorCodes(v) {
		fmt.Fprintf(stdout, "  %s\n", code)
	}
	return nil
}

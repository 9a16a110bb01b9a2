package config

import (
	"github.com/danmuck/ocppcodec/internal/observability"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
)

// NewCodec builds the envelope codec cfg describes for version. Codec events
// feed the prometheus metrics when metrics are enabled.
func NewCodec(cfg Config, version protocol.Version) *envelope.Codec {
	c := envelope.New(version)
	c.Limits.MaxFrameBytes = cfg.MaxFrameBytes
	if cfg.MetricsEnabled {
		c.Observer = observability.CodecObserver{}
	}
	return c
}

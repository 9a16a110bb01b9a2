package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	logs "github.com/danmuck/ocppcodec/internal/logging"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
)

// Config is the resolved ocppctl configuration.
type Config struct {
	Protocol       protocol.Version
	ListenAddr     string
	CorsOrigins    []string
	MaxFrameBytes  int
	MetricsEnabled bool
	LogLevel       string
}

// ocppctl config.toml keys.
type fileConfig struct {
	Protocol       string   `toml:"protocol"`
	ListenAddr     string   `toml:"listen_addr"`
	CorsOrigins    []string `toml:"cors_origins"`
	MaxFrameBytes  int      `toml:"max_frame_bytes"`
	MetricsEnabled bool     `toml:"metrics_enabled"`
	LogLevel       string   `toml:"log_level"`
}

func Default() Config {
	return Config{
		Protocol:       protocol.V16,
		ListenAddr:     ":9180",
		CorsOrigins:    []string{"http://localhost:3000"},
		MaxFrameBytes:  envelope.DefaultLimits().MaxFrameBytes,
		MetricsEnabled: true,
		LogLevel:       "info",
	}
}

// Load reads path and overlays every key it defines onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("protocol") {
		v, err := protocol.ParseVersion(raw.Protocol)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg.Protocol = v
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = raw.CorsOrigins
	}
	if meta.IsDefined("max_frame_bytes") {
		cfg.MaxFrameBytes = raw.MaxFrameBytes
	}
	if meta.IsDefined("metrics_enabled") {
		cfg.MetricsEnabled = raw.MetricsEnabled
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if !cfg.Protocol.Valid() {
		return fmt.Errorf("unsupported protocol %q", cfg.Protocol)
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if cfg.MaxFrameBytes <= 0 {
		return fmt.Errorf("max_frame_bytes must be positive, got %d", cfg.MaxFrameBytes)
	}
	if _, ok := logs.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}
	for i, origin := range cfg.CorsOrigins {
		o := strings.TrimSpace(origin)
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors_origins[%d] %q must be * or an http(s) origin", i, origin)
		}
	}
	return nil
}

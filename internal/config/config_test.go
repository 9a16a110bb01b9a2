package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/ocppcodec/internal/observability"
	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
protocol = "2.0"
listen_addr = "127.0.0.1:9443"
metrics_enabled = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := Default()
	want.Protocol = protocol.V20
	want.ListenAddr = "127.0.0.1:9443"
	want.MetricsEnabled = false
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadExplicitZeroValuesOverrideDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := Load(writeConfig(t, `cors_origins = []`))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CorsOrigins) != 0 {
		t.Fatalf("expected no cors origins, got %v", cfg.CorsOrigins)
	}
}

func TestLoadRejectsInvalidConfigs(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"protocol":    `protocol = "ocpp3.0"`,
		"frame size":  `max_frame_bytes = 0`,
		"log level":   `log_level = "loud"`,
		"listen addr": `listen_addr = "  "`,
		"cors":        `cors_origins = ["localhost:3000"]`,
		"unknown key": `session_tls_enabled = true`,
		"syntax":      `protocol = `,
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected load failure", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected failure for a missing file")
	}
}

func TestTemplateLoadsAsDefault(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal to overwrite, got %v", err)
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("overwrite template: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestNewCodecFollowsConfig(t *testing.T) {
	testlog.Start(t)
	cfg := Default()
	cfg.MaxFrameBytes = 512
	c := NewCodec(cfg, protocol.V20)
	if c.Version != protocol.V20 || c.Limits.MaxFrameBytes != 512 {
		t.Fatalf("unexpected codec %+v", c)
	}
	if _, ok := c.Observer.(observability.CodecObserver); !ok {
		t.Fatalf("expected metrics observer, got %T", c.Observer)
	}

	cfg.MetricsEnabled = false
	if c := NewCodec(cfg, protocol.V16); c.Observer != nil {
		t.Fatalf("expected no observer, got %T", c.Observer)
	}
}

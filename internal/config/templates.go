package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Template renders Default as a config.toml document.
func Template() (string, error) {
	cfg := Default()
	out, err := toml.Marshal(fileConfig{
		Protocol:       cfg.Protocol.String(),
		ListenAddr:     cfg.ListenAddr,
		CorsOrigins:    cfg.CorsOrigins,
		MaxFrameBytes:  cfg.MaxFrameBytes,
		MetricsEnabled: cfg.MetricsEnabled,
		LogLevel:       cfg.LogLevel,
	})
	if err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return templateHeader + string(out), nil
}

func WriteTemplate(path string, overwrite bool) error {
	template, err := Template()
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const templateHeader = `# ocppctl configuration
# protocol: ocpp1.6 | ocpp2.0
# log_level: trace | debug | info | warn | error | off
`

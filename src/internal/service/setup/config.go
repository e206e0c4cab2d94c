package setup

import (
	"bytes"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

// LoadConfig reads host/port/log_level overrides from config.yaml.
// The presence gate has already passed by the time this runs, so every
// failure mode here is soft: unreadable, empty or malformed yaml just
// yields the fixed defaults. Startup never stops on config contents.
func LoadConfig(path string, logger *log.Logger) domain.Config {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not read config file, using defaults", "path", path, "err", err)
		return cfg
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg
	}

	var overrides domain.Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		logger.Warn("Config file is not valid yaml, using defaults", "path", path, "err", err)
		return cfg
	}

	if overrides.Host != "" {
		cfg.Host = overrides.Host
	}
	if overrides.Port != "" {
		cfg.Port = overrides.Port
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	return cfg
}

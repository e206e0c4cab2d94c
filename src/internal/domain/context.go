package domain

// Config holds the server settings. Host, Port and LogLevel can be
// overridden from config.yaml; everything else is fixed at build time.
type Config struct {
	Version  string `yaml:"-"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

type Context struct {
	Config Config
	// Logger lives in the orchestrator; services receive it explicitly.
}

// DefaultConfig returns the fixed launch settings the original bootstrap
// used: all interfaces, port 8000, informational logging.
func DefaultConfig() Config {
	return Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogLevel: "info",
	}
}

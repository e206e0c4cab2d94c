package domain

// Constants
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = "8000"

	// ConfigPath is relative to the working directory, as is the whole
	// runtime layout below.
	ConfigPath = "config.yaml"

	UIDir       = "ui"
	UIStaticDir = "ui/static"
	LogDir      = "logs"
)

// RuntimeDirs is the directory tree the bootstrap guarantees before the
// server starts. Order matters only for readability.
var RuntimeDirs = []string{UIDir, UIStaticDir, LogDir}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

package types

import "errors"

// Config holds storage backend selection and auth endpoint parameters.
type Config struct {
	Backend string     `json:"backend" yaml:"backend"`
	DataDir string     `json:"data_dir" yaml:"data_dir"`
	Auth    AuthConfig `json:"auth" yaml:"auth"`
}

// AuthConfig describes the external identity service. When URL is empty the
// session gate is not enforced and the CLI operates local-only.
type AuthConfig struct {
	URL      string `json:"url" yaml:"url"`
	APIKey   string `json:"api_key" yaml:"api_key"`
	Required bool   `json:"required" yaml:"required"`
}

// Supported storage backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendFile:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// Package config provides application constants and runtime configuration.
package config

const (
	// AppName is the application name.
	AppName = "name2cc"

	// EnvLang overrides the detected locale when set (BCP-47 or POSIX form).
	EnvLang = "NAME2CC_LANG"

	// DefaultBatchConcurrency is the worker count for concurrent batch mode.
	DefaultBatchConcurrency = 4
)

// Config holds runtime configuration assembled from flags and environment.
type Config struct {
	Lang        string
	Candidates  []string
	JSONOutput  bool
	NoColor     bool
	Concurrency int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: DefaultBatchConcurrency,
	}
}

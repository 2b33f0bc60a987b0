package driven

// ConfigStore provides read access to application configuration.
// Implementations handle the source (TOML file, environment) and type conversion.
// Keys use dot notation for nested tables (e.g. "telegram.token").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetInt64Slice retrieves an integer list configuration value.
	// Returns nil if key doesn't exist or isn't a list of integers.
	GetInt64Slice(key string) []int64

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration source path, if any.
	Path() string
}

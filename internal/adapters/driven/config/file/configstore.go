package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Environment variables that override file values.
const (
	EnvBotToken   = "SERCHA_BOT_TOKEN"
	EnvDocuments  = "SERCHA_BOT_DOCUMENTS"
	EnvPublicURL  = "SERCHA_BOT_PUBLIC_URL"
	EnvAllowedIDs = "SERCHA_BOT_ALLOWED_IDS"
)

// envKeys maps environment variables to the config keys they override.
var envKeys = map[string]string{
	EnvBotToken:  "telegram.token",
	EnvDocuments: "documents.path",
	EnvPublicURL: "yandex.public_url",
}

// ConfigStore is a read-mostly implementation of driven.ConfigStore backed by
// a TOML file with environment overrides.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.sercha-bot/config.toml.
// A missing file is not an error; every key then falls back to its default.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// DefaultDir returns ~/.sercha-bot.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sercha-bot"), nil
}

// LoadDotEnv reads KEY=value pairs from a .env file into the process
// environment. Variables already set are left untouched, and a missing file
// is ignored.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetInt64Slice retrieves an integer list. Non-integer items are dropped.
func (s *ConfigStore) GetInt64Slice(key string) []int64 {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	// TOML arrays are parsed as []any
	switch v := val.(type) {
	case []int64:
		return v
	case []any:
		result := make([]int64, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int64:
				result = append(result, n)
			case int:
				result = append(result, int64(n))
			}
		}
		return result
	default:
		return nil
	}
}

// Set overrides a value in memory. Used for command-line flags; nothing is
// written back to the file.
func (s *ConfigStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Load reads the TOML file and applies environment overrides.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
		// No config file; environment and defaults only
		s.data = make(map[string]any)
	case err != nil:
		return err
	default:
		var loaded map[string]any
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, s.filePath, err)
		}
		// Flatten nested maps into dot-notation keys for easier access
		s.data = flattenMap(loaded, "")
	}

	return s.applyEnv()
}

// applyEnv overlays environment variables (caller must hold lock).
func (s *ConfigStore) applyEnv() error {
	for env, key := range envKeys {
		if val, ok := os.LookupEnv(env); ok && val != "" {
			s.data[key] = val
		}
	}

	raw, ok := os.LookupEnv(EnvAllowedIDs)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	ids, err := ParseIDList(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrConfigInvalid, EnvAllowedIDs, err)
	}
	s.data["access.allowed_ids"] = ids
	return nil
}

// ParseIDList parses a comma-separated list of numeric user IDs.
func ParseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

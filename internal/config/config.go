package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvIndent        = "LARAMIG_INDENT"
	EnvExtension     = "LARAMIG_EXTENSION"
	EnvNaming        = "LARAMIG_NAMING"
	EnvMigrationsDir = "LARAMIG_MIGRATIONS_DIR"
)

// Config represents the laramig project configuration
type Config struct {
	Indent        string `json:"indent"`         // one indentation level in generated code
	Extension     string `json:"extension"`      // migration file extension, no dot
	Naming        string `json:"naming"`         // "first" or "words"
	MigrationsDir string `json:"migrations_dir"` // folder created under the output path
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Indent:        "\t",
		Extension:     "php",
		Naming:        "first",
		MigrationsDir: "migrations",
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".laramig", "config.json")
}

// LoadConfig reads .laramig/config.json from the specified directory.
// A missing file yields the defaults; fields left empty in the file keep
// their default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.merge(fileCfg)

	return cfg, nil
}

// Load reads the config file in dir and applies environment overrides from
// dir/.env and the process environment, in that order of precedence (the
// process environment wins).
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	env, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	if env == nil {
		env = map[string]string{}
	}
	for _, key := range []string{EnvIndent, EnvExtension, EnvNaming, EnvMigrationsDir} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	cfg.ApplyEnv(env)

	return cfg, nil
}

// ApplyEnv overrides fields from the LARAMIG_* keys present in env.
// Backslash escapes in LARAMIG_INDENT ("\t") are expanded.
func (c *Config) ApplyEnv(env map[string]string) {
	c.merge(Config{
		Indent:        unescapeIndent(env[EnvIndent]),
		Extension:     env[EnvExtension],
		Naming:        env[EnvNaming],
		MigrationsDir: env[EnvMigrationsDir],
	})
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Dir(Path(dir))
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .laramig dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// merge copies the non-empty fields of other into c.
func (c *Config) merge(other Config) {
	if other.Indent != "" {
		c.Indent = other.Indent
	}
	if ext := strings.TrimLeft(other.Extension, "."); ext != "" {
		c.Extension = ext
	}
	if other.Naming != "" {
		c.Naming = other.Naming
	}
	if other.MigrationsDir != "" {
		c.MigrationsDir = other.MigrationsDir
	}
}

// unescapeIndent expands Go escape sequences such as \t or \u0020. A value
// that does not unquote is used as is.
func unescapeIndent(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	unquoted, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return unquoted
}

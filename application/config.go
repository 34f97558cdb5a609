// Package application provides the on-disk configuration format for
// the agentproof demo/operator CLI: key paths, a durable store path,
// and logger settings, loaded from TOML.
package application

import (
	"fmt"

	"github.com/agentproof/agentproof/utils"
	"github.com/agentproof/agentproof/utils/binutils"
)

// AppConfig provides an abstraction of the underlying encoding format
// for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// Config is the agentproof CLI's configuration file: where to find the
// agent's key material, where to keep the durable proof store, and
// how to log.
type Config struct {
	Path string `toml:"-"`

	AgentID        string                 `toml:"agent_id"`
	PrivateKeyPath string                 `toml:"private_key_path"`
	PublicKeyPath  string                 `toml:"public_key_path"`
	StorePath      string                 `toml:"store_path"`
	Logger         *binutils.LoggerConfig `toml:"logger"`

	Encoding string       `toml:"-"`
	loader   ConfigLoader `toml:"-"`
}

var _ AppConfig = (*Config)(nil)

// DefaultConfig returns a Config with sensible defaults for a fresh
// `agentproof init`.
func DefaultConfig() *Config {
	return &Config{
		AgentID:        "agent-1",
		PrivateKeyPath: "agent.key",
		PublicKeyPath:  "agent.pub",
		StorePath:      "agentproof.db",
		Logger: &binutils.LoggerConfig{
			Environment: "development",
		},
	}
}

// Load reads the configuration from file using the given encoding
// ("toml" is the only one currently supported; unsupported or empty
// encodings fall back to toml).
func (c *Config) Load(file, encoding string) error {
	c.Path = file
	c.Encoding = encoding
	c.loader = newConfigLoader(encoding)
	if err := c.loader.Decode(c); err != nil {
		return fmt.Errorf("application: load config: %w", err)
	}
	return nil
}

// Save writes the configuration to its Path in its loaded encoding
// (toml when none was set). It fails if a file already exists at Path;
// an existing file is never overwritten.
func (c *Config) Save() error {
	if c.loader == nil {
		c.loader = newConfigLoader(c.Encoding)
	}
	if err := c.loader.Encode(c); err != nil {
		return fmt.Errorf("application: save config: %w", err)
	}
	return nil
}

// GetPath returns the path the config was (or will be) loaded from
// or saved to.
func (c *Config) GetPath() string {
	return c.Path
}

// ResolveKeyPaths returns the private and public key paths resolved
// relative to the config file's directory.
func (c *Config) ResolveKeyPaths() (priv, pub string) {
	return utils.ResolvePath(c.PrivateKeyPath, c.Path), utils.ResolvePath(c.PublicKeyPath, c.Path)
}

// ResolveStorePath returns the durable store path resolved relative
// to the config file's directory.
func (c *Config) ResolveStorePath() string {
	return utils.ResolvePath(c.StorePath, c.Path)
}

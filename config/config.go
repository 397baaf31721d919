package config

import (
	"fmt"
	"os"
	"path"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const hexrangeConfigDirName = "hexrange"
const hexrangeConfigFileName = "config.toml"

// DefaultProfileName is the profile used when none is requested.
const DefaultProfileName = "default"

// A Config represents the on-disk configuration of the hexrange tool.
type Config struct {
	Profiles map[string]Profile `json:"profiles,omitempty"`
}

// LoadFromFile loads a config from path.
// A missing file is not an error and yields an empty config.
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Config{Profiles: map[string]Profile{}}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open hexrange configuration file")
	}
	defer file.Close()

	decoder := toml.NewDecoder(file).SetTagName("json")

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML config")
	}

	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}

	return &cfg, nil
}

// DefaultPath returns the location of the config file in the user configuration directory.
func DefaultPath() (string, error) {
	configPath, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get the user configuration directory")
	}

	return path.Join(configPath, hexrangeConfigDirName, hexrangeConfigFileName), nil
}

// LoadDefault loads a config from the default path.
// Without a user configuration directory there is no file to read, and the config is empty.
func LoadDefault() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return &Config{Profiles: map[string]Profile{}}, nil
	}

	return LoadFromFile(configPath)
}

// Profile returns the profile with the given name.
// The default profile always exists, even when the file does not define it.
func (c *Config) Profile(profileName string) (*Profile, error) {
	if profile, ok := c.Profiles[profileName]; ok {
		profile = profile.withDefaults()
		return &profile, nil
	}

	if profileName == DefaultProfileName {
		profile := DefaultProfile()
		return &profile, nil
	}

	return nil, errors.New(fmt.Sprintf("profile '%s' not found", profileName))
}

// LoadProfileByName is a utility method for loading a single profile from the default config location.
func LoadProfileByName(profileName string) (*Profile, error) {
	config, err := LoadDefault()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile from configuration")
	}

	return config.Profile(profileName)
}

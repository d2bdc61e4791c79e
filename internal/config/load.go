package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

//go:embed default.yaml
var defaultData []byte

// EnvPrefix is the prefix for environment overrides of data keys,
// e.g. SKYRAID_GAMEPLAY_CONTACT_DAMAGE.
const EnvPrefix = "SKYRAID"

// Load reads the embedded default game data, merges the file at path over it
// when path is not empty, applies environment overrides and validates the result.
func Load(path string) (*GameData, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(defaultData)); err != nil {
		return nil, fmt.Errorf("read default data: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merge %s: %w", path, err)
		}
	}
	return decode(v)
}

// Decode reads YAML game data from r without the embedded defaults.
func Decode(r io.Reader) (*GameData, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*GameData, error) {
	var data GameData
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("validate data: %w", err)
	}
	return &data, nil
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/dotf/pkg/errors"
	"github.com/arthur-debert/dotf/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides. DOTF_DEFAULT_KEY sets
// default_key; a double underscore descends into a table, so
// DOTF_WATCH__DEBOUNCE sets watch.debounce.
const EnvPrefix = "DOTF_"

// Permissions holds the modes used for directories and files dotf creates
type Permissions struct {
	Directory os.FileMode `koanf:"directory"`
	File      os.FileMode `koanf:"file"`
}

// Watch configures `dotf watch`
type Watch struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Config is the main configuration structure
type Config struct {
	Root        string      `koanf:"root"`
	DefaultKey  string      `koanf:"default_key"`
	DefaultTags []string    `koanf:"default_tags"`
	Permissions Permissions `koanf:"permissions"`
	Watch       Watch       `koanf:"watch"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile overrides the user config path. Empty means
	// $XDG_CONFIG_HOME/dotf/config.toml.
	ConfigFile string

	// Overrides are applied last, keyed by koanf path (e.g. "root").
	// Empty string values are ignored.
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file, if present
	configPath := opts.ConfigFile
	if configPath == "" {
		configPath = paths.ConfigFile()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envPair), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Explicit overrides (command-line flags)
	if overrides := nonEmpty(opts.Overrides); len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if cfg.Root == "" {
		return nil, errors.New(errors.ErrConfigParse, "configuration has an empty root")
	}

	return &cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// envPair skips variables that are set but empty, so DOTF_ROOT= behaves
// like an unset DOTF_ROOT.
func envPair(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(key), value
}

func nonEmpty(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

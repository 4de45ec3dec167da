package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/autopickup/pkg/errors"
	"github.com/arthur-debert/autopickup/pkg/logging"
	"github.com/arthur-debert/autopickup/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables holding options
const EnvPrefix = "AUTOPICKUP_"

// Load builds the options from defaults, the file at path (skipped when
// empty or missing), the environment and overrides, in that order.
func Load(path string, overrides map[string]interface{}) (types.Options, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return types.Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
				return types.Options{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to load options from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Options file loaded")
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return types.Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return types.Options{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var opts types.Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &opts,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				limitWordHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &opts, unmarshalConf); err != nil {
		return types.Options{}, errors.Wrap(err, errors.ErrConfigValid, "failed to decode options")
	}

	logger.Debug().
		Bool("enabled", opts.Enabled).
		Bool("pickup_owned", opts.PickupOwned).
		Int("weight_limit", opts.WeightLimit).
		Int("volume_limit", opts.VolumeLimit).
		Msg("Options resolved")
	return opts, nil
}

// Defaults returns the built-in options
func Defaults() types.Options {
	opts, err := Load("", nil)
	if err != nil {
		return types.Options{Enabled: true}
	}
	return opts
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps AUTOPICKUP_WEIGHT_LIMIT to weight_limit
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// limitWordHookFunc lets integer options be switched off with a word
func limitWordHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Int {
			return data, nil
		}
		switch strings.ToLower(strings.TrimSpace(data.(string))) {
		case "off", "none", "unlimited":
			return 0, nil
		}
		return data, nil
	}
}

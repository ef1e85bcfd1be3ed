// Package config loads the runtime configuration from an optional file and BOXITER_* environment
// variables.
package config

import (
	"sort"
	"strings"

	"github.com/lyraproj/boxiter/iter"
	"github.com/lyraproj/boxiter/logger"
	"github.com/lyraproj/boxiter/tuning"
	"github.com/lyraproj/boxiter/types"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const EnvPrefix = `BOXITER`

type (
	IterationConfig struct {
		// NotIterable is the name of the policy applied to containers that cannot be iterated,
		// `strict` or `empty`
		NotIterable string `yaml:"not_iterable" mapstructure:"not_iterable"`
	}

	Config struct {
		Log       logger.Config   `yaml:"log" mapstructure:"log"`
		Iteration IterationConfig `yaml:"iteration" mapstructure:"iteration"`

		// Tuning maps upper case option names to values
		Tuning map[string]int64 `yaml:"tuning" mapstructure:"-"`
	}

	// Runtime is the result of applying a Config
	Runtime struct {
		Logger      logger.Logger
		Tuning      *tuning.Options
		IterOptions []iter.Option
	}

	loaderConfig struct {
		file string
	}

	LoaderOption func(*loaderConfig)
)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.file = path }
}

// Load reads the configuration. Values from the environment take precedence over values from the
// file.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	v.SetDefault(`log.level`, `info`)
	v.SetDefault(`log.format`, `console`)
	v.SetDefault(`log.output`, `stderr`)
	v.SetDefault(`log.no_color`, false)
	v.SetDefault(`log.timestamp`, false)
	v.SetDefault(`iteration.not_iterable`, iter.Strict.String())

	if lc.file != `` {
		v.SetConfigFile(lc.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, `failed to read config file %s`, lc.file)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, `failed to unmarshal config`)
	}

	tuningKeys, err := loadTuning(v)
	if err != nil {
		return nil, err
	}
	cfg.Tuning = tuningKeys
	return cfg, nil
}

// loadTuning collects the option names found in the file together with the known option names
// bound to the environment. Unknown names are kept so that Build can reject them.
func loadTuning(v *viper.Viper) (map[string]int64, error) {
	names := make(map[string]bool)
	for k := range v.GetStringMap(`tuning`) {
		names[strings.ToUpper(k)] = true
	}
	for _, n := range tuning.Default.Names() {
		key := `tuning.` + strings.ToLower(n)
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, `failed to bind %s`, key)
		}
		names[n] = true
	}

	result := make(map[string]int64)
	for n := range names {
		key := `tuning.` + strings.ToLower(n)
		if !v.IsSet(key) {
			continue
		}
		i, err := cast.ToInt64E(v.Get(key))
		if err != nil {
			return nil, errors.Wrapf(err, `invalid value for %s`, key)
		}
		result[n] = i
	}
	return result, nil
}

// Build validates the configuration and creates the logger, the tuning options, and the
// iteration options that it describes.
func (c *Config) Build() (*Runtime, error) {
	if err := c.Log.Validate(); err != nil {
		return nil, err
	}
	log := logger.New(c.Log)

	policy, ok := iter.ParsePolicy(strings.ToLower(c.Iteration.NotIterable))
	if !ok {
		return nil, errors.Errorf(`iteration.not_iterable must be one of [strict empty] (got: %s)`, c.Iteration.NotIterable)
	}

	opts := tuning.NewOptions(log)
	names := make([]string, 0, len(c.Tuning))
	for n := range c.Tuning {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if err := opts.SetOption(types.WrapString(n), types.WrapInteger(c.Tuning[n])); err != nil {
			return nil, err
		}
	}

	return &Runtime{
		Logger:      log,
		Tuning:      opts,
		IterOptions: []iter.Option{iter.WithPolicy(policy), iter.WithLogger(log)},
	}, nil
}

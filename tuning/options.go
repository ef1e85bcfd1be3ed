// Package tuning holds the named integer knobs that control the thresholds of the tiering
// subsystem. Nothing in the iteration layer reads them.
package tuning

import (
	"io/ioutil"
	"sort"
	"sync"

	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/logger"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/boxiter/yaml"
	"github.com/lyraproj/issue/issue"
)

const (
	EnableInterpreter         = `ENABLE_INTERPRETER`
	EnableOSR                 = `ENABLE_OSR`
	EnableReopt               = `ENABLE_REOPT`
	ForceInterpreter          = `FORCE_INTERPRETER`
	ReoptThresholdInterpreter = `REOPT_THRESHOLD_INTERPRETER`
	OSRThresholdInterpreter   = `OSR_THRESHOLD_INTERPRETER`
	ReoptThresholdBaseline    = `REOPT_THRESHOLD_BASELINE`
	OSRThresholdBaseline      = `OSR_THRESHOLD_BASELINE`
	SpeculationThreshold      = `SPECULATION_THRESHOLD`
)

var defaults = []struct {
	name  string
	value int64
}{
	{EnableInterpreter, 1},
	{EnableOSR, 1},
	{EnableReopt, 1},
	{ForceInterpreter, 0},
	{ReoptThresholdInterpreter, 25},
	{OSRThresholdInterpreter, 25},
	{ReoptThresholdBaseline, 1500},
	{OSRThresholdBaseline, 2500},
	{SpeculationThreshold, 100},
}

// Options is a fixed set of named integer knobs. It is safe for concurrent use.
type Options struct {
	lock     sync.RWMutex
	settings map[string]*setting
	logger   logger.Logger
}

// Default is the process wide set of options
var Default = NewOptions(logger.Discard)

func NewOptions(l logger.Logger) *Options {
	settings := make(map[string]*setting, len(defaults))
	for _, d := range defaults {
		settings[d.name] = &setting{name: d.name, value: d.value, defaultValue: d.value}
	}
	if l == nil {
		l = logger.Discard
	}
	return &Options{settings: settings, logger: l}
}

// SetOption sets an option on the Default options
func SetOption(option, value eval.Value) error {
	return Default.SetOption(option, value)
}

// SetOption assigns value to the option with the given name. The option must be a String and the
// value an Integer or a TUNING_TYPE_MISMATCH issue is returned. An unknown name results in a
// TUNING_UNKNOWN_OPTION issue.
func (o *Options) SetOption(option, value eval.Value) error {
	name, ok := option.(*types.String)
	if !ok {
		return typeMismatch(`option`, `str`, option)
	}
	n, ok := value.(*types.Integer)
	if !ok {
		return typeMismatch(`value`, `int`, value)
	}
	return o.Set(name.String(), n.Int())
}

// Set assigns value to the option with the given name
func (o *Options) Set(name string, value int64) error {
	o.lock.Lock()
	s, ok := o.settings[name]
	if ok {
		s.assign(value)
	}
	o.lock.Unlock()

	if !ok {
		return eval.Error(eval.TuningUnknownOption, issue.H{`name`: name})
	}
	logger.Debug(o.logger, `tuning option %s set to %d`, name, value)
	return nil
}

// Get returns the current value of the named option
func (o *Options) Get(name string) (int64, bool) {
	o.lock.RLock()
	defer o.lock.RUnlock()
	if s, ok := o.settings[name]; ok {
		return s.get(), true
	}
	return 0, false
}

// Enabled returns true when the named option has a non zero value
func (o *Options) Enabled(name string) bool {
	v, _ := o.Get(name)
	return v != 0
}

// IsSet returns true when the named option has been explicitly assigned since the last reset
func (o *Options) IsSet(name string) bool {
	o.lock.RLock()
	defer o.lock.RUnlock()
	s, ok := o.settings[name]
	return ok && s.isSet()
}

// Names returns the option names in sorted order
func (o *Options) Names() []string {
	names := make([]string, 0, len(defaults))
	for _, d := range defaults {
		names = append(names, d.name)
	}
	sort.Strings(names)
	return names
}

// Reset restores all options to their default value
func (o *Options) Reset() {
	o.lock.Lock()
	defer o.lock.Unlock()
	for _, s := range o.settings {
		s.reset()
	}
}

// ApplyProfile parses a YAML mapping of option names to integers and applies each entry through
// SetOption, in document order. Application stops at the first failing entry. An empty document
// changes nothing.
func (o *Options) ApplyProfile(data []byte) error {
	v, err := yaml.Unmarshal(data)
	if err != nil {
		return err
	}
	if v == types.Undef {
		return nil
	}
	d, ok := v.(*types.Dict)
	if !ok {
		return eval.Error(eval.TuningBadProfile, issue.H{`path`: `<data>`, `detail`: `document is not a mapping`})
	}
	for _, name := range d.Keys() {
		value, _ := d.Get(name)
		if err = o.SetOption(types.WrapString(name), value); err != nil {
			return err
		}
	}
	return nil
}

// LoadProfile reads the YAML file at path and applies it with ApplyProfile
func (o *Options) LoadProfile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return eval.Error(eval.TuningBadProfile, issue.H{`path`: path, `detail`: err.Error()})
	}
	return o.ApplyProfile(data)
}

func typeMismatch(what, expected string, actual eval.Value) error {
	return eval.Error(eval.TuningTypeMismatch, issue.H{`what`: what, `expected`: expected, `actual`: eval.KindOf(actual).String()})
}

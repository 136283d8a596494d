// Package config builds the run configuration from the command line and the
// environment. There is no configuration file.
package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// DefaultTimeoutMS is the idle threshold used when no valid argument is given.
	DefaultTimeoutMS uint32 = 10000

	// EnvPrefix prefixes every environment override, e.g. IDLE_HELPER_LOG_LEVEL.
	EnvPrefix = "IDLE_HELPER"
)

// Run is the configuration of one helper run
type Run struct {
	// TimeoutMS comes from the positional argument only
	TimeoutMS uint32 `mapstructure:"-"`

	LogLevel string `mapstructure:"log_level"` // Overrides LOG_LEVEL when set
	Display  string `mapstructure:"display"`   // Wayland socket; empty means WAYLAND_DISPLAY
}

// DefaultRun provides the defaults
var DefaultRun = Run{
	TimeoutMS: DefaultTimeoutMS,
	LogLevel:  "",
	Display:   "",
}

// New returns a viper instance reading IDLE_HELPER_* variables
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", DefaultRun.LogLevel)
	v.SetDefault("display", DefaultRun.Display)
	return v
}

// RegisterFlags adds the ambient flags to fs and binds them to v
func RegisterFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("log-level", DefaultRun.LogLevel, "log level (debug, info, warn, error)")
	fs.String("display", DefaultRun.Display, "Wayland display socket (defaults to $WAYLAND_DISPLAY)")

	if err := v.BindPFlag("log_level", fs.Lookup("log-level")); err != nil {
		return errors.Wrap(err, "failed to bind log-level flag")
	}
	if err := v.BindPFlag("display", fs.Lookup("display")); err != nil {
		return errors.Wrap(err, "failed to bind display flag")
	}
	return nil
}

// Load resolves flags and environment from v and the timeout from args
func Load(v *viper.Viper, args []string) (*Run, error) {
	run := &Run{}
	if err := v.Unmarshal(run); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config")
	}
	run.TimeoutMS = ParseTimeout(args)
	return run, nil
}

// ParseTimeout returns the idle timeout in milliseconds from the first
// positional argument. Absent, malformed, zero, negative or out-of-range
// input silently yields DefaultTimeoutMS.
func ParseTimeout(args []string) uint32 {
	if len(args) == 0 {
		return DefaultTimeoutMS
	}

	val, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || val <= 0 || val > math.MaxUint32 {
		return DefaultTimeoutMS
	}
	return uint32(val)
}

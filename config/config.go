// Package config provides configuration management for the jobboard CLI
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tmc/jobboard/prefs"
	"github.com/tmc/jobboard/ui/toast"
)

// EnvPrefix is prepended to every environment override, e.g. JOBBOARD_THEME.
const EnvPrefix = "JOBBOARD"

// Config holds the configuration for the jobboard CLI
type Config struct {
	Theme     string `mapstructure:"theme" json:"theme"` // auto, light or dark
	PrefsFile string `mapstructure:"prefsFile" json:"prefsFile"`

	ToastEnterDelay time.Duration `mapstructure:"toastEnterDelay" json:"toastEnterDelay"`
	ToastVisible    time.Duration `mapstructure:"toastVisible" json:"toastVisible"`
	ToastFade       time.Duration `mapstructure:"toastFade" json:"toastFade"`

	LoadDelay time.Duration `mapstructure:"loadDelay" json:"loadDelay"`
	AuthDelay time.Duration `mapstructure:"authDelay" json:"authDelay"`

	Mouse bool `mapstructure:"mouse" json:"mouse"`

	Verbose bool   `mapstructure:"verbose" json:"verbose"`
	Debug   bool   `mapstructure:"debug" json:"debug"`
	LogFile string `mapstructure:"logFile" json:"logFile"`
}

// RegisterFlags defines the board's flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to the configuration file")
	fs.String("theme", "auto", "Colour theme: auto, light or dark")
	fs.String("prefs-file", prefs.DefaultPath(), "Where the theme preference is saved")
	fs.Duration("toast-visible", toast.DefaultTiming.Visible, "How long a toast stays on screen")
	fs.Duration("toast-fade", toast.DefaultTiming.Fade, "How long a toast takes to fade out")
	fs.Duration("load-delay", time.Second, "Simulated latency of loading more jobs")
	fs.Duration("auth-delay", time.Second, "Simulated latency of login and registration")
	fs.Bool("no-mouse", false, "Disable mouse support")
	fs.String("log-file", "", "Write logs to this file")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.Bool("debug", false, "Debug output")
}

// ToastTiming returns the toast lifecycle delays.
func (c *Config) ToastTiming() toast.Timing {
	return toast.Timing{
		EnterDelay: c.ToastEnterDelay,
		Visible:    c.ToastVisible,
		Fade:       c.ToastFade,
	}
}

// Load loads the configuration from various sources in the following order of precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Configuration file
// 4. Default values (lowest priority)
//
// If a config file is not found, it falls back to using defaults and flags.
// The --verbose flag prints the final configuration to stderr.
func Load(path string, stderr io.Writer, flagSet *pflag.FlagSet) (*Config, error) {
	if flagSet == nil {
		flagSet = pflag.CommandLine
	}
	if stderr == nil {
		stderr = io.Discard
	}
	cfg := &Config{}
	v := viper.New()

	SetupViper(v, path, flagSet)
	SetupFlagNormalization(flagSet)

	// Read config file first
	if err := HandleConfigFile(v, stderr, flagSet); err != nil {
		return nil, err
	}

	// Then bind flags (so they override config)
	if err := v.BindPFlags(flagSet); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}
	// --no-mouse is the inverse of mouse.
	if f := flagSet.Lookup("no-mouse"); f != nil && f.Changed {
		v.Set("mouse", f.Value.String() != "true")
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	LogConfig(cfg, stderr, flagSet)
	return cfg, nil
}

// Validate rejects values the board cannot use.
func (c *Config) Validate() error {
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q: want auto, light or dark", c.Theme)
	}
	for name, d := range map[string]time.Duration{
		"toastEnterDelay": c.ToastEnterDelay,
		"toastVisible":    c.ToastVisible,
		"toastFade":       c.ToastFade,
		"loadDelay":       c.LoadDelay,
		"authDelay":       c.AuthDelay,
	} {
		if d < 0 {
			return fmt.Errorf("invalid %s %v: must not be negative", name, d)
		}
	}
	return nil
}

// SetupViper configures viper with default values and settings
func SetupViper(v *viper.Viper, path string, flagSet *pflag.FlagSet) {
	// Set defaults
	v.SetDefault("theme", "auto")
	v.SetDefault("prefsFile", prefs.DefaultPath())
	v.SetDefault("toastEnterDelay", toast.DefaultTiming.EnterDelay)
	v.SetDefault("toastVisible", toast.DefaultTiming.Visible)
	v.SetDefault("toastFade", toast.DefaultTiming.Fade)
	v.SetDefault("loadDelay", time.Second)
	v.SetDefault("authDelay", time.Second)
	v.SetDefault("mouse", true)

	// Setup paths and env
	v.AddConfigPath("$HOME/.jobboard")
	v.AddConfigPath(".")
	v.SetConfigName("config")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	}
	// Set config file if specified in flags
	if flagConfigFilePath := flagSet.Lookup("config"); flagConfigFilePath != nil && flagConfigFilePath.Changed {
		v.SetConfigFile(flagConfigFilePath.Value.String())
	}
}

// SetupFlagNormalization configures flag normalization to handle dashes in flag names
func SetupFlagNormalization(flagSet *pflag.FlagSet) {
	normalizeFunc := flagSet.GetNormalizeFunc()
	flagSet.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "")
		return pflag.NormalizedName(name)
	})
}

// HandleConfigFile handles loading the configuration file
func HandleConfigFile(v *viper.Viper, stderr io.Writer, flagSet *pflag.FlagSet) error {
	verbose, _ := flagSet.GetBool("verbose")
	if configFlag := flagSet.Lookup("config"); configFlag != nil && configFlag.Changed {
		configFile := configFlag.Value.String()
		if verbose {
			fmt.Fprintf(stderr, "jobboard: trying to read config file: %s\n", configFile)
		}

		// Check if file exists and is readable
		if _, err := os.Stat(configFile); err != nil {
			if verbose {
				fmt.Fprintf(stderr, "jobboard: config file %s not accessible: %v\n", configFile, err)
			}
			return nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			if verbose {
				fmt.Fprintln(stderr, "jobboard: config file not found, using defaults")
			}
			return nil
		}
		return fmt.Errorf("unable to read config file: %w", err)
	}

	if verbose {
		fmt.Fprintf(stderr, "jobboard: successfully read config from %s\n", v.ConfigFileUsed())
	}
	return nil
}

// LogConfig logs the final configuration
func LogConfig(cfg *Config, stderr io.Writer, flagSet *pflag.FlagSet) {
	if verbose, _ := flagSet.GetBool("verbose"); verbose {
		fmt.Fprint(stderr, "jobboard-config: ")
		json.NewEncoder(stderr).Encode(cfg)
	}
}

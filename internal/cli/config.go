// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/matrix"
	"github.com/katalvlaran/ratla/sampler"
)

const (
	defaultMode     = "exact"
	defaultOutput   = outputText
	defaultDigits   = 0
	defaultLogLevel = "warn"
	defaultDraws    = 1

	outputText = "text"
	outputJSON = "json"
)

// ErrInvalidConfig reports a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the effective ratcalc configuration.
type Config struct {
	Mode              string  `mapstructure:"mode" yaml:"mode"`
	Digits            int     `mapstructure:"digits" yaml:"digits"`
	Output            string  `mapstructure:"output" yaml:"output"`
	LogLevel          string  `mapstructure:"log_level" yaml:"log_level"`
	ParallelThreshold int     `mapstructure:"parallel_threshold" yaml:"parallel_threshold"`
	Workers           int     `mapstructure:"workers" yaml:"workers"`
	PivotTolerance    float64 `mapstructure:"pivot_tolerance" yaml:"pivot_tolerance"`
	Seed              uint64  `mapstructure:"seed" yaml:"seed"`
	CacheTTL          string  `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Mode:              defaultMode,
		Digits:            defaultDigits,
		Output:            defaultOutput,
		LogLevel:          defaultLogLevel,
		ParallelThreshold: matrix.DefaultParallelThreshold,
		Workers:           matrix.DefaultWorkers,
		PivotTolerance:    matrix.DefaultPivotTolerance,
		Seed:              0,
		CacheTTL:          sampler.DefaultTTL.String(),
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("mode", d.Mode)
	v.SetDefault("digits", d.Digits)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("parallel_threshold", d.ParallelThreshold)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("pivot_tolerance", d.PivotTolerance)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("cache_ttl", d.CacheTTL)
}

// Validate checks every field and returns the parsed mode.
func (c Config) Validate() (fraction.Mode, error) {
	mode, err := fraction.ParseMode(c.Mode)
	if err != nil {
		return mode, fmt.Errorf("%w: mode: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Output != outputText && c.Output != outputJSON:
		return mode, fmt.Errorf("%w: output %q (want text or json)", ErrInvalidConfig, c.Output)
	case c.Digits < 0:
		return mode, fmt.Errorf("%w: digits must be >= 0", ErrInvalidConfig)
	case c.ParallelThreshold < 1:
		return mode, fmt.Errorf("%w: parallel_threshold must be >= 1", ErrInvalidConfig)
	case c.Workers < 0:
		return mode, fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	case c.PivotTolerance < 0 || math.IsNaN(c.PivotTolerance) || math.IsInf(c.PivotTolerance, 0):
		return mode, fmt.Errorf("%w: pivot_tolerance must be finite and >= 0", ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return mode, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if _, err := c.TTL(); err != nil {
		return mode, err
	}

	return mode, nil
}

// TTL parses CacheTTL.
func (c Config) TTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("%w: cache_ttl: %w", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: cache_ttl must be > 0", ErrInvalidConfig)
	}

	return d, nil
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ratcalc configuration",
		Long: `Manage ratcalc configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (RATCALC_*)
3. Config file (~/.ratcalc/config.yaml)
4. Defaults`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration after merging defaults, config file, environment and flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n", used)
			}
			yamlData, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(yamlData)

			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration file",
		Long:  `Create a default configuration file at ~/.ratcalc/config.yaml (or at --config).`,
		// the target file does not exist yet, so skip reading it
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}

			return writeDefaultConfig(cmd, path)
		},
	}

	configCmd.AddCommand(showCmd, initCmd)

	return configCmd
}

// configPath is --config or ~/.ratcalc/config.yaml.
func (a *app) configPath() (string, error) {
	if a.cfgFile != "" {
		return a.cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configBaseName+".yaml"), nil
}

func writeDefaultConfig(cmd *cobra.Command, path string) (err error) {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	yamlData, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	header := `# ratcalc configuration file
#
# Configuration hierarchy (highest to lowest priority):
#   1. CLI flags
#   2. Environment variables (RATCALC_*)
#   3. This config file
#   4. Built-in defaults

`
	if _, err = f.WriteString(header); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if _, err = f.Write(yamlData); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", path)

	return nil
}

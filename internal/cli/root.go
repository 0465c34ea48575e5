// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ratla/fraction"
)

const (
	envPrefix      = "RATCALC"
	configDirName  = ".ratcalc"
	configBaseName = "config"
)

// app carries the per-invocation state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	mode    fraction.Mode
	log     zerolog.Logger
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "ratcalc",
		Short: "ratcalc - exact and approximate rational calculator",
		Long: `ratcalc evaluates fractions, matrices and weighted draws either with
exact arbitrary-precision rationals or with float64 approximations.

Exact mode never rounds: matrix kernels start on 64-bit cells and move to
big integers transparently when a value no longer fits.

Example:
  ratcalc parse 1/3 0.25
  ratcalc matrix invert "2,1;1,1"
  ratcalc --mode approx matrix mul "1,2;3,4" "0.5;0.25"
  ratcalc sample "1/4,1/4,1/2" --draws 1000 --seed 7`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.ratcalc/config.yaml)")
	pf.String("mode", defaultMode, "arithmetic mode (exact, approx)")
	pf.String("output", defaultOutput, "output format (text, json)")
	pf.Int("digits", defaultDigits, "print decimals with this many digits instead of fractions (0 = fractions)")
	pf.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = a.v.BindPFlag("mode", pf.Lookup("mode"))
	_ = a.v.BindPFlag("output", pf.Lookup("output"))
	_ = a.v.BindPFlag("digits", pf.Lookup("digits"))
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))

	root.AddCommand(
		newVersionCmd(),
		newConfigCmd(a),
		newParseCmd(a),
		newMatrixCmd(a),
		newSampleCmd(a),
	)

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// initConfig reads the config file and environment, validates the result
// and builds the logger.
func (a *app) initConfig(cmd *cobra.Command) error {
	setDefaults(a.v)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, configDirName))
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(configBaseName)
	}

	// RATCALC_MODE, RATCALC_LOG_LEVEL, ...
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	mode, err := a.cfg.Validate()
	if err != nil {
		return err
	}
	a.mode = mode

	lvl, _ := zerolog.ParseLevel(a.cfg.LogLevel)
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().Timestamp().Str("cmd", cmd.Name()).
		Logger()
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("using config file")
	}

	return nil
}

// factory returns the value constructor for the configured mode.
func (a *app) factory() fraction.Factory { return fraction.Factory{Mode: a.mode} }

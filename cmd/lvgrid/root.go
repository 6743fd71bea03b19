package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvgrid/internal/ctxlog"
	"github.com/katalvlaran/lvgrid/sweep"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by all subcommands of one root command.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
}

// newRootCmd builds the command tree. Each call gets its own viper instance,
// so commands can be built and executed repeatedly in tests.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvgrid",
		Short: "Enumerate and sample parameter sweeps",
		Long: `lvgrid reads a sweep definition (YAML or HCL), builds the Cartesian
product of its dimensions and enumerates, counts or samples the resulting
points, optionally narrowed by a filter expression.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.logger = newLogger(a.v.GetString("log-level"), a.v.GetString("log-format"), a.errOut)
			slog.SetDefault(a.logger)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default is $HOME/.lvgrid.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	_ = a.v.BindPFlags(pf)

	root.AddCommand(
		a.newCountCmd(),
		a.newListCmd(),
		a.newSampleCmd(),
		a.newValidateCmd(),
	)
	return root
}

// initConfig loads configuration from the config file and LVGRID_* env vars.
// A missing default config file is not an error; a missing explicit one is.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("LVGRID")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	cfgFile := a.v.GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigType("yaml")
	a.v.SetConfigName(".lvgrid")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// build loads the definition at path and builds its space and filter.
func (a *app) build(cmd *cobra.Command, path string) (*sweep.Definition, *sweep.Space, *sweep.Filter, error) {
	def, err := sweep.LoadFile(cmd.Context(), path)
	if err != nil {
		return nil, nil, nil, err
	}
	space, filter, err := def.Build()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, space, filter, nil
}

// bindFlag exposes a subcommand flag to viper under "<command>.<flag>", so
// it can also come from the config file or LVGRID_<COMMAND>_<FLAG>.
func (a *app) bindFlag(cmd *cobra.Command, name string) {
	_ = a.v.BindPFlag(cmd.Name()+"."+name, cmd.Flags().Lookup(name))
}

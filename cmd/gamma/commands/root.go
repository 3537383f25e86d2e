// Package commands implements the gamma command tree.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"github.com/born-ml/probability/backend/cpu"
	"github.com/born-ml/probability/tensor"
)

// app carries state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
	backend tensor.Backend
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd(version string) *cobra.Command {
	a := &app{
		v:       viper.New(),
		backend: cpu.New(),
	}

	rootCmd := &cobra.Command{
		Use:   "gamma",
		Short: "Evaluate batches of Gamma distributions",
		Long: `gamma evaluates Gamma(alpha, beta) distributions with shape alpha and
rate beta. Lists of parameters describe a batch of independent
distributions; single values broadcast against lists.

Parameters come from flags, GAMMA_* environment variables or a YAML
config file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-format"))
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("configuration loaded", "config_file", a.v.ConfigFileUsed(), "backend", a.backend.Name())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.gamma.yaml)")
	flags.String("alpha", "", "shape parameter(s), comma separated")
	flags.String("beta", "", "rate parameter(s), comma separated")
	flags.String("dtype", "float64", "parameter precision: float32 or float64")
	flags.String("name", "Gamma", "distribution name used in error messages")
	flags.StringP("output", "o", "table", "output format: table, json or yaml")
	flags.String("log-level", "WARN", "log level: DEBUG, INFO, WARN or ERROR")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("metrics", false, "print Prometheus metrics to stderr on exit")

	for _, key := range []string{"alpha", "beta", "dtype", "name", "output", "log-level", "log-format"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newProfileCmd(a))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(version string, args []string) int {
	rootCmd := NewRootCmd(version)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		observeError(err)
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}

	if showMetrics, _ := rootCmd.PersistentFlags().GetBool("metrics"); showMetrics {
		writeMetrics(rootCmd.ErrOrStderr())
	}

	if err != nil {
		return 1
	}
	return 0
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(".gamma")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("GAMMA")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}
	return nil
}

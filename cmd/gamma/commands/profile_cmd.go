package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print the effective parameters as a YAML config file",
		Long: `profile prints the parameters after merging the config file, GAMMA_*
environment variables and flags. The output can be saved and passed back
with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(a.v)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return errors.Wrap(err, "encode profile")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

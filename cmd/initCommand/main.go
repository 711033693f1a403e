package initCommand

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/repository/config"
	"github.com/t-kuni/kagami-config/domain/service/configFindService"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configFindService *configFindService.ConfigFindService, configRepository config.Repository) *InitCommand {
	var baseURL string
	var private bool

	cmd := &cobra.Command{
		Use:   "init [repository-id...]",
		Short: "Create a kagami.yml in the current directory",
		Long:  `Create a kagami.yml settings file in the current directory so that "generate" can be run without arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := configFindService.DefaultConfigPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(configPath); err == nil {
				return eris.Errorf("%s already exists", configPath)
			}

			cfg := &config.Config{
				BaseURL:      baseURL,
				Private:      private,
				Repositories: args,
			}
			if cfg.Repositories == nil {
				cfg.Repositories = []string{}
			}

			if len(args) > 0 {
				err = configExample.NewConfigParams(args, "", baseURL, private).Validate()
				if err != nil {
					return err
				}
			}

			err = configRepository.Write(configPath, cfg)
			if err != nil {
				return eris.Wrap(err, "failed to write config file")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized Kagami settings. Created %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseURL, "base-url", "u", configExample.DefaultBaseURL, "Base URL of the Kagami server")
	cmd.Flags().BoolVarP(&private, "private", "p", false, "Generate authentication for private repositories")

	return &InitCommand{
		CobraCommand: cmd,
	}
}

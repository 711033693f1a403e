package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/t-kuni/kagami-config/cmd/generateCommand"
	"github.com/t-kuni/kagami-config/cmd/initCommand"
	"github.com/t-kuni/kagami-config/cmd/toolsCommand"
	"github.com/t-kuni/kagami-config/cmd/versionCommand"
	"github.com/t-kuni/kagami-config/domain/service/configApply"
	"github.com/t-kuni/kagami-config/domain/service/configDispatch"
	"github.com/t-kuni/kagami-config/domain/service/configFindService"
	"github.com/t-kuni/kagami-config/domain/service/gradleGroovyConfig"
	"github.com/t-kuni/kagami-config/domain/service/gradleKotlinConfig"
	"github.com/t-kuni/kagami-config/domain/service/mavenConfig"
	configRepo "github.com/t-kuni/kagami-config/infrastructure/repository/config"
	fileRepo "github.com/t-kuni/kagami-config/infrastructure/repository/file"
	"github.com/t-kuni/kagami-config/infrastructure/system/ksuid"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "kagami-config",
		Short: "Build tool configuration for Kagami repositories",
		Long:  `kagami-config prints Maven and Gradle configuration that resolves packages through a Kagami repository proxy.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	ksuidGenerator := ksuid.NewKsuidGenerator()
	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	configDispatchSrv := configDispatch.NewConfigDispatchService(
		mavenConfig.NewMavenConfigGenerator(),
		gradleGroovyConfig.NewGradleGroovyConfigGenerator(),
		gradleKotlinConfig.NewGradleKotlinConfigGenerator(),
	)
	configApplySrv := configApply.NewConfigApplyService(fileRepository, ksuidGenerator)

	cmd.AddCommand(generateCommand.NewGenerateCommand(
		configFindSrv,
		configRepository,
		configDispatchSrv,
		configApplySrv,
	).CobraCommand)
	cmd.AddCommand(initCommand.NewInitCommand(configFindSrv, configRepository).CobraCommand)
	cmd.AddCommand(toolsCommand.NewToolsCommand(configDispatchSrv).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}

package generateCommand

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/t-kuni/kagami-config/domain/model/buildTool"
	"github.com/t-kuni/kagami-config/domain/model/configExample"
	"github.com/t-kuni/kagami-config/domain/repository/config"
	"github.com/t-kuni/kagami-config/domain/service/configApply"
	"github.com/t-kuni/kagami-config/domain/service/configDispatch"
	"github.com/t-kuni/kagami-config/domain/service/configFindService"
)

const (
	EnvBaseURL = "KAGAMI_BASE_URL"
	EnvToken   = "KAGAMI_TOKEN"
	EnvPrivate = "KAGAMI_PRIVATE"
)

type GenerateCommand struct {
	CobraCommand *cobra.Command
}

type flags struct {
	tools   []string
	baseURL string
	token   string
	private bool
	write   bool
}

func NewGenerateCommand(
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	configDispatchService *configDispatch.ConfigDispatchService,
	configApplyService *configApply.ConfigApplyService,
) *GenerateCommand {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "generate [repository-id...]",
		Short: "Generate Maven and Gradle configuration for Kagami repositories",
		Long: `Generate ready-to-paste Maven settings.xml and Gradle init scripts that resolve packages through Kagami.
Repository ids are taken from the arguments, or from kagami.yml when no arguments are given.`,
		RunE: runGenerate(f, configFindService, configRepository, configDispatchService, configApplyService),
	}

	cmd.Flags().StringSliceVarP(&f.tools, "tool", "t", nil, "Build tool to generate for (maven, gradleGroovy, gradleKotlin). Defaults to all")
	cmd.Flags().StringVarP(&f.baseURL, "base-url", "u", "", "Base URL of the Kagami server (env: "+EnvBaseURL+")")
	cmd.Flags().StringVar(&f.token, "token", "", "Bearer token for private repositories (env: "+EnvToken+")")
	cmd.Flags().BoolVarP(&f.private, "private", "p", false, "Include authentication for private repositories (env: "+EnvPrivate+")")
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "Write each configuration to its destination file instead of printing it")

	return &GenerateCommand{
		CobraCommand: cmd,
	}
}

func runGenerate(
	f *flags,
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	configDispatchService *configDispatch.ConfigDispatchService,
	configApplyService *configApply.ConfigApplyService,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig(configFindService, configRepository)
		if err != nil {
			return err
		}

		params, err := resolveParams(cmd, f, cfg, args)
		if err != nil {
			return err
		}

		tools, err := resolveTools(cmd, f, cfg)
		if err != nil {
			return err
		}

		slog.Debug("Resolved generation settings",
			"repositories", params.RepositoryIDs,
			"base_url", params.BaseURL,
			"private", params.IsPrivate,
			"token_set", params.Token != "",
			"tools", tools)

		if err := params.Validate(); err != nil {
			return err
		}
		if params.IsPrivate && params.Token == "" {
			slog.Warn("Private repositories selected but no token given; the Authorization header will be empty",
				"hint", "set --token or "+EnvToken)
		}

		examples, err := configDispatchService.GenerateAll(tools, params)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, example := range examples {
			if f.write {
				err = writeExample(out, configApplyService, example)
				if err != nil {
					return err
				}
				continue
			}

			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# %s (%s)\n", example.Title, example.Filename)
			fmt.Fprint(out, example.Content)
		}

		return nil
	}
}

// readConfig returns an empty Config when no kagami.yml exists.
func readConfig(configFindSrv *configFindService.ConfigFindService, configRepository config.Repository) (*config.Config, error) {
	configPath, err := configFindSrv.FindConfig()
	if errors.Is(err, configFindService.ErrConfigNotFound) {
		slog.Debug("No settings file found, using flags and environment only")
		return &config.Config{}, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "failed to find config file")
	}

	cfg, err := configRepository.Read(configPath)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read config file")
	}

	slog.Debug("Loaded settings file", "path", configPath)
	return cfg, nil
}

// 優先順位はフラグ > 環境変数 > kagami.yml > デフォルト
func resolveParams(cmd *cobra.Command, f *flags, cfg *config.Config, args []string) (configExample.ConfigParams, error) {
	repositoryIDs := args
	if len(repositoryIDs) == 0 {
		repositoryIDs = cfg.Repositories
	}

	baseURL := firstNonEmpty(flagValue(cmd, "base-url", f.baseURL), os.Getenv(EnvBaseURL), cfg.BaseURL, configExample.DefaultBaseURL)
	token := firstNonEmpty(flagValue(cmd, "token", f.token), os.Getenv(EnvToken))

	private := cfg.Private
	if env := os.Getenv(EnvPrivate); env != "" {
		parsed, err := strconv.ParseBool(env)
		if err != nil {
			return configExample.ConfigParams{}, eris.Wrapf(err, "invalid %s: %s", EnvPrivate, env)
		}
		private = parsed
	}
	if cmd.Flags().Changed("private") {
		private = f.private
	}

	return configExample.NewConfigParams(repositoryIDs, token, baseURL, private), nil
}

func resolveTools(cmd *cobra.Command, f *flags, cfg *config.Config) ([]buildTool.BuildTool, error) {
	names := cfg.Tools
	if cmd.Flags().Changed("tool") {
		names = f.tools
	}
	if len(names) == 0 {
		return buildTool.All(), nil
	}

	tools := make([]buildTool.BuildTool, 0, len(names))
	for _, name := range names {
		tool, err := buildTool.Parse(name)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

func writeExample(out io.Writer, configApplyService *configApply.ConfigApplyService, example configExample.ConfigExample) error {
	result, err := configApplyService.Apply(example)
	if err != nil {
		return eris.Wrapf(err, "failed to write %s", example.Title)
	}

	if !result.Changed {
		fmt.Fprintf(out, "%s is up to date\n", result.Path)
		return nil
	}

	if result.BackupPath != "" {
		fmt.Fprintf(out, "Backed up %s to %s\n", result.Path, result.BackupPath)
		fmt.Fprintln(out, result.Diff)
	}
	fmt.Fprintf(out, "Wrote %s to %s\n", example.Title, result.Path)
	return nil
}

func flagValue(cmd *cobra.Command, name string, value string) string {
	if !cmd.Flags().Changed(name) {
		return ""
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package toolsCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/kagami-config/domain/model/buildTool"
	"github.com/t-kuni/kagami-config/domain/service/configDispatch"
)

type ToolsCommand struct {
	CobraCommand *cobra.Command
}

func NewToolsCommand(configDispatchService *configDispatch.ConfigDispatchService) *ToolsCommand {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the supported build tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tool := range buildTool.All() {
				described, err := configDispatchService.Describe(tool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-36s %s\n", tool, described.Title, described.Filename)
			}
			return nil
		},
	}

	return &ToolsCommand{
		CobraCommand: cmd,
	}
}

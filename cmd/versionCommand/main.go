package versionCommand

import (
	"fmt"

	"github.com/spf13/cobra"
)

// -ldflags "-X github.com/t-kuni/kagami-config/cmd/versionCommand.Version=..." で設定
var Version string
var Revision string

type VersionCommand struct {
	CobraCommand *cobra.Command
}

func NewVersionCommand() *VersionCommand {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kagami-config",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kagami-config version %s (rev: %s)\n", Version, Revision)
		},
	}

	return &VersionCommand{
		CobraCommand: cmd,
	}
}

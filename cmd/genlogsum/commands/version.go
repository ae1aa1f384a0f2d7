package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Short: 显示版本信息
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "genlogsum %s\n", version.Version)
		},
	}
}

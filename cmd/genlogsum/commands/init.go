package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/config"
	"github.com/livp123/genlogsum/internal/utils/logger"
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		// Short: 写入默认配置
		Long: `Write the default configuration file, to the --config path when no path is given.
写入默认配置文件，未给出路径时写入 --config 指定的路径。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.Get(cmd.Context())
			path := config.GetConfigPath()
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.SaveGlobalConfig(path, config.DefaultConfig()); err != nil {
				log.Errorf("❌ Failed to write %s: %v", path, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

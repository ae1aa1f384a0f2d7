package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/config"
	"github.com/livp123/genlogsum/internal/emergelog"
	"github.com/livp123/genlogsum/internal/report"
)

func newStatsCmd(opts *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [category/name...]",
		Short: "Show build time history per package",
		// Short: 显示每个软件包的构建耗时历史
		Long: `Show how many times each package was built and how long it took,
optionally restricted to the given category/name.
显示每个软件包的构建次数与耗时，可限定为给定的 category/name。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			now := nowFunc()
			many := len(cfg.Roots)*len(cfg.Files) > 1
			for _, root := range cfg.Roots {
				for _, file := range cfg.Files {
					path := config.JoinRoot(root, file)
					scan, err := emergelog.ScanFile(cmd.Context(), path)
					if err != nil {
						if !cfg.Report.SkipFile {
							fmt.Fprintf(cmd.ErrOrStderr(), "Application error: %v for %s\n", err, path)
						}
						continue
					}
					if many {
						fmt.Fprintf(out, "==> %s <==\n", path)
					}
					if err := report.RenderStats(out, report.SelectAtoms(scan.Store, args), now); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/buildlog"
	"github.com/livp123/genlogsum/internal/config"
	"github.com/livp123/genlogsum/internal/emergelog"
	"github.com/livp123/genlogsum/internal/metrics"
	"github.com/livp123/genlogsum/internal/report"
	"github.com/livp123/genlogsum/internal/resume"
	"github.com/livp123/genlogsum/internal/utils/logger"
)

// NotEmerging is printed when no root has a build to report.
const NotEmerging = "Not currently emerging"

// nowFunc is the clock of the report.
var nowFunc = time.Now

// runStatus prints the report of every file under every root.
// runStatus 输出每个根目录下每个文件的报告。
func runStatus(cmd *cobra.Command, cfg *config.GlobalConfig) error {
	ctx := cmd.Context()
	log := logger.Get(ctx)

	filter, err := report.CompileFilter(cfg.Filter)
	if err != nil {
		return err
	}
	stale, err := cfg.StaleAfterDuration()
	if err != nil {
		return err
	}
	binary, err := cfg.BinaryEstimateDuration()
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	palette := report.NewPalette(cfg.Color)
	out := cmd.OutOrStdout()
	now := nowFunc()
	printed := false

	for _, root := range cfg.Roots {
		opts := report.Options{
			Root:           root,
			ShowRoot:       cfg.Report.ShowRoot,
			Full:           cfg.Report.Full,
			All:            cfg.Report.All,
			BinaryEstimate: binary,
			StaleAfter:     stale,
			Filter:         filter,
		}
		if cfg.Report.ReadNinja {
			opts.Progress = buildlog.Finder{Dir: config.JoinRoot(root, cfg.BuildLogDir), UTC: cfg.BuildLogUTC}
		}

		var queue []resume.Entry
		queueRead := false

		for _, file := range cfg.Files {
			path := config.JoinRoot(root, file)
			scan, err := emergelog.ScanFile(ctx, path)
			if err != nil {
				if !cfg.Report.SkipFile {
					fmt.Fprintf(cmd.ErrOrStderr(), "Application error: %v for %s\n", err, path)
				}
				continue
			}

			if (opts.Full || opts.All) && !queueRead {
				queue = resume.Read(ctx, cfg.MtimedbPath(root))
				queueRead = true
			}

			r := report.Build(ctx, scan, queue, opts, now)
			if collector != nil {
				collector.Observe(r)
			}
			if r.Empty() {
				continue
			}
			if err := r.Render(out, palette); err != nil {
				return err
			}
			printed = true
		}
	}

	if !printed {
		fmt.Fprintln(out, NotEmerging)
	}

	if collector != nil {
		if err := collector.WriteTextfile(cfg.Metrics.Path); err != nil {
			log.Errorf("❌ Failed to write metrics to %s: %v", cfg.Metrics.Path, err)
			return err
		}
		log.Infof("📊 Metrics written to %s", cfg.Metrics.Path)
	}
	return nil
}

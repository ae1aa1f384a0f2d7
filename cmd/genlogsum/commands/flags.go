package commands

import (
	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/config"
)

// reportFlags are the command line overrides of the configuration file.
// reportFlags 是覆盖配置文件的命令行参数。
type reportFlags struct {
	files       []string
	roots       []string
	skipFile    bool
	full        bool
	all         bool
	readNinja   bool
	showRoot    bool
	filter      string
	color       string
	metricsFile string
}

func (f *reportFlags) register(cmd *cobra.Command) {
	// Shared with stats
	// 与 stats 共用
	pf := cmd.PersistentFlags()
	pf.StringSliceVarP(&f.files, "files", "f", []string{config.DefaultEmergeLog}, "emerge.log files to read, relative to each root")
	pf.StringSliceVar(&f.roots, "fakeroots", []string{config.DefaultRoot}, "Roots to read the files and mtimedb from, e.g. a chroot")
	pf.BoolVar(&f.skipFile, "skip-file", false, "Do not report files that cannot be read")

	fl := cmd.Flags()
	fl.BoolVar(&f.full, "full", false, "Append the estimated time of the whole resume list to each running build")
	fl.BoolVar(&f.all, "all", false, "Also list the packages of the resume list and a grand total")
	fl.BoolVar(&f.readNinja, "read-ninja", false, "Show [x/y] progress from the build log (needs FEATURES=split-log)")
	fl.BoolVar(&f.showRoot, "show-root", false, "Prefix each line with the root it belongs to")
	fl.StringVar(&f.filter, "filter", "", `Only show packages matching an expression, e.g. 'Category == "dev-lang"'`)
	fl.StringVar(&f.color, "color", config.ColorAuto, "Colour the estimates: auto, always or never")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
}

// apply copies every flag given on the command line over cfg.
// apply 将命令行中给出的参数覆盖到 cfg。
func (f *reportFlags) apply(cmd *cobra.Command, cfg *config.GlobalConfig) {
	changed := cmd.Flags().Changed
	if changed("files") {
		cfg.Files = f.files
	}
	if changed("fakeroots") {
		cfg.Roots = f.roots
	}
	if changed("skip-file") {
		cfg.Report.SkipFile = f.skipFile
	}
	if changed("full") {
		cfg.Report.Full = f.full
	}
	if changed("all") {
		cfg.Report.All = f.all
	}
	if changed("read-ninja") {
		cfg.Report.ReadNinja = f.readNinja
	}
	if changed("show-root") {
		cfg.Report.ShowRoot = f.showRoot
	}
	if changed("filter") {
		cfg.Filter = f.filter
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("metrics-file") {
		cfg.Metrics.Enabled = f.metricsFile != ""
		cfg.Metrics.Path = f.metricsFile
	}
}

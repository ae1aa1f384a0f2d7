package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/genlogsum/internal/config"
	"github.com/livp123/genlogsum/internal/runtime"
	"github.com/livp123/genlogsum/internal/utils/logger"
)

// RootCmd is the genlogsum command. Run without a subcommand it prints the
// status of the running emerge.
// RootCmd 是 genlogsum 命令，不带子命令运行时输出当前 emerge 的状态。
var RootCmd = NewRootCmd()

type sessionKey struct{}

// session is the configuration loaded before any command runs.
type session struct {
	cfg *config.GlobalConfig
	err error
}

// NewRootCmd builds the command tree.
// NewRootCmd 构建命令树。
func NewRootCmd() *cobra.Command {
	opts := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "genlogsum",
		Short: "Summarize emerge.log to show running emerges",
		// Short: 汇总 emerge.log 以显示正在进行的 emerge
		Long: `genlogsum reads emerge.log and prints which packages are being emerged,
how long each has been running and when it should be done, estimated from
previous builds of the same package.
genlogsum 读取 emerge.log，输出正在构建的软件包、已运行时间以及根据历史构建估算的完成时间。`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration to get logging settings
			// 加载配置以获取日志设置
			cfg, err := config.LoadGlobalConfig(config.GetConfigPath())
			if err != nil {
				// Fall back to default logging so the error can still be reported
				// 回退到默认日志配置，以便仍能报告错误
				logger.InitWithWriter(config.DefaultConfig().Logging, cmd.ErrOrStderr())
			} else {
				logger.InitWithWriter(cfg.Logging, cmd.ErrOrStderr())
			}

			// Inject logger and configuration into context
			// 将 Logger 与配置注入 Context
			ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
			ctx = context.WithValue(ctx, sessionKey{}, &session{cfg: cfg, err: err})
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadedConfig(cmd)
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runStatus(cmd, cfg)
		},
	}

	// Config file path
	// 配置文件路径
	cmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
	opts.register(cmd)

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd(cmd))
	return cmd
}

// loadedConfig returns the configuration loaded by PersistentPreRunE.
// loadedConfig 返回 PersistentPreRunE 加载的配置。
func loadedConfig(cmd *cobra.Command) (*config.GlobalConfig, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	if s.err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.GetConfigPath(), s.err)
	}
	return s.cfg, nil
}

// newCompletionCmd creates a completion command without powershell.
// newCompletionCmd 创建不含 powershell 的补全命令。
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell autocompletion script",
		Long: `Generate shell autocompletion script for genlogsum.
生成 genlogsum 的 shell 自动补全脚本。

Examples:
  genlogsum completion bash > /etc/bash_completion.d/genlogsum
  genlogsum completion zsh  > "${fpath[1]}/_genlogsum"
  genlogsum completion fish > ~/.config/fish/completions/genlogsum.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", args[0])
			}
		},
	}
}

// Execute runs RootCmd and exits non-zero on error.
// Execute 运行 RootCmd，出错时以非零状态退出。
func Execute() {
	defer logger.Sync()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

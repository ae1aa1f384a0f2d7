package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/livp123/genlogsum/internal/runtime"
	"github.com/livp123/genlogsum/internal/utils/fileutil"
	"github.com/livp123/genlogsum/internal/utils/logger"
	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// GlobalConfig is the top-level configuration.
// GlobalConfig 是顶层配置。
type GlobalConfig struct {
	Files          []string             `yaml:"files"`
	Roots          []string             `yaml:"roots"`
	Mtimedb        string               `yaml:"mtimedb"`
	BuildLogDir    string               `yaml:"build_log_dir"`
	BuildLogUTC    bool                 `yaml:"build_log_utc"`
	StaleAfter     string               `yaml:"stale_after"`
	BinaryEstimate string               `yaml:"binary_estimate"`
	Color          string               `yaml:"color"`
	Filter         string               `yaml:"filter"`
	Report         ReportConfig         `yaml:"report"`
	Logging        logger.LoggingConfig `yaml:"logging"`
	Metrics        MetricsConfig        `yaml:"metrics"`
}

// ReportConfig selects the optional parts of the status report.
// ReportConfig 选择状态报告中的可选部分。
type ReportConfig struct {
	Full      bool `yaml:"full"`       // append the resume list total to each running build
	All       bool `yaml:"all"`        // also list the resume list and a grand total
	ReadNinja bool `yaml:"read_ninja"` // append [x/y] progress from the build log
	ShowRoot  bool `yaml:"show_root"`  // prefix lines with the root name
	SkipFile  bool `yaml:"skip_file"`  // do not report unreadable files
}

// MetricsConfig configures the Prometheus textfile export.
// MetricsConfig 配置 Prometheus 文本文件导出。
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the built-in configuration.
// DefaultConfig 返回内置默认配置。
func DefaultConfig() *GlobalConfig {
	return &GlobalConfig{
		Files:          []string{DefaultEmergeLog},
		Roots:          []string{DefaultRoot},
		Mtimedb:        DefaultMtimedb,
		BuildLogDir:    DefaultBuildLogDir,
		BuildLogUTC:    true,
		StaleAfter:     DefaultStaleAfter,
		BinaryEstimate: DefaultBinaryEstimate,
		Color:          ColorAuto,
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "warn",
			Path:       "/var/log/genlogsum/genlogsum.log",
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/var/lib/node_exporter/textfile_collector/genlogsum.prom",
		},
	}
}

// GetConfigPath resolves the configuration file path.
// The CLI flag (runtime.ConfigPath) takes precedence over the default.
// GetConfigPath 解析配置文件路径，优先使用 CLI 标志 (runtime.ConfigPath)。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}

// LoadGlobalConfig reads path over the defaults. A missing file yields the
// defaults; an unreadable or invalid file is an error.
// LoadGlobalConfig 在默认值之上读取 path；文件不存在时返回默认值。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	cfg := DefaultConfig()

	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.NewConfigError(safePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes cfg to path atomically.
// SaveGlobalConfig 原子地将 cfg 写入 path。
func SaveGlobalConfig(path string, cfg *GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	safePath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(safePath), 0755); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(safePath, data, 0644)
}

// Validate checks the values that are parsed lazily.
// Validate 检查延迟解析的配置值。
func (c *GlobalConfig) Validate() error {
	if len(c.Files) == 0 {
		return apperrors.NewConfigError("files", c.Files)
	}
	if len(c.Roots) == 0 {
		return apperrors.NewConfigError("roots", c.Roots)
	}
	if _, err := c.StaleAfterDuration(); err != nil {
		return apperrors.NewConfigError("stale_after", c.StaleAfter)
	}
	if d, err := c.BinaryEstimateDuration(); err != nil || d < 0 {
		return apperrors.NewConfigError("binary_estimate", c.BinaryEstimate)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return apperrors.NewConfigError("color", c.Color)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return apperrors.NewConfigError("metrics.path", c.Metrics.Path)
	}
	return nil
}

// StaleAfterDuration parses stale_after; zero disables the check.
// StaleAfterDuration 解析 stale_after；为零表示不检查。
func (c *GlobalConfig) StaleAfterDuration() (time.Duration, error) {
	if c.StaleAfter == "" {
		return 0, nil
	}
	return time.ParseDuration(c.StaleAfter)
}

// BinaryEstimateDuration parses binary_estimate.
// BinaryEstimateDuration 解析 binary_estimate。
func (c *GlobalConfig) BinaryEstimateDuration() (time.Duration, error) {
	if c.BinaryEstimate == "" {
		return time.ParseDuration(DefaultBinaryEstimate)
	}
	return time.ParseDuration(c.BinaryEstimate)
}

// MtimedbPath returns the resume list location under root.
// MtimedbPath 返回 root 下恢复列表的位置。
func (c *GlobalConfig) MtimedbPath(root string) string {
	return JoinRoot(root, c.Mtimedb)
}

// JoinRoot resolves file under root, the way a chroot would see it.
// JoinRoot 以 chroot 的视角在 root 下解析 file。
func JoinRoot(root, file string) string {
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, file)
}

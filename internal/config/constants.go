package config

const (
	// DefaultConfigPath is the standard location for the genlogsum configuration file.
	// DefaultConfigPath 是 genlogsum 配置文件的标准位置。
	DefaultConfigPath = "/etc/genlogsum/config.yaml"

	// DefaultEmergeLog is the log Portage appends every emerge session to.
	// DefaultEmergeLog 是 Portage 记录每次 emerge 会话的日志。
	DefaultEmergeLog = "/var/log/emerge.log"

	// DefaultRoot is the root the log paths are resolved against.
	DefaultRoot = "/"

	// DefaultMtimedb is the resume list location, relative to a root.
	// DefaultMtimedb 是恢复列表的位置（相对于根目录）。
	DefaultMtimedb = "var/cache/edb/mtimedb"

	// DefaultBuildLogDir holds per-package build logs when FEATURES contains split-log.
	// DefaultBuildLogDir 存放每个软件包的构建日志（需要 FEATURES 中的 split-log）。
	DefaultBuildLogDir = "/var/log/portage/build"

	// DefaultStaleAfter drops in-flight builds older than a week.
	DefaultStaleAfter = "168h"

	// DefaultBinaryEstimate is the fixed estimate of a binary package install.
	// DefaultBinaryEstimate 是二进制软件包安装的固定估算时间。
	DefaultBinaryEstimate = "2m"

	// Color modes
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

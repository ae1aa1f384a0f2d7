package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

const sampleLog = `1000000000: Started emerge on: Sep 09, 2001 01:46:40
1000000000:  >>> emerge (1 of 1) sys-devel/gcc-13.2.0 to /
1000003600:  ::: completed emerge (1 of 1) sys-devel/gcc-13.2.0 to /
1000010000:  >>> emerge (1 of 1) dev-lang/rust-1.74.0 to /
1000010600:  ::: completed emerge (1 of 1) dev-lang/rust-1.74.0 to /
1000010601:  *** terminating.
1700000000:  >>> emerge (1 of 3) sys-devel/gcc-13.3.1 to /
`

const sampleMtimedb = `{"resume": {"mergelist": [
  ["ebuild", "/", "sys-devel/gcc-13.3.1", "merge"],
  ["ebuild", "/", "dev-lang/rust-1.75.0", "merge"],
  ["binary", "/", "app-misc/jq-1.7.1", "merge"]
]}}`

// executeCommand executes a fresh command tree and returns stdout and stderr.
// executeCommand 执行新的命令树并返回标准输出与标准错误。
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fakeRoot creates a root holding emerge.log and mtimedb.
// fakeRoot 创建包含 emerge.log 与 mtimedb 的根目录。
func fakeRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "gentoo")
	files := map[string]string{
		"var/log/emerge.log":    sampleLog,
		"var/cache/edb/mtimedb": sampleMtimedb,
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func fixClock(t *testing.T, offset time.Duration) {
	t.Helper()
	original := nowFunc
	nowFunc = func() time.Time { return time.Unix(1700000000, 0).Add(offset) }
	t.Cleanup(func() { nowFunc = original })
}

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "emerge.log")
	assert.Contains(t, stdout, "--read-ninja")
}

// TestStatus tests the report of a running build
// TestStatus 测试运行中构建的报告
func TestStatus(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)

	stdout, stderr, err := executeCommand(t, "--fakeroots", root, "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "1 of 3, sys-devel/gcc-13.3.1, ETA: 1h 3m\n", stdout)
	assert.Empty(t, stderr)
}

// TestStatusShowRootAll tests --show-root and --all together
// TestStatusShowRootAll 测试同时使用 --show-root 与 --all
func TestStatusShowRootAll(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)

	stdout, _, err := executeCommand(t, "--fakeroots", root, "--color", "never", "--show-root", "--all")
	require.NoError(t, err)
	assert.Equal(t,
		"gentoo: 1 of 3, sys-devel/gcc-13.3.1, ETA: 1h 3m\n"+
			"gentoo: dev-lang/rust-1.75.0, ETA: 13m\n"+
			"gentoo: app-misc/jq-1.7.1, ETA: 2m\n"+
			"gentoo: Total: 1h 19m\n",
		stdout)
}

// TestStatusFull tests the resume list total
// TestStatusFull 测试恢复列表总计
func TestStatusFull(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)

	stdout, _, err := executeCommand(t, "--fakeroots", root, "--color", "never", "--full")
	require.NoError(t, err)
	// 4560 + 810 + 120 seconds
	assert.Equal(t, "1 of 3, sys-devel/gcc-13.3.1, ETA: 1h 3m, Total: 1h 31m\n", stdout)
}

// TestStatusNotEmerging tests the output when nothing is running
// TestStatusNotEmerging 测试没有运行中构建时的输出
func TestStatusNotEmerging(t *testing.T) {
	fixClock(t, 30*24*time.Hour)
	root := fakeRoot(t)

	stdout, _, err := executeCommand(t, "--fakeroots", root)
	require.NoError(t, err)
	assert.Equal(t, NotEmerging+"\n", stdout)
}

// TestStatusMissingFile tests the application error and --skip-file
// TestStatusMissingFile 测试应用错误与 --skip-file
func TestStatusMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "emerge.log")

	stdout, stderr, err := executeCommand(t, "--files", missing)
	require.NoError(t, err)
	assert.Equal(t, NotEmerging+"\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "Application error: "), stderr)
	assert.Contains(t, stderr, "for "+missing)

	stdout, stderr, err = executeCommand(t, "--files", missing, "--skip-file")
	require.NoError(t, err)
	assert.Equal(t, NotEmerging+"\n", stdout)
	assert.Empty(t, stderr)
}

// TestStatusFilter tests valid and invalid filters
// TestStatusFilter 测试有效与无效的过滤表达式
func TestStatusFilter(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)

	stdout, _, err := executeCommand(t, "--fakeroots", root, "--filter", `Category == "dev-lang"`)
	require.NoError(t, err)
	assert.Equal(t, NotEmerging+"\n", stdout)

	_, _, err = executeCommand(t, "--fakeroots", root, "--filter", "Category ==")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidFilter))
}

// TestStatusMetricsFile tests the Prometheus textfile output
// TestStatusMetricsFile 测试 Prometheus 文本文件输出
func TestStatusMetricsFile(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)
	metricsPath := filepath.Join(t.TempDir(), "genlogsum.prom")

	_, _, err := executeCommand(t, "--fakeroots", root, "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `genlogsum_build_eta_seconds{package="sys-devel/gcc-13.3.1",tier="none"} 3810`)
	assert.Contains(t, string(data), "genlogsum_history_packages 2")
}

// TestStatusInvalidConfig tests that a broken config file is reported
// TestStatusInvalidConfig 测试损坏的配置文件会被报告
func TestStatusInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0644))

	_, _, err := executeCommand(t, "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConfigInvalid))
}

// TestStatusConfigFile tests settings taken from the config file
// TestStatusConfigFile 测试从配置文件读取的设置
func TestStatusConfigFile(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "roots: [\"" + root + "\"]\ncolor: never\nreport:\n  show_root: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	stdout, _, err := executeCommand(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "gentoo: 1 of 3, sys-devel/gcc-13.3.1, ETA: 1h 3m\n", stdout)

	// Flags win over the file
	// 命令行参数优先于配置文件
	stdout, _, err = executeCommand(t, "--config", path, "--show-root=false")
	require.NoError(t, err)
	assert.Equal(t, "1 of 3, sys-devel/gcc-13.3.1, ETA: 1h 3m\n", stdout)
}

// TestStatsCommand tests the build history listing
// TestStatsCommand 测试构建历史列表
func TestStatsCommand(t *testing.T) {
	fixClock(t, 10*time.Minute)
	root := fakeRoot(t)

	stdout, _, err := executeCommand(t, "--fakeroots", root, "stats")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "dev-lang/rust: 1 build, avg 10m"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "sys-devel/gcc: 1 build, avg 1h"), lines[1])

	stdout, _, err = executeCommand(t, "--fakeroots", root, "stats", "sys-devel/gcc")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, "last 10 minutes ago")
}

// TestInitCommand tests writing the default configuration
// TestInitCommand 测试写入默认配置
func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etc", "genlogsum", "config.yaml")

	stdout, _, err := executeCommand(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/var/log/emerge.log")

	_, _, err = executeCommand(t, "init", path)
	assert.Error(t, err)

	_, _, err = executeCommand(t, "init", path, "--force")
	assert.NoError(t, err)
}

// TestVersionCommand tests the version output
// TestVersionCommand 测试版本输出
func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "genlogsum dev\n", stdout)
}

// TestCompletionCommand tests completion scripts and unsupported shells
// TestCompletionCommand 测试补全脚本与不支持的 shell
func TestCompletionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "genlogsum")

	_, _, err = executeCommand(t, "completion", "powershell")
	assert.Error(t, err)
}

// Package buildlog reads the per-package build logs Portage writes when
// FEATURES contains split-log, to show the [done/total] progress of ninja.
// Package buildlog 读取 Portage 在启用 split-log 时写入的单包构建日志，以显示 ninja 的 [done/total] 进度。
package buildlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nxadm/tail"

	"github.com/livp123/genlogsum/internal/utils/fileutil"
	"github.com/livp123/genlogsum/internal/utils/logger"
)

const (
	// timeLayout is the suffix Portage appends to a build log name.
	timeLayout = "20060102-150405"
	// tailWindow bounds how much of a build log is read to find its last line.
	tailWindow = 64 * 1024
)

// Finder locates build logs under Dir.
// Finder 在 Dir 下查找构建日志。
type Finder struct {
	Dir string
	UTC bool // log names carry UTC rather than local time
}

// Path returns the log name of fullName for a build started at unix time ts.
// Path 返回 fullName 在 unix 时间 ts 开始构建时的日志文件名。
func (f Finder) Path(fullName string, ts int64) string {
	t := time.Unix(ts, 0)
	if f.UTC {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	return filepath.Join(f.Dir, fmt.Sprintf("%s:%s.log", fullName, t.Format(timeLayout)))
}

// Candidates returns the paths to try, in order, for a build that emerge.log
// says started at ts. The log file may be created up to a second apart from
// the emerge.log line.
// Candidates 按顺序返回需要尝试的路径（允许与 emerge.log 相差一秒）。
func (f Finder) Candidates(fullName string, ts int64) []string {
	return []string{
		f.Path(fullName, ts+1),
		f.Path(fullName, ts),
		f.Path(fullName, ts-1),
	}
}

// Progress returns the ninja progress marker of the running build of fullName,
// or "" when there is no log or its last line carries no marker.
// Progress 返回 fullName 正在进行的构建的 ninja 进度标记，没有时返回 ""。
func (f Finder) Progress(ctx context.Context, fullName string, ts int64) string {
	log := logger.Get(ctx)
	for _, path := range f.Candidates(fullName, ts) {
		if !fileutil.IsRegularFile(path) {
			continue
		}
		line, err := LastLine(path)
		if err != nil {
			log.Debugf("Cannot read build log %s: %v", path, err)
			continue
		}
		if line == "" {
			continue
		}
		marker, _ := NinjaMarker(line)
		return marker
	}
	return ""
}

// LastLine returns the last line of the file at path.
// LastLine 返回 path 文件的最后一行。
func LastLine(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	config := tail.Config{
		Follow:    false,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}
	if info.Size() > tailWindow {
		config.Location = &tail.SeekInfo{Offset: -tailWindow, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, config)
	if err != nil {
		return "", err
	}
	defer t.Stop()

	var last string
	for line := range t.Lines {
		if line.Err != nil {
			return "", line.Err
		}
		last = strings.TrimSuffix(line.Text, "\r")
	}
	return last, nil
}

// NinjaMarker returns the leading "[x/y]" of line. The marker must start with
// '[' followed by a digit or a space and a digit.
// NinjaMarker 返回 line 开头的 "[x/y]"。
func NinjaMarker(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' {
		return "", false
	}
	switch {
	case isDigit(line[1]):
	case line[1] == ' ' && len(line) > 2 && isDigit(line[2]):
	default:
		return "", false
	}

	end := strings.IndexByte(line, ']')
	if end < 0 {
		// Unterminated: keep what the bracket would have held for one digit.
		end = 3
	}
	end++
	if end > len(line) {
		end = len(line)
	}
	return line[:end], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

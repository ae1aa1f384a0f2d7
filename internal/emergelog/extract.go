package emergelog

import (
	"strconv"
	"strings"

	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// BuildEvent is the package identity and timestamp extracted from one line.
// BuildEvent 是从单行中提取的软件包标识与时间戳。
type BuildEvent struct {
	Category  string
	Name      string
	FullName  string // category/name-version
	StartTime int64  // unix seconds of the line
	Binary    bool
	Ordinal   string // "x of y", display only
}

// CPN returns the version-independent category/name.
// CPN 返回与版本无关的 category/name。
func (e BuildEvent) CPN() string {
	return e.Category + "/" + e.Name
}

// ExtractStart extracts the event of a start or end line:
// "<ts>:  >>> emerge (x of y) cat/pkg-ver to /".
// ExtractStart 提取开始行或结束行中的事件。
func ExtractStart(line string) (BuildEvent, error) {
	ts, err := parseTimestamp(line)
	if err != nil {
		return BuildEvent{}, err
	}

	par := strings.IndexByte(line, ')')
	if par < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing ordinal")
	}
	start := par + 2
	if start > len(line) {
		return BuildEvent{}, apperrors.NewLineError(line, "missing package")
	}

	return extract(line, start, len(line), ts, false, startTerminator)
}

// ExtractMerge extracts the event of a "===" merge line:
// "<ts>:  === (x of y) Merging Binary (cat/pkg-ver::/path)".
// ExtractMerge 提取 "===" 合并行中的事件。
func ExtractMerge(line string) (BuildEvent, error) {
	if len(line) < mergeSearchOffset {
		return BuildEvent{}, apperrors.NewLineError(line, "line too short")
	}
	rel := strings.IndexByte(line[mergeSearchOffset:], ')')
	if rel < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing ordinal")
	}
	par := mergeSearchOffset + rel

	ts, err := parseTimestamp(line)
	if err != nil {
		return BuildEvent{}, err
	}

	afterWord := par + mergeWordSkip
	if afterWord >= len(line) {
		return BuildEvent{}, apperrors.NewLineError(line, "missing merge target")
	}
	open := strings.IndexByte(line[afterWord:], '(')
	if open < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing merge target")
	}
	start := afterWord + open + 1
	colon := strings.IndexByte(line[start:], mergeTerminator)
	if colon < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing repository separator")
	}

	binary := line[afterWord] == 'B'
	return extract(line, start, start+colon, ts, binary, mergeTerminator)
}

// extract builds the event whose versioned name starts at start and ends at the
// next terminator. The category/name boundary is searched in line[start:limit].
func extract(line string, start, limit int, ts int64, binary bool, terminator byte) (BuildEvent, error) {
	rest := line[start:]
	end := strings.IndexByte(rest, terminator)
	if end < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing name terminator")
	}
	fullName := rest[:end]
	if limit-start < end {
		end = limit - start
	}

	size, ok := CPNLength(rest[:end])
	if !ok || size >= len(fullName) {
		return BuildEvent{}, apperrors.NewLineError(line, "missing version")
	}
	cpn := fullName[:size]
	slash := strings.IndexByte(cpn, '/')
	if slash < 0 {
		return BuildEvent{}, apperrors.NewLineError(line, "missing category")
	}

	open := strings.IndexByte(line, '(')
	closing := strings.IndexByte(line, ')')
	if open < 0 || closing < open {
		return BuildEvent{}, apperrors.NewLineError(line, "missing ordinal")
	}

	return BuildEvent{
		Category:  cpn[:slash],
		Name:      cpn[slash+1:],
		FullName:  fullName,
		StartTime: ts,
		Binary:    binary,
		Ordinal:   line[open+1 : closing],
	}, nil
}

// CPNLength returns the length of the category/name prefix of a versioned
// name: everything before the first '-' that is followed by a digit. A name
// without such a dash is all prefix. ok is false when the name ends in '-'.
// CPNLength 返回版本化名称中 category/name 前缀的长度。
func CPNLength(cpv string) (int, bool) {
	n := 0
	for {
		i := strings.IndexByte(cpv[n:], '-')
		if i < 0 {
			return len(cpv), true
		}
		n += i + 1
		if n >= len(cpv) {
			return 0, false
		}
		if isDigit(cpv[n]) {
			return n - 1, true
		}
	}
}

// SplitCPN returns the category/name of a versioned name, or the name itself
// when no version can be found.
// SplitCPN 返回版本化名称的 category/name；找不到版本时返回原名称。
func SplitCPN(cpv string) string {
	size, ok := CPNLength(cpv)
	if !ok {
		return cpv
	}
	return cpv[:size]
}

func parseTimestamp(line string) (int64, error) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return 0, apperrors.NewLineError(line, "missing timestamp")
	}
	ts, err := strconv.ParseUint(line[:colon], 10, 63)
	if err != nil {
		return 0, apperrors.NewTimestampError(line, err)
	}
	return int64(ts), nil
}

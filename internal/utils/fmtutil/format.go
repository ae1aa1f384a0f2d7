// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// FewSeconds is printed instead of an empty "d h m" decomposition.
// FewSeconds 在 "d h m" 分解为空时输出。
const FewSeconds = "a few seconds"

// FormatSeconds renders a duration in seconds as "Xd Yh Zm ".
// Every non-zero component is followed by exactly one space; when all three
// components are zero the literal FewSeconds is returned (no trailing space).
// FormatSeconds 将秒数格式化为 "Xd Yh Zm "。
// 每个非零分量后跟一个空格；若三者皆为零则返回 FewSeconds（无尾随空格）。
func FormatSeconds(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}

	days := uint64(math.Floor(seconds / secondsPerDay))
	hours := uint64(math.Floor(seconds/secondsPerHour)) % 24
	minutes := uint64(math.Floor(seconds/secondsPerMinute)) % 60

	if days == 0 && hours == 0 && minutes == 0 {
		return FewSeconds
	}

	var b strings.Builder
	if days != 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteString("d ")
	}
	if hours != 0 {
		b.WriteString(strconv.FormatUint(hours, 10))
		b.WriteString("h ")
	}
	if minutes != 0 {
		b.WriteString(strconv.FormatUint(minutes, 10))
		b.WriteString("m ")
	}
	return b.String()
}

// FormatDuration formats a duration to human readable format, without the trailing space.
// FormatDuration 将持续时间格式化为可读格式（去掉尾随空格）。
func FormatDuration(d time.Duration) string {
	return Compact(FormatSeconds(d.Seconds()))
}

// Compact strips the separator FormatSeconds leaves after the last component.
// Compact 去掉 FormatSeconds 在最后一个分量后留下的空格。
func Compact(s string) string {
	return strings.TrimSuffix(s, " ")
}

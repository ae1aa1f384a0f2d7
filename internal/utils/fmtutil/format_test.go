package fmtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFormatSeconds tests the d/h/m decomposition
// TestFormatSeconds 测试 d/h/m 分解
func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{"zero", 0, "a few seconds"},
		{"sub minute", 32, "a few seconds"},
		{"minutes truncated", 29*60 + 27, "29m "},
		{"exact minutes", 1800, "30m "},
		{"hours and minutes", 71*60 + 61, "1h 12m "},
		{"exact hour", 3600, "1h "},
		{"exact day", 86400, "1d "},
		{"days hours minutes", 91*86400 + 9*3600 + 43*60, "91d 9h 43m "},
		{"day and minute", 86400 + 60, "1d 1m "},
		{"fractional", 72.5, "1m "},
		{"negative clamps", -30, "a few seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSeconds(tt.seconds))
		})
	}
}

// TestFormatDuration tests the trimmed variant
// TestFormatDuration 测试去除尾随空格的变体
func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2m", FormatDuration(2*time.Minute))
	assert.Equal(t, "1h 12m", FormatDuration(72*time.Minute+30*time.Second))
	assert.Equal(t, "a few seconds", FormatDuration(10*time.Second))
}

// TestCompact tests removal of the final separator
// TestCompact 测试去除最后的分隔符
func TestCompact(t *testing.T) {
	assert.Equal(t, "29m", Compact("29m "))
	assert.Equal(t, "a few seconds", Compact("a few seconds"))
	assert.Equal(t, "", Compact(""))
}

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/genlogsum/internal/emergelog"
	"github.com/livp123/genlogsum/internal/history"
	"github.com/livp123/genlogsum/internal/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Root: "/",
		Lines: []report.Line{
			{
				Event:    emergelog.BuildEvent{Category: "sys-devel", Name: "gcc", FullName: "sys-devel/gcc-13.3.1"},
				Estimate: history.Estimate{Remaining: 3810, Over: history.OverNone, Known: true},
			},
			{
				Event:    emergelog.BuildEvent{Category: "app-misc", Name: "new", FullName: "app-misc/new-1.0"},
				Estimate: history.Unknown(),
			},
			{
				Event:    emergelog.BuildEvent{Category: "dev-lang", Name: "rust", FullName: "dev-lang/rust-1.75.0"},
				Queued:   true,
				Estimate: history.Estimate{Remaining: 810, Known: true},
			},
		},
		Stats:    emergelog.ScanStats{Lines: 10, Malformed: 2},
		Packages: 2,
	}
}

// TestObserve tests that a report fills the gauges
// TestObserve 测试报告填充指标
func TestObserve(t *testing.T) {
	c := NewCollector()
	c.Observe(sampleReport())

	assert.Equal(t, 2.0, testutil.ToFloat64(c.BuildsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.QueuedPackages))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.HistoryPackages))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.MalformedLines))
	assert.Equal(t, 3810.0, testutil.ToFloat64(c.BuildETA.WithLabelValues("sys-devel/gcc-13.3.1", "none")))
	// Unknown estimates get no series
	// 未知估算不产生时间序列
	assert.Equal(t, 1, testutil.CollectAndCount(c.BuildETA))
}

// TestWriteTextfile tests the textfile output
// TestWriteTextfile 测试文本文件输出
func TestWriteTextfile(t *testing.T) {
	c := NewCollector()
	c.Observe(sampleReport())

	path := filepath.Join(t.TempDir(), "textfile", "genlogsum.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `genlogsum_build_eta_seconds{package="sys-devel/gcc-13.3.1",tier="none"} 3810`)
	assert.Contains(t, text, "genlogsum_builds_in_flight 2")
	assert.Contains(t, text, "genlogsum_malformed_lines_total 2")
}

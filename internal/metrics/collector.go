// Package metrics exports the status report as Prometheus metrics, written to
// a file for the node_exporter textfile collector.
// Package metrics 将状态报告导出为 Prometheus 指标，写入 node_exporter 文本文件收集器使用的文件。
package metrics

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/livp123/genlogsum/internal/report"
)

// Collector holds the report gauges in a private registry.
// Collector 在独立的注册表中保存报告指标。
type Collector struct {
	registry *prometheus.Registry

	// Per package metrics
	BuildETA *prometheus.GaugeVec

	// Scan metrics
	BuildsInFlight  prometheus.Gauge
	HistoryPackages prometheus.Gauge
	MalformedLines  prometheus.Counter
	QueuedPackages  prometheus.Gauge
}

// NewCollector creates the metrics of one genlogsum run.
// NewCollector 创建一次 genlogsum 运行的指标。
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Collector{
		registry: reg,
		BuildETA: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "genlogsum_build_eta_seconds",
				Help: "Estimated seconds left for a running build, or seconds past its worst duration when tier is over",
			},
			[]string{"package", "tier"},
		),
		BuildsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "genlogsum_builds_in_flight",
				Help: "Number of builds started and not completed",
			},
		),
		HistoryPackages: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "genlogsum_history_packages",
				Help: "Number of packages with at least one completed build",
			},
		),
		MalformedLines: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "genlogsum_malformed_lines_total",
				Help: "Total log lines skipped because they could not be parsed",
			},
		),
		QueuedPackages: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "genlogsum_queued_packages",
				Help: "Number of packages reported from the resume list",
			},
		),
	}
}

// Observe adds the content of r to the metrics.
// Observe 将 r 的内容加入指标。
func (c *Collector) Observe(r *report.Report) {
	c.HistoryPackages.Add(float64(r.Packages))
	c.MalformedLines.Add(float64(r.Stats.Malformed))
	for _, line := range r.Lines {
		if line.Queued {
			c.QueuedPackages.Inc()
			continue
		}
		c.BuildsInFlight.Inc()
		if !line.Estimate.Known {
			continue
		}
		c.BuildETA.WithLabelValues(line.Event.FullName, line.Estimate.Over.String()).Set(line.Estimate.Remaining)
	}
}

// WriteTextfile writes the metrics to path in the text exposition format.
// The file is replaced atomically.
// WriteTextfile 以文本格式将指标写入 path（原子替换）。
func (c *Collector) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, c.registry)
}

// Package history accumulates completed build durations per package and
// turns them into time estimates for builds that are still running.
// Package history 按软件包累计已完成的构建耗时，并据此估算正在运行的构建的剩余时间。
package history

import (
	"github.com/influxdata/tdigest"
)

// digestCompression bounds the centroids kept per package.
const digestCompression = 100

// Atom holds the duration statistics of one category/name, across versions.
// Atom 保存一个 category/name（跨版本）的构建耗时统计。
type Atom struct {
	CPN       string
	Samples   int64
	Total     int64
	Best      int64
	Worst     int64
	LastStart int64 // unix seconds, 0 when unknown

	digest *tdigest.TDigest
}

// NewAtom creates an Atom seeded from a single sample.
// NewAtom 使用单个样本创建 Atom。
func NewAtom(cpn string, duration, lastStart int64) *Atom {
	a := &Atom{
		CPN:       cpn,
		Samples:   1,
		Total:     duration,
		Best:      duration,
		Worst:     duration,
		LastStart: lastStart,
		digest:    tdigest.NewWithCompression(digestCompression),
	}
	a.digest.Add(float64(duration), 1)
	return a
}

// Add records one more completed build duration.
// Add 记录一次新的已完成构建耗时。
func (a *Atom) Add(duration int64) {
	a.Samples++
	a.Total += duration
	if duration < a.Best {
		a.Best = duration
	}
	if duration > a.Worst {
		a.Worst = duration
	}
	if a.digest == nil {
		a.digest = tdigest.NewWithCompression(digestCompression)
	}
	a.digest.Add(float64(duration), 1)
}

// FilteredAverage is the mean without the single best and worst sample once
// more than two samples exist, and the plain mean otherwise.
// FilteredAverage 在样本数大于 2 时去掉最好与最差样本求均值，否则为普通均值。
func (a *Atom) FilteredAverage() float64 {
	if a.Samples == 0 {
		return 0
	}
	if a.Samples > 2 {
		return float64(a.Total-a.Best-a.Worst) / float64(a.Samples-2)
	}
	return a.Average()
}

// Average returns the mean of every recorded sample.
// Average 返回所有样本的均值。
func (a *Atom) Average() float64 {
	if a.Samples == 0 {
		return 0
	}
	return float64(a.Total) / float64(a.Samples)
}

// Quantile approximates the q-th quantile of the recorded durations.
// Quantile 近似计算已记录耗时的 q 分位数。
func (a *Atom) Quantile(q float64) float64 {
	if a.digest == nil || a.Samples == 0 {
		return 0
	}
	return a.digest.Quantile(q)
}

// StartedAt returns a copy of the Atom whose elapsed time is measured from start.
// StartedAt 返回一个副本，其已用时间从 start 开始计算。
func (a *Atom) StartedAt(start int64) *Atom {
	cp := *a
	cp.LastStart = start
	return &cp
}

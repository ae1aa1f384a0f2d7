package history

// Over tells which statistical tier produced an estimate.
// Over 表示估算由哪一级统计结果得出。
type Over int

const (
	// OverNone: elapsed time is still under the filtered average.
	OverNone Over = iota
	// OverFilteredAvg: past the filtered average, under the full average.
	OverFilteredAvg
	// OverFullAvg: past the full average, under the worst duration.
	OverFullAvg
	// OverWorst: past the worst duration ever recorded.
	OverWorst
)

const (
	padFactor  = 1.25
	padSeconds = 60
)

func (o Over) String() string {
	switch o {
	case OverNone:
		return "none"
	case OverFilteredAvg:
		return "avg"
	case OverFullAvg:
		return "worst"
	case OverWorst:
		return "over"
	default:
		return "unknown"
	}
}

// Estimate is the outcome of ETA. Remaining is seconds left for OverNone,
// OverFilteredAvg and OverFullAvg, and seconds past the worst build for OverWorst.
// Known is false when the package has no history.
// Estimate 是 ETA 的结果。Known 为 false 表示没有历史记录。
type Estimate struct {
	Remaining float64
	Over      Over
	Known     bool
}

// Unknown is the estimate of a package that never completed a build.
// Unknown 是从未完成构建的软件包的估算值。
func Unknown() Estimate {
	return Estimate{Remaining: -1}
}

// Fixed returns a known estimate that bypasses history, used for binary packages.
// Fixed 返回绕过历史记录的固定估算，用于二进制包。
func Fixed(seconds float64) Estimate {
	return Estimate{Remaining: seconds, Over: OverNone, Known: true}
}

// Plus sums two estimates; the sum is unknown if either side is.
// Plus 对两个估算求和；任一未知则结果未知。
func (e Estimate) Plus(o Estimate) Estimate {
	if !e.Known || !o.Known {
		return Unknown()
	}
	return Estimate{Remaining: e.Remaining + o.Remaining, Over: OverNone, Known: true}
}

// ETA estimates the time left for a build of atom that started at atom.LastStart.
// The tiers are tried in order: filtered average, full average, worst duration;
// the first one that has not yet been exceeded wins. Only the two average tiers
// are padded by 25% plus one minute. Past the worst duration the overrun is returned.
// ETA 估算从 atom.LastStart 开始的构建剩余时间，依次尝试过滤均值、完整均值、最差耗时。
func ETA(atom *Atom, now int64) Estimate {
	if atom == nil || atom.Samples == 0 {
		return Unknown()
	}

	var elapsed float64
	if atom.LastStart != 0 {
		elapsed = float64(now - atom.LastStart)
	}

	if left := atom.FilteredAverage() - elapsed; left >= 0 {
		return Estimate{Remaining: pad(left), Over: OverNone, Known: true}
	}
	if left := atom.Average() - elapsed; left >= 0 {
		return Estimate{Remaining: pad(left), Over: OverFilteredAvg, Known: true}
	}
	if left := float64(atom.Worst) - elapsed; left >= 0 {
		return Estimate{Remaining: left, Over: OverFullAvg, Known: true}
	}
	return Estimate{Remaining: elapsed - float64(atom.Worst), Over: OverWorst, Known: true}
}

func pad(seconds float64) float64 {
	return seconds*padFactor + padSeconds
}

// Package report turns a scanned emerge.log and the resume list into the
// status lines printed by genlogsum.
// Package report 将扫描后的 emerge.log 与恢复列表转换为 genlogsum 输出的状态行。
package report

import (
	"context"
	"strings"
	"time"

	"github.com/livp123/genlogsum/internal/emergelog"
	"github.com/livp123/genlogsum/internal/history"
	"github.com/livp123/genlogsum/internal/resume"
	"github.com/livp123/genlogsum/internal/utils/fmtutil"
	"github.com/livp123/genlogsum/internal/utils/logger"
)

// ProgressReader returns the build tool progress of a running build.
// ProgressReader 返回正在运行的构建的进度。
type ProgressReader interface {
	Progress(ctx context.Context, fullName string, start int64) string
}

// Options selects what a report contains.
// Options 选择报告包含的内容。
type Options struct {
	Root           string
	ShowRoot       bool
	Full           bool // resume list total on every running build
	All            bool // queued packages and a grand total
	BinaryEstimate time.Duration
	StaleAfter     time.Duration // 0 keeps every build
	Filter         *Filter
	Progress       ProgressReader // nil disables build log reading
}

// Line is one package of the report.
// Line 是报告中的一个软件包。
type Line struct {
	Event    emergelog.BuildEvent
	Queued   bool
	Estimate history.Estimate
	Elapsed  int64
	Progress string
}

// Report is the status of one emerge.log under one root.
// Report 是某个根目录下一个 emerge.log 的状态。
type Report struct {
	Root        string
	ShowRoot    bool
	Lines       []Line
	Full        bool
	ResumeTotal history.Estimate // set when Full
	All         bool
	Total       history.Estimate // set when All
	Stats       emergelog.ScanStats
	Packages    int // atoms known from history
}

// Build assembles the report of scan, as seen at now. queue is the resume
// list and may be nil when neither Full nor All is requested.
// Build 组装 scan 在 now 时刻的报告。
func Build(ctx context.Context, scan *emergelog.Scan, queue []resume.Entry, opts Options, now time.Time) *Report {
	log := logger.Get(ctx)
	ts := now.Unix()
	b := builder{store: scan.Store, binary: history.Fixed(opts.BinaryEstimate.Seconds())}

	r := &Report{
		Root:     opts.Root,
		ShowRoot: opts.ShowRoot,
		Full:     opts.Full,
		All:      opts.All,
		Stats:    scan.Stats,
		Packages: scan.Store.Len(),
	}

	if opts.Full {
		r.ResumeTotal = history.Fixed(0)
		for _, entry := range queue {
			r.ResumeTotal = r.ResumeTotal.Plus(remaining(b.estimate(queuedEvent(entry, ts), ts)))
		}
	}

	running := make(map[string]bool, len(scan.InFlight))
	for _, ev := range scan.InFlight {
		running[ev.FullName] = true
		elapsed := ts - ev.StartTime
		if opts.StaleAfter > 0 && elapsed > int64(opts.StaleAfter/time.Second) {
			log.Debugf("Skipping stale build %s started %s ago", ev.FullName, fmtutil.FormatDuration(time.Duration(elapsed)*time.Second))
			continue
		}
		line := Line{
			Event:    ev,
			Estimate: b.estimate(ev, ts),
			Elapsed:  elapsed,
		}
		if opts.Progress != nil {
			line.Progress = opts.Progress.Progress(ctx, ev.FullName, ev.StartTime)
		}
		r.add(ctx, opts.Filter, line)
	}

	if opts.All {
		for _, entry := range queue {
			if running[entry.FullName] {
				continue
			}
			ev := queuedEvent(entry, ts)
			r.add(ctx, opts.Filter, Line{Event: ev, Queued: true, Estimate: b.estimate(ev, ts)})
		}
		r.Total = history.Fixed(0)
		for _, line := range r.Lines {
			r.Total = r.Total.Plus(remaining(line.Estimate))
		}
	}
	return r
}

func (r *Report) add(ctx context.Context, filter *Filter, line Line) {
	if filter != nil {
		ok, err := filter.Match(line)
		if err != nil {
			logger.Get(ctx).Warnf("⚠️  Filter failed on %s: %v", line.Event.FullName, err)
			return
		}
		if !ok {
			return
		}
	}
	r.Lines = append(r.Lines, line)
}

// Empty reports whether the report has no package to print. An empty report
// prints nothing, not even its total.
// Empty 判断报告是否没有软件包可输出。
func (r *Report) Empty() bool {
	return len(r.Lines) == 0
}

type builder struct {
	store  *history.Store
	binary history.Estimate
}

func (b builder) estimate(ev emergelog.BuildEvent, now int64) history.Estimate {
	if ev.Binary {
		return b.binary
	}
	atom, ok := b.store.Get(ev.CPN())
	if !ok {
		return history.Unknown()
	}
	return history.ETA(atom.StartedAt(ev.StartTime), now)
}

// remaining is what an estimate adds to a total. A build already past its
// worst duration has no time left that history can tell.
func remaining(e history.Estimate) history.Estimate {
	if e.Known && e.Over == history.OverWorst {
		return history.Fixed(0)
	}
	return e
}

// queuedEvent builds the event of a package that has not started yet, as if
// it started now.
func queuedEvent(entry resume.Entry, now int64) emergelog.BuildEvent {
	cpn := emergelog.SplitCPN(entry.FullName)
	category, name, found := strings.Cut(cpn, "/")
	if !found {
		category, name = "", cpn
	}
	return emergelog.BuildEvent{
		Category:  category,
		Name:      name,
		FullName:  entry.FullName,
		StartTime: now,
		Binary:    entry.Binary,
	}
}

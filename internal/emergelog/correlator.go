package emergelog

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/livp123/genlogsum/internal/history"
	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// ScanStats counts what a scan saw.
// ScanStats 统计一次扫描的结果。
type ScanStats struct {
	Lines        int
	Malformed    int
	Completed    int
	BinaryMerges int
	Terminations int
}

// Correlator matches start lines with their completion lines, one log at a time.
// It owns the in-flight set and feeds completed durations into a history.Store.
// Correlator 将开始行与完成行配对，持有进行中集合并向 history.Store 写入耗时。
type Correlator struct {
	inFlight map[string]BuildEvent
	store    *history.Store
	log      *zap.SugaredLogger
	stats    ScanStats
}

// NewCorrelator creates a Correlator writing into store.
// NewCorrelator 创建写入 store 的 Correlator。
func NewCorrelator(store *history.Store, log *zap.SugaredLogger) *Correlator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Correlator{
		inFlight: make(map[string]BuildEvent),
		store:    store,
		log:      log,
	}
}

// Process applies one log line. Empty lines and '#' comments are ignored;
// lines that cannot be extracted are logged and skipped.
// Process 处理一行日志；空行与 '#' 注释被忽略，无法解析的行记录后跳过。
func (c *Correlator) Process(line string) {
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	c.stats.Lines++

	switch Classify(line) {
	case LineStart:
		ev, err := ExtractStart(line)
		if err != nil {
			c.skip(err)
			return
		}
		c.inFlight[ev.FullName] = ev

	case LineMergeBinary:
		ev, err := ExtractMerge(line)
		if err != nil {
			c.skip(err)
			return
		}
		c.stats.BinaryMerges++
		if _, ok := c.inFlight[ev.FullName]; !ok {
			c.log.Debugf("Binary merge of %s without a start line", ev.FullName)
			return
		}
		delete(c.inFlight, ev.FullName)

	case LineEnd:
		ev, err := ExtractStart(line)
		if err != nil {
			c.skip(err)
			return
		}
		started, ok := c.inFlight[ev.FullName]
		if !ok {
			return
		}
		if !started.Binary {
			c.store.Record(started.CPN(), ev.StartTime-started.StartTime, ev.StartTime)
			c.stats.Completed++
		}
		delete(c.inFlight, ev.FullName)

	case LineTerminate:
		c.stats.Terminations++
		clear(c.inFlight)
	}
}

func (c *Correlator) skip(err error) {
	c.stats.Malformed++
	if errors.Is(err, apperrors.ErrInvalidTimestamp) {
		c.log.Errorf("❌ Log format desynchronized, skipping line: %v", err)
		return
	}
	c.log.Warnf("⚠️  Skipping line: %v", err)
}

// Finish marks every package still in flight as started at its own start
// time and returns those builds ordered by start time.
// Finish 将仍在进行中的软件包标记为以其开始时间启动，并按开始时间返回。
func (c *Correlator) Finish() []BuildEvent {
	running := c.InFlight()
	for _, ev := range running {
		c.store.Touch(ev.CPN(), ev.StartTime)
	}
	return running
}

// InFlight returns the builds that have started and not completed, ordered by
// start time then name.
// InFlight 返回已开始但未完成的构建，按开始时间及名称排序。
func (c *Correlator) InFlight() []BuildEvent {
	out := make([]BuildEvent, 0, len(c.inFlight))
	for _, ev := range c.inFlight {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].FullName < out[j].FullName
	})
	return out
}

// Stats returns the counters gathered so far.
func (c *Correlator) Stats() ScanStats {
	return c.stats
}

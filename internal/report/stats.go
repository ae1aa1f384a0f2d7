package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/livp123/genlogsum/internal/history"
)

// SelectAtoms returns the atoms of store, restricted to cpns when any are given.
// Unknown cpns are ignored.
// SelectAtoms 返回 store 中的 atom，给定 cpns 时仅返回其中的部分。
func SelectAtoms(store *history.Store, cpns []string) []*history.Atom {
	if len(cpns) == 0 {
		return store.Atoms()
	}
	want := make(map[string]bool, len(cpns))
	for _, cpn := range cpns {
		want[cpn] = true
	}
	var out []*history.Atom
	for _, a := range store.Atoms() {
		if want[a.CPN] {
			out = append(out, a)
		}
	}
	return out
}

// FormatAtom renders the history of one package.
// FormatAtom 渲染一个软件包的历史统计。
func FormatAtom(a *history.Atom, now time.Time) string {
	builds := "builds"
	if a.Samples == 1 {
		builds = "build"
	}
	last := "never"
	if a.LastStart != 0 {
		last = humanize.RelTime(time.Unix(a.LastStart, 0), now, "ago", "from now")
	}
	return fmt.Sprintf("%s: %s %s, avg %s, trimmed %s, best %s, worst %s, p50 %s, p90 %s, last %s",
		a.CPN,
		humanize.Comma(a.Samples), builds,
		Duration(a.Average()),
		Duration(a.FilteredAverage()),
		Duration(float64(a.Best)),
		Duration(float64(a.Worst)),
		Duration(a.Quantile(0.5)),
		Duration(a.Quantile(0.9)),
		last,
	)
}

// RenderStats writes one line per atom.
// RenderStats 为每个 atom 写入一行。
func RenderStats(w io.Writer, atoms []*history.Atom, now time.Time) error {
	for _, a := range atoms {
		if _, err := fmt.Fprintln(w, FormatAtom(a, now)); err != nil {
			return err
		}
	}
	return nil
}

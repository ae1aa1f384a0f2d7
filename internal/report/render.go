package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/livp123/genlogsum/internal/config"
	"github.com/livp123/genlogsum/internal/history"
	"github.com/livp123/genlogsum/internal/utils/fmtutil"
)

// UnknownText is printed in place of a duration that cannot be estimated.
const UnknownText = "Unknow"

// Palette colours the ETA of a line by its confidence tier.
// Palette 按置信级别为 ETA 着色。
type Palette struct {
	tiers   map[history.Over]*color.Color
	unknown *color.Color
}

// NewPalette returns a palette for mode. "auto" follows color.NoColor, which
// is set when stdout is not a terminal or NO_COLOR is set.
// NewPalette 返回 mode 对应的调色板。
func NewPalette(mode string) *Palette {
	p := &Palette{
		tiers: map[history.Over]*color.Color{
			history.OverNone:        color.New(color.FgGreen),
			history.OverFilteredAvg: color.New(color.FgYellow),
			history.OverFullAvg:     color.New(color.FgHiYellow, color.Bold),
			history.OverWorst:       color.New(color.FgRed, color.Bold),
		},
		unknown: color.New(color.FgCyan),
	}
	all := []*color.Color{p.unknown}
	for _, c := range p.tiers {
		all = append(all, c)
	}
	for _, c := range all {
		switch mode {
		case config.ColorAlways:
			c.EnableColor()
		case config.ColorNever:
			c.DisableColor()
		}
	}
	return p
}

func (p *Palette) paint(e history.Estimate, s string) string {
	if p == nil {
		return s
	}
	c := p.unknown
	if e.Known {
		c = p.tiers[e.Over]
	}
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// Duration formats seconds the way report lines print them.
// Duration 按报告行的格式输出秒数。
func Duration(seconds float64) string {
	return fmtutil.Compact(fmtutil.FormatSeconds(seconds))
}

// Suffix renders the ETA part of a line.
// Suffix 渲染一行中的 ETA 部分。
func Suffix(e history.Estimate) string {
	if !e.Known {
		return ", " + UnknownText
	}
	d := Duration(e.Remaining)
	switch e.Over {
	case history.OverFilteredAvg:
		return ", ETA (avg): " + d
	case history.OverFullAvg:
		return ", ETA (worst): " + d
	case history.OverWorst:
		return " is over by " + d
	default:
		return ", ETA: " + d
	}
}

func totalText(e history.Estimate) string {
	if !e.Known {
		return UnknownText
	}
	return Duration(e.Remaining)
}

// prefix is "<root name>: " for a root other than "/" when ShowRoot is set.
func (r *Report) prefix() string {
	if !r.ShowRoot || r.Root == "" || filepath.Clean(r.Root) == "/" {
		return ""
	}
	return filepath.Base(filepath.Clean(r.Root)) + ": "
}

// Format renders one line of the report.
// Format 渲染报告中的一行。
func (r *Report) Format(line Line, p *Palette) string {
	var b strings.Builder
	b.WriteString(r.prefix())
	if line.Event.Ordinal != "" {
		b.WriteString(line.Event.Ordinal)
		b.WriteString(", ")
	}
	b.WriteString(line.Event.FullName)
	b.WriteString(p.paint(line.Estimate, Suffix(line.Estimate)))
	if line.Progress != "" {
		b.WriteString(" ")
		b.WriteString(line.Progress)
	}
	if r.Full && !line.Queued {
		b.WriteString(", Total: ")
		b.WriteString(totalText(r.ResumeTotal))
	}
	return b.String()
}

// Render writes the report to w, one line per package, then the grand total
// when All is set. An empty report writes nothing.
// Render 将报告写入 w。
func (r *Report) Render(w io.Writer, p *Palette) error {
	if r.Empty() {
		return nil
	}
	for _, line := range r.Lines {
		if _, err := fmt.Fprintln(w, r.Format(line, p)); err != nil {
			return err
		}
	}
	if r.All {
		if _, err := fmt.Fprintf(w, "%sTotal: %s\n", r.prefix(), totalText(r.Total)); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	apperrors "github.com/livp123/genlogsum/pkg/errors"
)

// FilterEnv is what a filter expression sees of a line.
// FilterEnv 是过滤表达式可见的行字段。
type FilterEnv struct {
	Category  string
	Name      string
	CPN       string
	FullName  string
	Ordinal   string
	Binary    bool
	Queued    bool
	Known     bool
	Tier      string // none, avg, worst, over or unknown
	Remaining float64
	Elapsed   float64
}

// Filter keeps the lines a boolean expression accepts, for example
// `Category == "dev-lang" && Remaining > 600`.
// Filter 保留布尔表达式接受的行。
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles source. An empty source yields a nil filter that keeps
// every line.
// CompileFilter 编译 source；空表达式返回 nil（保留所有行）。
func CompileFilter(source string) (*Filter, error) {
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewFilterError(source, err)
	}
	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	return f.source
}

// Match evaluates the filter against line.
// Match 对 line 求值过滤表达式。
func (f *Filter) Match(line Line) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, envOf(line))
	if err != nil {
		return false, apperrors.NewFilterError(f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

func envOf(line Line) FilterEnv {
	tier := "unknown"
	if line.Estimate.Known {
		tier = line.Estimate.Over.String()
	}
	return FilterEnv{
		Category:  line.Event.Category,
		Name:      line.Event.Name,
		CPN:       line.Event.CPN(),
		FullName:  line.Event.FullName,
		Ordinal:   line.Event.Ordinal,
		Binary:    line.Event.Binary,
		Queued:    line.Queued,
		Known:     line.Estimate.Known,
		Tier:      tier,
		Remaining: line.Estimate.Remaining,
		Elapsed:   float64(line.Elapsed),
	}
}

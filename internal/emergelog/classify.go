package emergelog

import "strings"

// LineType is the kind of an emerge.log line.
// LineType 表示 emerge.log 行的类型。
type LineType int

const (
	LineUnknown LineType = iota
	LineStart
	LineMergeBinary
	LineEnd
	LineTerminate
)

func (t LineType) String() string {
	switch t {
	case LineStart:
		return "start"
	case LineMergeBinary:
		return "merge-binary"
	case LineEnd:
		return "end"
	case LineTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// Classify returns the type of line by looking at its marker bytes.
// "===" lines only count when they read "Merging Binary"; source merges are
// tracked through their completion line instead.
// Classify 根据标记字节返回行类型。
func Classify(line string) LineType {
	if len(line) < MinLineLength {
		return LineUnknown
	}

	m := line[markerOffset:markerEnd]
	for _, mk := range markers {
		if m[0] != mk.first || m[len(m)-1] != mk.last {
			continue
		}
		if mk.kind == LineMergeBinary && !isMergingBinary(line) {
			return LineUnknown
		}
		return mk.kind
	}
	return LineUnknown
}

func isMergingBinary(line string) bool {
	par := strings.IndexByte(line, ')')
	if par < 0 || par+binaryLetterOffset >= len(line) {
		return false
	}
	return line[par+mergeLetterOffset] == 'M' && line[par+binaryLetterOffset] == 'B'
}

package emergelog

const (
	// markerOffset is where the 5-byte marker begins: 10 timestamp digits, ':' and two spaces.
	markerOffset = 13
	markerEnd    = markerOffset + 5

	// MinLineLength is the shortest line the classifier looks at.
	MinLineLength = markerEnd

	// mergeSearchOffset is where the ordinal's closing parenthesis is searched
	// from on "===" lines; ") " + "Merging" + " " follows it.
	mergeSearchOffset = 24
	mergeWordSkip     = len(") Merging ")

	// Relative to the ordinal's ')': 'M' of "Merging" and 'B' of "Binary".
	mergeLetterOffset  = 2
	binaryLetterOffset = mergeWordSkip

	// startTerminator ends the versioned name on start and end lines,
	// mergeTerminator on "===" lines (the "::repo" suffix).
	startTerminator = ' '
	mergeTerminator = ':'
)

type marker struct {
	first, last byte
	kind        LineType
}

var markers = [...]marker{
	{'>', 'e', LineStart},
	{'=', '(', LineMergeBinary},
	{':', 'c', LineEnd},
	{'*', 't', LineTerminate},
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

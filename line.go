package quiver

import (
	"bufio"
	"io"
	"strings"
)

const (
	tagMarker   = "QV_TAG"
	scoreMarker = "QV_SCORE"
)

type lineClass int

const (
	classBody lineClass = iota
	classTag
	classScore
)

// classify tells tag markers and score markers apart from body lines.
// A line is a marker only if its first whitespace-delimited token equals
// the sentinel exactly, so e.g. "QV_TAGGED ..." is a body line. For
// markers the whitespace-split tokens are returned; body lines return nil.
func classify(line string) (lineClass, []string) {
	// perf: markers start with "QV_", skip splitting everything else
	if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "QV_") {
		return classBody, nil
	}
	toks := strings.Fields(line)
	switch toks[0] {
	case tagMarker:
		return classTag, toks
	case scoreMarker:
		return classScore, toks
	}
	return classBody, nil
}

// markerTag returns the tag carried by a marker line's tokens, "" if the
// marker has no tag token. Callers matching against a target tag must
// only compare non-empty targets.
func markerTag(toks []string) string {
	if len(toks) > 1 {
		return toks[1]
	}
	return ""
}

// Body lines can be long (hand-edited files, foreign payloads); allow up
// to 1 MB per line instead of bufio's 64 KB default.
const maxLineSize = 1024 * 1024

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

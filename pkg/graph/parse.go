package graph

import (
	"regexp"
	"strconv"
	"strings"
)

// cellPattern matches grid-cell literals like "(2, 3)" or "(-1,0)".
var cellPattern = regexp.MustCompile(`^\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)$`)

// ParseNode converts user-facing node text into a Node. It tries the
// structured forms first (a bare integer, then a "(row, col)" pair) and
// falls back to an opaque name. This is a deliberately closed parser; it
// never evaluates arbitrary expressions.
//
// The accepted forms round-trip through [Node.String], so node names printed
// by the presentation layer can be pasted back verbatim.
func ParseNode(s string) Node {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return Index(i)
	}
	if m := cellPattern.FindStringSubmatch(s); m != nil {
		row, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		return Cell(row, col)
	}
	return Name(s)
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// [Node.MarshalText]. It never fails; unrecognized text becomes a name node.
func (n *Node) UnmarshalText(b []byte) error {
	*n = ParseNode(string(b))
	return nil
}

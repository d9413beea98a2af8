// Package libdiff computes line diffs between rendered documents.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) Prefix() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lns := strings.SplitAfter(s, "\n")
	if lns[len(lns)-1] == "" {
		lns = lns[:len(lns)-1]
	}
	for i := range lns {
		lns[i] = strings.TrimSuffix(lns[i], "\n")
	}
	return lns
}

func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Unified formats lines one per line with a +, - or space prefix.
func Unified(lines []Line) string {
	buf := &strings.Builder{}
	for i := range lines {
		buf.WriteString(lines[i].Op.Prefix())
		buf.WriteString(lines[i].Text)
		buf.WriteByte('\n')
	}
	return buf.String()
}

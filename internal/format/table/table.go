package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const ellipsis = "…"

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			writeAligned(&b, cell, widths[c], alignmentAt(alignments, c))
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Fixed lays cells out in columns of exactly width cells each. Text longer
// than width-1 is cut with an ellipsis so a single space always separates
// neighbouring cells.
func Fixed(cells []string, width int, alignments []Alignment) string {
	if width <= 0 || len(cells) == 0 {
		return ""
	}
	var b strings.Builder
	for c, cell := range cells {
		b.WriteString(Cell(cell, width, alignmentAt(alignments, c)))
	}
	return b.String()
}

// Cell renders one fixed-width cell, trailing separator included.
func Cell(text string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	inner := width - 1
	var b strings.Builder
	if inner > 0 {
		if cellWidth(text) > inner {
			text = truncate.StringWithTail(text, uint(inner), ellipsis)
		}
		writeAligned(&b, text, inner, align)
	}
	b.WriteByte(' ')
	return b.String()
}

func alignmentAt(alignments []Alignment, c int) Alignment {
	if c < len(alignments) {
		return alignments[c]
	}
	return AlignLeft
}

func writeAligned(b *strings.Builder, cell string, width int, align Alignment) {
	pad := width - cellWidth(cell)
	if pad < 0 {
		pad = 0
	}
	if align == AlignRight {
		writeSpaces(b, pad)
		b.WriteString(cell)
		return
	}
	b.WriteString(cell)
	writeSpaces(b, pad)
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}

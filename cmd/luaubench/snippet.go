package main

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// locate converts a byte offset into 1-based line/column, walking grapheme
// clusters so columns land on user-perceived characters rather than bytes
// or runes.
func locate(source []byte, offset int) (line, col int) {
	line, col = 1, 1
	text := string(source[:min(offset, len(source))])
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\n" {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// snippet renders the source line containing offset, with a caret marker
// underneath pointing at offset. Column alignment accounts for grapheme
// clusters and double-width runes so the caret lines up under variable
// pitch terminals.
func snippet(source []byte, offset int, message string) string {
	lineStart, lineEnd := lineBounds(source, offset)
	lineText := string(source[lineStart:lineEnd])
	_, col := locate(source, offset)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", lineText)

	g := uniseg.NewGraphemes(lineText)
	target := col - 1
	i := 0
	for g.Next() && i < target {
		b.WriteString(strings.Repeat(" ", clusterWidth(g.Str())))
		i++
	}
	b.WriteString("^ ")
	b.WriteString(message)
	return b.String()
}

func lineBounds(source []byte, offset int) (start, end int) {
	start = 0
	for i := offset - 1; i >= 0; i-- {
		if source[i] == '\n' {
			start = i + 1
			break
		}
	}
	end = len(source)
	for i := offset; i < len(source); i++ {
		if source[i] == '\n' {
			end = i
			break
		}
	}
	return start, end
}

func clusterWidth(cluster string) int {
	w := 0
	for _, r := range cluster {
		p := width.LookupRune(r)
		switch p.Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	if w == 0 {
		w = 1
	}
	return w
}

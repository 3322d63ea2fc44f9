package ui

import "strings"

// The banner font is a 5-row block-glyph face covering exactly the runes a
// formatted temperature needs. Scale multiplies both glyph dimensions, which
// is what the font-size preference adjusts.

const glyphRows = 5

var glyphs = map[rune][glyphRows]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
	'-': {"   ", "   ", "###", "   ", "   "},
	'.': {" ", " ", " ", " ", "#"},
	'°': {"##", "##", "  ", "  ", "  "},
	'C': {"###", "#  ", "#  ", "#  ", "###"},
	' ': {"  ", "  ", "  ", "  ", "  "},
}

// RenderBanner draws text in the block-glyph font at the given scale.
// Scale 0 or less falls back to 1. Runes outside the font are skipped.
func RenderBanner(text string, scale int) string {
	if scale < 1 {
		scale = 1
	}

	var runes []rune
	for _, r := range text {
		if _, ok := glyphs[r]; ok {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return ""
	}

	gap := strings.Repeat(" ", scale)
	var b strings.Builder
	for row := 0; row < glyphRows; row++ {
		var cells []string
		for _, r := range runes {
			cells = append(cells, scaleRow(glyphs[r][row], scale))
		}
		line := strings.Join(cells, gap)
		for rep := 0; rep < scale; rep++ {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func scaleRow(row string, scale int) string {
	var b strings.Builder
	for _, c := range row {
		cell := " "
		if c == '#' {
			cell = "█"
		}
		b.WriteString(strings.Repeat(cell, scale))
	}
	return b.String()
}

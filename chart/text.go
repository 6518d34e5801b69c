package chart

import (
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/width"
)

// ============================================================================
// TEXT LAYOUT — Measurement and wrapping of category labels
// ============================================================================
// Widths come from the 7x13 bitmap face scaled to the font size. East Asian
// wide and fullwidth runes count as one em. This is a layout estimate only;
// the SVG viewer does final glyph placement.
// ============================================================================

var labelFace = basicfont.Face7x13

// textWidth estimates the rendered width of s in pixels.
func textWidth(s string, fontSize float64) float64 {
	scale := fontSize / float64(labelFace.Height)
	var w float64
	for _, r := range s {
		if isWide(r) {
			w += fontSize
			continue
		}
		adv, _ := labelFace.GlyphAdvance(r)
		w += float64(adv) / 64 * scale
	}
	return w
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

type token struct {
	text        string
	spaceBefore bool
}

// tokenize splits a label at break opportunities: spaces (dropped), after
// '-' and ',', and around every wide rune.
func tokenize(label string) []token {
	var (
		out   []token
		cur   []rune
		space bool
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, token{text: string(cur), spaceBefore: space})
			cur, space = cur[:0], false
		}
	}
	for _, r := range label {
		switch {
		case r == ' ':
			flush()
			if len(out) > 0 {
				space = true
			}
		case isWide(r):
			flush()
			out = append(out, token{text: string(r), spaceBefore: space})
			space = false
		case (r == ',' || r == '-') && len(cur) == 0 && !space && len(out) > 0:
			// keep punctuation with the token before it
			out[len(out)-1].text += string(r)
		default:
			cur = append(cur, r)
			if r == '-' || r == ',' {
				flush()
			}
		}
	}
	flush()
	return out
}

// wrapLabel breaks label into lines no wider than maxWidth. A token that
// alone exceeds maxWidth is split between runes. The font size is never
// reduced; narrow widths produce more lines.
func wrapLabel(label string, maxWidth, fontSize float64) []string {
	if label == "" {
		return []string{""}
	}
	if maxWidth <= 0 || textWidth(label, fontSize) <= maxWidth {
		return []string{label}
	}

	var lines []string
	line := ""
	for _, tok := range tokenize(label) {
		candidate := tok.text
		if line != "" {
			if tok.spaceBefore {
				candidate = line + " " + tok.text
			} else {
				candidate = line + tok.text
			}
		}
		if textWidth(candidate, fontSize) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = tok.text
		if textWidth(line, fontSize) > maxWidth {
			parts := splitRunes(line, maxWidth, fontSize)
			lines = append(lines, parts[:len(parts)-1]...)
			line = parts[len(parts)-1]
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitRunes cuts s into pieces of at least one rune each that fit maxWidth.
func splitRunes(s string, maxWidth, fontSize float64) []string {
	var (
		out   []string
		start int
	)
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if i > start && textWidth(s[start:next], fontSize) > maxWidth {
			out = append(out, s[start:i])
			start = i
		}
		i = next
	}
	return append(out, s[start:])
}

// maxLines is the tallest wrapped label.
func maxLines(wrapped [][]string) int {
	n := 0
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// widest is the widest string in pixels.
func widest(labels []string, fontSize float64) float64 {
	var w float64
	for _, l := range labels {
		if lw := textWidth(l, fontSize); lw > w {
			w = lw
		}
	}
	return w
}

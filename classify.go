package proposalgen

import "strings"

// LineKind tags one classified Markdown line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineTitle
	LineHeading
	LineSubheading
	LineTableRow
	LineBullet
	LineNumbered
	LineText
)

// Line is one classified Markdown line. Raw always holds the unmodified
// input line; the other fields are populated per kind.
type Line struct {
	Kind      LineKind
	Raw       string
	Text      string   // content after the marker, for headings/bullets/numbered
	Cells     []string // table row cells, blank cells dropped, padding kept
	Separator bool     // table separator row, consumes no space
	Indent    int      // leading whitespace depth, for list items
	Number    string   // the literal number of a numbered item
}

// ClassifyLines splits Markdown into lines and classifies each one.
func ClassifyLines(markdown string) []Line {
	raw := strings.Split(markdown, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = ClassifyLine(r)
	}
	return lines
}

// ClassifyLine tags a single line. Checks run in fixed priority order and
// the first match wins: blank, title, heading, subheading, table row,
// bullet, numbered, plain text. A pipe line with fewer than two non-blank
// cells falls through to plain text.
func ClassifyLine(raw string) Line {
	if strings.TrimSpace(raw) == "" {
		return Line{Kind: LineBlank, Raw: raw}
	}
	if strings.HasPrefix(raw, "# ") {
		return Line{Kind: LineTitle, Raw: raw, Text: raw[2:]}
	}
	if strings.HasPrefix(raw, "## ") {
		return Line{Kind: LineHeading, Raw: raw, Text: raw[3:]}
	}
	if strings.HasPrefix(raw, "### ") {
		return Line{Kind: LineSubheading, Raw: raw, Text: raw[4:]}
	}
	if strings.HasPrefix(raw, "|") {
		if strings.Contains(raw, "---") {
			return Line{Kind: LineTableRow, Raw: raw, Separator: true}
		}
		var cells []string
		for _, c := range strings.Split(raw, "|") {
			if strings.TrimSpace(c) != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) >= 2 {
			return Line{Kind: LineTableRow, Raw: raw, Cells: cells}
		}
	}
	if l, ok := classifyBullet(raw); ok {
		return l
	}
	if l, ok := classifyNumbered(raw); ok {
		return l
	}
	return Line{Kind: LineText, Raw: raw, Text: raw}
}

func classifyBullet(raw string) (Line, bool) {
	i := indentDepth(raw)
	if i >= len(raw) || (raw[i] != '-' && raw[i] != '*') {
		return Line{}, false
	}
	if i+1 >= len(raw) || !isSpaceByte(raw[i+1]) {
		return Line{}, false
	}
	return Line{Kind: LineBullet, Raw: raw, Text: raw[i+2:], Indent: i}, true
}

func classifyNumbered(raw string) (Line, bool) {
	i := indentDepth(raw)
	j := i
	for j < len(raw) && raw[j] >= '0' && raw[j] <= '9' {
		j++
	}
	if j == i || j >= len(raw) || raw[j] != '.' {
		return Line{}, false
	}
	if j+1 >= len(raw) || !isSpaceByte(raw[j+1]) {
		return Line{}, false
	}
	return Line{
		Kind:   LineNumbered,
		Raw:    raw,
		Text:   raw[j+2:],
		Indent: i,
		Number: raw[i:j],
	}, true
}

func indentDepth(raw string) int {
	i := 0
	for i < len(raw) && isSpaceByte(raw[i]) {
		i++
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}

package proposalgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const defaultPreviewWidth = 80

const (
	ansiBold   = "\x1b[1m"
	ansiAccent = "\x1b[33m"
	ansiFaint  = "\x1b[2m"
	ansiReset  = "\x1b[0m"
)

// PreviewRequest configures Preview.
type PreviewRequest struct {
	Markdown string
	Writer   io.Writer
	Width    int
}

// Preview renders generated Markdown as ANSI text for a terminal: bold
// headings, aligned two-column tables, wrapped body text. It understands the
// same line dialect as the PDF renderer.
func Preview(req PreviewRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("preview: Writer is nil")
	}
	width := req.Width
	if width <= 0 {
		width = defaultPreviewWidth
	}

	var b strings.Builder
	var table []Line
	flush := func() {
		if len(table) > 0 {
			writeTable(&b, table)
			table = table[:0]
		}
	}

	for _, ln := range ClassifyLines(req.Markdown) {
		if ln.Kind == LineTableRow {
			if !ln.Separator {
				table = append(table, ln)
			}
			continue
		}
		flush()
		switch ln.Kind {
		case LineBlank:
			b.WriteString("\n")
		case LineTitle:
			fmt.Fprintf(&b, "%s%s%s\n", ansiBold, ln.Text, ansiReset)
			fmt.Fprintf(&b, "%s%s%s\n", ansiAccent, strings.Repeat("─", width), ansiReset)
		case LineHeading:
			fmt.Fprintf(&b, "%s%s%s%s\n", ansiBold, ansiAccent, ln.Text, ansiReset)
		case LineSubheading:
			fmt.Fprintf(&b, "%s%s%s\n", ansiBold, ln.Text, ansiReset)
		case LineBullet:
			writeHanging(&b, "• ", ln.Text, ln.Indent, width)
		case LineNumbered:
			writeHanging(&b, ln.Number+". ", ln.Text, ln.Indent, width)
		default:
			b.WriteString(wordwrap.String(ln.Raw, width))
			b.WriteString("\n")
		}
	}
	flush()

	_, err := io.WriteString(req.Writer, b.String())
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// writeTable aligns consecutive table rows on the first column using
// display width, so CJK labels line up.
func writeTable(b *strings.Builder, rows []Line) {
	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(rowLabel(row)); w > labelWidth {
			labelWidth = w
		}
	}
	for _, row := range rows {
		label := rowLabel(row)
		fmt.Fprintf(b, "  %s%s%s  %s\n",
			ansiFaint,
			runewidth.FillRight(label, labelWidth),
			ansiReset,
			rowValue(row))
	}
}

func rowLabel(row Line) string {
	if len(row.Cells) == 0 {
		return ""
	}
	return strings.TrimSpace(row.Cells[0])
}

func rowValue(row Line) string {
	if len(row.Cells) < 2 {
		return ""
	}
	return strings.TrimSpace(strings.Join(row.Cells[1:], " | "))
}

func writeHanging(b *strings.Builder, marker, text string, indent, width int) {
	lead := strings.Repeat(" ", indent) + "  "
	wrapped := wordwrap.String(text, width-len(lead)-runewidth.StringWidth(marker))
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			fmt.Fprintf(b, "%s%s%s\n", lead, marker, line)
			continue
		}
		fmt.Fprintf(b, "%s%s%s\n", lead, strings.Repeat(" ", runewidth.StringWidth(marker)), line)
	}
}

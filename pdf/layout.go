package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"pkt.systems/proposalgen"
)

// Layout colors.
var (
	bodyColor   = [3]int{40, 40, 40}
	labelColor  = [3]int{100, 100, 100}
	accentColor = [3]int{170, 140, 44}
	ruleColor   = [3]int{212, 175, 55}
	errorColor  = [3]int{200, 50, 50}
)

// layout is the mutable render state for one document: the handle, the
// vertical cursor, and accumulated warnings. A fresh layout is built per
// render call; nothing survives across calls.
type layout struct {
	doc      *fpdf.Fpdf
	cfg      Config
	family   string
	pageH    float64
	contentW float64
	y        float64
	warnings []string
}

func newLayout(doc *fpdf.Fpdf, cfg Config, family string) *layout {
	pageW, pageH := doc.GetPageSize()
	return &layout{
		doc:      doc,
		cfg:      cfg,
		family:   family,
		pageH:    pageH,
		contentW: pageW - 2*cfg.Margin,
		y:        cfg.Margin,
	}
}

func (l *layout) newPage() {
	l.doc.AddPage()
	l.y = l.cfg.Margin
}

// ensureSpace starts a new page when fewer than needed millimeters remain
// above the bottom margin. Elements are never split mid-draw; the check
// always runs before drawing.
func (l *layout) ensureSpace(needed float64) {
	if l.y+needed > l.pageH-l.cfg.Margin {
		l.newPage()
	}
}

func (l *layout) setFont(size float64, bold bool, color [3]int) {
	style := ""
	if bold {
		style = "B"
	}
	l.doc.SetFont(l.family, style, size)
	l.doc.SetTextColor(color[0], color[1], color[2])
}

// writeText draws wrapped text at x, advancing the cursor per sub-line with
// the size-proportional spacing the proposal layout uses. Each sub-line
// re-checks the page break with the default two-line lookahead.
func (l *layout) writeText(text string, x, size float64, bold bool, color [3]int, maxWidth float64) {
	if maxWidth <= 0 {
		maxWidth = l.contentW
	}
	l.setFont(size, bold, color)
	for _, line := range l.splitText(text, maxWidth) {
		l.ensureSpace(2 * l.cfg.LineHeight)
		l.doc.Text(x, l.y, line)
		l.y += size*0.4 + 1
	}
}

// splitText wraps text to maxWidth using the current font metrics, breaking
// at spaces when possible and mid-run otherwise, since Japanese prose has no
// word boundaries to break at.
func (l *layout) splitText(text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	var lines []string
	runes := []rune(text)
	start := 0
	lastSpace := -1
	i := 0
	for i < len(runes) {
		if runes[i] == ' ' {
			lastSpace = i
		}
		if i > start && l.doc.GetStringWidth(string(runes[start:i+1])) > maxWidth {
			br, next := i, i
			if lastSpace > start {
				br, next = lastSpace, lastSpace+1
			}
			lines = append(lines, string(runes[start:br]))
			start = next
			lastSpace = -1
			i = next
			continue
		}
		i++
	}
	if start < len(runes) {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}

// renderMarkdown lays out classified Markdown lines sequentially.
func (l *layout) renderMarkdown(markdown string) {
	for _, ln := range proposalgen.ClassifyLines(markdown) {
		switch ln.Kind {
		case proposalgen.LineBlank:
			l.y += l.cfg.LineHeight * 0.5
		case proposalgen.LineTitle:
			l.drawTitle(ln.Text)
		case proposalgen.LineHeading:
			l.drawHeading(ln.Text)
		case proposalgen.LineSubheading:
			l.drawSubheading(ln.Text)
		case proposalgen.LineTableRow:
			if ln.Separator {
				continue
			}
			l.drawTableRow(ln.Cells)
		case proposalgen.LineBullet:
			l.drawBullet(ln.Text, ln.Indent)
		case proposalgen.LineNumbered:
			l.drawNumbered(ln.Number, ln.Text, ln.Indent)
		default:
			l.ensureSpace(2 * l.cfg.LineHeight)
			l.writeText(ln.Raw, l.cfg.Margin, l.cfg.BodyFontSize, false, bodyColor, 0)
		}
	}
}

func (l *layout) drawTitle(text string) {
	l.ensureSpace(15)
	l.y += 3
	l.writeText(text, l.cfg.Margin, l.cfg.TitleFontSize, true, bodyColor, 0)
	l.doc.SetDrawColor(ruleColor[0], ruleColor[1], ruleColor[2])
	l.doc.SetLineWidth(0.5)
	l.doc.Line(l.cfg.Margin, l.y, l.cfg.Margin+l.contentW, l.y)
	l.y += 5
}

func (l *layout) drawHeading(text string) {
	l.ensureSpace(12)
	l.y += 4
	l.writeText(text, l.cfg.Margin, l.cfg.H2FontSize, true, accentColor, 0)
	l.y += 2
}

func (l *layout) drawSubheading(text string) {
	l.ensureSpace(10)
	l.y += 2
	l.writeText(text, l.cfg.Margin, l.cfg.H3FontSize, true, bodyColor, 0)
	l.y += 1
}

// drawTableRow draws the first cell as a bold label and the remaining cells
// joined with " | " as one wrapped value. Rows are therefore two logical
// columns; wider tables collapse into the value column.
func (l *layout) drawTableRow(cells []string) {
	label, value := tableRowParts(cells)
	l.ensureSpace(8)

	l.setFont(l.cfg.BodyFontSize, true, labelColor)
	l.doc.Text(l.cfg.Margin+2, l.y, label)

	l.setFont(l.cfg.BodyFontSize, false, bodyColor)
	valueLines := l.splitText(value, l.contentW-60)
	for _, vl := range valueLines {
		l.doc.Text(l.cfg.Margin+55, l.y, vl)
		l.y += l.cfg.LineHeight
	}
	if len(valueLines) == 0 {
		l.y += l.cfg.LineHeight
	}
}

// tableRowParts splits table cells into the bold label and the concatenated
// value field.
func tableRowParts(cells []string) (label, value string) {
	if len(cells) == 0 {
		return "", ""
	}
	label = strings.TrimSpace(cells[0])
	value = strings.TrimSpace(strings.Join(cells[1:], " | "))
	return label, value
}

func (l *layout) drawBullet(text string, indent int) {
	l.ensureSpace(2 * l.cfg.LineHeight)
	bulletX := l.cfg.Margin + 3 + float64(indent)*2
	l.setFont(l.cfg.BodyFontSize, false, bodyColor)
	l.doc.Text(bulletX, l.y, "•")
	for _, wl := range l.splitText(text, l.contentW-float64(indent)*2-8) {
		l.doc.Text(bulletX+5, l.y, wl)
		l.y += l.cfg.LineHeight
	}
}

func (l *layout) drawNumbered(number, text string, indent int) {
	l.ensureSpace(2 * l.cfg.LineHeight)
	numX := l.cfg.Margin + 3 + float64(indent)*2
	l.setFont(l.cfg.BodyFontSize, false, bodyColor)
	l.doc.Text(numX, l.y, number+".")
	for _, wl := range l.splitText(text, l.contentW-float64(indent)*2-10) {
		l.doc.Text(numX+7, l.y, wl)
		l.y += l.cfg.LineHeight
	}
}

// drawImages lays out the image gallery: a heading, then each image with its
// label above it. An unreadable image degrades to a red placeholder line and
// a warning; the rest of the gallery is unaffected.
func (l *layout) drawImages(images []proposalgen.ImageDescriptor) {
	if len(images) == 0 {
		return
	}
	l.ensureSpace(20)
	l.y += 5
	l.writeText("添付画像", l.cfg.Margin, l.cfg.H2FontSize, true, accentColor, 0)
	l.y += 3

	for _, img := range images {
		l.ensureSpace(80)

		l.writeText(img.Label, l.cfg.Margin, l.cfg.BodyFontSize, true, bodyColor, 0)
		l.y += 2

		if err := l.drawImage(img); err != nil {
			l.warnings = append(l.warnings, fmt.Sprintf("image %s: %v", img.FileName, err))
			l.writeText(fmt.Sprintf("[画像を読み込めませんでした: %s]", img.Label), l.cfg.Margin, l.cfg.BodyFontSize, false, errorColor, 0)
		}

		l.y += 3
	}
}

const imageMaxHeight = 70

func (l *layout) drawImage(img proposalgen.ImageDescriptor) error {
	imageType, data, err := dataURLPayload(img.DataURL)
	if err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: imageType}
	l.doc.RegisterImageOptionsReader(img.FileName, opts, bytes.NewReader(data))
	if err := l.doc.Error(); err != nil {
		l.doc.ClearError()
		return err
	}
	maxW := l.contentW * 0.7
	l.doc.ImageOptions(img.FileName, l.cfg.Margin, l.y, maxW, imageMaxHeight, false, opts, 0, "")
	if err := l.doc.Error(); err != nil {
		l.doc.ClearError()
		return err
	}
	l.y += imageMaxHeight + 5
	return nil
}

// dataURLPayload decodes a base64 image data URI. The type check mirrors the
// collection side: PNG when declared, JPEG otherwise.
func dataURLPayload(dataURL string) (imageType string, data []byte, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return "", nil, fmt.Errorf("missing base64 payload")
	}
	imageType = "JPEG"
	if strings.Contains(dataURL[:idx], "image/png") {
		imageType = "PNG"
	}
	data, err = base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return imageType, data, nil
}

package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"pkt.systems/proposalgen"
)

// 1x1 transparent PNG.
const testPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

const testMarkdown = `# tokyo_gourmet PRご提案資料

- **アカウント名**: tokyo_gourmet
- **カテゴリ**: グルメ

---

## 01. アカウント概要と実績

### 基本情報
- **総フォロワー数**: 12,000人

| 期間 | フォロワー数 |
| --- | --- |
| 2025年1月 | 8,000人 |
| 2025年5月 | 12,000人 |

1. **料金の確認**
2. **掲載** — 当日中

plain closing paragraph
`

func renderConfig() Config {
	cfg := DefaultConfig()
	cfg.CreationDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return cfg
}

func TestRenderProducesPDF(t *testing.T) {
	var out bytes.Buffer
	result, err := Render(context.Background(), RenderRequest{
		Markdown:    testMarkdown,
		DesignGuide: "# デザインガイド\n\n- ゴールドを基調とする\n",
		Writer:      &out,
		Config:      renderConfig(),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", out.Bytes()[:8])
	}
	// Proposal, gallery, and design guide each start a page.
	if result.Pages < 3 {
		t.Fatalf("expected at least 3 pages, got %d", result.Pages)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderDeterministic(t *testing.T) {
	req := RenderRequest{
		Markdown:    testMarkdown,
		DesignGuide: "# デザインガイド\n",
		Images:      []proposalgen.ImageDescriptor{{Label: "カバー画像", FileName: "a_cover.png", DataURL: testPNG}},
		Config:      renderConfig(),
	}

	var first, second bytes.Buffer
	req.Writer = &first
	if _, err := Render(context.Background(), req); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	req.Writer = &second
	if _, err := Render(context.Background(), req); err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("renders differ: %d vs %d bytes", first.Len(), second.Len())
	}
}

func TestRenderEmbedsImage(t *testing.T) {
	var out bytes.Buffer
	result, err := Render(context.Background(), RenderRequest{
		Markdown: "# x\n",
		Images:   []proposalgen.ImageDescriptor{{Label: "カバー画像 — a", FileName: "a_cover.png", DataURL: testPNG}},
		Writer:   &out,
		Config:   renderConfig(),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
}

func TestRenderBadImageDegradesToPlaceholder(t *testing.T) {
	var out bytes.Buffer
	result, err := Render(context.Background(), RenderRequest{
		Markdown: "# x\n",
		Images: []proposalgen.ImageDescriptor{
			{Label: "壊れた画像", FileName: "broken.jpg", DataURL: "data:image/jpeg;base64,not-base64!!"},
			{Label: "カバー画像", FileName: "ok.png", DataURL: testPNG},
		},
		Writer: &out,
		Config: renderConfig(),
	})
	if err != nil {
		t.Fatalf("render must not fail on one bad image: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected one warning, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "broken.jpg") {
		t.Fatalf("warning does not name the image: %v", result.Warnings[0])
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("%PDF")) {
		t.Fatalf("no document produced")
	}
}

func TestRenderLongDocumentPaginated(t *testing.T) {
	var b strings.Builder
	b.WriteString("# 長い資料\n\n")
	for i := 0; i < 120; i++ {
		b.WriteString("- 箇条書きの行がページをまたいで続きます\n")
	}
	var out bytes.Buffer
	result, err := Render(context.Background(), RenderRequest{
		Markdown: b.String(),
		Writer:   &out,
		Config:   renderConfig(),
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// 120 bullets at 6mm on a 267mm content column need more than one page,
	// plus the forced gallery and design guide pages.
	if result.Pages < 5 {
		t.Fatalf("expected at least 5 pages, got %d", result.Pages)
	}
}

func TestRenderNilWriter(t *testing.T) {
	if _, err := Render(context.Background(), RenderRequest{Markdown: "# x"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestTableRowParts(t *testing.T) {
	label, value := tableRowParts([]string{" プラン名 ", " 料金 ", " 内容 ", " 備考 "})
	if label != "プラン名" {
		t.Fatalf("unexpected label %q", label)
	}
	// Columns 2..N collapse into one value field.
	if value != "料金  |  内容  |  備考" {
		t.Fatalf("unexpected value %q", value)
	}

	label, value = tableRowParts([]string{"a", "b", "c", "d"})
	if label != "a" || value != "b | c | d" {
		t.Fatalf("unexpected parts %q / %q", label, value)
	}
}

func TestDataURLPayload(t *testing.T) {
	imageType, data, err := dataURLPayload(testPNG)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if imageType != "PNG" {
		t.Fatalf("expected PNG, got %q", imageType)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("payload is not a PNG")
	}

	if _, _, err := dataURLPayload("http://example.com/x.png"); err == nil {
		t.Fatalf("expected error for non data URL")
	}
	if _, _, err := dataURLPayload("data:image/png,plain"); err == nil {
		t.Fatalf("expected error for missing base64 payload")
	}
}

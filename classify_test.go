package proposalgen

import "testing"

func TestClassifyLineKinds(t *testing.T) {
	cases := map[string]LineKind{
		"":                   LineBlank,
		"   ":                LineBlank,
		"# タイトル":             LineTitle,
		"## 01. セクション":       LineHeading,
		"### サブセクション":        LineSubheading,
		"| 期間 | フォロワー数 |":    LineTableRow,
		"| --- | --- |":      LineTableRow,
		"- **アカウント名**: test": LineBullet,
		"* also a bullet":    LineBullet,
		"1. **料金の確認**":       LineNumbered,
		"12. many steps":     LineNumbered,
		"plain prose":        LineText,
		"#not a heading":     LineText,
		"-not a bullet":      LineText,
		"1.not numbered":     LineText,
	}
	for raw, want := range cases {
		if got := ClassifyLine(raw).Kind; got != want {
			t.Fatalf("ClassifyLine(%q).Kind = %v, want %v", raw, got, want)
		}
	}
}

func TestClassifyLineTableCells(t *testing.T) {
	ln := ClassifyLine("| 指標 | 数値 | 備考 |")
	if ln.Kind != LineTableRow || ln.Separator {
		t.Fatalf("unexpected classification %+v", ln)
	}
	if len(ln.Cells) != 3 {
		t.Fatalf("expected 3 cells, got %d: %q", len(ln.Cells), ln.Cells)
	}
}

func TestClassifyLineSeparatorRow(t *testing.T) {
	ln := ClassifyLine("| --- | --- |")
	if ln.Kind != LineTableRow || !ln.Separator {
		t.Fatalf("separator row misclassified: %+v", ln)
	}
}

func TestClassifyLineSinglePipeCellFallsThrough(t *testing.T) {
	ln := ClassifyLine("| lonely |")
	if ln.Kind != LineText {
		t.Fatalf("expected plain text for single-cell pipe line, got %v", ln.Kind)
	}
	if ln.Raw != "| lonely |" {
		t.Fatalf("raw line lost: %q", ln.Raw)
	}
}

func TestClassifyLineBulletIndent(t *testing.T) {
	ln := ClassifyLine("  - nested item")
	if ln.Kind != LineBullet {
		t.Fatalf("expected bullet, got %v", ln.Kind)
	}
	if ln.Indent != 2 {
		t.Fatalf("expected indent 2, got %d", ln.Indent)
	}
	if ln.Text != "nested item" {
		t.Fatalf("unexpected text %q", ln.Text)
	}
}

func TestClassifyLineNumberedKeepsLiteralNumber(t *testing.T) {
	ln := ClassifyLine("7. **掲載**")
	if ln.Kind != LineNumbered {
		t.Fatalf("expected numbered, got %v", ln.Kind)
	}
	if ln.Number != "7" {
		t.Fatalf("number not kept literally: %q", ln.Number)
	}
	if ln.Text != "**掲載**" {
		t.Fatalf("unexpected text %q", ln.Text)
	}
}

func TestClassifyLinesSplitsOnNewlines(t *testing.T) {
	lines := ClassifyLines("# a\n\n- b")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].Kind != LineTitle || lines[1].Kind != LineBlank || lines[2].Kind != LineBullet {
		t.Fatalf("unexpected kinds: %v %v %v", lines[0].Kind, lines[1].Kind, lines[2].Kind)
	}
}

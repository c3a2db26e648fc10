package proposalgen

import (
	"strings"
	"testing"
)

const (
	jpegDataURL = "data:image/jpeg;base64,/9j/AAAA"
	pngDataURL  = "data:image/png;base64,iVBORwAAAA"
)

func TestCollectImagesOrderAndNames(t *testing.T) {
	doc := ProposalDocument{
		Cover: Cover{AccountName: "tokyo_gourmet!", CoverImage: jpegDataURL},
		CaseStudies: []CaseStudy{
			{Name: "ラーメン特集", Thumbnail: pngDataURL},
			{Name: ""},
			{Name: "カフェ巡り", Thumbnail: jpegDataURL},
		},
	}
	images := CollectImages(doc, DefaultChapters())
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}

	if images[0].FileName != "tokyo_gourmet__cover.jpg" {
		t.Fatalf("unexpected cover filename %q", images[0].FileName)
	}
	if images[0].Label != "カバー画像 — tokyo_gourmet!" {
		t.Fatalf("unexpected cover label %q", images[0].Label)
	}
	if images[1].FileName != "tokyo_gourmet__case_1.png" {
		t.Fatalf("unexpected first thumbnail %q", images[1].FileName)
	}
	// The second case study has no thumbnail; the third keeps its 1-based index.
	if images[2].FileName != "tokyo_gourmet__case_3.jpg" {
		t.Fatalf("unexpected second thumbnail %q", images[2].FileName)
	}
	if images[2].Label != "PR事例3 — カフェ巡り" {
		t.Fatalf("unexpected label %q", images[2].Label)
	}
}

func TestCollectImagesSkipsThumbnailsWhenChapterOff(t *testing.T) {
	doc := ProposalDocument{
		Cover:       Cover{AccountName: "acct", CoverImage: jpegDataURL},
		CaseStudies: []CaseStudy{{Name: "A", Thumbnail: pngDataURL}},
	}
	chapters := DefaultChapters()
	chapters.CaseStudies = false

	images := CollectImages(doc, chapters)
	if len(images) != 1 {
		t.Fatalf("expected only the cover image, got %d", len(images))
	}
}

func TestCollectImagesUnnamedCaseStudy(t *testing.T) {
	doc := ProposalDocument{
		CaseStudies: []CaseStudy{{Thumbnail: pngDataURL}},
	}
	images := CollectImages(doc, DefaultChapters())
	if len(images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(images))
	}
	if images[0].Label != "PR事例1 — case_1" {
		t.Fatalf("unexpected label %q", images[0].Label)
	}
	if images[0].FileName != "account_case_1.png" {
		t.Fatalf("unexpected filename %q", images[0].FileName)
	}
}

func TestSanitizeFileNameKeepsCJK(t *testing.T) {
	cases := map[string]string{
		"東京グルメ":      "東京グルメ",
		"tokyo-food":  "tokyo_food",
		"a b@c":       "a_b_c",
		"カフェ cafe 2!": "カフェ_cafe_2_",
	}
	for in, want := range cases {
		if got := sanitizeFileName(in); got != want {
			t.Fatalf("sanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtFromDataURL(t *testing.T) {
	cases := map[string]string{
		jpegDataURL:                 "jpg",
		pngDataURL:                  "png",
		"data:image/webp;base64,AA": "webp",
		"not a data url":            "jpg",
		"":                          "jpg",
	}
	for in, want := range cases {
		if got := extFromDataURL(in); got != want {
			t.Fatalf("extFromDataURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestImageReferenceMarkdown(t *testing.T) {
	images := []ImageDescriptor{
		{Label: "カバー画像 — acct", FileName: "acct_cover.jpg"},
		{Label: "PR事例1 — A", FileName: "acct_case_1.png"},
	}
	md := ImageReferenceMarkdown(images)

	if !strings.HasPrefix(md, "## 添付画像一覧\n") {
		t.Fatalf("missing heading:\n%s", md)
	}
	if !strings.Contains(md, "| 1 | acct_cover.jpg | カバー画像 — acct | 表紙スライドのプロフィール写真 |") {
		t.Fatalf("missing cover row:\n%s", md)
	}
	if !strings.Contains(md, "| 2 | acct_case_1.png | PR事例1 — A | PR実績スライドのサムネイル |") {
		t.Fatalf("missing case row:\n%s", md)
	}
}

func TestImageReferenceMarkdownEmpty(t *testing.T) {
	if md := ImageReferenceMarkdown(nil); md != "" {
		t.Fatalf("expected empty string, got %q", md)
	}
}

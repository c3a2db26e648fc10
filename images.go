package proposalgen

import (
	"fmt"
	"strings"
)

// CollectImages extracts every embedded image from the document in render
// order: the cover image first, then case study thumbnails in list order
// when the case study chapter is enabled. Descriptors are built fresh on
// every call.
func CollectImages(doc ProposalDocument, chapters Chapters) []ImageDescriptor {
	var images []ImageDescriptor
	accountName := orElse(doc.Cover.AccountName, "account")
	safeName := sanitizeFileName(accountName)

	if doc.Cover.CoverImage != "" {
		images = append(images, ImageDescriptor{
			Label:    fmt.Sprintf("カバー画像 — %s", accountName),
			FileName: fmt.Sprintf("%s_cover.%s", safeName, extFromDataURL(doc.Cover.CoverImage)),
			DataURL:  doc.Cover.CoverImage,
		})
	}

	if chapters.CaseStudies {
		for i, cs := range doc.CaseStudies {
			if cs.Thumbnail == "" {
				continue
			}
			name := cs.Name
			if name == "" {
				name = fmt.Sprintf("case_%d", i+1)
			}
			images = append(images, ImageDescriptor{
				Label:    fmt.Sprintf("PR事例%d — %s", i+1, name),
				FileName: fmt.Sprintf("%s_case_%d.%s", safeName, i+1, extFromDataURL(cs.Thumbnail)),
				DataURL:  cs.Thumbnail,
			})
		}
	}
	return images
}

// ImageReferenceMarkdown returns a Markdown table describing the collected
// image files, for inclusion alongside the proposal data. Empty input
// returns an empty string.
func ImageReferenceMarkdown(images []ImageDescriptor) string {
	if len(images) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## 添付画像一覧\n\n")
	b.WriteString("以下の画像ファイルが別途添付されています。スライド作成時に使用してください。\n\n")
	b.WriteString("| # | ファイル名 | 説明 | 用途 |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for i, img := range images {
		usage := "PR実績スライドのサムネイル"
		if strings.Contains(img.FileName, "cover") {
			usage = "表紙スライドのプロフィール写真"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, img.FileName, img.Label, usage)
	}
	return b.String()
}

// sanitizeFileName keeps ASCII letters, digits, and the CJK range; every
// other rune becomes an underscore.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 0x3000 && r <= 0x9FFF:
			return r
		default:
			return '_'
		}
	}, name)
}

// extFromDataURL derives a file extension from a data URI's MIME subtype,
// normalizing jpeg to jpg and defaulting to jpg when undetectable.
func extFromDataURL(dataURL string) string {
	const prefix = "data:image/"
	if !strings.HasPrefix(dataURL, prefix) {
		return "jpg"
	}
	rest := dataURL[len(prefix):]
	end := 0
	for end < len(rest) {
		c := rest[end]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return "jpg"
	}
	ext := strings.ToLower(rest[:end])
	if ext == "jpeg" {
		return "jpg"
	}
	return ext
}

package proposalgen

import (
	"fmt"
	"sort"
	"strings"
)

// sectionSeparator joins chapters in the generated Markdown.
const sectionSeparator = "\n\n---\n\n"

// GenerateMarkdown renders the document as chaptered Markdown. Cover and
// contact always appear; the optional chapters appear iff their toggle is on
// (case studies additionally require a non-empty list). Chapter order is
// fixed regardless of toggles.
func GenerateMarkdown(doc ProposalDocument, chapters Chapters) string {
	sections := []string{coverSection(doc.Cover)}
	if chapters.Performance {
		sections = append(sections, performanceSection(doc.Performance))
	}
	if chapters.Follower {
		sections = append(sections, followerSection(doc.Follower))
	}
	if chapters.CaseStudies && len(doc.CaseStudies) > 0 {
		sections = append(sections, caseStudiesSection(doc.CaseStudies))
	}
	if chapters.Pricing {
		sections = append(sections, pricingSection(doc.PricingPlans))
	}
	if chapters.Flow {
		sections = append(sections, flowSection(doc.Flow))
	}
	sections = append(sections, contactSection(doc.Contact))
	return strings.Join(sections, sectionSeparator)
}

func coverSection(cover Cover) string {
	var snsNames []string
	if cover.SNS.Instagram {
		snsNames = append(snsNames, "Instagram")
	}
	if cover.SNS.TikTok {
		snsNames = append(snsNames, "TikTok")
	}
	if cover.SNS.YouTube {
		snsNames = append(snsNames, "YouTube")
	}
	return fmt.Sprintf(`# %s %s

- **アカウント名**: %s
- **カテゴリ**: %s
- **SNSプラットフォーム**: %s`,
		orElse(cover.AccountName, "（アカウント名未入力）"),
		orElse(cover.Title, "PRご提案資料"),
		orElse(cover.AccountName, "（未入力）"),
		orElse(cover.Category, "（未入力）"),
		orElse(strings.Join(snsNames, ", "), "（未選択）"))
}

func performanceSection(perf Performance) string {
	var b strings.Builder
	b.WriteString("## 01. アカウント概要と実績\n\n")

	b.WriteString("### 基本情報\n")
	if perf.TotalFollowers != "" {
		fmt.Fprintf(&b, "- **総フォロワー数**: %s人\n", FormatNumber(perf.TotalFollowers))
	} else {
		b.WriteString("- **総フォロワー数**: （未入力）\n")
	}

	var validKPIs []KPI
	for _, k := range perf.KPIs {
		if k.Label != "" || k.Value != "" {
			validKPIs = append(validKPIs, k)
		}
	}
	if len(validKPIs) > 0 {
		b.WriteString("\n### 主要KPI\n")
		for _, k := range validKPIs {
			fmt.Fprintf(&b, "- **%s**: %s\n", k.Label, orElse(k.Value, "—"))
		}
	}

	var validHistory []HistoryPoint
	for _, h := range perf.FollowerHistory {
		if h.Month != "" && h.Value != "" {
			validHistory = append(validHistory, h)
		}
	}
	if len(validHistory) > 0 {
		b.WriteString("\n### フォロワー推移\n")
		b.WriteString("| 期間 | フォロワー数 |\n")
		b.WriteString("| --- | --- |\n")
		for _, h := range validHistory {
			fmt.Fprintf(&b, "| %s | %s人 |\n", h.Month, FormatNumber(h.Value))
		}
	}

	if perf.AppealText != "" {
		fmt.Fprintf(&b, "\n### アピールポイント\n%s\n", perf.AppealText)
	}
	return b.String()
}

func followerSection(follower Follower) string {
	var b strings.Builder
	b.WriteString("## 02. フォロワー層について\n\n")

	ageEntries := positiveAgeEntries(follower.AgeDistribution)
	if len(ageEntries) > 0 {
		b.WriteString("### 年齢分布\n")
		b.WriteString("| 年齢層 | 割合 |\n")
		b.WriteString("| --- | --- |\n")
		for _, e := range ageEntries {
			fmt.Fprintf(&b, "| %s歳 | %s%% |\n", e.bucket, plainFloat(e.value))
		}
	}

	// Gender values are echoed exactly as supplied, never re-derived.
	b.WriteString("\n### 性別比率\n")
	fmt.Fprintf(&b, "- **男性**: %s%%\n", plainFloat(follower.GenderMale))
	fmt.Fprintf(&b, "- **女性**: %s%%\n", plainFloat(follower.GenderFemale))

	if follower.ShowRegion {
		var validRegions []Region
		for _, r := range follower.Regions {
			if r.Name != "" {
				validRegions = append(validRegions, r)
			}
		}
		if len(validRegions) > 0 {
			b.WriteString("\n### 地域分布\n")
			b.WriteString("| 地域 | 割合 |\n")
			b.WriteString("| --- | --- |\n")
			for _, r := range validRegions {
				fmt.Fprintf(&b, "| %s | %s%% |\n", r.Name, plainFloat(r.Percentage))
			}
		}
	}

	if follower.Note != "" {
		fmt.Fprintf(&b, "\n### 補足\n%s\n", follower.Note)
	}
	return b.String()
}

func caseStudiesSection(caseStudies []CaseStudy) string {
	var b strings.Builder
	b.WriteString("## 03. PR実績ご紹介（インサイト）\n\n")

	for i, cs := range caseStudies {
		saves := numberOr(cs.Saves, 0)
		rate := numberOr(cs.ConversionRate, DefaultConversionRate)
		groupSize := numberOr(cs.AvgGroupSize, DefaultAvgGroupSize)
		spend := numberOr(cs.AvgSpend, DefaultAvgSpend)
		groups, _, sales := EstimateSales(saves, rate, groupSize, spend)

		fmt.Fprintf(&b, "### 案件%d: %s\n\n", i+1, orElse(cs.Name, "（案件名未入力）"))
		fmt.Fprintf(&b, "- **投稿日**: %s\n", orElse(cs.Date, "（未入力）"))
		fmt.Fprintf(&b, "- **客単価**: %s\n\n", FormatCurrency(spend))

		b.WriteString("#### インサイト数値\n")
		b.WriteString("| 指標 | 数値 |\n")
		b.WriteString("| --- | --- |\n")
		if cs.Views != "" {
			fmt.Fprintf(&b, "| 再生数 | %s |\n", FormatNumber(cs.Views))
		}
		if cs.Reach != "" {
			fmt.Fprintf(&b, "| リーチ数 | %s |\n", FormatNumber(cs.Reach))
		}
		if cs.Comments != "" {
			fmt.Fprintf(&b, "| コメント数 | %s |\n", FormatNumber(cs.Comments))
		}
		if cs.Saves != "" {
			fmt.Fprintf(&b, "| 保存数 | %s |\n", FormatNumber(cs.Saves))
		}

		b.WriteString("\n#### 売上試算\n")
		b.WriteString("- 計算方法: 「保存数」の1/100を「来客予定組数」として試算\n")
		fmt.Fprintf(&b, "- 来客予定組数: %s組\n", groupNumber(float64(groups)))
		fmt.Fprintf(&b, "- 計算式: %s組 × %s名 × %s\n", groupNumber(float64(groups)), plainFloat(groupSize), FormatCurrency(spend))
		fmt.Fprintf(&b, "- **見込売上: %s**\n\n", FormatCurrency(sales))
	}
	return b.String()
}

func pricingSection(plans []PricingPlan) string {
	var b strings.Builder
	b.WriteString("## 04. SNSプロモーション料金表\n\n")

	if len(plans) == 0 {
		b.WriteString("（プラン未設定）\n")
		return b.String()
	}

	b.WriteString("| プラン名 | 料金 | 内容 |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, plan := range plans {
		var features []string
		for _, f := range plan.Features {
			if f != "" {
				features = append(features, f)
			}
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", plan.Name, FormatCurrency(plan.Price), strings.Join(features, "、"))
	}

	// First plan with a limited offer wins; the rest are ignored.
	for _, plan := range plans {
		if plan.LimitedOffer != "" {
			fmt.Fprintf(&b, "\n> ⏰ **%s**\n", plan.LimitedOffer)
			break
		}
	}
	return b.String()
}

func flowSection(flow Flow) string {
	var b strings.Builder
	b.WriteString("## 05. 掲載までの流れとお支払い\n\n")

	b.WriteString("### 掲載までの流れ\n")
	n := 0
	for _, s := range flow.Steps {
		if s.Title == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. **%s**", n, s.Title)
		if s.Description != "" {
			fmt.Fprintf(&b, " — %s", s.Description)
		}
		b.WriteString("\n")
	}

	if len(flow.PaymentMethods) > 0 {
		b.WriteString("\n### お支払い方法\n")
		for i, pm := range flow.PaymentMethods {
			fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, pm.Method, pm.Note)
		}
	}

	if flow.Note != "" {
		fmt.Fprintf(&b, "\n> %s\n", flow.Note)
	}
	return b.String()
}

func contactSection(contact Contact) string {
	var b strings.Builder
	b.WriteString("## お問い合わせ\n\n")
	b.WriteString("ご覧いただきありがとうございました。\n\n")
	if contact.BusinessName != "" {
		fmt.Fprintf(&b, "- **事業者名**: %s\n", contact.BusinessName)
	}
	if contact.SNSHandle != "" {
		fmt.Fprintf(&b, "- **SNS**: %s\n", contact.SNSHandle)
	}
	fmt.Fprintf(&b, "- **メール**: %s\n", orElse(contact.Email, "（未入力）"))
	return b.String()
}

type ageEntry struct {
	bucket string
	value  float64
}

// positiveAgeEntries returns buckets with a positive share in the fixed
// bucket order, with any non-standard bucket keys sorted after them.
func positiveAgeEntries(dist map[string]float64) []ageEntry {
	var entries []ageEntry
	seen := make(map[string]bool, len(AgeBuckets))
	for _, bucket := range AgeBuckets {
		seen[bucket] = true
		if v := dist[bucket]; v > 0 {
			entries = append(entries, ageEntry{bucket, v})
		}
	}
	var extra []string
	for bucket, v := range dist {
		if !seen[bucket] && v > 0 {
			extra = append(extra, bucket)
		}
	}
	sort.Strings(extra)
	for _, bucket := range extra {
		entries = append(entries, ageEntry{bucket, dist[bucket]})
	}
	return entries
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

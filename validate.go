package proposalgen

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New()

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// DocumentErrors collects validation warnings per chapter, and per index for
// the list chapters. Warnings are advisory; generation never blocks on them.
type DocumentErrors struct {
	Cover        FieldErrors         `json:"cover,omitempty"`
	Performance  FieldErrors         `json:"performance,omitempty"`
	Follower     FieldErrors         `json:"follower,omitempty"`
	CaseStudies  map[int]FieldErrors `json:"caseStudies,omitempty"`
	PricingPlans map[int]FieldErrors `json:"pricingPlans,omitempty"`
	Contact      FieldErrors         `json:"contact,omitempty"`
}

// Empty reports whether no warnings were produced.
func (e DocumentErrors) Empty() bool {
	return len(e.Cover) == 0 &&
		len(e.Performance) == 0 &&
		len(e.Follower) == 0 &&
		len(e.CaseStudies) == 0 &&
		len(e.PricingPlans) == 0 &&
		len(e.Contact) == 0
}

// ValidateAll checks the document for generation readiness. Cover and
// contact are checked unconditionally; optional chapters only when their
// toggle is on, and list chapters only when non-empty.
func ValidateAll(doc ProposalDocument, chapters Chapters) DocumentErrors {
	var errs DocumentErrors

	errs.Cover = validateCover(doc.Cover)
	errs.Contact = validateContact(doc.Contact)

	if chapters.Performance {
		errs.Performance = validatePerformance(doc.Performance)
	}
	if chapters.Follower {
		errs.Follower = validateFollower(doc.Follower)
	}
	if chapters.CaseStudies && len(doc.CaseStudies) > 0 {
		for i, cs := range doc.CaseStudies {
			if e := validateCaseStudy(cs); len(e) > 0 {
				if errs.CaseStudies == nil {
					errs.CaseStudies = make(map[int]FieldErrors)
				}
				errs.CaseStudies[i] = e
			}
		}
	}
	if chapters.Pricing && len(doc.PricingPlans) > 0 {
		for i, plan := range doc.PricingPlans {
			if e := validatePricing(plan); len(e) > 0 {
				if errs.PricingPlans == nil {
					errs.PricingPlans = make(map[int]FieldErrors)
				}
				errs.PricingPlans[i] = e
			}
		}
	}
	return errs
}

func validateCover(cover Cover) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(cover.AccountName) == "" {
		errs["accountName"] = "アカウント名は必須です"
	}
	if strings.TrimSpace(cover.Category) == "" {
		errs["category"] = "カテゴリは必須です"
	}
	if strings.TrimSpace(cover.Title) == "" {
		errs["title"] = "資料タイトルは必須です"
	}
	if cover.CoverImage == "" {
		errs["coverImage"] = "表紙画像は必須です"
	}
	return compactErrs(errs)
}

func validatePerformance(perf Performance) FieldErrors {
	errs := FieldErrors{}
	if perf.TotalFollowers == "" {
		errs["totalFollowers"] = "総フォロワー数は必須です"
	}
	if len(perf.KPIs) == 0 {
		errs["kpis"] = "KPI数値を入力してください"
	}
	if len(perf.FollowerHistory) < 2 {
		errs["followerHistory"] = "フォロワー推移データを2つ以上入力してください"
	}
	return compactErrs(errs)
}

func validateFollower(follower Follower) FieldErrors {
	errs := FieldErrors{}
	if len(follower.AgeDistribution) == 0 {
		errs["ageDistribution"] = "年齢分布は必須です"
	}
	if follower.GenderMale == 0 && follower.GenderFemale == 0 {
		errs["gender"] = "性別比率は必須です"
	}
	return compactErrs(errs)
}

func validateCaseStudy(cs CaseStudy) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(cs.Name) == "" {
		errs["name"] = "案件名は必須です"
	}
	if cs.Date == "" {
		errs["date"] = "投稿日は必須です"
	}
	if cs.Views == "" {
		errs["views"] = "再生数は必須です"
	}
	if cs.Thumbnail == "" {
		errs["thumbnail"] = "サムネ画像は必須です"
	}
	if cs.AvgSpend == "" {
		errs["avgSpend"] = "客単価は必須です"
	}
	if cs.ConversionRate == "" {
		errs["conversionRate"] = "売上計算係数は必須です"
	}
	return compactErrs(errs)
}

func validatePricing(plan PricingPlan) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(plan.Name) == "" {
		errs["name"] = "プラン名は必須です"
	}
	if plan.Price == 0 {
		errs["price"] = "価格は必須です"
	}
	if len(plan.Features) == 0 {
		errs["features"] = "内容は必須です"
	}
	return compactErrs(errs)
}

func validateContact(contact Contact) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(contact.Email) == "" {
		errs["email"] = "メールアドレスは必須です"
	} else if err := fieldValidator.Var(contact.Email, "required,email"); err != nil {
		errs["email"] = "有効なメールアドレスを入力してください"
	}
	return compactErrs(errs)
}

func compactErrs(errs FieldErrors) FieldErrors {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

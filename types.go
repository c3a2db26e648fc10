package proposalgen

// SNS holds the enabled social platform flags for the cover chapter.
type SNS struct {
	Instagram bool `json:"instagram"`
	TikTok    bool `json:"tiktok"`
	YouTube   bool `json:"youtube"`
}

// Cover is the mandatory opening chapter of a proposal.
type Cover struct {
	AccountName string `json:"accountName"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	CoverImage  string `json:"coverImage"`
	SNS         SNS    `json:"sns"`
}

// KPI is one labelled headline metric.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HistoryPoint is one follower count sample.
type HistoryPoint struct {
	Month string `json:"month"`
	Value string `json:"value"`
}

// Performance describes account reach and growth.
type Performance struct {
	TotalFollowers  string         `json:"totalFollowers"`
	KPIs            []KPI          `json:"kpis"`
	FollowerHistory []HistoryPoint `json:"followerHistory"`
	AppealText      string         `json:"appealText"`
}

// Region is one named audience region slot.
type Region struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// Follower describes the audience demographics chapter.
type Follower struct {
	AgeDistribution map[string]float64 `json:"ageDistribution"`
	GenderMale      float64            `json:"genderMale"`
	GenderFemale    float64            `json:"genderFemale"`
	ShowRegion      bool               `json:"showRegion"`
	Regions         []Region           `json:"regions"`
	Note            string             `json:"followerNote"`
}

// CaseStudy is one past promotion with its engagement metrics. Metric fields
// are numeric-as-text exactly as entered; parsing happens at generation time.
type CaseStudy struct {
	Name           string `json:"name"`
	Date           string `json:"date"`
	Thumbnail      string `json:"thumbnail"`
	Views          string `json:"views"`
	Reach          string `json:"reach"`
	Comments       string `json:"comments"`
	Saves          string `json:"saves"`
	AvgSpend       string `json:"avgSpend"`
	ConversionRate string `json:"conversionRate"`
	AvgGroupSize   string `json:"avgGroupSize"`
}

// PricingPlan is one row of the pricing table.
type PricingPlan struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Features     []string `json:"features"`
	Platforms    []string `json:"platforms"`
	LimitedOffer string   `json:"limitedOffer"`
}

// FlowStep is one step of the engagement flow.
type FlowStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PaymentMethod is one accepted payment entry.
type PaymentMethod struct {
	Method string `json:"method"`
	Note   string `json:"note"`
}

// Flow describes the engagement process and payment chapter.
type Flow struct {
	Steps          []FlowStep      `json:"steps"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	Note           string          `json:"note"`
}

// Contact is the mandatory closing chapter.
type Contact struct {
	Email        string `json:"email"`
	SNSHandle    string `json:"snsHandle"`
	BusinessName string `json:"businessName"`
}

// ProposalDocument is the full form state supplied by the caller on every
// generation request. It is transient; the package never stores or mutates it.
type ProposalDocument struct {
	Cover        Cover         `json:"cover"`
	Performance  Performance   `json:"performance"`
	Follower     Follower      `json:"follower"`
	CaseStudies  []CaseStudy   `json:"caseStudies"`
	PricingPlans []PricingPlan `json:"pricingPlans"`
	Flow         Flow          `json:"flow"`
	Contact      Contact       `json:"contact"`
}

// Chapters holds the per-chapter toggles. Cover and Contact are always
// emitted; Toggle refuses to flip them.
type Chapters struct {
	Cover       bool `json:"cover"`
	Contents    bool `json:"contents"`
	Performance bool `json:"performance"`
	Follower    bool `json:"follower"`
	CaseStudies bool `json:"caseStudies"`
	Pricing     bool `json:"pricing"`
	Flow        bool `json:"flow"`
	Contact     bool `json:"contact"`
}

// Toggle flips the named chapter and reports whether it was flipped. The
// cover and contact chapters are permanent and unknown names are ignored.
func (c *Chapters) Toggle(name string) bool {
	switch name {
	case "contents":
		c.Contents = !c.Contents
	case "performance":
		c.Performance = !c.Performance
	case "follower":
		c.Follower = !c.Follower
	case "caseStudies":
		c.CaseStudies = !c.CaseStudies
	case "pricing":
		c.Pricing = !c.Pricing
	case "flow":
		c.Flow = !c.Flow
	default:
		return false
	}
	return true
}

// ImageDescriptor is one embedded image extracted from the document. DataURL
// holds the image bytes as a base64 data URI, exactly as supplied.
type ImageDescriptor struct {
	Label    string `json:"label"`
	FileName string `json:"fileName"`
	DataURL  string `json:"dataUrl"`
}

// AgeBuckets is the fixed age distribution bucket order.
var AgeBuckets = []string{"13-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// DefaultChapters returns the toggle set with every chapter enabled.
func DefaultChapters() Chapters {
	return Chapters{
		Cover:       true,
		Contents:    true,
		Performance: true,
		Follower:    true,
		CaseStudies: true,
		Pricing:     true,
		Flow:        true,
		Contact:     true,
	}
}

// DefaultDocument returns a document pre-filled the way a fresh proposal
// starts: default title, all platforms enabled, empty age buckets, a starter
// pricing plan, and the standard engagement flow.
func DefaultDocument() ProposalDocument {
	return ProposalDocument{
		Cover: Cover{
			Title: "PRご提案資料",
			SNS:   SNS{Instagram: true, TikTok: true, YouTube: true},
		},
		Performance: Performance{
			KPIs: []KPI{
				{Label: "100万再生"},
				{Label: "動画本数"},
			},
			FollowerHistory: []HistoryPoint{
				{Month: "2025年1月"},
				{Month: "2025年3月"},
				{Month: "2025年5月"},
				{Month: "2025年7月"},
				{Month: "2025年9月"},
				{Month: "2025年11月"},
				{Month: "2026年1月"},
			},
		},
		Follower: Follower{
			AgeDistribution: map[string]float64{
				"13-17": 0,
				"18-24": 0,
				"25-34": 0,
				"35-44": 0,
				"45-54": 0,
				"55-64": 0,
				"65+":   0,
			},
			GenderMale:   58.5,
			GenderFemale: 41.5,
			Regions:      make([]Region, 5),
		},
		PricingPlans: []PricingPlan{
			{
				Name:  "ライトプラン",
				Price: 50000,
				Features: []string{
					"基本の認知拡大",
					"ブランディング",
					"構成/撮影/編集/運用",
					"ストーリー(2枚)",
					"スレッズ(1回)",
				},
				Platforms: []string{"instagram"},
			},
		},
		Flow: Flow{
			Steps: []FlowStep{
				{Title: "料金の確認"},
				{Title: "取材日決め"},
				{Title: "取材・撮影"},
				{Title: "投稿作成", Description: "3〜7日"},
				{Title: "内容確認", Description: "下書き提出"},
				{Title: "掲載"},
			},
			PaymentMethods: make([]PaymentMethod, 2),
		},
	}
}

// MarkdownFileName derives the proposal Markdown filename from the account
// name, falling back to "proposal" when empty.
func MarkdownFileName(accountName string) string {
	if accountName == "" {
		accountName = "proposal"
	}
	return accountName + "_proposal_data.md"
}

// PDFFileName derives the PDF filename from the account name.
func PDFFileName(accountName string) string {
	if accountName == "" {
		accountName = "proposal"
	}
	return accountName + "_notebooklm.pdf"
}

package collector

import (
	"context"
	"net/http"
)

const govukBaseURL = "https://www.gov.uk"

// GovUKAdvice 拉取英国外交部（FCDO）对单个国家的旅行建议，Content API 返回 JSON。
// 每次固定产出一条 severity=3 的条目。
type GovUKAdvice struct {
	BaseURL string // 测试时可指向 httptest server
	Slug    string // gov.uk 的国家 slug，如 south-africa
}

func NewGovUKAdvice(slug string) *GovUKAdvice {
	return &GovUKAdvice{BaseURL: govukBaseURL, Slug: slug}
}

func (g *GovUKAdvice) Name() string {
	return "government-advice"
}

type govukContent struct {
	Title           string `json:"title"`
	BasePath        string `json:"base_path"`
	PublicUpdatedAt string `json:"public_updated_at"`
	Details         struct {
		Summary           string `json:"summary"`
		ChangeDescription string `json:"change_description"`
		LatestUpdate      struct {
			Published string `json:"published"`
		} `json:"latest_update"`
	} `json:"details"`
}

func (g *GovUKAdvice) FetchLatest(ctx context.Context) ([]Item, error) {
	var doc govukContent
	reqURL := g.BaseURL + "/api/content/foreign-travel-advice/" + g.Slug
	if err := fetchJSON(ctx, http.MethodGet, reqURL, nil, &doc); err != nil {
		return nil, err
	}

	// 时间与摘要都按“最具体 -> 最通用”的顺序兜底
	ts := doc.Details.LatestUpdate.Published
	if ts == "" {
		ts = doc.PublicUpdatedAt
	}
	if ts == "" {
		ts = nowISO()
	}

	summary := doc.Details.ChangeDescription
	if summary == "" {
		summary = doc.Details.Summary
	}
	if summary == "" {
		summary = "Travel advice updated"
	}

	title := doc.Title
	if title == "" {
		title = "FCDO travel advice"
	}

	links := []string{}
	if doc.BasePath != "" {
		links = append(links, g.BaseURL+doc.BasePath)
	}

	item := Item{
		ID:       g.Name() + ":" + g.Slug,
		TS:       ts,
		Source:   g.Name(),
		Title:    title,
		Summary:  summary,
		Severity: 3,
		Links:    links,
	}
	return []Item{item}, nil
}

package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	reliefwebBaseURL = "https://api.reliefweb.int/v1/reports?appname=riskradar"
	reliefwebLimit   = 30

	// days 查询参数的取值范围与默认值
	ReliefWebMinDays     = 1
	ReliefWebMaxDays     = 60
	ReliefWebDefaultDays = 21
)

// 主题串里出现这些词时升级到 4
var reliefwebHighThemes = []string{"epidemic", "conflict", "security", "protection"}

// ReliefWebReports 通过 ReliefWeb 报告检索 API 拉取单个国家近期的
// 安全 / 人权保护 / 健康相关报告，POST 结构化过滤条件。
type ReliefWebReports struct {
	BaseURL string
	Country string
}

func NewReliefWebReports(country string) *ReliefWebReports {
	return &ReliefWebReports{BaseURL: reliefwebBaseURL, Country: country}
}

func (r *ReliefWebReports) Name() string {
	return "situation-reports"
}

// rwCondition 既做叶子条件（field+value）也做组合条件（operator+conditions）
type rwCondition struct {
	Field      string        `json:"field,omitempty"`
	Value      any           `json:"value,omitempty"`
	Operator   string        `json:"operator,omitempty"`
	Conditions []rwCondition `json:"conditions,omitempty"`
}

type rwRequest struct {
	Limit  int `json:"limit"`
	Fields struct {
		Include []string `json:"include"`
	} `json:"fields"`
	Sort   []string    `json:"sort"`
	Filter rwCondition `json:"filter"`
}

type rwResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Fields struct {
			Title string `json:"title"`
			URL   string `json:"url"`
			Date  struct {
				Created string `json:"created"`
			} `json:"date"`
			Theme []struct {
				Name string `json:"name"`
			} `json:"theme"`
		} `json:"fields"`
	} `json:"data"`
}

func (r *ReliefWebReports) FetchLatest(ctx context.Context) ([]Item, error) {
	return r.Fetch(ctx, ReliefWebDefaultDays)
}

// Fetch 拉取最近 days 天的报告，days 由调用方先行夹取到 [1,60]
func (r *ReliefWebReports) Fetch(ctx context.Context, days int) ([]Item, error) {
	from := clock.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)

	reqBody := rwRequest{Limit: reliefwebLimit}
	reqBody.Fields.Include = []string{"title", "url", "date.created", "theme.name"}
	reqBody.Sort = []string{"date.created:desc"}
	reqBody.Filter = rwCondition{
		Operator: "AND",
		Conditions: []rwCondition{
			{Field: "country.name", Value: r.Country},
			{Operator: "OR", Conditions: []rwCondition{
				{Field: "theme.name", Value: "Safety and Security"},
				{Field: "theme.name", Value: "Protection and Human Rights"},
				{Field: "theme.name", Value: "Health"},
			}},
			{Field: "date.created", Value: map[string]string{"from": from}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("reliefweb: encode filter: %w", err)
	}

	var resp rwResponse
	if err := fetchJSON(ctx, http.MethodPost, r.BaseURL, payload, &resp); err != nil {
		return nil, err
	}

	results := make([]Item, 0, len(resp.Data))
	for _, rec := range resp.Data {
		names := make([]string, 0, len(rec.Fields.Theme))
		for _, t := range rec.Fields.Theme {
			names = append(names, t.Name)
		}
		themes := strings.Join(names, ", ")

		severity := 3
		lower := strings.ToLower(themes)
		for _, kw := range reliefwebHighThemes {
			if strings.Contains(lower, kw) {
				severity = 4
				break
			}
		}

		ts := rec.Fields.Date.Created
		if ts == "" {
			ts = nowISO()
		}

		links := []string{}
		if rec.Fields.URL != "" {
			links = append(links, rec.Fields.URL)
		}

		results = append(results, Item{
			ID:       r.Name() + ":" + rec.ID,
			TS:       ts,
			Source:   r.Name(),
			Title:    rec.Fields.Title,
			Summary:  themes,
			Severity: severity,
			Links:    links,
		})
	}

	return results, nil
}

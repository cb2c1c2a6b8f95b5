package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	gdeltBaseURL        = "https://api.gdeltproject.org/api/v2/doc/doc"
	gdeltMaxRecords     = 50
	gdeltSeenDateLayout = "20060102T150405Z"

	// hours 查询参数的取值范围与默认值
	GDELTMinHours     = 1
	GDELTMaxHours     = 168
	GDELTDefaultHours = 24
)

// GDELTEvents 通过 GDELT DOC 2.0 全文检索拉取与国家相关的新闻事件。
// 查询词可由调用方覆盖，默认是国家名加一组暴力相关关键字。
type GDELTEvents struct {
	BaseURL string
	Country string
}

func NewGDELTEvents(country string) *GDELTEvents {
	return &GDELTEvents{BaseURL: gdeltBaseURL, Country: country}
}

func (g *GDELTEvents) Name() string {
	return "news-events"
}

func (g *GDELTEvents) defaultQuery() string {
	return fmt.Sprintf("%q (bomb OR explosion OR shooting OR riot OR kidnapping OR unrest OR protest)", g.Country)
}

type gdeltResponse struct {
	Articles []struct {
		URL           string `json:"url"`
		Title         string `json:"title"`
		SeenDate      string `json:"seendate"`
		Domain        string `json:"domain"`
		SourceCountry string `json:"sourcecountry"`
	} `json:"articles"`
}

func (g *GDELTEvents) FetchLatest(ctx context.Context) ([]Item, error) {
	return g.Fetch(ctx, "", GDELTDefaultHours)
}

// Fetch 检索最近 hours 小时的报道，hours 由调用方先行夹取到 [1,168]；
// query 为空时使用内置默认查询词
func (g *GDELTEvents) Fetch(ctx context.Context, query string, hours int) ([]Item, error) {
	if query == "" {
		query = g.defaultQuery()
	}

	params := url.Values{
		"query":      {query},
		"mode":       {"ArtList"},
		"format":     {"json"},
		"maxrecords": {strconv.Itoa(gdeltMaxRecords)},
		"timespan":   {fmt.Sprintf("%dh", hours)},
		"sort":       {"DateDesc"},
	}

	var resp gdeltResponse
	if err := fetchJSON(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	results := make([]Item, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		// URL 缺失时用标题兜底做 id
		id := a.URL
		if id == "" {
			id = a.Title
		}

		ts := nowISO()
		if t, err := time.Parse(gdeltSeenDateLayout, a.SeenDate); err == nil {
			ts = t.UTC().Format(time.RFC3339)
		}

		summary := a.Domain
		if a.SourceCountry != "" {
			summary = a.Domain + " • " + a.SourceCountry
		}

		links := []string{}
		if a.URL != "" {
			links = append(links, a.URL)
		}

		results = append(results, Item{
			ID:       g.Name() + ":" + id,
			TS:       ts,
			Source:   g.Name(),
			Title:    a.Title,
			Summary:  summary,
			Severity: Classify(a.Title + " " + a.URL),
			Links:    links,
		})
	}

	return results, nil
}

package collector

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

const (
	stateDeptFeedURL  = "https://travel.state.gov/_res/rss/TAsTWs.xml"
	stateDeptMaxItems = 5
	summaryMaxRunes   = 280
)

// htmlStripPolicy 只留纯文本，RSS 描述里常混入各种标签
var htmlStripPolicy = bluemonday.StrictPolicy()

// StateDeptFeed 解析美国国务院旅行警示 RSS。
// feed 本身不按国家区分，所以在客户端按国家名做大小写不敏感的过滤。
type StateDeptFeed struct {
	FeedURL string
	Country string
	parser  *gofeed.Parser
}

func NewStateDeptFeed(country string) *StateDeptFeed {
	return &StateDeptFeed{
		FeedURL: stateDeptFeedURL,
		Country: country,
		parser:  gofeed.NewParser(),
	}
}

func (s *StateDeptFeed) Name() string {
	return "government-advisory-feed"
}

func (s *StateDeptFeed) FetchLatest(ctx context.Context) ([]Item, error) {
	raw, err := fetchText(ctx, s.FeedURL)
	if err != nil {
		return nil, err
	}

	feed, err := s.parser.ParseString(raw)
	if err != nil {
		return nil, fmt.Errorf("statedept: parse feed: %w", err)
	}

	country := strings.ToLower(s.Country)
	results := make([]Item, 0, stateDeptMaxItems)
	for _, it := range feed.Items {
		if len(results) >= stateDeptMaxItems {
			break
		}
		if !strings.Contains(strings.ToLower(it.Title), country) &&
			!strings.Contains(strings.ToLower(it.Description), country) {
			continue
		}

		// id 按 GUID -> link -> title 的顺序兜底
		id := it.GUID
		if id == "" {
			id = it.Link
		}
		if id == "" {
			id = it.Title
		}

		// 日期缺失或无法解析时退回当前时间
		ts := nowISO()
		if it.PublishedParsed != nil {
			ts = it.PublishedParsed.UTC().Format(time.RFC3339)
		}

		summary := htmlStripPolicy.Sanitize(it.Description)
		summary = strings.TrimSpace(html.UnescapeString(summary))
		summary = truncateRunes(summary, summaryMaxRunes)

		links := []string{}
		if it.Link != "" {
			links = append(links, it.Link)
		}

		results = append(results, Item{
			ID:       s.Name() + ":" + id,
			TS:       ts,
			Source:   s.Name(),
			Title:    it.Title,
			Summary:  summary,
			Severity: 3,
			Links:    links,
		})
	}

	return results, nil
}

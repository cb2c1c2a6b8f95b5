package processor

import (
	"github.com/LJTian/RiskRadar/internal/collector"
)

// Item 对外输出的统一风险条目结构
type Item struct {
	ID       string   `json:"id"`
	TS       string   `json:"ts"`
	Source   string   `json:"source"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Severity int      `json:"severity"`
	Links    []string `json:"links"`
	// 预留的坐标字段，目前没有任何源填充
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// severity 未知时的默认级别：值得注意但非暴力事件
const defaultSeverity = 3

// Normalize 补齐单条目的默认值，保证六个必填字段全部存在且类型正确。
// 对任何适配器能产出的输入都不失败。
func Normalize(in collector.Item) Item {
	out := Item{
		ID:       in.ID,
		TS:       in.TS,
		Source:   in.Source,
		Title:    in.Title,
		Summary:  in.Summary,
		Severity: in.Severity,
		Links:    in.Links,
		Lat:      in.Lat,
		Lng:      in.Lng,
	}
	if out.Severity == 0 {
		out.Severity = defaultSeverity
	}
	if out.Links == nil {
		out.Links = []string{}
	}
	return out
}

// NormalizeAll 逐条归一化，保证返回非 nil 切片，序列化后是 [] 而不是 null
func NormalizeAll(items []collector.Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Normalize(it))
	}
	return out
}

package collector

import "strings"

// 关键字粗分严重级别：先匹配爆炸类给 5，再匹配暴力类给 4，否则 3。
// 只是启发式，漏判是预期内的。
var (
	severityCritical = []string{"bomb", "explosion", "blast", "airstrike"}
	severityHigh     = []string{"terror", "shooting", "kidnap", "abduct", "riot", "violent protest", "unrest"}
)

// Classify 根据文本关键字给出 3/4/5 的严重级别，大小写不敏感，空文本返回 3
func Classify(text string) int {
	t := strings.ToLower(text)
	for _, kw := range severityCritical {
		if strings.Contains(t, kw) {
			return 5
		}
	}
	for _, kw := range severityHigh {
		if strings.Contains(t, kw) {
			return 4
		}
	}
	return 3
}

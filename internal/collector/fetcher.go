package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// 每次出站请求的硬超时，超时即取消，上游再慢也不拖垮本次请求
	fetchTimeout     = 10 * time.Second
	maxResponseBytes = 2 << 20 // 2MB，防止超大响应
	userAgent        = "RiskRadarBot/1.0"
)

var httpClient = &http.Client{}

// clock 统一的时间来源，测试时可替换为假时钟
var clock = clockwork.NewRealClock()

// SetClock 替换时间来源，传 nil 恢复真实时钟
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

func nowISO() string {
	return clock.Now().UTC().Format(time.RFC3339)
}

// Item 单个源适配出的条目，缺省字段由 processor 统一补齐
type Item struct {
	ID       string
	TS       string
	Source   string
	Title    string
	Summary  string
	Severity int
	Links    []string
	Lat      *float64
	Lng      *float64
}

// Source 抽象每一个数据源：带参数的抓取由各源自己的 Fetch 方法承担，
// FetchLatest 用默认参数，供快照任务统一调用
type Source interface {
	Name() string
	FetchLatest(ctx context.Context) ([]Item, error)
}

// fetchJSON 发起一次带超时的请求并解析 JSON 响应。
// 网络错误、非 2xx、解析失败、超时统一收敛为 error，调用方不区分种类。
func fetchJSON(ctx context.Context, method, rawURL string, body []byte, out any) error {
	raw, err := fetchRaw(ctx, method, rawURL, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("fetch %s: decode json: %w", rawURL, err)
	}
	return nil
}

// fetchText 发起一次带超时的 GET 请求并返回原始文本（RSS/XML 等）
func fetchText(ctx context.Context, rawURL string) (string, error) {
	raw, err := fetchRaw(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func fetchRaw(ctx context.Context, method, rawURL string, body []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: build request: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return raw, nil
}

// truncateRunes 按字符数截断，避免把多字节字符截成乱码
func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

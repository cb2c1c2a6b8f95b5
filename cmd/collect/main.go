package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/LJTian/RiskRadar/internal/collector"
	"github.com/LJTian/RiskRadar/internal/config"
	"github.com/LJTian/RiskRadar/internal/processor"
	"github.com/LJTian/RiskRadar/internal/scheduler"
)

// 命令行快照入口：默认抓取一轮并把归一化结果输出到 stdout；
// 配置了 WATCH_CRON 时常驻，按 cron 周期重复抓取并记录摘要日志
func main() {
	cfg := config.Load()

	sources := []collector.Source{
		collector.NewGovUKAdvice(cfg.CountrySlug),
		collector.NewStateDeptFeed(cfg.CountryName),
		collector.NewReliefWebReports(cfg.CountryName),
		collector.NewGDELTEvents(cfg.CountryName),
	}

	if cfg.WatchCron != "" {
		s, err := scheduler.New(cfg.WatchCron, sources)
		if err != nil {
			log.Fatalf("init scheduler failed: %v", err)
		}
		s.RunOnce()
		s.Start()
		select {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot := make(map[string][]processor.Item, len(sources))
	for _, src := range sources {
		items, err := src.FetchLatest(ctx)
		if err != nil {
			log.Printf("fetch %s error: %v", src.Name(), err)
			items = nil
		}
		snapshot[src.Name()] = processor.NormalizeAll(items)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		log.Fatalf("encode snapshot failed: %v", err)
	}
}

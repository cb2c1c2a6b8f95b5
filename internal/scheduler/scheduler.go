package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/LJTian/RiskRadar/internal/collector"
	"github.com/LJTian/RiskRadar/internal/processor"
	"github.com/robfig/cron/v3"
)

// 单轮快照的总预算，足够覆盖四个源各自 10s 的抓取超时
const snapshotTimeout = 30 * time.Second

// Scheduler 定时对所有源做一轮快照并输出摘要日志，不落任何存储
type Scheduler struct {
	cron    *cron.Cron
	sources []collector.Source
}

func New(spec string, sources []collector.Source) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		sources: sources,
	}

	if spec != "" {
		if _, err := c.AddFunc(spec, s.runOnce); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start snapshot job...")

	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, src := range s.sources {
		source := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := source.Name()
			items, err := source.FetchLatest(ctx)
			if err != nil {
				log.Printf("fetch %s error: %v", name, err)
				return
			}

			maxSeverity := 0
			for _, it := range processor.NormalizeAll(items) {
				if it.Severity > maxSeverity {
					maxSeverity = it.Severity
				}
			}
			log.Printf("%s done, items=%d max_severity=%d", name, len(items), maxSeverity)
		}()
	}

	wg.Wait()
	log.Println("snapshot job done (all sources)")
}

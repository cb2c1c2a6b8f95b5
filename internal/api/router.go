package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/LJTian/RiskRadar/internal/collector"
	"github.com/LJTian/RiskRadar/internal/config"
	"github.com/LJTian/RiskRadar/internal/observability"
	"github.com/LJTian/RiskRadar/internal/processor"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	cfg     *config.Config
	metrics *observability.Metrics

	govuk  *collector.GovUKAdvice
	state  *collector.StateDeptFeed
	relief *collector.ReliefWebReports
	gdelt  *collector.GDELTEvents
}

func NewServer(cfg *config.Config, m *observability.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		metrics: m,
		govuk:   collector.NewGovUKAdvice(cfg.CountrySlug),
		state:   collector.NewStateDeptFeed(cfg.CountryName),
		relief:  collector.NewReliefWebReports(cfg.CountryName),
		gdelt:   collector.NewGDELTEvents(cfg.CountryName),
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(corsMiddleware(s.cfg.AllowedOrigins))

	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/gov/uk/za", s.govAdvice)
		v1.GET("/us/travel", s.travelFeed)
		v1.GET("/reliefweb/za", s.situationReports)
		v1.GET("/gdelt", s.newsEvents)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"origins": s.cfg.AllowedOrigins,
	})
}

func (s *Server) govAdvice(c *gin.Context) {
	start := time.Now()
	items, err := s.govuk.FetchLatest(c.Request.Context())
	s.observe(s.govuk.Name(), start, err)
	s.respond(c, s.govuk.Name(), items, err)
}

func (s *Server) travelFeed(c *gin.Context) {
	start := time.Now()
	items, err := s.state.FetchLatest(c.Request.Context())
	s.observe(s.state.Name(), start, err)
	s.respond(c, s.state.Name(), items, err)
}

func (s *Server) situationReports(c *gin.Context) {
	days := clampIntQuery(c, "days", collector.ReliefWebDefaultDays, collector.ReliefWebMinDays, collector.ReliefWebMaxDays)

	start := time.Now()
	items, err := s.relief.Fetch(c.Request.Context(), days)
	s.observe(s.relief.Name(), start, err)
	s.respond(c, s.relief.Name(), items, err)
}

func (s *Server) newsEvents(c *gin.Context) {
	query := c.Query("q")
	hours := clampIntQuery(c, "hours", collector.GDELTDefaultHours, collector.GDELTMinHours, collector.GDELTMaxHours)

	start := time.Now()
	items, err := s.gdelt.Fetch(c.Request.Context(), query, hours)
	s.observe(s.gdelt.Name(), start, err)
	s.respond(c, s.gdelt.Name(), items, err)
}

// respond 统一收口：上游故障退化为空数组并保持 200，
// 前端并行聚合多个端点时不会被单个坏源拖住
func (s *Server) respond(c *gin.Context, name string, items []collector.Item, err error) {
	if err != nil {
		log.Printf("fetch %s error: %v", name, err)
		items = nil
	}
	c.JSON(http.StatusOK, processor.NormalizeAll(items))
}

func (s *Server) observe(source string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.FetchTotal.WithLabelValues(source, outcome).Inc()
	s.metrics.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// clampIntQuery 解析整数查询参数：非数字回落默认值，数字夹取到 [min,max]
func clampIntQuery(c *gin.Context, key string, def, min, max int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// corsMiddleware 按配置的来源白名单放行跨域请求
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, o := range allowed {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Vary", "Origin")
				c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
				break
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

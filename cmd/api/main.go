package main

import (
	"log"

	"github.com/LJTian/RiskRadar/internal/api"
	"github.com/LJTian/RiskRadar/internal/config"
	"github.com/LJTian/RiskRadar/internal/observability"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	metrics := observability.NewMetrics()

	r := gin.Default()
	apiServer := api.NewServer(cfg, metrics)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

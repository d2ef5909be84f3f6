package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/pragyan-chakra/hazard-watch/internal/config"
	"github.com/pragyan-chakra/hazard-watch/internal/dashboard"
	"github.com/pragyan-chakra/hazard-watch/internal/handler"
	"github.com/pragyan-chakra/hazard-watch/internal/middleware"
	"github.com/pragyan-chakra/hazard-watch/internal/observability"
	"github.com/pragyan-chakra/hazard-watch/internal/queue"
	"github.com/pragyan-chakra/hazard-watch/internal/router"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	st := store.New(clockwork.NewRealClock(), cfg.BcryptCost)
	if cfg.SeedData {
		if err := st.Seed(); err != nil {
			log.Fatalf("seed sample data: %v", err)
		}
	}

	metrics := observability.NewMetrics()

	var events *queue.Publisher
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.AMQPURL)
		go queue.StartConsumer(cfg.AMQPURL)
	}

	// Nil when Redis is unreachable; cache and rate limiting become no-ops.
	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	dashboards := dashboard.New(st)

	router.RegisterSystem(e)
	router.RegisterReports(e, handler.NewReportHandler(st, events, metrics), cache)
	router.RegisterSocial(e, handler.NewSocialHandler(st, metrics), cache)
	router.RegisterUsers(e, handler.NewUserHandler(st))
	router.RegisterDashboards(e, handler.NewDashboardHandler(dashboards))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

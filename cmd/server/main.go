package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/jithinvs/krishi-mitra/internal/ai"
	"github.com/jithinvs/krishi-mitra/internal/config"
	"github.com/jithinvs/krishi-mitra/internal/database"
	"github.com/jithinvs/krishi-mitra/internal/handler"
	"github.com/jithinvs/krishi-mitra/internal/middleware"
	"github.com/jithinvs/krishi-mitra/internal/queue"
	"github.com/jithinvs/krishi-mitra/internal/repository"
	"github.com/jithinvs/krishi-mitra/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	// Redis is best effort: without it the limiter and cache pass through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	farmers := repository.NewFarmerRepo(db)
	officers := repository.NewOfficerRepo(db)
	chats := repository.NewChatRepo(db)
	tasks := repository.NewTaskRepo(db)

	var relay ai.Client
	if cfg.AIAPIKey != "" {
		relay = ai.NewOpenAI(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	} else {
		log.Printf("AI_API_KEY not set; using mock AI relay")
		relay = ai.NewMock()
	}

	authH := handler.NewAuthHandler(cfg, farmers, officers)
	chatH := handler.NewChatHandler(chats, relay)
	taskH := handler.NewTaskHandler(tasks, farmers)

	farmerGuard := middleware.SessionAuth(authH.FarmerSession, func(ctx context.Context, id uint64) (interface{}, error) {
		return farmers.GetByID(ctx, id)
	})
	officerGuard := middleware.SessionAuth(authH.OfficerSession, func(ctx context.Context, id uint64) (interface{}, error) {
		return officers.GetByID(ctx, id)
	})
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, limiter)
	router.RegisterFarmer(e, authH, chatH, taskH, farmerGuard, cache)
	router.RegisterOfficer(e, authH, taskH, officerGuard, cache)

	// Task assignment consumer runs for the life of the process and
	// reconnects on its own.
	go func() {
		if err := queue.StartTaskConsumer(); err != nil {
			log.Printf("task consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

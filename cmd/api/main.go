package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mechhub/portal/internal/config"
	"github.com/mechhub/portal/internal/middleware"
	"github.com/mechhub/portal/internal/routes"
	"github.com/mechhub/portal/internal/session"
)

func main() {
	godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.Load()
	store := newSessionStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, store)

	log.Infof("Portal running on %s (api: %s)", cfg.Addr(), cfg.APIBaseURL)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set, using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	store := session.NewRedisStore(cfg.RedisAddr, cfg.SessionTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	return store
}

package main

import (
	"context"
	"log"

	"github.com/skillmap-ufvjm/skillmap-web/config"
	"github.com/skillmap-ufvjm/skillmap-web/internal/backend"
	"github.com/skillmap-ufvjm/skillmap-web/internal/bootstrap"
	"github.com/skillmap-ufvjm/skillmap-web/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}
	defer rdb.Close()

	apiClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	sessions := session.NewStore(rdb, cfg.Session.TTL)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "skillmap-web",
		Version:       cfg.App.Version,
		Backend:       apiClient,
		Sessions:      sessions,
		Redis:         rdb,
		CookieName:    cfg.Session.CookieName,
		SessionTTL:    cfg.Session.TTL,
		CORSOrigins:   cfg.Server.CORSOrigins,
		TemplatesGlob: "web/templates/*.html",
	})

	log.Printf("skillmap-web %s listening on :%s (backend %s)", cfg.App.Version, cfg.Server.Port, cfg.Backend.BaseURL)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

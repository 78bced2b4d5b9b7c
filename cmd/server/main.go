package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"talent-crm/internal/app"
	"talent-crm/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	a, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("listening app=%s env=%s addr=%s", cfg.App.AppName, cfg.App.Environment, addr)
		serveErr <- a.Fiber.Listen(addr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	if err := cleanup(); err != nil {
		log.Printf("cleanup error: %v", err)
	}
}

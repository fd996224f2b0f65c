package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZidanKhofifi/hutang/internal/config"
	"github.com/ZidanKhofifi/hutang/internal/handlers"
	"github.com/ZidanKhofifi/hutang/internal/server"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("❌ Connection check failed: %v", err)
	}
	fmt.Println("✅ Berhasil terhubung ke MongoDB")

	h := handlers.New(cfg.Mongo, cfg.S3)
	srv := server.NewServer(cfg.Port, h)

	log.Printf("Server berjalan di port %s", cfg.Port)
	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/config"
	"github.com/zaqqye/facetrack_backend/internal/database"
	"github.com/zaqqye/facetrack_backend/internal/recognition"
	"github.com/zaqqye/facetrack_backend/internal/routes"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	opts := attendance.Options{
		Location:  cfg.Location(),
		LateAfter: cfg.LateAfter,
		Threshold: cfg.Threshold(),
	}
	if cfg.LatencyEnabled() {
		opts.Delays = attendance.DefaultDelays()
	}
	svc, err := attendance.NewService(store, opts)
	if err != nil {
		log.Fatalf("attendance service: %v", err)
	}

	var gen recognition.Generator
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set; scans will return the safe default verdict")
	} else {
		g, err := recognition.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("recognition client: %v", err)
		}
		gen = g
	}
	rec := recognition.NewClient(gen, cfg.RecognitionTimeout())

	hub := ws.NewFeedHub()
	go hub.Run(ctx)

	r := gin.Default()
	if err := routes.Register(r, cfg, svc, rec, hub); err != nil {
		log.Fatalf("route setup failed: %v", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	log.Println("listening on", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Println("server exited with error:", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (attendance.Storage, error) {
	if cfg.StorageDriver == "memory" {
		log.Println("using in-memory storage; data is lost on restart")
		return database.NewMemoryStore(), nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return database.NewKVStore(db), nil
}

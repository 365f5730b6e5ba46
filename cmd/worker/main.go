package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"brandsite-backend/internal/config"
	"brandsite-backend/internal/infrastructure/email"
	"brandsite-backend/internal/infrastructure/queue"
	"brandsite-backend/internal/infrastructure/queue/handlers"
	"brandsite-backend/pkg/logger"
)

// The worker drains background jobs off Redis: today that is the
// contact-notification email. It shares the API's configuration.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	emailSvc := email.NewSMTPEmailService(cfg.Email)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeContactEmail, handlers.ContactEmailHandler(emailSvc))

	go func() {
		log.Printf("worker starting (env: %s)", cfg.App.Environment)
		if err := srv.Run(mux); err != nil {
			log.Fatalf("worker failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down worker...")
	srv.Shutdown()
	log.Println("worker exited")
}

package main

import (
	"context"
	"log"
	"os"

	"blogicum-backend/internal/config"
	"blogicum-backend/internal/infrastructure/database"
	"blogicum-backend/internal/infrastructure/email"
	"blogicum-backend/internal/infrastructure/queue"
	userRepo "blogicum-backend/internal/domains/user/repository"
	"blogicum-backend/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	handlers := &taskHandlers{
		users:    userRepo.NewPostgresRepository(db.Pool),
		notifier: email.NewLogNotifier(),
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeCommentNotify, handlers.HandleCommentNotify)

	log.Println("worker starting")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}

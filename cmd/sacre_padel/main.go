package main

import (
	"log"

	"github.com/Roy125512/SacrePadel/internal/app"
	"github.com/Roy125512/SacrePadel/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален, переменные окружения всё равно имеют приоритет
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

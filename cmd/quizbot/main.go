package main

import (
	"log"
	"os"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/values.yaml"
	}

	application, err := app.NewApp(configPath)
	if err != nil {
		log.Fatalf("Не удалось запустить приложение: %v", err)
	}

	if err := application.ListenAndServe(); err != nil {
		log.Fatalf("Приложение завершилось с ошибкой: %v", err)
	}
}

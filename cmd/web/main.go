package main

import (
	"log"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
)

func main() {
	cfg := config.MustLoad()

	if err := app.Run(cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

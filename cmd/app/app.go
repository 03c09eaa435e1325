package main

import (
	"os"

	"github.com/stylesync/go-backend/internal/app"
	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Em desenvolvimento as variáveis podem vir de um .env local.
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}

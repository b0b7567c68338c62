package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/prompt"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(config.NewLogger(cfg, os.Stderr))
	cfg.LogWarnings(slog.Default())
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := prompt.Run(os.Stdin, os.Stdout, generator.Default()); err != nil {
		os.Exit(1)
	}
}

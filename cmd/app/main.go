package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/andreyxaxa/Image-Transformer/config"
	"github.com/andreyxaxa/Image-Transformer/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file to load before reading the environment")
	flag.Parse()

	// Config
	if _, err := os.Stat(*envFile); err == nil {
		err = godotenv.Load(*envFile)
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("config error: %s", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.Run(cfg)
}

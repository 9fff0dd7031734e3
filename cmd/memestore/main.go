package main

import (
	"log"

	"github.com/ibeloyar/memestore/internal/app"
	"github.com/ibeloyar/memestore/internal/config"
	"github.com/ibeloyar/memestore/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}

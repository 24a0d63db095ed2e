package main

import (
	"context"
	"log"

	"github.com/mjacquet/eventdesk/internal/client/cli"
	"github.com/mjacquet/eventdesk/internal/client/config"
	"github.com/mjacquet/eventdesk/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.New(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/askfm/internal/cli"
	"github.com/dmitrijs2005/askfm/internal/config"
	"github.com/dmitrijs2005/askfm/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.New(cfg.LogLevel).With("session", uuid.NewString())

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}

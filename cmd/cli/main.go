package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/client/cli"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}

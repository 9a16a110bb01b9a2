package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/ocppcodec/internal/config"
	logs "github.com/danmuck/ocppcodec/internal/logging"
	"github.com/danmuck/ocppcodec/internal/observability"
	"github.com/danmuck/ocppcodec/internal/server"
	"github.com/gin-gonic/gin"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	path := fs.String("config", "", "config.toml path; built-in defaults when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := observability.InitLogger("ocppctl")
	if lvl, ok := logs.ParseLevel(cfg.LogLevel); ok {
		logs.SetLevel(lvl)
		logger = logger.Level(lvl)
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg, logger).Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/campus-card-core/config"
	"github.com/jeffleon2/campus-card-core/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	a := &app.App{}
	a.Initialize(cfg)
	defer a.Shutdown()

	a.Run(ctx)
}

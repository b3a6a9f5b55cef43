package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log-analyzer/internal/app"
	"log-analyzer/internal/shared/configs"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "./configs/configs.yml", "path to the YAML configuration file")
	pflag.Parse()

	os.Exit(run(*configPath))
}

func run(configPath string) int {
	// Load configuration
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The run logs its own outcome; only the exit status is decided here
	_, err = application.Run(ctx)
	return app.ExitCode(err)
}

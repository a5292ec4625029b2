package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/service/game"
	"github.com/iamasit07/connect-four/internal/transport/console"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.LoadConfig()

	// logs share the terminal with the board, keep them off unless asked for
	if cfg.Debug {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	if envErr != nil && !os.IsNotExist(envErr) {
		log.Printf("[CONFIG] Error loading .env file: %v", envErr)
	}

	if err := cfg.Validate(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("[CONFIG] %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := console.NewConsole(os.Stdin, os.Stdout, cfg.ShowReasons)
	svc := game.NewService(term, term, game.OptionsFromConfig(cfg))

	log.Printf("[SESSION] Starting (input mode: %s)", cfg.InputMode)

	err := svc.Run(ctx)
	switch {
	case err == nil, errors.Is(err, game.ErrInputClosed):
		log.Printf("[SESSION] Exited after %d matches", svc.Score().Played())
	case errors.Is(err, context.Canceled):
		log.Println("[SESSION] Interrupted")
	default:
		log.SetOutput(os.Stderr)
		log.Fatalf("[SESSION] %v", err)
	}
}

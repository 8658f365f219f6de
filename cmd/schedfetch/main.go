package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/campus-tools/schedfetch/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	// Graceful shutdown on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Interrupt received, shutting down...")
		os.Exit(0)
	}()

	cli.Execute()
}

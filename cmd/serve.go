package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df07/go-live-raytracer/web/server"
	"github.com/urfave/cli"
)

const shutdownTimeout = 5 * time.Second

// Serve the live web view until interrupted.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)
	logHostInfo()

	srv := server.NewServer(server.Config{
		Port:       ctx.Int("port"),
		StaticDir:  ctx.String("static"),
		ScenesDir:  ctx.String("scenes-dir"),
		NumWorkers: workerCount(ctx.Int("workers")),
	}, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Noticef("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

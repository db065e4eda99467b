// Command seodemo serves the static demo page on a local port.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/seo-platform/seo-sdk-go/internal/demoserver"
)

func main() {
	host := flag.String("host", "localhost", "host to bind to")
	port := flag.Int("port", 8000, "preferred port; the next free one is used if taken")
	dir := flag.String("dir", ".", "directory containing the demo files")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	server := demoserver.New(demoserver.Config{
		Host:   *host,
		Port:   *port,
		Dir:    *dir,
		Logger: logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("demo server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}

func newLogger(debug bool) *zap.Logger {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	return logger
}

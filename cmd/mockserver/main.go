// Command mockserver serves an in-memory copy of the ESS backend for local
// development and demos of the CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/hros-ess/internal/logging"
	"github.com/dmitrijs2005/hros-ess/internal/mockapi"
)

func main() {

	addr := flag.String("a", "127.0.0.1:8080", "listen address")
	level := flag.String("l", "info", "log level")
	flag.Parse()

	logger, err := logging.New(os.Stdout, logging.FormatJSON, *level)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mockapi.New(mockapi.WithLogger(logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "shutdown failed", "error", err)
		}
	}()

	logger.Info(ctx, "mock ESS backend listening",
		"addr", *addr,
		"api_url", "http://"+*addr+mockapi.APIPrefix,
		"file_url", "http://"+*addr+mockapi.FilePrefix,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

// cmd/server/main.go
// Entry point for the sheet data API server. It wires configuration, logging, the Google Sheets
// client and the HTTP app together, then serves until SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/trentd187/sheet-data-api/internal/config"
	"github.com/trentd187/sheet-data-api/internal/server"
	"github.com/trentd187/sheet-data-api/internal/spreadsheet"
)

// shutdownTimeout bounds how long in-flight requests get to finish after a stop signal.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration once; everything downstream receives cfg explicitly.
	cfg, err := config.Load()
	if err != nil {
		log.WithField("error", err).Fatal("invalid configuration")
	}

	log.SetLevel(cfg.LogLevel)
	if !cfg.IsDevelopment() {
		log.SetFormatter(&log.JSONFormatter{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sheetsClient, err := spreadsheet.New(ctx, cfg.Credentials)
	if err != nil {
		log.WithField("error", err).Fatal("failed to create Google Sheets client")
	}

	app := server.New(cfg, sheetsClient)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.WithFields(log.Fields{
			"port":        cfg.Port,
			"spreadsheet": cfg.SpreadsheetID,
			"range":       cfg.Range,
		}).Info("starting server")

		// ":" + cfg.Port listens on all network interfaces.
		return app.Listen(":" + cfg.Port)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.WithField("error", err).Fatal("server stopped with error")
	}
}

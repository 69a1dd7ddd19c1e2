package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	routes "github.com/just-nibble/repo-explorer/internal/adapters/http"
	"github.com/just-nibble/repo-explorer/internal/core/service"
	"github.com/just-nibble/repo-explorer/pkg/config"
	"github.com/just-nibble/repo-explorer/pkg/github"
	"github.com/maxbolgarin/logze/v2"
)

var configPath = kingpin.Flag("config", "path to config file").Short('c').String()

func main() {
	kingpin.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg.Log.Init()
	log := logze.With("component", "server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the GitHub client
	gc := github.NewGitHubClient(cfg.GitHub.BaseURL, nil)
	explorer := service.NewExplorerService(gc)

	// Set up HTTP routes
	router := routes.NewRouter(explorer)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server is running", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

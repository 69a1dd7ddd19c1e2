package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/just-nibble/repo-explorer/internal/core/service"
	"github.com/just-nibble/repo-explorer/internal/formatter"
	"github.com/just-nibble/repo-explorer/pkg/config"
	"github.com/just-nibble/repo-explorer/pkg/github"
	"github.com/maxbolgarin/logze/v2"
)

const language = "rust"

func main() {
	os.Exit(execute(context.Background(), os.Stdout, os.Stderr))
}

// execute runs the explorer and reports any failure on stderr.
// The exit status is 0 either way.
func execute(ctx context.Context, stdout, stderr io.Writer) int {
	if err := run(ctx, stdout); err != nil {
		logze.With("component", "explorer").Error("failed to run explorer", "error", err)
		writeErrorChain(stderr, err)
	}
	return 0
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	cfg.Log.Init()

	// Initialize the GitHub client
	gc := github.NewGitHubClient(cfg.GitHub.BaseURL, nil)
	explorer := service.NewExplorerService(gc)

	repos, err := explorer.TopRepositories(ctx, language)
	if err != nil {
		return fmt.Errorf("failed to list %s repositories: %w", language, err)
	}

	if err := formatter.PrintRepos(stdout, repos); err != nil {
		return err
	}
	return formatter.RenderSummary(stdout, service.Summarize(language, repos))
}

func writeErrorChain(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(w, "caused by: %v\n", cause)
	}
}

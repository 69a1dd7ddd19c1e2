package handlers

import (
	"context"
	"net/http"

	"github.com/just-nibble/repo-explorer/internal/adapters/validators"
	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/just-nibble/repo-explorer/internal/core/service"
	"github.com/just-nibble/repo-explorer/pkg/response"
)

// Explorer is what the handlers need from the explorer service.
type Explorer interface {
	TopRepositories(ctx context.Context, language string) ([]entities.Repo, error)
	RecentCommits(ctx context.Context, repo validators.Repo) ([]entities.Commit, error)
	Forks(ctx context.Context, repo validators.Repo) ([]entities.Repo, error)
	CommitFiles(ctx context.Context, repo validators.Repo, sha validators.SHA) (entities.CommitDetail, error)
}

type RepositoryHandler struct {
	explorer Explorer
}

func NewRepositoryHandler(explorer Explorer) *RepositoryHandler {
	return &RepositoryHandler{explorer: explorer}
}

// TopRepositories godoc
// @Summary     Top repositories for a language
// @Produce     json
// @Param       language query string true "language, e.g. rust"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope
// @Failure     502 {object} response.Envelope
// @Router      /repositories [get]
func (h *RepositoryHandler) TopRepositories(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "Language is required")
		return
	}

	repos, err := h.explorer.TopRepositories(r.Context(), language)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, repos)
}

// Summary godoc
// @Summary     Totals over the top repositories for a language
// @Produce     json
// @Param       language query string true "language, e.g. rust"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope
// @Failure     502 {object} response.Envelope
// @Router      /repositories/summary [get]
func (h *RepositoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "Language is required")
		return
	}

	repos, err := h.explorer.TopRepositories(r.Context(), language)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, service.Summarize(language, repos))
}

// Forks godoc
// @Summary     Newest forks of a repository
// @Produce     json
// @Param       repo query string true "owner/name"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope
// @Failure     502 {object} response.Envelope
// @Router      /forks [get]
func (h *RepositoryHandler) Forks(w http.ResponseWriter, r *http.Request) {
	repo, ok := repoFromQuery(w, r)
	if !ok {
		return
	}

	forks, err := h.explorer.Forks(r.Context(), repo)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, forks)
}

package handlers

import (
	"net/http"

	"github.com/just-nibble/repo-explorer/internal/adapters/validators"
	"github.com/just-nibble/repo-explorer/pkg/response"
)

type CommitHandler struct {
	explorer Explorer
}

func NewCommitHandler(explorer Explorer) *CommitHandler {
	return &CommitHandler{explorer: explorer}
}

// GetCommitsByRepo godoc
// @Summary     Recent commits of a repository
// @Produce     json
// @Param       repo query string true "owner/name"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope
// @Failure     502 {object} response.Envelope
// @Router      /commits [get]
func (h *CommitHandler) GetCommitsByRepo(w http.ResponseWriter, r *http.Request) {
	repo, ok := repoFromQuery(w, r)
	if !ok {
		return
	}

	commits, err := h.explorer.RecentCommits(r.Context(), repo)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, commits)
}

// GetCommit godoc
// @Summary     One commit of a repository with its changed files
// @Produce     json
// @Param       sha  path  string true "commit sha"
// @Param       repo query string true "owner/name"
// @Success     200 {object} response.Envelope
// @Failure     400 {object} response.Envelope
// @Failure     502 {object} response.Envelope
// @Router      /commits/{sha} [get]
func (h *CommitHandler) GetCommit(w http.ResponseWriter, r *http.Request) {
	repo, ok := repoFromQuery(w, r)
	if !ok {
		return
	}

	detail, err := h.explorer.CommitFiles(r.Context(), repo, validators.SHA(r.PathValue("sha")))
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, detail)
}

// repoFromQuery reads and validates the repo query parameter, writing a 400 when it is bad.
func repoFromQuery(w http.ResponseWriter, r *http.Request) (validators.Repo, bool) {
	repo := validators.Repo(r.URL.Query().Get("repo"))
	if err := repo.Validate(); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return repo, true
}

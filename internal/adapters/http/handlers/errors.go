package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/just-nibble/repo-explorer/internal/adapters/validators"
	"github.com/just-nibble/repo-explorer/pkg/github"
	"github.com/just-nibble/repo-explorer/pkg/response"
)

// writeError maps explorer errors to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var (
		apiErr    *github.APIRequestError
		malformed *github.MalformedResponseError
	)

	switch {
	case errors.Is(err, validators.ErrInvalidRepo), errors.Is(err, validators.ErrEmptyLanguage),
		errors.Is(err, validators.ErrInvalidSHA):
		response.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &apiErr):
		response.ErrorResponse(w, http.StatusBadGateway, fmt.Sprintf("upstream returned status %d", apiErr.StatusCode))
	case errors.As(err, &malformed):
		response.ErrorResponse(w, http.StatusBadGateway, malformed.Error())
	default:
		response.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

package validators

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRepo   = errors.New("invalid repo, expected 'owner/name'")
	ErrEmptyLanguage = errors.New("language is required")
	ErrInvalidSHA    = errors.New("invalid commit sha")
)

// Repo is a repository reference in "owner/name" form.
type Repo string

func NewRepo(owner, name string) Repo {
	return Repo(owner + "/" + name)
}

func (r Repo) Validate() error {
	repoSlice := strings.Split(string(r), "/")
	if len(repoSlice) != 2 || repoSlice[0] == "" || repoSlice[1] == "" {
		return ErrInvalidRepo
	}

	return nil
}

// Parts splits a valid Repo into owner and name.
func (r Repo) Parts() (owner, name string) {
	owner, name, _ = strings.Cut(string(r), "/")
	return owner, name
}

// Language is a search language; it is used verbatim in the query string.
type Language string

func (l Language) Validate() error {
	if strings.TrimSpace(string(l)) == "" {
		return ErrEmptyLanguage
	}
	return nil
}

// SHA is a commit identifier; a single path segment.
type SHA string

func (s SHA) Validate() error {
	if s == "" || strings.ContainsAny(string(s), "/?# ") {
		return ErrInvalidSHA
	}
	return nil
}

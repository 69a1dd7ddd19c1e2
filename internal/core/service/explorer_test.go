package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/just-nibble/repo-explorer/internal/adapters/validators"
	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/just-nibble/repo-explorer/internal/core/service/mocks"
	"github.com/just-nibble/repo-explorer/pkg/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExplorerService_TopRepositories_Success(t *testing.T) {
	// Arrange
	gh := new(mocks.GitHubAPI)
	repos := []entities.Repo{
		entities.NewRepo("repoA", entities.PlaceholderOwner, "u1", 5, 100, "Rust", 3),
		entities.NewRepo("repoB", entities.PlaceholderOwner, "u2", 1, 50, "Rust", 0),
	}
	gh.On("GetRepos", mock.Anything, "rust").Return(repos, nil)

	svc := NewExplorerService(gh)

	// Act
	got, err := svc.TopRepositories(context.TODO(), "rust")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, repos, got)
	gh.AssertExpectations(t)
}

func TestExplorerService_TopRepositories_EmptyLanguage(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	svc := NewExplorerService(gh)

	got, err := svc.TopRepositories(context.TODO(), "")

	assert.ErrorIs(t, err, validators.ErrEmptyLanguage)
	assert.Nil(t, got)
	gh.AssertNotCalled(t, "GetRepos", mock.Anything, mock.Anything)
}

func TestExplorerService_TopRepositories_PropagatesAPIError(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	apiErr := &github.APIRequestError{StatusCode: http.StatusForbidden, Body: "rate limited"}
	gh.On("GetRepos", mock.Anything, "rust").Return(nil, apiErr)

	svc := NewExplorerService(gh)

	got, err := svc.TopRepositories(context.TODO(), "rust")

	assert.Nil(t, got)
	var target *github.APIRequestError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, http.StatusForbidden, target.StatusCode)
	gh.AssertExpectations(t)
}

func TestExplorerService_RecentCommits_Success(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	commits := []entities.Commit{{SHA: "abc123"}, {SHA: "def456"}}
	gh.On("GetCommits", mock.Anything, "octocat", "hello-world").Return(commits, nil)

	svc := NewExplorerService(gh)

	got, err := svc.RecentCommits(context.TODO(), validators.NewRepo("octocat", "hello-world"))

	require.NoError(t, err)
	assert.Equal(t, commits, got)
	gh.AssertExpectations(t)
}

func TestExplorerService_RecentCommits_InvalidRepo(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	svc := NewExplorerService(gh)

	_, err := svc.RecentCommits(context.TODO(), validators.Repo("octocat"))

	assert.ErrorIs(t, err, validators.ErrInvalidRepo)
	gh.AssertNotCalled(t, "GetCommits", mock.Anything, mock.Anything, mock.Anything)
}

func TestExplorerService_RecentCommits_DoesNotTouchCommitCount(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	gh.On("GetCommits", mock.Anything, "octocat", "hello-world").Return([]entities.Commit{{SHA: "abc123"}}, nil)

	svc := NewExplorerService(gh)
	repo := entities.NewRepo("hello-world", "octocat", "u", 0, 0, "Go", 0)

	commits, err := svc.RecentCommits(context.TODO(), validators.NewRepo("octocat", "hello-world"))
	require.NoError(t, err)

	repo.SetRecentCommits(commits)
	assert.Len(t, repo.RecentCommits, 1)
	assert.Equal(t, 0, repo.CommitCount)
}

func TestExplorerService_Forks_Success(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	forks := []entities.Repo{entities.NewRepo("hello-world", "alice", "", 0, 0, "", 0)}
	gh.On("GetForks", mock.Anything, "octocat", "hello-world").Return(forks, nil)

	svc := NewExplorerService(gh)

	got, err := svc.Forks(context.TODO(), "octocat/hello-world")

	require.NoError(t, err)
	assert.Equal(t, forks, got)
	gh.AssertExpectations(t)
}

func TestExplorerService_CommitFiles_Success(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	detail := entities.CommitDetail{SHA: "abc123", Files: []string{"src/main.rs", "Cargo.toml"}}
	gh.On("GetCommit", mock.Anything, "octocat", "hello-world", "abc123").Return(detail, nil)

	svc := NewExplorerService(gh)

	got, err := svc.CommitFiles(context.TODO(), "octocat/hello-world", "abc123")

	require.NoError(t, err)
	assert.Equal(t, detail, got)
	gh.AssertExpectations(t)
}

func TestExplorerService_CommitFiles_InvalidInput(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	svc := NewExplorerService(gh)

	_, err := svc.CommitFiles(context.TODO(), "octocat", "abc123")
	assert.ErrorIs(t, err, validators.ErrInvalidRepo)

	_, err = svc.CommitFiles(context.TODO(), "octocat/hello-world", "")
	assert.ErrorIs(t, err, validators.ErrInvalidSHA)

	gh.AssertNotCalled(t, "GetCommit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExplorerService_CommitFiles_PropagatesAPIError(t *testing.T) {
	gh := new(mocks.GitHubAPI)
	gh.On("GetCommit", mock.Anything, "octocat", "hello-world", "abc123").
		Return(nil, &github.APIRequestError{StatusCode: http.StatusUnprocessableEntity})

	svc := NewExplorerService(gh)

	_, err := svc.CommitFiles(context.TODO(), "octocat/hello-world", "abc123")

	var target *github.APIRequestError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, http.StatusUnprocessableEntity, target.StatusCode)
}

func TestSummarize(t *testing.T) {
	a := entities.NewRepo("repoA", entities.PlaceholderOwner, "u1", 5, 100, "Rust", 3)
	b := entities.NewRepo("repoB", entities.PlaceholderOwner, "u2", 1, 50, "Rust", 0)
	b.SetCommitCount(7)

	sum := Summarize("rust", []entities.Repo{a, b})

	assert.Equal(t, Summary{
		Language:     "rust",
		Repositories: 2,
		Stars:        150,
		Forks:        6,
		OpenIssues:   3,
		Commits:      7,
	}, sum)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{Language: "go"}, Summarize("go", nil))
}

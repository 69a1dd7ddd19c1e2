package mocks

import (
	"context"

	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/stretchr/testify/mock"
)

// GitHubAPI mock
type GitHubAPI struct {
	mock.Mock
}

func (m *GitHubAPI) GetRepos(ctx context.Context, language string) ([]entities.Repo, error) {
	args := m.Called(ctx, language)
	repos, _ := args.Get(0).([]entities.Repo)
	return repos, args.Error(1)
}

func (m *GitHubAPI) GetCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error) {
	args := m.Called(ctx, owner, repo)
	commits, _ := args.Get(0).([]entities.Commit)
	return commits, args.Error(1)
}

func (m *GitHubAPI) GetForks(ctx context.Context, owner, repo string) ([]entities.Repo, error) {
	args := m.Called(ctx, owner, repo)
	forks, _ := args.Get(0).([]entities.Repo)
	return forks, args.Error(1)
}

func (m *GitHubAPI) GetCommit(ctx context.Context, owner, repo, sha string) (entities.CommitDetail, error) {
	args := m.Called(ctx, owner, repo, sha)
	detail, _ := args.Get(0).(entities.CommitDetail)
	return detail, args.Error(1)
}

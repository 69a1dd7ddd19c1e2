package service

import (
	"context"

	"github.com/just-nibble/repo-explorer/internal/adapters/validators"
	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/maxbolgarin/logze/v2"
)

// GitHubAPI is the part of the GitHub client the explorer needs.
type GitHubAPI interface {
	GetRepos(ctx context.Context, language string) ([]entities.Repo, error)
	GetCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error)
	GetForks(ctx context.Context, owner, repo string) ([]entities.Repo, error)
	GetCommit(ctx context.Context, owner, repo, sha string) (entities.CommitDetail, error)
}

// ExplorerService runs one upstream request per call and returns records unchanged.
type ExplorerService struct {
	gh  GitHubAPI
	log logze.Logger
}

func NewExplorerService(gh GitHubAPI) *ExplorerService {
	return &ExplorerService{
		gh:  gh,
		log: logze.With("component", "explorer"),
	}
}

// TopRepositories returns the most starred repositories for language, best first.
func (s *ExplorerService) TopRepositories(ctx context.Context, language string) ([]entities.Repo, error) {
	lang := validators.Language(language)
	if err := lang.Validate(); err != nil {
		return nil, err
	}

	repos, err := s.gh.GetRepos(ctx, language)
	if err != nil {
		s.log.Error("failed to fetch top repositories", "language", language, "error", err)
		return nil, err
	}

	s.log.Info("fetched top repositories", "language", language, "count", len(repos))
	return repos, nil
}

// RecentCommits returns the latest commits of repo. The result is not linked
// to any Repo record; callers that want that call SetRecentCommits themselves.
func (s *ExplorerService) RecentCommits(ctx context.Context, repo validators.Repo) ([]entities.Commit, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	owner, name := repo.Parts()

	commits, err := s.gh.GetCommits(ctx, owner, name)
	if err != nil {
		s.log.Error("failed to fetch commits", "repo", repo, "error", err)
		return nil, err
	}

	s.log.Info("fetched commits", "repo", repo, "count", len(commits))
	return commits, nil
}

// Forks returns the newest forks of repo.
func (s *ExplorerService) Forks(ctx context.Context, repo validators.Repo) ([]entities.Repo, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	owner, name := repo.Parts()

	forks, err := s.gh.GetForks(ctx, owner, name)
	if err != nil {
		s.log.Error("failed to fetch forks", "repo", repo, "error", err)
		return nil, err
	}

	s.log.Info("fetched forks", "repo", repo, "count", len(forks))
	return forks, nil
}

// CommitFiles returns one commit of repo with the files it changed.
func (s *ExplorerService) CommitFiles(ctx context.Context, repo validators.Repo, sha validators.SHA) (entities.CommitDetail, error) {
	if err := repo.Validate(); err != nil {
		return entities.CommitDetail{}, err
	}
	if err := sha.Validate(); err != nil {
		return entities.CommitDetail{}, err
	}
	owner, name := repo.Parts()

	detail, err := s.gh.GetCommit(ctx, owner, name, string(sha))
	if err != nil {
		s.log.Error("failed to fetch commit details", "repo", repo, "sha", sha, "error", err)
		return entities.CommitDetail{}, err
	}

	s.log.Debug("fetched commit details", "repo", repo, "sha", sha, "files", len(detail.Files))
	return detail, nil
}

// Summary holds totals over a list of repositories.
type Summary struct {
	Language     string `json:"language"`
	Repositories int    `json:"repositories"`
	Stars        int    `json:"stars"`
	Forks        int    `json:"forks"`
	OpenIssues   int    `json:"open_issues"`
	Commits      int    `json:"commits"`
}

// Summarize adds up the counters of repos. Commits is the sum of CommitCount,
// which stays 0 unless a caller set it.
func Summarize(language string, repos []entities.Repo) Summary {
	sum := Summary{Language: language, Repositories: len(repos)}
	for _, r := range repos {
		sum.Stars += r.StargazersCount
		sum.Forks += r.ForksCount
		sum.OpenIssues += r.OpenIssuesCount
		sum.Commits += r.CommitCount
	}
	return sum
}

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/maxbolgarin/logze/v2"
)

const (
	DefaultBaseURL = "https://api.github.com"

	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"

	topReposPerPage = 10
	commitsPerPage  = 50
	forksPerPage    = 20
)

// GitHubClient is a simple client for interacting with GitHub's REST API.
// It sends no credentials and makes exactly one request per call.
type GitHubClient struct {
	HTTPClient *http.Client
	BaseURL    string

	log logze.Logger
}

// NewGitHubClient creates a client for baseURL using httpClient.
// An empty baseURL means api.github.com; a nil httpClient gets a plain
// http.Client with transport defaults and no timeout.
func NewGitHubClient(baseURL string, httpClient *http.Client) *GitHubClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GitHubClient{
		HTTPClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		log:        logze.With("component", "github_client"),
	}
}

// GetRepos fetches the ten most starred repositories written in language.
// The language is put into the query string as is.
func (c *GitHubClient) GetRepos(ctx context.Context, language string) ([]entities.Repo, error) {
	url := fmt.Sprintf("%s/search/repositories?q=language:%s&sort=stars&order=desc&per_page=%d",
		c.BaseURL, language, topReposPerPage)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories: %w", err)
	}

	envelope, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	rawItems, err := envelope.raw("items")
	if err != nil {
		return nil, malformedAt(-1, err)
	}
	items, err := decodeArray(rawItems, "items")
	if err != nil {
		return nil, err
	}

	repos := make([]entities.Repo, 0, min(len(items), topReposPerPage))
	for i, item := range items[:min(len(items), topReposPerPage)] {
		repo, err := parseSearchItem(item)
		if err != nil {
			return nil, malformedAt(i, err)
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

// GetCommits fetches the 50 most recent commits of owner/repo.
// Owner and repo are not escaped.
func (c *GitHubClient) GetCommits(ctx context.Context, owner, repo string) ([]entities.Commit, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits?per_page=%d", c.BaseURL, owner, repo, commitsPerPage)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	items, err := decodeArray(body, "")
	if err != nil {
		return nil, err
	}

	commits := make([]entities.Commit, 0, min(len(items), commitsPerPage))
	for i, item := range items[:min(len(items), commitsPerPage)] {
		sha, err := item.str("sha")
		if err != nil {
			return nil, malformedAt(i, err)
		}
		commits = append(commits, entities.Commit{SHA: sha})
	}

	return commits, nil
}

// GetForks fetches the 20 newest forks of owner/repo. Only name and
// owner login are filled in on the returned records.
func (c *GitHubClient) GetForks(ctx context.Context, owner, repo string) ([]entities.Repo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/forks?per_page=%d&sort=newest", c.BaseURL, owner, repo, forksPerPage)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forks: %w", err)
	}

	items, err := decodeArray(body, "")
	if err != nil {
		return nil, err
	}

	forks := make([]entities.Repo, 0, min(len(items), forksPerPage))
	for i, item := range items[:min(len(items), forksPerPage)] {
		fork, err := parseFork(item)
		if err != nil {
			return nil, malformedAt(i, err)
		}
		forks = append(forks, fork)
	}

	return forks, nil
}

// GetCommit fetches one commit of owner/repo and the filenames it touched.
// Every entry of "files" must carry a filename.
func (c *GitHubClient) GetCommit(ctx context.Context, owner, repo, sha string) (entities.CommitDetail, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.BaseURL, owner, repo, sha)

	body, err := c.get(ctx, url)
	if err != nil {
		return entities.CommitDetail{}, fmt.Errorf("failed to fetch commit details: %w", err)
	}

	commit, err := decodeObject(body)
	if err != nil {
		return entities.CommitDetail{}, err
	}
	gotSHA, err := commit.str("sha")
	if err != nil {
		return entities.CommitDetail{}, malformedAt(-1, err)
	}
	rawFiles, err := commit.raw("files")
	if err != nil {
		return entities.CommitDetail{}, malformedAt(-1, err)
	}
	files, err := decodeArray(rawFiles, "files")
	if err != nil {
		return entities.CommitDetail{}, err
	}

	detail := entities.CommitDetail{SHA: gotSHA, Files: make([]string, 0, len(files))}
	for i, f := range files {
		name, err := f.str("filename")
		if err != nil {
			return entities.CommitDetail{}, malformedAt(i, nestedField("files", err))
		}
		detail.Files = append(detail.Files, name)
	}

	return detail, nil
}

// get performs a single GET and returns the body of a 200 response.
func (c *GitHubClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug("github request", "url", url, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return nil, &APIRequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func parseSearchItem(item object) (entities.Repo, error) {
	name, err := item.str("name")
	if err != nil {
		return entities.Repo{}, err
	}
	htmlURL, err := item.str("html_url")
	if err != nil {
		return entities.Repo{}, err
	}
	forks, err := item.count("forks_count")
	if err != nil {
		return entities.Repo{}, err
	}
	stars, err := item.count("stargazers_count")
	if err != nil {
		return entities.Repo{}, err
	}
	language, err := item.str("language")
	if err != nil {
		return entities.Repo{}, err
	}
	openIssues, err := item.count("open_issues_count")
	if err != nil {
		return entities.Repo{}, err
	}

	return entities.NewRepo(name, entities.PlaceholderOwner, htmlURL, forks, stars, language, openIssues), nil
}

func parseFork(item object) (entities.Repo, error) {
	name, err := item.str("name")
	if err != nil {
		return entities.Repo{}, err
	}
	owner, err := item.nested("owner")
	if err != nil {
		return entities.Repo{}, err
	}
	login, err := owner.str("login")
	if err != nil {
		return entities.Repo{}, nestedField("owner", err)
	}

	return entities.NewRepo(name, login, "", 0, 0, "", 0), nil
}

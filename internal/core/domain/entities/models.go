package entities

// PlaceholderOwner is stored as OwnerLogin for search results; owner.login is not read from the search response.
const PlaceholderOwner = "temp"

// Repo represents a GitHub repository
type Repo struct {
	Name            string   `json:"name"`
	OwnerLogin      string   `json:"owner_login"`
	HTMLURL         string   `json:"html_url"`
	ForksCount      int      `json:"forks_count"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	OpenIssuesCount int      `json:"open_issues_count"`
	CommitCount     int      `json:"commit_count"`
	Forks           []Repo   `json:"forks"`
	RecentCommits   []Commit `json:"recent_commits"`
	Issues          []Issue  `json:"issues"`
}

// NewRepo builds a Repo with empty fork, commit and issue lists and a zero commit count.
func NewRepo(name, ownerLogin, htmlURL string, forksCount, stargazersCount int, language string, openIssuesCount int) Repo {
	return Repo{
		Name:            name,
		OwnerLogin:      ownerLogin,
		HTMLURL:         htmlURL,
		ForksCount:      forksCount,
		StargazersCount: stargazersCount,
		Language:        language,
		OpenIssuesCount: openIssuesCount,
		Forks:           []Repo{},
		RecentCommits:   []Commit{},
		Issues:          []Issue{},
	}
}

// SetCommitCount records a commit count. It does not touch RecentCommits.
func (r *Repo) SetCommitCount(n int) { r.CommitCount = n }

// SetRecentCommits attaches commits. It does not touch CommitCount.
func (r *Repo) SetRecentCommits(commits []Commit) { r.RecentCommits = orEmpty(commits) }

func (r *Repo) SetForks(forks []Repo) { r.Forks = orEmpty(forks) }

func (r *Repo) SetIssues(issues []Issue) { r.Issues = orEmpty(issues) }

// Commit represents a commit in a repository
type Commit struct {
	SHA string `json:"sha"`
}

// CommitDetail is a single commit together with the paths it changed, in upstream order.
type CommitDetail struct {
	SHA   string   `json:"sha"`
	Files []string `json:"files"`
}

// Issue represents an issue of a repository. Nothing fetches issues yet.
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

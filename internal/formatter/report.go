package formatter

import (
	"fmt"
	"io"

	"github.com/just-nibble/repo-explorer/internal/core/domain/entities"
	"github.com/just-nibble/repo-explorer/internal/core/service"
	"github.com/olekukonko/tablewriter"
)

// PrintRepos writes one block per repository, in the given order.
func PrintRepos(w io.Writer, repos []entities.Repo) error {
	for _, repo := range repos {
		_, err := fmt.Fprintf(w,
			"Name: %s\nOwner: %s\nURL: %s\nForks: %d\nStars: %d\nLanguage: %s\nOpen Issues: %d\nCommits: %d\n----\n",
			repo.Name, repo.OwnerLogin, repo.HTMLURL, repo.ForksCount, repo.StargazersCount,
			repo.Language, repo.OpenIssuesCount, repo.CommitCount)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary displays the totals for one language as a table
func RenderSummary(w io.Writer, sum service.Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("LANGUAGE", "REPOS", "STARS", "FORKS", "OPEN ISSUES", "COMMITS")

	if err := table.Append(sum.Language, sum.Repositories, sum.Stars, sum.Forks, sum.OpenIssues, sum.Commits); err != nil {
		return err
	}
	return table.Render()
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRepoStartsWithEmptyLists(t *testing.T) {
	r := NewRepo("repoA", PlaceholderOwner, "u1", 5, 100, "Rust", 3)

	assert.Equal(t, "repoA", r.Name)
	assert.Equal(t, "temp", r.OwnerLogin)
	assert.Equal(t, 0, r.CommitCount)
	assert.NotNil(t, r.Forks)
	assert.NotNil(t, r.RecentCommits)
	assert.NotNil(t, r.Issues)
	assert.Empty(t, r.Forks)
	assert.Empty(t, r.RecentCommits)
	assert.Empty(t, r.Issues)
}

func TestCommitCountAndRecentCommitsAreIndependent(t *testing.T) {
	r := NewRepo("repoA", PlaceholderOwner, "u1", 0, 0, "Rust", 0)

	r.SetRecentCommits([]Commit{{SHA: "abc123"}, {SHA: "def456"}})
	assert.Equal(t, 0, r.CommitCount)

	r.SetCommitCount(42)
	assert.Len(t, r.RecentCommits, 2)
	assert.Equal(t, 42, r.CommitCount)
}

func TestSettersNeverStoreNil(t *testing.T) {
	r := NewRepo("repoA", PlaceholderOwner, "u1", 0, 0, "Rust", 0)

	r.SetForks(nil)
	r.SetRecentCommits(nil)
	r.SetIssues(nil)

	assert.NotNil(t, r.Forks)
	assert.NotNil(t, r.RecentCommits)
	assert.NotNil(t, r.Issues)
}

// Package domain contains the core data structures and domain logic for the application.
package domain

// ContributionSummary holds the aggregate activity counts for one day window.
// It is the core domain entity of this application.
type ContributionSummary struct {
	Reviews      int
	Issues       int
	Commits      int
	PullRequests int
	FilesChanged int
	Additions    int
	Deletions    int
}

// PullRequestRecord is one pull request touched within the day window.
type PullRequestRecord struct {
	Repository string
	Number     int
	Additions  int
	Deletions  int
	Files      int
	URL        string
}

// Contributions is the raw day activity as returned by the API gateway.
// Records preserve the API response order.
type Contributions struct {
	Reviews      int
	Issues       int
	Commits      int
	PullRequests int
	Records      []PullRequestRecord
}

// Report pairs the aggregate summary with the per-pull-request breakdown
// for a single login and day window.
type Report struct {
	Login        string
	Window       Window
	Summary      ContributionSummary
	PullRequests []PullRequestRecord
}

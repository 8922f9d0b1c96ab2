// Package gateway provides a gateway to the GitHub GraphQL API,
// abstracting away the underlying client.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/preocts/daystats/internal/domain"
)

// DefaultEndpoint is the public GitHub GraphQL API endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

// Config carries the settings for a GitHubGateway.
type Config struct {
	Token    string
	Endpoint string
	Timeout  time.Duration
	Debug    bool
}

// Fetcher defines the behavior of a gateway for fetching a user's day
// activity from GitHub.
type Fetcher interface {
	FetchDayContributions(ctx context.Context, login string, window domain.Window) (*domain.Contributions, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *githubv4.Client
	logger logrus.FieldLogger
}

// dayContributionsQuery covers both tables in a single request: the
// contribution totals and the per-pull-request change statistics for the
// window. Only the first page of pull requests is requested.
type dayContributionsQuery struct {
	User struct {
		// Login echoes the queried user back and doubles as a presence
		// check: a 2xx body missing the user fields decodes to a zero
		// struct instead of failing.
		Login                   string
		ContributionsCollection struct {
			TotalCommitContributions            int
			TotalIssueContributions             int
			TotalPullRequestContributions       int
			TotalPullRequestReviewContributions int
			PullRequestContributions            struct {
				Nodes []struct {
					PullRequest struct {
						Number       int
						Additions    int
						Deletions    int
						ChangedFiles int
						URL          string
						Repository   struct {
							NameWithOwner string
						}
					}
				}
			} `graphql:"pullRequestContributions(first: 100)"`
		} `graphql:"contributionsCollection(from: $from, to: $to)"`
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of
// GitHubGateway. It fails before any network activity if no token is set.
func NewGitHubGateway(cfg Config, logger logrus.FieldLogger) (*GitHubGateway, error) {
	if cfg.Token == "" {
		return nil, &domain.MissingTokenError{}
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	var base http.RoundTripper = http.DefaultTransport
	if cfg.Debug {
		base = &debugTransport{base: base, logger: logger}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &oauth2.Transport{
			Base:   &userAgentTransport{base: &statusClassifier{base: base}},
			Source: ts,
		},
	}

	return &GitHubGateway{
		client: githubv4.NewEnterpriseClient(cfg.Endpoint, httpClient),
		logger: logger,
	}, nil
}

// FetchDayContributions runs the single contributions query for the login
// and window and maps the response into domain entities.
func (g *GitHubGateway) FetchDayContributions(ctx context.Context, login string, window domain.Window) (*domain.Contributions, error) {
	g.logger.Debugf("querying contributions for %s from %s to %s", login, window.Start, window.End)

	variables := map[string]interface{}{
		"login": githubv4.String(login),
		"from":  githubv4.DateTime{Time: window.Start},
		"to":    githubv4.DateTime{Time: window.End},
	}

	var q dayContributionsQuery
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return nil, classifyQueryError(err)
	}
	if q.User.Login == "" {
		return nil, &domain.MalformedResponseError{Reason: "response is missing the user contribution fields"}
	}

	collection := q.User.ContributionsCollection
	contribs := &domain.Contributions{
		Reviews:      collection.TotalPullRequestReviewContributions,
		Issues:       collection.TotalIssueContributions,
		Commits:      collection.TotalCommitContributions,
		PullRequests: collection.TotalPullRequestContributions,
	}
	for _, node := range collection.PullRequestContributions.Nodes {
		pr := node.PullRequest
		contribs.Records = append(contribs.Records, domain.PullRequestRecord{
			Repository: pr.Repository.NameWithOwner,
			Number:     pr.Number,
			Additions:  pr.Additions,
			Deletions:  pr.Deletions,
			Files:      pr.ChangedFiles,
			URL:        pr.URL,
		})
	}

	g.logger.Debugf("fetched %d pull request records", len(contribs.Records))
	return contribs, nil
}

// classifyQueryError maps a failure from the GraphQL client onto the domain
// error kinds. The transport has already converted non-2xx statuses into
// typed errors, so anything still wearing a url.Error without one is a
// connection problem, and anything past the transport is a response-shape
// problem.
func classifyQueryError(err error) error {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &domain.NetworkError{Err: err}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &domain.APIError{Body: err.Error()}
	}
	return &domain.MalformedResponseError{Reason: err.Error()}
}

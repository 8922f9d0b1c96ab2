// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/preocts/daystats/internal/domain"
	"github.com/preocts/daystats/internal/gateway"
)

// Reporter is the use case for building a day report.
// It orchestrates the fetch and the reshaping into tables.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  logrus.FieldLogger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger logrus.FieldLogger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// BuildReport fetches the day's activity and folds the per-pull-request
// change counts into the summary totals. The breakdown keeps the API
// response order.
func (r *Reporter) BuildReport(ctx context.Context, login string, window domain.Window) (*domain.Report, error) {
	r.logger.Debugf("building report for %s on %s", login, window.Day())

	contribs, err := r.fetcher.FetchDayContributions(ctx, login, window)
	if err != nil {
		return nil, err
	}

	summary := domain.ContributionSummary{
		Reviews:      contribs.Reviews,
		Issues:       contribs.Issues,
		Commits:      contribs.Commits,
		PullRequests: contribs.PullRequests,
	}
	for _, record := range contribs.Records {
		summary.FilesChanged += record.Files
		summary.Additions += record.Additions
		summary.Deletions += record.Deletions
	}

	r.logger.Debugf("report ready: %d pull requests, %d commits", summary.PullRequests, summary.Commits)
	return &domain.Report{
		Login:        login,
		Window:       window,
		Summary:      summary,
		PullRequests: contribs.Records,
	}, nil
}

package render

import (
	"fmt"
	"strconv"

	"github.com/preocts/daystats/internal/domain"
)

// Report renders the title line, the summary table, and the per-pull-request
// breakdown table. The output is deterministic for a given report.
func Report(r *domain.Report, markdown bool) string {
	title := fmt.Sprintf("Contributions for %s on %s (UTC)", r.Login, r.Window.Day())
	summary := summaryTable(r.Summary)
	breakdown := breakdownTable(r.PullRequests, markdown)

	if markdown {
		return title + "\n\n" + summary.Markdown() + "\n" + breakdown.Markdown()
	}
	return title + "\n\n" + summary.Text() + "\n" + breakdown.Text()
}

func summaryTable(s domain.ContributionSummary) Table {
	return Table{
		Header: []string{"Reviews", "Issue", "Commits", "Pull Requests", "Files Changed", "Additions", "Deletions"},
		Rows: [][]string{{
			strconv.Itoa(s.Reviews),
			strconv.Itoa(s.Issues),
			strconv.Itoa(s.Commits),
			strconv.Itoa(s.PullRequests),
			strconv.Itoa(s.FilesChanged),
			strconv.Itoa(s.Additions),
			strconv.Itoa(s.Deletions),
		}},
		Numeric: []bool{true, true, true, true, true, true, true},
	}
}

func breakdownTable(records []domain.PullRequestRecord, markdown bool) Table {
	if markdown {
		t := Table{
			Header:  []string{"Repository", "Files", "Additions", "Deletions", "Pull Request"},
			Numeric: []bool{false, true, true, true, false},
		}
		for _, r := range records {
			t.Rows = append(t.Rows, []string{
				r.Repository,
				strconv.Itoa(r.Files),
				strconv.Itoa(r.Additions),
				strconv.Itoa(r.Deletions),
				fmt.Sprintf("[see: #%d](%s)", r.Number, r.URL),
			})
		}
		return t
	}

	t := Table{
		Header:  []string{"Repository", "Files", "Additions", "Deletions", "Number", "URL"},
		Numeric: []bool{false, true, true, true, true, false},
	}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Repository,
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Additions),
			strconv.Itoa(r.Deletions),
			"#" + strconv.Itoa(r.Number),
			r.URL,
		})
	}
	return t
}

// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package evaluation

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tomtom215/marquee/internal/retrieval"
)

// Ranker ranks a single query.
type Ranker interface {
	Rank(ctx context.Context, req retrieval.RankRequest) (*retrieval.RankResponse, error)
}

// QueryResult is the evaluation of one judged query.
type QueryResult struct {
	Query     string  `json:"query"`
	Mode      string  `json:"mode"`
	Retrieved []int64 `json:"retrieved"`
	Relevant  []int64 `json:"relevant"`
	Measures
}

// Report is the outcome of a run.
type Report struct {
	Queries []QueryResult `json:"queries"`
	Macro   Measures      `json:"macro"`
}

// Runner evaluates judgments against a Ranker.
type Runner struct {
	ranker      Ranker
	defaultMode string
}

// NewRunner creates a runner. defaultMode applies to judgments without a
// mode; empty leaves the ranker's default.
func NewRunner(ranker Ranker, defaultMode string) *Runner {
	return &Runner{ranker: ranker, defaultMode: defaultMode}
}

// Run ranks every judged query in order. The first ranking error aborts the
// run.
func (r *Runner) Run(ctx context.Context, judgments []Judgment) (*Report, error) {
	report := &Report{Queries: make([]QueryResult, 0, len(judgments))}
	measures := make([]Measures, 0, len(judgments))

	for _, j := range judgments {
		mode := j.Mode
		if mode == "" {
			mode = r.defaultMode
		}
		resp, err := r.ranker.Rank(ctx, retrieval.RankRequest{Query: j.Query, Mode: mode, TopK: j.TopK})
		if err != nil {
			return nil, fmt.Errorf("rank %q: %w", j.Query, err)
		}

		retrieved := make([]int64, len(resp.Results))
		for i, res := range resp.Results {
			retrieved[i] = res.ActorID
		}
		m := Evaluate(j.Relevant, retrieved)
		measures = append(measures, m)
		report.Queries = append(report.Queries, QueryResult{
			Query:     j.Query,
			Mode:      resp.Mode,
			Retrieved: retrieved,
			Relevant:  j.Relevant,
			Measures:  m,
		})
	}

	report.Macro = MacroAverage(measures)
	return report, nil
}

// WriteTable writes the report as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "QUERY\tMODE\tRETRIEVED\tRECALL\tPRECISION\tF1")
	for _, q := range r.Queries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f\n", q.Query, q.Mode, len(q.Retrieved), q.Recall, q.Precision, q.F1)
	}
	fmt.Fprintf(tw, "MACRO AVERAGE\t\t\t%.3f\t%.3f\t%.3f\n", r.Macro.Recall, r.Macro.Precision, r.Macro.F1)
	return tw.Flush()
}

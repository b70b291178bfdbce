// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package evaluation

// Measures are set-based retrieval quality measures.
type Measures struct {
	Recall    float64 `json:"recall"`
	Precision float64 `json:"precision"`
	F1        float64 `json:"f1"`
}

// Evaluate compares retrieved ids with the relevant ones. Duplicates are
// counted once. Recall is 0 with nothing relevant, precision is 0 with
// nothing retrieved, and F1 is 0 when both are 0.
func Evaluate(relevant, retrieved []int64) Measures {
	rel := toSet(relevant)
	ret := toSet(retrieved)

	tp := 0
	for id := range ret {
		if _, ok := rel[id]; ok {
			tp++
		}
	}
	fp := len(ret) - tp
	fn := len(rel) - tp

	var m Measures
	if len(rel) > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if len(ret) > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// MacroAverage averages each measure over ms. No measures yields zeros.
func MacroAverage(ms []Measures) Measures {
	var avg Measures
	if len(ms) == 0 {
		return avg
	}
	for _, m := range ms {
		avg.Recall += m.Recall
		avg.Precision += m.Precision
		avg.F1 += m.F1
	}
	n := float64(len(ms))
	avg.Recall /= n
	avg.Precision /= n
	avg.F1 /= n
	return avg
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

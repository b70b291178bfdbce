// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package lsa

import "math"

// SublinearTF dampens raw term frequency: 1 + ln(tf), or 0 when tf is 0.
func SublinearTF(tf int) float64 {
	if tf <= 0 {
		return 0
	}
	return 1 + math.Log(float64(tf))
}

// IDF returns log2(n / df). It is 0 when df is 0 or n is 0.
func IDF(n, df int) float64 {
	if n <= 0 || df <= 0 {
		return 0
	}
	return math.Log2(float64(n) / float64(df))
}

// TFIDF combines a weighted term frequency with an inverse document frequency.
func TFIDF(tfWeight, idf float64) float64 {
	return tfWeight * idf
}

// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package lsa implements the token-based latent semantic indexing engine.

Each actor is one document: the preprocessed tokens of every script they
appear in. Build prunes tokens that occur in exactly one document, weights the
remaining vocabulary-by-document matrix with sublinear TF-IDF

	tf_weight = 1 + ln(tf)   (0 when tf = 0)
	idf       = log2(N / df)

and factorizes it with a thin SVD. The reduced rank k is the smallest number
of leading singular values whose sum exceeds the energy threshold (90% by
default) of the total. Queries are projected with q' = q^T * U_k * S_k^-1 and
compared with the reduced document vectors by cosine similarity; only
strictly positive matches are returned.

An index whose selected singular values contain a zero cannot project queries
and is rejected with ErrSingularReduction.
*/
package lsa

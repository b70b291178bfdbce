// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package textproc

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "about", "above", "after", "again", "against", "ain", "all", "am", "an", "and", "any",
		"are", "aren't", "as", "at", "be", "because", "been", "before", "being", "below", "between",
		"both", "but", "by", "can", "couldn't", "did", "didn't", "do", "does", "doesn't", "doing",
		"don", "don't", "down", "during", "each", "few", "for", "from", "further", "had", "hadn't",
		"has", "hasn't", "have", "haven't", "having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
		"just", "ll", "me", "more", "most", "mustn't", "my", "myself", "needn't", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves", "out",
		"over", "own", "re", "same", "shan't", "she", "she's", "should", "shouldn't", "so", "some",
		"such", "than", "that", "that'll", "the", "their", "theirs", "them", "themselves", "then",
		"there", "these", "they", "this", "those", "through", "to", "too", "under", "until", "up",
		"ve", "very", "was", "wasn't", "we", "were", "weren't", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "won't", "wouldn't", "you", "you'd", "you'll",
		"you're", "you've", "your", "yours", "yourself", "yourselves", "i'm", "i've", "i'll", "i'd",
		"we're", "they're", "he's", "let's",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()

// IsStopword reports whether tok, already lowercased, is an English stopword.
func IsStopword(tok string) bool {
	_, ok := stopwords[tok]
	return ok
}

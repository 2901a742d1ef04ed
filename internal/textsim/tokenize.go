// Package textsim computes deterministic text similarity between two
// documents using term-frequency vectors with inverse-document-frequency
// weighting. The vocabulary is fit per call on exactly the two documents and
// discarded afterwards; nothing is memoized across calls.
package textsim

import (
	"strings"
	"unicode"
)

// stopwords are common English words excluded from the vocabulary.
var stopwords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"all": true, "an": true, "and": true, "any": true, "are": true,
	"as": true, "at": true, "be": true, "because": true, "been": true,
	"before": true, "being": true, "below": true, "between": true, "both": true,
	"but": true, "by": true, "can": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "had": true,
	"has": true, "have": true, "having": true, "he": true, "her": true,
	"here": true, "hers": true, "him": true, "his": true, "how": true,
	"i": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "just": true, "me": true, "more": true,
	"most": true, "my": true, "no": true, "nor": true, "not": true,
	"now": true, "of": true, "off": true, "on": true, "once": true,
	"only": true, "or": true, "other": true, "our": true, "out": true,
	"over": true, "own": true, "s": true, "same": true, "she": true,
	"should": true, "so": true, "some": true, "such": true, "t": true,
	"than": true, "that": true, "the": true, "their": true, "them": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"until": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "whom": true, "why": true, "will": true,
	"with": true, "you": true, "your": true, "yours": true,
}

// Tokenize splits text into lowercased letter/digit runs, dropping stopwords.
func Tokenize(text string) []string {
	var tokens []string
	tokenStart := -1
	lower := strings.ToLower(text)
	for idx, r := range lower {
		isTokenChar := unicode.IsLetter(r) || unicode.IsDigit(r)
		if isTokenChar {
			if tokenStart == -1 {
				tokenStart = idx
			}
			continue
		}
		if tokenStart != -1 {
			appendToken(&tokens, lower[tokenStart:idx])
			tokenStart = -1
		}
	}
	if tokenStart != -1 {
		appendToken(&tokens, lower[tokenStart:])
	}
	return tokens
}

func appendToken(tokens *[]string, token string) {
	if stopwords[token] {
		return
	}
	*tokens = append(*tokens, token)
}

// Terms expands tokens into the unigram+bigram term sequence used for
// vectorization. Bigrams are formed over the stopword-filtered token stream.
func Terms(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

package score

import (
	"math"
	"sort"
	"strings"
)

// minPrefixMatch is the shortest token prefix that counts as a term
// match when comparing course titles ("intro" vs "introduction").
const minPrefixMatch = 4

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
	"this": {}, "that": {}, "are": {}, "was": {}, "were": {},
	"not": {}, "but": {}, "you": {}, "your": {}, "our": {},
	"can": {}, "will": {}, "have": {}, "has": {}, "had": {},
	"about": {}, "into": {}, "out": {}, "all": {}, "any": {},
	"some": {}, "how": {}, "what": {}, "when": {}, "where": {},
	"why": {}, "who": {}, "which": {}, "need": {}, "needs": {},
	"help": {}, "please": {}, "course": {}, "class": {},
}

// Tokenize lowercases the text, strips punctuation, and drops stop
// words and tokens shorter than three characters.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := []string{}
	for _, t := range strings.Fields(b.String()) {
		if len(t) <= 2 {
			continue
		}
		if _, ok := stopWords[t]; ok {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// termsMatch reports whether two tokens refer to the same term. Exact
// equality always matches; a shared prefix matches when the shorter
// token is long enough to be meaningful.
func termsMatch(a, b string) bool {
	if a == b {
		return true
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) < minPrefixMatch {
		return false
	}
	return strings.HasPrefix(b, a)
}

func termFrequency(tokens []string) map[string]float64 {
	freq := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

func sortedTerms(freq map[string]float64) []string {
	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// CosineSimilarity computes the cosine of the term-frequency vectors
// of two course titles. Terms are matched prefix-tolerantly so close
// variants of the same word line up.
func CosineSimilarity(a, b string) float64 {
	fa := termFrequency(Tokenize(a))
	fb := termFrequency(Tokenize(b))
	if len(fa) == 0 || len(fb) == 0 {
		return 0
	}

	var dot float64
	termsB := sortedTerms(fb)
	for _, ta := range sortedTerms(fa) {
		for _, tb := range termsB {
			if termsMatch(ta, tb) {
				dot += fa[ta] * fb[tb]
				break
			}
		}
	}

	var normA, normB float64
	for _, v := range fa {
		normA += v * v
	}
	for _, v := range fb {
		normB += v * v
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

package textsim

import (
	"math"
	"sort"
)

// MaxVocabulary caps the number of terms kept when fitting a vector pair.
const MaxVocabulary = 1000

// Similarity fits TF-IDF vectors for the two documents and returns their
// cosine similarity in [0,1]. Deterministic for a fixed pair of texts.
func Similarity(docA, docB string) float64 {
	vecA, vecB := FitVectors(docA, docB)
	return Cosine(vecA, vecB)
}

// FitVectors builds L2-normalized TF-IDF vectors for exactly two documents
// over a shared vocabulary. The vocabulary keeps at most MaxVocabulary terms,
// selected by total frequency with a lexicographic tie-break so the fit is
// reproducible.
func FitVectors(docA, docB string) ([]float64, []float64) {
	termsA := Terms(Tokenize(docA))
	termsB := Terms(Tokenize(docB))

	countsA := countTerms(termsA)
	countsB := countTerms(termsB)

	vocab := buildVocabulary(countsA, countsB)

	vecA := vectorize(countsA, countsB, vocab, true)
	vecB := vectorize(countsA, countsB, vocab, false)
	return vecA, vecB
}

// Cosine returns the cosine similarity of two equal-length vectors.
// Zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func countTerms(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

// buildVocabulary merges the two documents' term counts and keeps the top
// MaxVocabulary terms by combined frequency, ties broken lexicographically.
func buildVocabulary(countsA, countsB map[string]int) []string {
	total := make(map[string]int, len(countsA)+len(countsB))
	for term, n := range countsA {
		total[term] += n
	}
	for term, n := range countsB {
		total[term] += n
	}

	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > MaxVocabulary {
		terms = terms[:MaxVocabulary]
	}
	return terms
}

// vectorize computes the smoothed TF-IDF vector for one of the two fitted
// documents: idf = ln((1+n)/(1+df)) + 1 with n = 2, then L2 normalization.
func vectorize(countsA, countsB map[string]int, vocab []string, first bool) []float64 {
	const docCount = 2.0

	own := countsA
	if !first {
		own = countsB
	}

	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((1+docCount)/(1+df)) + 1
		vec[i] = tf * idf
	}

	normalizeL2(vec)
	return vec
}

func normalizeL2(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	scale := 1.0 / math.Sqrt(sum)
	for i := range vec {
		vec[i] *= scale
	}
}

// Package similarity implements term-weighted text similarity: TF-IDF
// vectorization over a document corpus and dense pairwise cosine
// similarity with stable nearest-neighbor ranking.
package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Matrix is the dense pairwise cosine similarity of a corpus. It is
// immutable once built; concurrent reads need no locking.
type Matrix struct {
	n     int
	sims  [][]float64
	empty []bool
}

// Build derives a fresh vocabulary from the corpus, weights every
// document with smoothed TF-IDF (idf = ln((1+n)/(1+df)) + 1, rows
// l2-normalized) and fills the full N x N cosine matrix. With normalized
// rows, cosine reduces to a sparse dot product.
//
// Documents that contain no terms after stop-word removal are flagged
// empty: their similarity to everything, themselves included, is 0.
func Build(docs []string) *Matrix {
	n := len(docs)

	m := &Matrix{
		n:     n,
		sims:  make([][]float64, n),
		empty: make([]bool, n),
	}
	for i := range m.sims {
		m.sims[i] = make([]float64, n)
	}
	if n == 0 {
		return m
	}

	// Term counts per document and document frequency per term
	vocab := make(map[string]int)
	df := make(map[int]int)
	counts := make([]map[int]float64, n)

	for i, doc := range docs {
		vec := make(map[int]float64)
		for _, term := range tokenize(doc) {
			id, ok := vocab[term]
			if !ok {
				id = len(vocab)
				vocab[term] = id
			}
			vec[id]++
		}
		for id := range vec {
			df[id]++
		}
		counts[i] = vec
	}

	// Weight by smoothed idf and l2-normalize each row
	idf := make([]float64, len(vocab))
	for id, freq := range df {
		idf[id] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}

	for i, vec := range counts {
		if len(vec) == 0 {
			m.empty[i] = true
			continue
		}
		var norm float64
		for id, tf := range vec {
			w := tf * idf[id]
			vec[id] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		for id := range vec {
			vec[id] /= norm
		}
	}

	// Fill the symmetric matrix with unit diagonal
	for i := 0; i < n; i++ {
		if m.empty[i] {
			continue
		}
		m.sims[i][i] = 1
		for j := i + 1; j < n; j++ {
			if m.empty[j] {
				continue
			}
			s := dot(counts[i], counts[j])
			m.sims[i][j] = s
			m.sims[j][i] = s
		}
	}

	return m
}

// Len returns the corpus size
func (m *Matrix) Len() int {
	return m.n
}

// At returns the cosine similarity between documents i and j
func (m *Matrix) At(i, j int) float64 {
	return m.sims[i][j]
}

// IsEmpty reports whether document i had no usable terms
func (m *Matrix) IsEmpty(i int) bool {
	return m.empty[i]
}

// Neighbors returns up to k document indices ranked by descending
// similarity to document i, excluding i itself. Ties keep the original
// corpus order (stable sort), so repeated calls reproduce the ranking.
func (m *Matrix) Neighbors(i, k int) []int {
	idx := make([]int, 0, m.n-1)
	for j := 0; j < m.n; j++ {
		if j != i {
			idx = append(idx, j)
		}
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return m.sims[i][idx[a]] > m.sims[i][idx[b]]
	})

	if len(idx) > k {
		idx = idx[:k]
	}
	return idx
}

// tokenize lowercases the text and emits runs of letters and digits,
// dropping single-character terms and stop words
func tokenize(text string) []string {
	lower := strings.ToLower(text)

	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, w := range a {
		if w2, ok := b[id]; ok {
			sum += w * w2
		}
	}
	return sum
}

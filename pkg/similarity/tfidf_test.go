package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSymmetryAndUnitDiagonal(t *testing.T) {
	docs := []string{
		"action shooter multiplayer fps",
		"action adventure singleplayer story",
		"puzzle casual relaxing",
		"shooter fps competitive multiplayer",
	}

	m := Build(docs)
	require.Equal(t, len(docs), m.Len())

	for i := 0; i < m.Len(); i++ {
		assert.InDelta(t, 1.0, m.At(i, i), 1e-9, "self-similarity must be 1")
		for j := 0; j < m.Len(); j++ {
			assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-9, "matrix must be symmetric")
		}
	}
}

func TestBuildScoresSharedTerms(t *testing.T) {
	docs := []string{
		"action shooter multiplayer",
		"action shooter competitive",
		"farming simulator relaxing",
	}

	m := Build(docs)

	// Docs 0 and 1 share terms, doc 2 shares none
	assert.Greater(t, m.At(0, 1), 0.0)
	assert.InDelta(t, 0.0, m.At(0, 2), 1e-9)
	assert.InDelta(t, 0.0, m.At(1, 2), 1e-9)

	// Bounded by the unit diagonal
	assert.LessOrEqual(t, m.At(0, 1), 1.0+1e-9)
}

func TestBuildStopWordsExcluded(t *testing.T) {
	docs := []string{
		"the of and action",
		"the of and puzzle",
	}

	m := Build(docs)

	// Only stop words are shared, so the docs have nothing in common
	assert.InDelta(t, 0.0, m.At(0, 1), 1e-9)
}

func TestBuildEmptyDocFlagged(t *testing.T) {
	docs := []string{
		"action shooter",
		"",
		"the of a", // stop words and single chars only
	}

	m := Build(docs)

	assert.False(t, m.IsEmpty(0))
	assert.True(t, m.IsEmpty(1))
	assert.True(t, m.IsEmpty(2))

	// Empty docs are orthogonal to everything
	assert.InDelta(t, 0.0, m.At(0, 1), 1e-9)
	assert.InDelta(t, 0.0, m.At(1, 2), 1e-9)
}

func TestBuildEmptyCorpus(t *testing.T) {
	m := Build(nil)
	assert.Equal(t, 0, m.Len())
}

func TestNeighborsExcludesSelfAndRanksDescending(t *testing.T) {
	docs := []string{
		"zombie survival horror crafting",
		"zombie survival horror",
		"racing cars arcade",
		"zombie horror",
	}

	m := Build(docs)
	neighbors := m.Neighbors(0, 3)

	require.Len(t, neighbors, 3)
	assert.NotContains(t, neighbors, 0)

	for i := 1; i < len(neighbors); i++ {
		assert.GreaterOrEqual(t,
			m.At(0, neighbors[i-1]),
			m.At(0, neighbors[i]),
			"scores must be non-increasing",
		)
	}
}

func TestNeighborsStableTieBreak(t *testing.T) {
	// Docs 1 and 2 are identical, so their similarity to doc 0 ties
	// exactly; the earlier corpus index must come first, repeatably.
	docs := []string{
		"space exploration sandbox",
		"space mining",
		"space mining",
	}

	m := Build(docs)

	for run := 0; run < 10; run++ {
		neighbors := m.Neighbors(0, 2)
		require.Equal(t, []int{1, 2}, neighbors)
	}
}

func TestNeighborsFewerThanRequested(t *testing.T) {
	docs := []string{
		"roguelike dungeon",
		"roguelike cards",
	}

	m := Build(docs)
	neighbors := m.Neighbors(0, 5)

	assert.Equal(t, []int{1}, neighbors)
}

func TestTokenize(t *testing.T) {
	terms := tokenize("Action-RPG, with CO-OP! The best of 2017")

	assert.Equal(t, []string{"action", "rpg", "co", "op", "best", "2017"}, terms)
}

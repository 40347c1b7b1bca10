package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var similaritySamples = []struct{ a, b string }{
	{"", ""},
	{"acme", ""},
	{"acme", "acme"},
	{"acme inc", "acme incorporated"},
	{"zephyr", "acme"},
	{"туристический нож", "нож туристический"},
	{"widget 9000", "widget 900"},
}

func TestScorerContract(t *testing.T) {
	for _, engine := range []bool{false, true} {
		sc := newScorer(engine)
		for _, s := range similaritySamples {
			ab := sc.fn(s.a, s.b)
			ba := sc.fn(s.b, s.a)
			assert.GreaterOrEqual(t, ab, 0.0, "%s: score(%q,%q)", sc.name, s.a, s.b)
			assert.LessOrEqual(t, ab, 1.0, "%s: score(%q,%q)", sc.name, s.a, s.b)
			assert.InDelta(t, ab, ba, 1e-12, "%s: симметрия (%q,%q)", sc.name, s.a, s.b)
			assert.Equal(t, 1.0, sc.fn(s.a, s.a), "%s: рефлексивность %q", sc.name, s.a)
		}
		// две пустые строки — идеальное совпадение по соглашению
		assert.Equal(t, 1.0, sc.fn("", ""), sc.name)
		assert.Equal(t, 0.0, sc.fn("acme", ""), sc.name)
	}
}

func TestDamerauLevenshtein(t *testing.T) {
	assert.Equal(t, 0, damerauLevenshtein("acme", "acme"))
	assert.Equal(t, 1, damerauLevenshtein("acme", "acmes"))
	assert.Equal(t, 1, damerauLevenshtein("acme", "amce")) // транспозиция = 1
	assert.Equal(t, 4, damerauLevenshtein("", "acme"))
}

func TestBestSimilarityTokenOrder(t *testing.T) {
	// перестановка слов не роняет схожесть
	require.Equal(t, 1.0, bestSimilarity("нож туристический", "туристический нож"))
	require.Equal(t, 1.0, bestSimilarity("acme inc", "inc acme"))
	assert.Less(t, similarity("acme inc", "inc acme"), 1.0)
}

func TestScorerNames(t *testing.T) {
	assert.Equal(t, "builtin", newScorer(false).name)
	assert.Equal(t, "strutil", newScorer(true).name)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "acme inc", normalizeText("  ACME  Inc  "))
	assert.Equal(t, "", normalizeText("   "))
	assert.Equal(t, "", normalizeText(""))
}

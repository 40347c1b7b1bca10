package service

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// scorer считает схожесть двух ключей в [0..1]. Контракт: симметрия,
// score(a,a) == 1, score("","") == 1.
type scorer struct {
	name string
	fn   func(a, b string) float64
}

// newScorer: preferLibrary=true — библиотечный движок (strutil),
// иначе собственный Damerau-Levenshtein. Снаружи контракт одинаковый.
func newScorer(preferLibrary bool) scorer {
	if preferLibrary {
		lev := metrics.NewLevenshtein()
		return scorer{name: "strutil", fn: func(a, b string) float64 {
			return librarySimilarity(a, b, lev)
		}}
	}
	return scorer{name: "builtin", fn: bestSimilarity}
}

func similarity(a, b string) float64 {
	// normalized Damerau-Levenshtein similarity in [0..1]
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

func tokenSortSimilarity(a, b string) float64 {
	return similarity(tokenSort(a), tokenSort(b))
}

// bestSimilarity — максимум из прямого и token-sort сравнения
// (перестановка слов не должна ронять схожесть).
func bestSimilarity(a, b string) float64 {
	x := similarity(a, b)
	y := tokenSortSimilarity(a, b)
	if y > x {
		return y
	}
	return x
}

func librarySimilarity(a, b string, m *metrics.Levenshtein) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	x := strutil.Similarity(a, b, m)
	if y := strutil.Similarity(tokenSort(a), tokenSort(b), m); y > x {
		x = y
	}
	return x
}

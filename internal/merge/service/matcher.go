package service

import (
	"sort"

	"merge-service/internal/merge/model"
)

// assigner решает, какая левая строка забирает какую правую.
// Каждая правая строка потребляется не более одного раза (1:1, не cross-join).
type assigner interface {
	assign(left, right []string, threshold float64, sc scorer, stats *model.Stats) model.Correspondence
}

func newAssigner(s model.Strategy) assigner {
	if s == model.StrategyScoreOrder {
		return scoreOrderAssigner{}
	}
	return rowOrderAssigner{}
}

// positional — индексное выравнивание: левая i ↔ правая i, без скоринга.
// Хвост длинной стороны остаётся без пары (Left/Right == -1).
func positional(leftN, rightN int) model.Correspondence {
	n := leftN
	if rightN > n {
		n = rightN
	}
	pairs := make([]model.Pair, 0, n)
	for i := 0; i < n; i++ {
		p := model.Pair{Left: -1, Right: -1}
		if i < leftN {
			p.Left = i
		}
		if i < rightN {
			p.Right = i
		}
		pairs = append(pairs, p)
	}
	return model.Correspondence{Pairs: pairs}
}

// rowOrderAssigner — жадное разрешение в порядке левых строк: каждая левая
// строка берёт лучшего из ещё не потреблённых правых кандидатов; при равном
// счёте побеждает меньший правый индекс. Ранние левые строки в приоритете —
// это определённая политика, а не случайность.
type rowOrderAssigner struct{}

func (rowOrderAssigner) assign(left, right []string, threshold float64, sc scorer, stats *model.Stats) model.Correspondence {
	used := make([]bool, len(right))
	pairs := make([]model.Pair, 0, len(left))

	for i, lk := range left {
		best := 0.0
		bestJ := -1
		for j, rk := range right {
			if used[j] {
				continue
			}
			stats.Comparisons++
			if s := sc.fn(lk, rk); s > best {
				best = s
				bestJ = j
			}
		}
		p := model.Pair{Left: i, Right: -1, Score: best}
		if bestJ >= 0 && best >= threshold {
			p.Right = bestJ
			used[bestJ] = true
		}
		pairs = append(pairs, p)
	}

	return model.Correspondence{Pairs: pairs, Remainder: unusedIndexes(used)}
}

// scoreOrderAssigner — глобальная жадность: считаем все пары, принимаем по
// убыванию схожести (при равенстве — меньший левый, затем правый индекс).
// Меняет состав совпадений при конкуренции, поэтому это отдельная стратегия.
type scoreOrderAssigner struct{}

func (scoreOrderAssigner) assign(left, right []string, threshold float64, sc scorer, stats *model.Stats) model.Correspondence {
	type cand struct {
		l, r  int
		score float64
	}
	cands := make([]cand, 0, len(left)*len(right))
	rowBest := make([]float64, len(left))
	for i, lk := range left {
		for j, rk := range right {
			stats.Comparisons++
			s := sc.fn(lk, rk)
			if s > rowBest[i] {
				rowBest[i] = s
			}
			if s > 0 && s >= threshold {
				cands = append(cands, cand{l: i, r: j, score: s})
			}
		}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].score != cands[b].score {
			return cands[a].score > cands[b].score
		}
		if cands[a].l != cands[b].l {
			return cands[a].l < cands[b].l
		}
		return cands[a].r < cands[b].r
	})

	assigned := make([]int, len(left))
	scores := make([]float64, len(left))
	for i := range assigned {
		assigned[i] = -1
	}
	used := make([]bool, len(right))
	for _, c := range cands {
		if assigned[c.l] >= 0 || used[c.r] {
			continue
		}
		assigned[c.l] = c.r
		scores[c.l] = c.score
		used[c.r] = true
	}

	pairs := make([]model.Pair, len(left))
	for i := range left {
		if assigned[i] >= 0 {
			pairs[i] = model.Pair{Left: i, Right: assigned[i], Score: scores[i]}
		} else {
			pairs[i] = model.Pair{Left: i, Right: -1, Score: rowBest[i]}
		}
	}
	return model.Correspondence{Pairs: pairs, Remainder: unusedIndexes(used)}
}

func unusedIndexes(used []bool) []int {
	rem := make([]int, 0)
	for j, u := range used {
		if !u {
			rem = append(rem, j)
		}
	}
	return rem
}

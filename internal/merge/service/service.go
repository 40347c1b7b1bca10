package service

import (
	"merge-service/internal/merge/model"
)

// Run — основное слияние. Проверяет конфигурацию, выводит режим, строит
// соответствие, собирает строки и применяет пост-фильтр. Чистая функция:
// одинаковый вход даёт одинаковый выход, исходные таблицы не меняются.
func Run(left, right model.Table, opt model.Options) (model.Result, error) {
	mode := model.DeriveMode(opt.LeftKeys, opt.RightKeys)
	if err := validate(left, right, opt, mode); err != nil {
		return model.Result{}, err
	}

	stats := model.Stats{Engine: "disabled"}
	var corr model.Correspondence
	if mode == model.ModeSimilarity {
		sc := newScorer(opt.PreferLibrary)
		stats.Engine = sc.name
		leftKeys := projectAll(left.Rows, opt.LeftKeys)
		rightKeys := projectAll(right.Rows, opt.RightKeys)
		corr = newAssigner(opt.Strategy).assign(leftKeys, rightKeys, opt.Threshold, sc, &stats)
		for _, p := range corr.Pairs {
			if p.Right >= 0 && p.Score >= 1 {
				stats.ExactMatches++
			}
		}
	} else {
		corr = positional(len(left.Rows), len(right.Rows))
	}

	res := mergeRows(left, right, corr, opt.Output, mode)
	res.Stats = stats
	if mode == model.ModeSimilarity {
		res.Rows = applyFilter(res.Rows, opt.Filter)
	}
	return res, nil
}

// validate — fail fast до какого-либо скоринга: все запрошенные колонки
// должны существовать. Ключевые колонки проверяем только в similarity-режиме:
// позиционное слияние не падает ни при каком выборе ключей.
func validate(left, right model.Table, opt model.Options, mode model.MatchMode) error {
	for _, oc := range opt.Output {
		t := left
		if oc.Side == model.SideRight {
			t = right
		}
		if !t.HasColumn(oc.Name) {
			return &model.ColumnError{Side: oc.Side, Role: model.RoleOutput, Column: oc.Name}
		}
	}
	if mode != model.ModeSimilarity {
		return nil
	}
	for _, k := range opt.LeftKeys {
		if !left.HasColumn(k) {
			return &model.ColumnError{Side: model.SideLeft, Role: model.RoleKey, Column: k}
		}
	}
	for _, k := range opt.RightKeys {
		if !right.HasColumn(k) {
			return &model.ColumnError{Side: model.SideRight, Role: model.RoleKey, Column: k}
		}
	}
	return nil
}

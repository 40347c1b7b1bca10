package service

import (
	"math"
	"strconv"

	"merge-service/internal/merge/model"
)

// Имена колонок по сторонам префиксуем, чтобы одинаковые заголовки
// слева и справа не схлопывались в одну колонку.
func outputName(oc model.OutputColumn) string {
	if oc.Side == model.SideRight {
		return "Right_" + oc.Name
	}
	return "Left_" + oc.Name
}

const (
	ColScore  = "Similarity_Score"
	ColStatus = "Match_Status"
)

// округление для отображения, как в ответе сервиса: 4 знака
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}

func formatScore(s float64) string {
	return strconv.FormatFloat(roundScore(s), 'f', -1, 64)
}

// mergeRows строит итоговые строки по соответствию: выбранные колонки слева,
// выбранные справа (или пусто, если пары нет), плюс Similarity_Score и
// Match_Status — только в similarity-режиме. Остаток правых строк добавляется
// в конец (similarity-режим; в позиционном хвост уже представлен парами).
func mergeRows(left, right model.Table, corr model.Correspondence, output []model.OutputColumn, mode model.MatchMode) model.Result {
	cols := make([]string, 0, len(output)+2)
	for _, oc := range output {
		cols = append(cols, outputName(oc))
	}
	if mode == model.ModeSimilarity {
		cols = append(cols, ColScore, ColStatus)
	}

	rows := make([]model.MergedRow, 0, len(corr.Pairs)+len(corr.Remainder))
	for _, p := range corr.Pairs {
		cells := make(map[string]string, len(cols))
		for _, oc := range output {
			cells[outputName(oc)] = cellValue(left, right, oc, p.Left, p.Right)
		}
		mr := model.MergedRow{Cells: cells}
		if mode == model.ModeSimilarity {
			status := model.StatusNoMatch
			if p.Right >= 0 {
				status = model.StatusMatched
			}
			score := roundScore(p.Score)
			cells[ColScore] = formatScore(p.Score)
			cells[ColStatus] = status
			mr.Match = &model.MatchInfo{Score: score, Status: status}
		}
		rows = append(rows, mr)
	}

	if mode == model.ModeSimilarity {
		for _, j := range corr.Remainder {
			cells := make(map[string]string, len(cols))
			for _, oc := range output {
				cells[outputName(oc)] = cellValue(left, right, oc, -1, j)
			}
			cells[ColScore] = formatScore(0)
			cells[ColStatus] = model.StatusNoMatch
			rows = append(rows, model.MergedRow{
				Cells: cells,
				Match: &model.MatchInfo{Score: 0, Status: model.StatusNoMatch},
			})
		}
	}

	return model.Result{Columns: cols, Rows: rows, Mode: mode.String()}
}

func cellValue(left, right model.Table, oc model.OutputColumn, li, ri int) string {
	if oc.Side == model.SideRight {
		if ri < 0 {
			return ""
		}
		return right.Rows[ri][oc.Name]
	}
	if li < 0 {
		return ""
	}
	return left.Rows[li][oc.Name]
}

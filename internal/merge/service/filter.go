package service

import "merge-service/internal/merge/model"

// applyFilter отбирает строки по Match_Status, не меняя их порядок и состав
// полей. All — тождественное преобразование; строки без MatchInfo
// (позиционный режим) проходят всегда.
func applyFilter(rows []model.MergedRow, f model.FilterMode) []model.MergedRow {
	if f == "" || f == model.FilterAll {
		return rows
	}
	want := model.StatusMatched
	if f == model.FilterNoMatch {
		want = model.StatusNoMatch
	}
	out := make([]model.MergedRow, 0, len(rows))
	for _, r := range rows {
		if r.Match == nil || r.Match.Status == want {
			out = append(out, r)
		}
	}
	return out
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-service/internal/merge/model"
)

func mergedRow(name, status string) model.MergedRow {
	return model.MergedRow{
		Cells: map[string]string{"Left_name": name, "Match_Status": status},
		Match: &model.MatchInfo{Status: status},
	}
}

func TestApplyFilter(t *testing.T) {
	rows := []model.MergedRow{
		mergedRow("a", model.StatusMatched),
		mergedRow("b", model.StatusNoMatch),
		mergedRow("c", model.StatusMatched),
	}

	// All — тождественное преобразование
	assert.Equal(t, rows, applyFilter(rows, model.FilterAll))
	assert.Equal(t, rows, applyFilter(rows, ""))

	matched := applyFilter(rows, model.FilterMatched)
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].Cells["Left_name"])
	assert.Equal(t, "c", matched[1].Cells["Left_name"])

	// No match only: одна строка, позиция относительно других сохранена
	noMatch := applyFilter(rows, model.FilterNoMatch)
	require.Len(t, noMatch, 1)
	assert.Equal(t, "b", noMatch[0].Cells["Left_name"])

	// идемпотентность
	assert.Equal(t, matched, applyFilter(matched, model.FilterMatched))
}

func TestApplyFilterKeepsPositionalRows(t *testing.T) {
	rows := []model.MergedRow{{Cells: map[string]string{"Left_name": "a"}}}
	assert.Equal(t, rows, applyFilter(rows, model.FilterMatched))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := []model.MergedRow{
		mergedRow("a", model.StatusMatched),
		mergedRow("b", model.StatusNoMatch),
	}
	_ = applyFilter(rows, model.FilterNoMatch)
	require.Len(t, rows, 2)
	assert.Equal(t, model.StatusMatched, rows[0].Match.Status)
}

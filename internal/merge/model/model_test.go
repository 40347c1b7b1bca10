package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveMode(t *testing.T) {
	assert.Equal(t, ModePositional, DeriveMode(nil, nil))
	assert.Equal(t, ModePositional, DeriveMode([]string{"name"}, nil))
	assert.Equal(t, ModePositional, DeriveMode(nil, []string{"name"}))
	assert.Equal(t, ModeSimilarity, DeriveMode([]string{"name"}, []string{"name"}))
}

func TestParseFilterMode(t *testing.T) {
	assert.Equal(t, FilterAll, ParseFilterMode(""))
	assert.Equal(t, FilterAll, ParseFilterMode("All"))
	assert.Equal(t, FilterMatched, ParseFilterMode("Matched only"))
	assert.Equal(t, FilterMatched, ParseFilterMode("matched_only"))
	assert.Equal(t, FilterNoMatch, ParseFilterMode("No match only"))
	assert.Equal(t, FilterNoMatch, ParseFilterMode("unmatched"))
	assert.Equal(t, FilterAll, ParseFilterMode("whatever"))
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategyRowOrder, ParseStrategy(""))
	assert.Equal(t, StrategyRowOrder, ParseStrategy("row_order"))
	assert.Equal(t, StrategyScoreOrder, ParseStrategy("score_order"))
	assert.Equal(t, StrategyRowOrder, ParseStrategy("bogus"))
}

func TestColumnError(t *testing.T) {
	err := &ColumnError{Side: SideLeft, Role: RoleKey, Column: "Наименование"}
	assert.Contains(t, err.Error(), "Наименование")
	assert.Contains(t, err.Error(), "left")
}

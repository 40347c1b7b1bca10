package model

import "strings"

// FilterMode — пост-фильтр результата по Match_Status.
type FilterMode string

const (
	FilterAll     FilterMode = "All"
	FilterMatched FilterMode = "Matched only"
	FilterNoMatch FilterMode = "No match only"
)

// ParseFilterMode терпим к регистру и подчёркиваниям ("matched_only" и т.п.).
// Неизвестное значение = All.
func ParseFilterMode(s string) FilterMode {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	switch s {
	case "matched", "matched only":
		return FilterMatched
	case "no match", "no match only", "unmatched", "unmatched only":
		return FilterNoMatch
	default:
		return FilterAll
	}
}

// ParseStrategy: неизвестное значение = row_order.
func ParseStrategy(s string) Strategy {
	if Strategy(strings.ToLower(strings.TrimSpace(s))) == StrategyScoreOrder {
		return StrategyScoreOrder
	}
	return StrategyRowOrder
}

package service

import (
	"sort"
	"strings"
)

// спец-пробелы → обычный пробел (NBSP, thin space, narrow NBSP)
var spaceUnifier = strings.NewReplacer("\u00A0", " ", "\u2009", " ", "\u202F", " ")

// normalizeText — подготовка значения к сравнению: нижний регистр,
// обрезка краёв, схлопывание пробелов. Форматирование не должно ронять схожесть.
func normalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = spaceUnifier.Replace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// tokenSort: сортируем токены по алфавиту (устойчиво к порядку слов)
func tokenSort(s string) string {
	if s == "" {
		return s
	}
	t := strings.Fields(s)
	sort.Strings(t)
	return strings.Join(t, " ")
}

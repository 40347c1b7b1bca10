package service

import (
	"strings"

	"merge-service/internal/merge/model"
)

// keySep — разделитель частей составного ключа. US (0x1F) в данных не встречается.
const keySep = "\x1f"

// projectKey собирает сравнимый ключ строки из значений ключевых колонок
// в заданном порядке. Значения нормализуются до склейки, отсутствующие = "".
// Вызывается только в similarity-режиме (keyCols непустой).
func projectKey(row model.Row, keyCols []string) string {
	parts := make([]string, len(keyCols))
	for i, c := range keyCols {
		parts[i] = normalizeText(row[c])
	}
	return strings.Join(parts, keySep)
}

func projectAll(rows []model.Row, keyCols []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = projectKey(r, keyCols)
	}
	return out
}

package model

import "fmt"

// Роли колонок в ошибках конфигурации.
const (
	RoleKey    = "key"
	RoleOutput = "output"
)

// ColumnError — запрошенная колонка отсутствует в таблице.
// Возвращается до какого-либо скоринга; колонки молча не выбрасываем.
type ColumnError struct {
	Side   Side
	Role   string // key | output
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s %s column %q not found in table", e.Side, e.Role, e.Column)
}

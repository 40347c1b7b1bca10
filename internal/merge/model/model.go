package model

// Side — откуда берётся колонка проекции.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// OutputColumn — одна колонка итоговой проекции (сторона + имя в исходной таблице).
type OutputColumn struct {
	Side Side   `json:"side"`
	Name string `json:"name"`
}

// Row — значения ячеек по имени колонки; пустая строка = отсутствующее значение.
type Row map[string]string

// Table — упорядоченные колонки + строки. Ядро таблицу никогда не мутирует.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Strategy — политика разрешения конкуренции за правые строки.
type Strategy string

const (
	// StrategyRowOrder — жадно в порядке левых строк (дефолт, ранние строки в приоритете).
	StrategyRowOrder Strategy = "row_order"
	// StrategyScoreOrder — глобально: сначала пары с наибольшей схожестью.
	StrategyScoreOrder Strategy = "score_order"
)

// DefaultThreshold — рекомендованный порог схожести.
const DefaultThreshold = 0.80

type Options struct {
	Output        []OutputColumn // порядок колонок результата
	LeftKeys      []string       // ключевые колонки слева (пусто = позиционный режим)
	RightKeys     []string       // ключевые колонки справа
	Threshold     float64        // порог схожести (0..1)
	Strategy      Strategy       // политика конкуренции (пусто = row_order)
	PreferLibrary bool           // считать схожесть библиотечным движком (strutil)
	Filter        FilterMode     // пост-фильтр по статусу
}

// MatchMode — режим слияния. Вычисляется один раз на запуск и не меняется по ходу.
type MatchMode int

const (
	ModePositional MatchMode = iota
	ModeSimilarity
)

func (m MatchMode) String() string {
	if m == ModeSimilarity {
		return "similarity"
	}
	return "positional"
}

// DeriveMode: similarity только когда ключи выбраны с обеих сторон.
// Частичный выбор (одна сторона) трактуем как «не настроено» → positional.
func DeriveMode(leftKeys, rightKeys []string) MatchMode {
	if len(leftKeys) > 0 && len(rightKeys) > 0 {
		return ModeSimilarity
	}
	return ModePositional
}

// Pair — соответствие левой строки правой. Right == -1, если пары нет.
type Pair struct {
	Left  int     `json:"left"`
	Right int     `json:"right"`
	Score float64 `json:"score"`
}

// Correspondence — разрешённые пары + непотреблённые правые строки (остаток).
// Инвариант similarity-режима: каждый правый индекс встречается не более одного раза.
type Correspondence struct {
	Pairs     []Pair `json:"pairs"`
	Remainder []int  `json:"remainder"`
}

const (
	StatusMatched = "Matched"
	StatusNoMatch = "No Match"
)

// MatchInfo присутствует только в similarity-режиме.
type MatchInfo struct {
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

// MergedRow — готовая строка результата. После Merger не мутируется,
// фильтр только отбирает подмножество.
type MergedRow struct {
	Cells map[string]string `json:"cells"`
	Match *MatchInfo        `json:"match,omitempty"`
}

// Stats — диагностика прогона (для UI и curl).
type Stats struct {
	Engine       string `json:"engine"`       // builtin | strutil | disabled
	ExactMatches int    `json:"exactMatches"` // левых строк с точным (1.0) лучшим кандидатом
	Comparisons  int    `json:"comparisons"`  // сколько пар реально посчитали
}

type Result struct {
	Columns []string    `json:"columns"`
	Rows    []MergedRow `json:"rows"`
	Mode    string      `json:"mode"`
	Stats   Stats       `json:"stats"`
}

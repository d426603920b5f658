package memory

// table - одна "таблица" хранилища: строки по id плюс порядок вставки.
// Синхронизация на стороне владельца (стора).
type table[T any] struct {
	nextID int
	rows   map[int]T
	order  []int
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[int]T)}
}

// allocID выдает следующий id. Идентификаторы не переиспользуются даже после удаления.
func (t *table[T]) allocID() int {
	id := t.nextID
	t.nextID++
	return id
}

func (t *table[T]) put(id int, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) remove(id int) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// find возвращает первую в порядке вставки строку, удовлетворяющую условию.
func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// filter возвращает подходящие строки в порядке вставки.
func (t *table[T]) filter(match func(T) bool) []T {
	out := make([]T, 0)
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) size() int { return len(t.rows) }

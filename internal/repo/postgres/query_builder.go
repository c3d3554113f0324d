package postgres

import (
	"fmt"
	"strings"
)

// setBuilder собирает SET для частичного UPDATE: только переданные поля, параметры $1..$n.
type setBuilder struct {
	parts []string
	args  []any
}

func (b *setBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.parts = append(b.parts, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setRaw - выражение без параметра (например, NULL).
func (b *setBuilder) setRaw(column, expr string) {
	b.parts = append(b.parts, column+" = "+expr)
}

// setString - nil пропускается.
func (b *setBuilder) setString(column string, v *string) {
	if v != nil {
		b.set(column, *v)
	}
}

// setNullable - nil пропускается, пустая строка записывается как NULL.
func (b *setBuilder) setNullable(column string, v *string) {
	switch {
	case v == nil:
	case *v == "":
		b.setRaw(column, "NULL")
	default:
		b.set(column, *v)
	}
}

// build возвращает "UPDATE <table> SET ..., updated_at = now() WHERE id = $n" и аргументы.
// Пустой патч всё равно обновляет updated_at.
func (b *setBuilder) build(table, id string) (string, []any) {
	parts := append(append([]string(nil), b.parts...), "updated_at = now()")
	args := append(append([]any(nil), b.args...), id)
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(parts, ", "), len(args)), args
}

// likePattern - подстрока для ILIKE с экранированием спецсимволов.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(q)) + "%"
}

// whereBuilder собирает условия WHERE для фильтров списка.
type whereBuilder struct {
	conds []string
	args  []any
}

// add добавляет условие; в format параметр подставляется как %[1]d (можно несколько раз).
func (w *whereBuilder) add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

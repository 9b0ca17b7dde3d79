package postgres

import (
	"strconv"
	"strings"
)

// whereBuilder arma la cláusula WHERE de un listado a partir de filtros
// opcionales. Cada valor agregado recibe el siguiente placeholder $n y el
// slice de argumentos avanza en paralelo, de modo que índice y argumento no
// pueden desalinearse.
type whereBuilder struct {
	conds []string
	args  []any
}

func newWhere() *whereBuilder {
	return &whereBuilder{}
}

// Bind registra un argumento y devuelve su placeholder ($1, $2, ...).
// También se usa para los LIMIT/OFFSET que siguen al WHERE.
func (b *whereBuilder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Equal agrega la condición col = $n.
func (b *whereBuilder) Equal(col string, v any) {
	b.conds = append(b.conds, col+" = "+b.Bind(v))
}

// GTE agrega la condición col >= $n.
func (b *whereBuilder) GTE(col string, v any) {
	b.conds = append(b.conds, col+" >= "+b.Bind(v))
}

// LTE agrega la condición col <= $n.
func (b *whereBuilder) LTE(col string, v any) {
	b.conds = append(b.conds, col+" <= "+b.Bind(v))
}

// Search agrega (a ILIKE $n OR b ILIKE $n OR ...) reutilizando un único
// placeholder para el término envuelto en %.
func (b *whereBuilder) Search(term string, cols ...string) {
	if term == "" || len(cols) == 0 {
		return
	}
	ph := b.Bind("%" + term + "%")
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c+" ILIKE "+ph)
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

// Raw agrega una condición sin parámetros (por ejemplo "u.is_active = true").
func (b *whereBuilder) Raw(cond string) {
	b.conds = append(b.conds, cond)
}

// Clause devuelve "WHERE ..." o cadena vacía si no hay condiciones.
func (b *whereBuilder) Clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// Args devuelve los argumentos acumulados en el orden de sus placeholders.
func (b *whereBuilder) Args() []any {
	return b.args
}

// setBuilder arma la cláusula SET de un UPDATE parcial: solo los campos
// presentes en el patch. Mantiene el mismo contrato de índices que whereBuilder
// para que el WHERE posterior continúe la numeración.
type setBuilder struct {
	assigns []string
	args    []any
}

func newSet() *setBuilder {
	return &setBuilder{}
}

// Bind registra un argumento y devuelve su placeholder.
func (b *setBuilder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// Set agrega la asignación col = $n.
func (b *setBuilder) Set(col string, v any) {
	b.assigns = append(b.assigns, col+" = "+b.Bind(v))
}

// SetRaw agrega una asignación sin parámetros (updated_at = CURRENT_TIMESTAMP).
func (b *setBuilder) SetRaw(expr string) {
	b.assigns = append(b.assigns, expr)
}

// Empty informa si no se agregó ninguna asignación con parámetros.
func (b *setBuilder) Empty() bool {
	return len(b.args) == 0
}

// Clause devuelve "SET a = $1, b = $2, ...".
func (b *setBuilder) Clause() string {
	return "SET " + strings.Join(b.assigns, ", ")
}

// Args devuelve los argumentos acumulados.
func (b *setBuilder) Args() []any {
	return b.args
}

// orderBy valida sortBy contra la lista blanca de la entidad y normaliza la
// dirección; cualquier valor fuera de lista cae al default. Evita inyección
// vía parámetros de ordenamiento, que no pueden ir como placeholders.
func orderBy(sortBy, sortOrder, def string, allowed ...string) string {
	field := def
	for _, a := range allowed {
		if a == sortBy {
			field = sortBy
			break
		}
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "DESC") {
		dir = "DESC"
	}
	return field + " " + dir
}

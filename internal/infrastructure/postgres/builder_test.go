package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El contrato del builder: cada placeholder $n corresponde exactamente al
// argumento n-1 del slice, sin importar qué filtros opcionales se agreguen.

func TestWhereBuilder_PlaceholdersEnOrden(t *testing.T) {
	w := newWhere()
	w.Equal("c.id", "empresa-1")
	w.Search("acme", "c.name", "c.tax_id")
	w.Equal("c.is_active", true)

	assert.Equal(t, "WHERE c.id = $1 AND (c.name ILIKE $2 OR c.tax_id ILIKE $2) AND c.is_active = $3", w.Clause())
	assert.Equal(t, []any{"empresa-1", "%acme%", true}, w.Args())
}

func TestWhereBuilder_SinCondiciones(t *testing.T) {
	w := newWhere()
	assert.Equal(t, "", w.Clause())
	assert.Empty(t, w.Args())
}

func TestWhereBuilder_SearchVacioNoAgrega(t *testing.T) {
	w := newWhere()
	w.Search("", "c.name")
	assert.Equal(t, "", w.Clause())
}

func TestWhereBuilder_BindContinuaNumeracion(t *testing.T) {
	// LIMIT/OFFSET deben continuar la numeración después de las condiciones.
	w := newWhere()
	w.Equal("s.company_id", "empresa-1")
	limit := w.Bind(20)
	offset := w.Bind(0)

	assert.Equal(t, "$2", limit)
	assert.Equal(t, "$3", offset)
	assert.Equal(t, []any{"empresa-1", 20, 0}, w.Args())
}

func TestWhereBuilder_RangoDeFechas(t *testing.T) {
	w := newWhere()
	w.GTE("p.created_at", "2024-01-01")
	w.LTE("p.created_at", "2024-12-31")
	assert.Equal(t, "WHERE p.created_at >= $1 AND p.created_at <= $2", w.Clause())
}

func TestSetBuilder_SoloCamposPresentes(t *testing.T) {
	s := newSet()
	s.Set("name", "Acme")
	s.Set("email", "acme@example.com")
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")
	id := s.Bind("id-1")

	assert.Equal(t, "SET name = $1, email = $2, updated_at = CURRENT_TIMESTAMP", s.Clause())
	assert.Equal(t, "$3", id)
	assert.Equal(t, []any{"Acme", "acme@example.com", "id-1"}, s.Args())
	assert.False(t, s.Empty())
}

func TestSetBuilder_VacioSinAsignaciones(t *testing.T) {
	s := newSet()
	assert.True(t, s.Empty())

	// SetRaw no cuenta como campo del patch: un UPDATE que solo refresca
	// updated_at sigue siendo un patch vacío.
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")
	assert.True(t, s.Empty())
}

func TestOrderBy_ListaBlanca(t *testing.T) {
	assert.Equal(t, "name ASC", orderBy("name", "ASC", "name", "name", "code", "created_at"))
	assert.Equal(t, "created_at DESC", orderBy("created_at", "desc", "name", "name", "code", "created_at"))
	// Campo fuera de lista cae al default
	assert.Equal(t, "name ASC", orderBy("password_hash; DROP TABLE users", "ASC", "name", "name", "code"))
	// Dirección desconocida normaliza a ASC
	assert.Equal(t, "name ASC", orderBy("name", "sideways", "name", "name"))
}

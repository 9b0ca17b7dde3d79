package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación del puerto PersonRepository sobre PostgreSQL.
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador de persistencia para personas.
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

const personCols = "p.id, p.identification_type_id, p.identification_number, p.first_name, p.last_name, p.email, p.phone, p.address, p.birth_date, p.is_active, p.created_at, p.updated_at"

// Create persiste una nueva persona. Devuelve domain.ErrDuplicate si el
// número de identificación ya existe para el tipo.
func (r *PersonRepo) Create(ctx context.Context, person *entity.Person) error {
	query := `
		INSERT INTO persons (id, identification_type_id, identification_number, first_name, last_name, email, phone, address, birth_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		person.ID, person.IdentificationTypeID, person.IdentificationNumber,
		person.FirstName, person.LastName, person.Email, person.Phone,
		person.Address, person.BirthDate, person.IsActive,
		person.CreatedAt, person.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID con su tipo de identificación.
func (r *PersonRepo) GetByID(ctx context.Context, id string) (*entity.Person, error) {
	query := fmt.Sprintf(`
		SELECT %s, it.name AS type_name, it.code AS type_code
		FROM persons p
		INNER JOIN identification_types it ON p.identification_type_id = it.id
		WHERE p.id = $1`, personCols)
	var p entity.Person
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.IdentificationTypeID, &p.IdentificationNumber, &p.FirstName,
		&p.LastName, &p.Email, &p.Phone, &p.Address, &p.BirthDate,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.IdentificationTypeName, &p.IdentificationTypeCode,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return &p, nil
}

// GetByTypeAndNumber busca una persona activa por tipo y número de identificación.
func (r *PersonRepo) GetByTypeAndNumber(ctx context.Context, identificationTypeID, identificationNumber string) (*entity.Person, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM persons p
		WHERE p.identification_type_id = $1 AND p.identification_number = $2 AND p.is_active = true`, personCols)
	var p entity.Person
	err := r.q.QueryRow(ctx, query, identificationTypeID, identificationNumber).Scan(
		&p.ID, &p.IdentificationTypeID, &p.IdentificationNumber, &p.FirstName,
		&p.LastName, &p.Email, &p.Phone, &p.Address, &p.BirthDate,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by identification: %w", err)
	}
	return &p, nil
}

// List devuelve una página de personas y el total. Conteo y página en paralelo.
func (r *PersonRepo) List(ctx context.Context, f repository.PersonFilter) ([]*entity.Person, int, error) {
	w := newWhere()
	w.Search(f.Search, "p.first_name", "p.last_name", "p.identification_number", "p.email")
	if f.IdentificationTypeID != "" {
		w.Equal("p.identification_type_id", f.IdentificationTypeID)
	}
	if f.IsActive != nil {
		w.Equal("p.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("p.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("p.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "first_name",
		"first_name", "last_name", "identification_number", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := personCols
	joinClause := ""
	if f.IncludeType {
		selectCols += ", it.name AS type_name, it.code AS type_code"
		joinClause = " INNER JOIN identification_types it ON p.identification_type_id = it.id"
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM persons p %s %s
		ORDER BY p.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM persons p %s`, whereClause)

	var (
		list  []*entity.Person
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list persons: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var p entity.Person
			dest := []any{&p.ID, &p.IdentificationTypeID, &p.IdentificationNumber, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Address, &p.BirthDate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt}
			if f.IncludeType {
				dest = append(dest, &p.IdentificationTypeName, &p.IdentificationTypeCode)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan person: %w", err)
			}
			list = append(list, &p)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count persons: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *PersonRepo) Update(ctx context.Context, id string, p repository.PersonPatch) (*entity.Person, error) {
	s := newSet()
	if p.IdentificationTypeID != nil {
		s.Set("identification_type_id", *p.IdentificationTypeID)
	}
	if p.IdentificationNumber != nil {
		s.Set("identification_number", *p.IdentificationNumber)
	}
	if p.FirstName != nil {
		s.Set("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		s.Set("last_name", *p.LastName)
	}
	if p.Email != nil {
		s.Set("email", *p.Email)
	}
	if p.Phone != nil {
		s.Set("phone", *p.Phone)
	}
	if p.Address != nil {
		s.Set("address", *p.Address)
	}
	if p.BirthDate != nil {
		s.Set("birth_date", *p.BirthDate)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE persons p %s WHERE p.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), personCols)

	var person entity.Person
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&person.ID, &person.IdentificationTypeID, &person.IdentificationNumber,
		&person.FirstName, &person.LastName, &person.Email, &person.Phone,
		&person.Address, &person.BirthDate, &person.IsActive,
		&person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update person: %w", err)
	}
	return &person, nil
}

// CountActiveUsers cuenta usuarios activos asociados a la persona.
func (r *PersonRepo) CountActiveUsers(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE person_id = $1 AND is_active = true`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count person users: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva la persona.
func (r *PersonRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE persons SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete person: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.IdentificationTypeRepository = (*IdentificationTypeRepo)(nil)

// IdentificationTypeRepo implementación del puerto sobre PostgreSQL.
type IdentificationTypeRepo struct {
	q Querier
}

// NewIdentificationTypeRepository construye el adaptador de persistencia.
func NewIdentificationTypeRepository(q Querier) *IdentificationTypeRepo {
	return &IdentificationTypeRepo{q: q}
}

const idTypeCols = "it.id, it.name, it.code, it.description, it.is_active, it.created_at, it.updated_at"

// Create persiste un nuevo tipo de identificación. Devuelve domain.ErrDuplicate
// si el código ya existe.
func (r *IdentificationTypeRepo) Create(ctx context.Context, it *entity.IdentificationType) error {
	query := `
		INSERT INTO identification_types (id, name, code, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.Code, it.Description, it.IsActive, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert identification type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de identificación por ID.
func (r *IdentificationTypeRepo) GetByID(ctx context.Context, id string) (*entity.IdentificationType, error) {
	query := fmt.Sprintf(`SELECT %s FROM identification_types it WHERE it.id = $1`, idTypeCols)
	var it entity.IdentificationType
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Code, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identification type: %w", err)
	}
	return &it, nil
}

// GetByCode busca un tipo activo por código (chequeo de unicidad).
func (r *IdentificationTypeRepo) GetByCode(ctx context.Context, code string) (*entity.IdentificationType, error) {
	query := fmt.Sprintf(`SELECT %s FROM identification_types it WHERE it.code = $1 AND it.is_active = true`, idTypeCols)
	var it entity.IdentificationType
	err := r.q.QueryRow(ctx, query, code).Scan(
		&it.ID, &it.Name, &it.Code, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identification type by code: %w", err)
	}
	return &it, nil
}

// List devuelve una página de tipos de identificación y el total.
func (r *IdentificationTypeRepo) List(ctx context.Context, f repository.IdentificationTypeFilter) ([]*entity.IdentificationType, int, error) {
	w := newWhere()
	w.Search(f.Search, "it.name", "it.code", "it.description")
	if f.IsActive != nil {
		w.Equal("it.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("it.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("it.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "code", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := idTypeCols
	joinClause := ""
	groupClause := ""
	if f.IncludeStats {
		selectCols += ", COUNT(DISTINCT p.id) AS persons_count"
		joinClause = " LEFT JOIN persons p ON it.id = p.identification_type_id AND p.is_active = true"
		groupClause = "GROUP BY " + idTypeCols
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM identification_types it %s %s %s
		ORDER BY it.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, groupClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT it.id) FROM identification_types it %s`, whereClause)

	var (
		list  []*entity.IdentificationType
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list identification types: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var it entity.IdentificationType
			dest := []any{&it.ID, &it.Name, &it.Code, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt}
			var persons int
			if f.IncludeStats {
				dest = append(dest, &persons)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan identification type: %w", err)
			}
			if f.IncludeStats {
				p := persons
				it.PersonsCount = &p
			}
			list = append(list, &it)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count identification types: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *IdentificationTypeRepo) Update(ctx context.Context, id string, p repository.IdentificationTypePatch) (*entity.IdentificationType, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Code != nil {
		s.Set("code", *p.Code)
	}
	if p.Description != nil {
		s.Set("description", *p.Description)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE identification_types it %s WHERE it.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), idTypeCols)

	var it entity.IdentificationType
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&it.ID, &it.Name, &it.Code, &it.Description, &it.IsActive, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update identification type: %w", err)
	}
	return &it, nil
}

// CountActivePersons cuenta personas activas que referencian el tipo.
func (r *IdentificationTypeRepo) CountActivePersons(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM persons WHERE identification_type_id = $1 AND is_active = true`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count identification type persons: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva el tipo de identificación.
func (r *IdentificationTypeRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE identification_types SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete identification type: %w", err)
	}
	return nil
}

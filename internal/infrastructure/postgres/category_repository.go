package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// Toda operación lleva company_id en el WHERE.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryCols = "c.id, c.company_id, c.name, c.description, c.is_active, c.created_at, c.updated_at"

// Create persiste una nueva categoría. Devuelve domain.ErrDuplicate si el
// nombre ya existe en la compañía.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.CompanyID, category.Name, category.Description,
		category.IsActive, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID dentro de la compañía.
func (r *CategoryRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories c
		WHERE c.id = $1 AND c.company_id = $2`, categoryCols)
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByCompanyAndName busca una categoría activa por nombre en la compañía.
func (r *CategoryRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories c
		WHERE c.company_id = $1 AND c.name = $2 AND c.is_active = true`, categoryCols)
	var c entity.Category
	err := r.q.QueryRow(ctx, query, companyID, name).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// List devuelve una página de categorías de la compañía y el total.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter) ([]*entity.Category, int, error) {
	w := newWhere()
	w.Equal("c.company_id", f.CompanyID)
	w.Search(f.Search, "c.name", "c.description")
	if f.IsActive != nil {
		w.Equal("c.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("c.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("c.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM categories c %s
		ORDER BY c.%s LIMIT %s OFFSET %s`,
		categoryCols, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM categories c %s`, whereClause)

	var (
		list  []*entity.Category
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.Category
			if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
				return fmt.Errorf("scan category: %w", err)
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *CategoryRepo) Update(ctx context.Context, id, companyID string, p repository.CategoryPatch) (*entity.Category, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Description != nil {
		s.Set("description", *p.Description)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id, companyID)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE categories c %s WHERE c.id = %s AND c.company_id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), s.Bind(companyID), categoryCols)

	var c entity.Category
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

// CountActiveProducts cuenta productos activos que referencian la categoría.
func (r *CategoryRepo) CountActiveProducts(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1 AND is_active = true`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count category products: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva la categoría dentro de la compañía.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND company_id = $2`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}

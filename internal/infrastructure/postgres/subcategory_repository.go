package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

const subcategoryCols = "s.id, s.company_id, s.category_id, s.name, s.description, s.is_active, s.created_at, s.updated_at"

// Create persiste una nueva subcategoría. Devuelve domain.ErrDuplicate si el
// nombre ya existe en la categoría.
func (r *SubcategoryRepo) Create(ctx context.Context, sub *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, company_id, category_id, name, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		sub.ID, sub.CompanyID, sub.CategoryID, sub.Name, sub.Description,
		sub.IsActive, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID dentro de la compañía, con el nombre
// de su categoría.
func (r *SubcategoryRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Subcategory, error) {
	query := fmt.Sprintf(`
		SELECT %s, c.name AS category_name
		FROM subcategories s
		INNER JOIN categories c ON s.category_id = c.id
		WHERE s.id = $1 AND s.company_id = $2`, subcategoryCols)
	var sub entity.Subcategory
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&sub.ID, &sub.CompanyID, &sub.CategoryID, &sub.Name, &sub.Description,
		&sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt, &sub.CategoryName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &sub, nil
}

// GetByCategoryAndName busca una subcategoría activa por nombre en la categoría.
func (r *SubcategoryRepo) GetByCategoryAndName(ctx context.Context, companyID, categoryID, name string) (*entity.Subcategory, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM subcategories s
		WHERE s.company_id = $1 AND s.category_id = $2 AND s.name = $3 AND s.is_active = true`, subcategoryCols)
	var sub entity.Subcategory
	err := r.q.QueryRow(ctx, query, companyID, categoryID, name).Scan(
		&sub.ID, &sub.CompanyID, &sub.CategoryID, &sub.Name, &sub.Description,
		&sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory by name: %w", err)
	}
	return &sub, nil
}

// List devuelve una página de subcategorías de la compañía y el total.
func (r *SubcategoryRepo) List(ctx context.Context, f repository.SubcategoryFilter) ([]*entity.Subcategory, int, error) {
	w := newWhere()
	w.Equal("s.company_id", f.CompanyID)
	w.Search(f.Search, "s.name", "s.description")
	if f.CategoryID != "" {
		w.Equal("s.category_id", f.CategoryID)
	}
	if f.IsActive != nil {
		w.Equal("s.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("s.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("s.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	dataQuery := fmt.Sprintf(`
		SELECT %s, c.name AS category_name
		FROM subcategories s
		INNER JOIN categories c ON s.category_id = c.id
		%s
		ORDER BY s.%s LIMIT %s OFFSET %s`,
		subcategoryCols, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM subcategories s %s`, whereClause)

	var (
		list  []*entity.Subcategory
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list subcategories: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var sub entity.Subcategory
			if err := rows.Scan(&sub.ID, &sub.CompanyID, &sub.CategoryID, &sub.Name, &sub.Description, &sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt, &sub.CategoryName); err != nil {
				return fmt.Errorf("scan subcategory: %w", err)
			}
			list = append(list, &sub)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count subcategories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *SubcategoryRepo) Update(ctx context.Context, id, companyID string, p repository.SubcategoryPatch) (*entity.Subcategory, error) {
	s := newSet()
	if p.CategoryID != nil {
		s.Set("category_id", *p.CategoryID)
	}
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
		UPDATE subcategories s %s WHERE s.id = %s AND s.company_id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), s.Bind(companyID), subcategoryCols)

	var sub entity.Subcategory
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&sub.ID, &sub.CompanyID, &sub.CategoryID, &sub.Name, &sub.Description,
		&sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update subcategory: %w", err)
	}
	return &sub, nil
}

// CountActiveProducts cuenta productos activos que referencian la subcategoría.
func (r *SubcategoryRepo) CountActiveProducts(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE subcategory_id = $1 AND is_active = true`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count subcategory products: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva la subcategoría dentro de la compañía.
func (r *SubcategoryRepo) SoftDelete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE subcategories SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND company_id = $2`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("soft delete subcategory: %w", err)
	}
	return nil
}

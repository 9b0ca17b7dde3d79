package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productCols = "p.id, p.company_id, p.category_id, p.subcategory_id, p.name, p.description, p.sku, p.price, p.cost, p.stock, p.is_active, p.created_at, p.updated_at"

// Create persiste un nuevo producto. Devuelve domain.ErrDuplicate si el SKU ya
// existe en la compañía.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, category_id, subcategory_id, name, description, sku, price, cost, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CompanyID, product.CategoryID, product.SubcategoryID,
		product.Name, product.Description, product.SKU, product.Price,
		product.Cost, product.Stock, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro de la compañía, con los nombres de
// su categoría y subcategoría.
func (r *ProductRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s, c.name AS category_name, s.name AS subcategory_name
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		LEFT JOIN subcategories s ON p.subcategory_id = s.id
		WHERE p.id = $1 AND p.company_id = $2`, productCols)
	var prod entity.Product
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&prod.ID, &prod.CompanyID, &prod.CategoryID, &prod.SubcategoryID,
		&prod.Name, &prod.Description, &prod.SKU, &prod.Price, &prod.Cost,
		&prod.Stock, &prod.IsActive, &prod.CreatedAt, &prod.UpdatedAt,
		&prod.CategoryName, &prod.SubcategoryName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &prod, nil
}

// GetByCompanyAndSKU busca un producto activo por SKU en la compañía.
func (r *ProductRepo) GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products p
		WHERE p.company_id = $1 AND p.sku = $2 AND p.is_active = true`, productCols)
	var prod entity.Product
	err := r.q.QueryRow(ctx, query, companyID, sku).Scan(
		&prod.ID, &prod.CompanyID, &prod.CategoryID, &prod.SubcategoryID,
		&prod.Name, &prod.Description, &prod.SKU, &prod.Price, &prod.Cost,
		&prod.Stock, &prod.IsActive, &prod.CreatedAt, &prod.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &prod, nil
}

// List devuelve una página de productos de la compañía y el total.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	w := newWhere()
	w.Equal("p.company_id", f.CompanyID)
	w.Search(f.Search, "p.name", "p.description", "p.sku")
	if f.CategoryID != "" {
		w.Equal("p.category_id", f.CategoryID)
	}
	if f.SubcategoryID != "" {
		w.Equal("p.subcategory_id", f.SubcategoryID)
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
	order := orderBy(f.SortBy, f.SortOrder, "name",
		"name", "sku", "price", "stock", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	dataQuery := fmt.Sprintf(`
		SELECT %s, c.name AS category_name, s.name AS subcategory_name
		FROM products p
		INNER JOIN categories c ON p.category_id = c.id
		LEFT JOIN subcategories s ON p.subcategory_id = s.id
		%s
		ORDER BY p.%s LIMIT %s OFFSET %s`,
		productCols, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products p %s`, whereClause)

	var (
		list  []*entity.Product
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var prod entity.Product
			if err := rows.Scan(
				&prod.ID, &prod.CompanyID, &prod.CategoryID, &prod.SubcategoryID,
				&prod.Name, &prod.Description, &prod.SKU, &prod.Price, &prod.Cost,
				&prod.Stock, &prod.IsActive, &prod.CreatedAt, &prod.UpdatedAt,
				&prod.CategoryName, &prod.SubcategoryName,
			); err != nil {
				return fmt.Errorf("scan product: %w", err)
			}
			list = append(list, &prod)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *ProductRepo) Update(ctx context.Context, id, companyID string, p repository.ProductPatch) (*entity.Product, error) {
	s := newSet()
	if p.CategoryID != nil {
		s.Set("category_id", *p.CategoryID)
	}
	if p.SubcategoryID != nil {
		s.Set("subcategory_id", *p.SubcategoryID)
	}
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Description != nil {
		s.Set("description", *p.Description)
	}
	if p.SKU != nil {
		s.Set("sku", *p.SKU)
	}
	if p.Price != nil {
		s.Set("price", *p.Price)
	}
	if p.Cost != nil {
		s.Set("cost", *p.Cost)
	}
	if p.Stock != nil {
		s.Set("stock", *p.Stock)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id, companyID)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE products p %s WHERE p.id = %s AND p.company_id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), s.Bind(companyID), productCols)

	var prod entity.Product
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&prod.ID, &prod.CompanyID, &prod.CategoryID, &prod.SubcategoryID,
		&prod.Name, &prod.Description, &prod.SKU, &prod.Price, &prod.Cost,
		&prod.Stock, &prod.IsActive, &prod.CreatedAt, &prod.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &prod, nil
}

// Delete elimina físicamente el producto dentro de la compañía.
func (r *ProductRepo) Delete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

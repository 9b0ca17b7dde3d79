package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para compañías.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyCols = "c.id, c.name, c.tax_id, c.email, c.phone, c.address, c.is_active, c.created_at, c.updated_at"

// Create persiste una nueva compañía. Devuelve domain.ErrDuplicate si el NIT ya existe.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, email, phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.TaxID, company.Email,
		company.Phone, company.Address, company.IsActive,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una compañía por ID dentro del scope indicado.
// Con withStats agrega conteos de tiendas y usuarios activos.
func (r *CompanyRepo) GetByID(ctx context.Context, id, scopeCompanyID string, withStats bool) (*entity.Company, error) {
	w := newWhere()
	w.Equal("c.id", id)
	if scopeCompanyID != "" {
		w.Equal("c.id", scopeCompanyID)
	}

	var c entity.Company
	if withStats {
		query := fmt.Sprintf(`
			SELECT %s, COUNT(DISTINCT s.id) AS stores_count, COUNT(DISTINCT u.id) AS users_count
			FROM companies c
			LEFT JOIN stores s ON c.id = s.company_id AND s.is_active = true
			LEFT JOIN users u ON c.id = u.company_id AND u.is_active = true
			%s
			GROUP BY %s`, companyCols, w.Clause(), companyCols)
		var stores, users int
		err := r.q.QueryRow(ctx, query, w.Args()...).Scan(
			&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &stores, &users,
		)
		if err != nil {
			if isNoRows(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("get company: %w", err)
		}
		c.StoresCount, c.UsersCount = &stores, &users
		return &c, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM companies c %s`, companyCols, w.Clause())
	err := r.q.QueryRow(ctx, query, w.Args()...).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByTaxID obtiene una compañía activa por NIT (chequeo de unicidad).
func (r *CompanyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies c WHERE c.tax_id = $1 AND c.is_active = true`, companyCols)
	var c entity.Company
	err := r.q.QueryRow(ctx, query, taxID).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax id: %w", err)
	}
	return &c, nil
}

// List devuelve una página de compañías y el total de filas que cumplen el
// filtro. Conteo y página se consultan en paralelo.
func (r *CompanyRepo) List(ctx context.Context, f repository.CompanyFilter) ([]*entity.Company, int, error) {
	w := newWhere()
	if f.ScopeCompanyID != "" {
		w.Equal("c.id", f.ScopeCompanyID)
	}
	w.Search(f.Search, "c.name", "c.tax_id", "c.email")
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
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "tax_id", "email", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := companyCols
	joinClause := ""
	groupClause := ""
	if f.IncludeStats {
		selectCols += ", COUNT(DISTINCT s.id) AS stores_count, COUNT(DISTINCT u.id) AS users_count"
		joinClause = `
			LEFT JOIN stores s ON c.id = s.company_id AND s.is_active = true
			LEFT JOIN users u ON c.id = u.company_id AND u.is_active = true`
		groupClause = "GROUP BY " + companyCols
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM companies c %s %s %s
		ORDER BY c.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, groupClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT c.id) FROM companies c %s`, whereClause)

	var (
		list  []*entity.Company
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list companies: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var c entity.Company
			dest := []any{&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address, &c.IsActive, &c.CreatedAt, &c.UpdatedAt}
			var stores, users int
			if f.IncludeStats {
				dest = append(dest, &stores, &users)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan company: %w", err)
			}
			if f.IncludeStats {
				s, u := stores, users
				c.StoresCount, c.UsersCount = &s, &u
			}
			list = append(list, &c)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count companies: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch y refresca
// updated_at. Devuelve nil, nil si la compañía no existe.
func (r *CompanyRepo) Update(ctx context.Context, id string, p repository.CompanyPatch) (*entity.Company, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.TaxID != nil {
		s.Set("tax_id", *p.TaxID)
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
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id, "", false)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE companies c %s WHERE c.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), companyCols)

	var c entity.Company
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Email, &c.Phone, &c.Address,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// CountActiveDependents cuenta tiendas y usuarios activos que bloquean la eliminación.
func (r *CompanyRepo) CountActiveDependents(ctx context.Context, id string) (int, int, error) {
	query := `
		SELECT COUNT(DISTINCT s.id), COUNT(DISTINCT u.id)
		FROM companies c
		LEFT JOIN stores s ON c.id = s.company_id AND s.is_active = true
		LEFT JOIN users u ON c.id = u.company_id AND u.is_active = true
		WHERE c.id = $1
		GROUP BY c.id`
	var stores, users int
	if err := r.q.QueryRow(ctx, query, id).Scan(&stores, &users); err != nil {
		if isNoRows(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("count company dependents: %w", err)
	}
	return stores, users, nil
}

// SoftDelete desactiva la compañía (no elimina la fila).
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE companies SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete company: %w", err)
	}
	return nil
}

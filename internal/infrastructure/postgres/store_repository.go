package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeCols = "s.id, s.company_id, s.name, s.code, s.address, s.phone, s.email, s.is_active, s.created_at, s.updated_at"

// Create persiste una nueva tienda. Devuelve domain.ErrDuplicate si el código
// ya existe en la compañía.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, company_id, name, code, address, phone, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		store.ID, store.CompanyID, store.Name, store.Code, store.Address,
		store.Phone, store.Email, store.IsActive, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID dentro del scope indicado, con el nombre
// de su compañía.
func (r *StoreRepo) GetByID(ctx context.Context, id, scopeCompanyID string) (*entity.Store, error) {
	w := newWhere()
	w.Equal("s.id", id)
	if scopeCompanyID != "" {
		w.Equal("s.company_id", scopeCompanyID)
	}
	query := fmt.Sprintf(`
		SELECT %s, c.name AS company_name
		FROM stores s
		INNER JOIN companies c ON s.company_id = c.id
		%s`, storeCols, w.Clause())

	var st entity.Store
	err := r.q.QueryRow(ctx, query, w.Args()...).Scan(
		&st.ID, &st.CompanyID, &st.Name, &st.Code, &st.Address, &st.Phone,
		&st.Email, &st.IsActive, &st.CreatedAt, &st.UpdatedAt, &st.CompanyName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &st, nil
}

// GetByCompanyAndCode busca una tienda activa por compañía y código (unicidad).
func (r *StoreRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Store, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM stores s
		WHERE s.company_id = $1 AND s.code = $2 AND s.is_active = true`, storeCols)
	var st entity.Store
	err := r.q.QueryRow(ctx, query, companyID, code).Scan(
		&st.ID, &st.CompanyID, &st.Name, &st.Code, &st.Address, &st.Phone,
		&st.Email, &st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by code: %w", err)
	}
	return &st, nil
}

// List devuelve una página de tiendas y el total. Conteo y página en paralelo.
func (r *StoreRepo) List(ctx context.Context, f repository.StoreFilter) ([]*entity.Store, int, error) {
	w := newWhere()
	if f.ScopeCompanyID != "" {
		w.Equal("s.company_id", f.ScopeCompanyID)
	} else if f.CompanyID != "" {
		w.Equal("s.company_id", f.CompanyID)
	}
	w.Search(f.Search, "s.name", "s.code", "s.address")
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
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "code", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := storeCols
	joinClause := ""
	groupClause := ""
	if f.IncludeCompany {
		selectCols += ", c.name AS company_name"
		joinClause += " INNER JOIN companies c ON s.company_id = c.id"
	}
	if f.IncludeStats {
		selectCols += ", COUNT(DISTINCT u.id) AS users_count"
		joinClause += " LEFT JOIN users u ON s.company_id = u.company_id AND u.is_active = true"
		groupClause = "GROUP BY " + storeCols
		if f.IncludeCompany {
			groupClause += ", c.name"
		}
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM stores s %s %s %s
		ORDER BY s.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, groupClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT s.id) FROM stores s %s`, whereClause)

	var (
		list  []*entity.Store
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list stores: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var st entity.Store
			dest := []any{&st.ID, &st.CompanyID, &st.Name, &st.Code, &st.Address, &st.Phone, &st.Email, &st.IsActive, &st.CreatedAt, &st.UpdatedAt}
			if f.IncludeCompany {
				dest = append(dest, &st.CompanyName)
			}
			var users int
			if f.IncludeStats {
				dest = append(dest, &users)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan store: %w", err)
			}
			if f.IncludeStats {
				u := users
				st.UsersCount = &u
			}
			list = append(list, &st)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count stores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *StoreRepo) Update(ctx context.Context, id string, p repository.StorePatch) (*entity.Store, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Code != nil {
		s.Set("code", *p.Code)
	}
	if p.Address != nil {
		s.Set("address", *p.Address)
	}
	if p.Phone != nil {
		s.Set("phone", *p.Phone)
	}
	if p.Email != nil {
		s.Set("email", *p.Email)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id, "")
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE stores s %s WHERE s.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), storeCols)

	var st entity.Store
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&st.ID, &st.CompanyID, &st.Name, &st.Code, &st.Address, &st.Phone,
		&st.Email, &st.IsActive, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update store: %w", err)
	}
	return &st, nil
}

// CountActiveUsers cuenta usuarios activos de la compañía dueña de la tienda
// (bloquean la eliminación).
func (r *StoreRepo) CountActiveUsers(ctx context.Context, storeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM users u
		INNER JOIN stores s ON u.company_id = s.company_id
		WHERE s.id = $1 AND u.is_active = true`
	var n int
	if err := r.q.QueryRow(ctx, query, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count store users: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva la tienda.
func (r *StoreRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stores SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete store: %w", err)
	}
	return nil
}

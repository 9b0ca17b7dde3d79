package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.TaxRepository = (*TaxRepo)(nil)

// TaxRepo implementación del puerto TaxRepository sobre PostgreSQL.
type TaxRepo struct {
	q Querier
}

// NewTaxRepository construye el adaptador de persistencia para impuestos.
func NewTaxRepository(q Querier) *TaxRepo {
	return &TaxRepo{q: q}
}

const taxCols = "t.id, t.company_id, t.name, t.rate, t.is_active, t.created_at, t.updated_at"

// Create persiste un nuevo impuesto. Devuelve domain.ErrDuplicate si el nombre
// ya existe en la compañía.
func (r *TaxRepo) Create(ctx context.Context, tax *entity.Tax) error {
	query := `
		INSERT INTO taxes (id, company_id, name, rate, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		tax.ID, tax.CompanyID, tax.Name, tax.Rate,
		tax.IsActive, tax.CreatedAt, tax.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tax: %w", err)
	}
	return nil
}

// GetByID obtiene un impuesto por ID dentro de la compañía.
func (r *TaxRepo) GetByID(ctx context.Context, id, companyID string) (*entity.Tax, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM taxes t
		WHERE t.id = $1 AND t.company_id = $2`, taxCols)
	return r.scanOne(ctx, query, id, companyID)
}

// GetByCompanyAndName busca un impuesto activo por nombre en la compañía.
func (r *TaxRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Tax, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM taxes t
		WHERE t.company_id = $1 AND t.name = $2 AND t.is_active = true`, taxCols)
	return r.scanOne(ctx, query, companyID, name)
}

func (r *TaxRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Tax, error) {
	var t entity.Tax
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Rate,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax: %w", err)
	}
	return &t, nil
}

// List devuelve una página de impuestos de la compañía y el total.
func (r *TaxRepo) List(ctx context.Context, f repository.TaxFilter) ([]*entity.Tax, int, error) {
	w := newWhere()
	w.Equal("t.company_id", f.CompanyID)
	w.Search(f.Search, "t.name")
	if f.IsActive != nil {
		w.Equal("t.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("t.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("t.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "rate", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM taxes t %s
		ORDER BY t.%s LIMIT %s OFFSET %s`,
		taxCols, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM taxes t %s`, whereClause)

	var (
		list  []*entity.Tax
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list taxes: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var t entity.Tax
			if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Rate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return fmt.Errorf("scan tax: %w", err)
			}
			list = append(list, &t)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count taxes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *TaxRepo) Update(ctx context.Context, id, companyID string, p repository.TaxPatch) (*entity.Tax, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Rate != nil {
		s.Set("rate", *p.Rate)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id, companyID)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE taxes t %s WHERE t.id = %s AND t.company_id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), s.Bind(companyID), taxCols)

	var t entity.Tax
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Rate,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update tax: %w", err)
	}
	return &t, nil
}

// Delete elimina físicamente el impuesto dentro de la compañía.
func (r *TaxRepo) Delete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM taxes WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete tax: %w", err)
	}
	return nil
}

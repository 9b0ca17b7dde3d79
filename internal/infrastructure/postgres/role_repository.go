package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Permissions se persiste como JSONB.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

const roleCols = "r.id, r.name, r.description, r.permissions, r.is_active, r.created_at, r.updated_at"

// Create persiste un nuevo rol. Devuelve domain.ErrDuplicate si el nombre ya existe.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	query := `
		INSERT INTO roles (id, name, description, permissions, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		role.ID, role.Name, role.Description, role.Permissions,
		role.IsActive, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	query := fmt.Sprintf(`SELECT %s FROM roles r WHERE r.id = $1`, roleCols)
	var role entity.Role
	err := r.q.QueryRow(ctx, query, id).Scan(
		&role.ID, &role.Name, &role.Description, &role.Permissions,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName busca un rol activo por nombre (chequeo de unicidad).
func (r *RoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	query := fmt.Sprintf(`SELECT %s FROM roles r WHERE r.name = $1 AND r.is_active = true`, roleCols)
	var role entity.Role
	err := r.q.QueryRow(ctx, query, name).Scan(
		&role.ID, &role.Name, &role.Description, &role.Permissions,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// List devuelve una página de roles y el total.
func (r *RoleRepo) List(ctx context.Context, f repository.RoleFilter) ([]*entity.Role, int, error) {
	w := newWhere()
	w.Search(f.Search, "r.name", "r.description")
	if f.IsActive != nil {
		w.Equal("r.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("r.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("r.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "name", "name", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := roleCols
	joinClause := ""
	groupClause := ""
	if f.IncludeStats {
		selectCols += ", COUNT(DISTINCT u.id) AS users_count"
		joinClause = " LEFT JOIN users u ON r.id = u.role_id AND u.is_active = true"
		groupClause = "GROUP BY " + roleCols
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM roles r %s %s %s
		ORDER BY r.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, groupClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT r.id) FROM roles r %s`, whereClause)

	var (
		list  []*entity.Role
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list roles: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var role entity.Role
			dest := []any{&role.ID, &role.Name, &role.Description, &role.Permissions, &role.IsActive, &role.CreatedAt, &role.UpdatedAt}
			var users int
			if f.IncludeStats {
				dest = append(dest, &users)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan role: %w", err)
			}
			if f.IncludeStats {
				u := users
				role.UsersCount = &u
			}
			list = append(list, &role)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count roles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *RoleRepo) Update(ctx context.Context, id string, p repository.RolePatch) (*entity.Role, error) {
	s := newSet()
	if p.Name != nil {
		s.Set("name", *p.Name)
	}
	if p.Description != nil {
		s.Set("description", *p.Description)
	}
	if p.Permissions != nil {
		s.Set("permissions", p.Permissions)
	}
	if p.IsActive != nil {
		s.Set("is_active", *p.IsActive)
	}
	if s.Empty() {
		return r.GetByID(ctx, id)
	}
	s.SetRaw("updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE roles r %s WHERE r.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), roleCols)

	var role entity.Role
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&role.ID, &role.Name, &role.Description, &role.Permissions,
		&role.IsActive, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return &role, nil
}

// CountActiveUsers cuenta usuarios activos con el rol asignado.
func (r *RoleRepo) CountActiveUsers(ctx context.Context, id string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = $1 AND is_active = true`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count role users: %w", err)
	}
	return n, nil
}

// SoftDelete desactiva el rol.
func (r *RoleRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE roles SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete role: %w", err)
	}
	return nil
}

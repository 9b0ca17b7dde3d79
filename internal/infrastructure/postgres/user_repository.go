package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userCols = "u.id, u.person_id, u.company_id, u.role_id, u.username, u.email, u.is_active, u.last_login, u.created_at, u.updated_at"

// Create persiste un nuevo usuario. Devuelve domain.ErrDuplicate si el
// username ya está tomado entre usuarios activos.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, person_id, company_id, role_id, username, password_hash, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.PersonID, user.CompanyID, user.RoleID,
		user.Username, user.PasswordHash, user.Email, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID con sus datos relacionados. Si
// scopeCompanyID no es vacío, restringe a esa compañía.
func (r *UserRepo) GetByID(ctx context.Context, id, scopeCompanyID string) (*entity.User, error) {
	w := newWhere()
	w.Equal("u.id", id)
	if scopeCompanyID != "" {
		w.Equal("u.company_id", scopeCompanyID)
	}
	query := fmt.Sprintf(`
		SELECT %s, p.first_name, p.last_name, c.name AS company_name, r2.name AS role_name
		FROM users u
		INNER JOIN persons p ON u.person_id = p.id
		INNER JOIN companies c ON u.company_id = c.id
		INNER JOIN roles r2 ON u.role_id = r2.id
		%s`, userCols, w.Clause())
	var u entity.User
	err := r.q.QueryRow(ctx, query, w.Args()...).Scan(
		&u.ID, &u.PersonID, &u.CompanyID, &u.RoleID, &u.Username, &u.Email,
		&u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
		&u.PersonFirstName, &u.PersonLastName, &u.CompanyName, &u.RoleName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByUsername busca un usuario activo por nombre de usuario.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users u
		WHERE u.username = $1 AND u.is_active = true`, userCols)
	return r.scanOne(ctx, query, username)
}

// GetActiveByPersonID busca el usuario activo asociado a una persona.
func (r *UserRepo) GetActiveByPersonID(ctx context.Context, personID string) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users u
		WHERE u.person_id = $1 AND u.is_active = true`, userCols)
	return r.scanOne(ctx, query, personID)
}

func (r *UserRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.PersonID, &u.CompanyID, &u.RoleID, &u.Username, &u.Email,
		&u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List devuelve una página de usuarios y el total. Conteo y página en paralelo.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	w := newWhere()
	w.Search(f.Search, "u.username", "u.email")
	if f.ScopeCompanyID != "" {
		w.Equal("u.company_id", f.ScopeCompanyID)
	} else if f.CompanyID != "" {
		w.Equal("u.company_id", f.CompanyID)
	}
	if f.RoleID != "" {
		w.Equal("u.role_id", f.RoleID)
	}
	if f.IsActive != nil {
		w.Equal("u.is_active", *f.IsActive)
	}
	if f.CreatedFrom != nil {
		w.GTE("u.created_at", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		w.LTE("u.created_at", *f.CreatedTo)
	}

	whereClause := w.Clause()
	countArgs := append([]any(nil), w.Args()...)
	order := orderBy(f.SortBy, f.SortOrder, "username",
		"username", "email", "last_login", "created_at", "updated_at")
	limitPh, offsetPh := w.Bind(f.Limit), w.Bind(f.Offset)

	selectCols := userCols
	joinClause := ""
	if f.IncludeDetails {
		selectCols += ", p.first_name, p.last_name, c.name AS company_name, r2.name AS role_name"
		joinClause = `
			INNER JOIN persons p ON u.person_id = p.id
			INNER JOIN companies c ON u.company_id = c.id
			INNER JOIN roles r2 ON u.role_id = r2.id`
	}

	dataQuery := fmt.Sprintf(`
		SELECT %s FROM users u %s %s
		ORDER BY u.%s LIMIT %s OFFSET %s`,
		selectCols, joinClause, whereClause, order, limitPh, offsetPh)
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users u %s`, whereClause)

	var (
		list  []*entity.User
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.q.Query(gctx, dataQuery, w.Args()...)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var u entity.User
			dest := []any{&u.ID, &u.PersonID, &u.CompanyID, &u.RoleID, &u.Username, &u.Email, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt}
			if f.IncludeDetails {
				dest = append(dest, &u.PersonFirstName, &u.PersonLastName, &u.CompanyName, &u.RoleName)
			}
			if err := rows.Scan(dest...); err != nil {
				return fmt.Errorf("scan user: %w", err)
			}
			list = append(list, &u)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.q.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update aplica un SET dinámico con los campos presentes del patch.
func (r *UserRepo) Update(ctx context.Context, id string, p repository.UserPatch) (*entity.User, error) {
	s := newSet()
	if p.PersonID != nil {
		s.Set("person_id", *p.PersonID)
	}
	if p.CompanyID != nil {
		s.Set("company_id", *p.CompanyID)
	}
	if p.RoleID != nil {
		s.Set("role_id", *p.RoleID)
	}
	if p.Username != nil {
		s.Set("username", *p.Username)
	}
	if p.PasswordHash != nil {
		s.Set("password_hash", *p.PasswordHash)
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
		UPDATE users u %s WHERE u.id = %s
		RETURNING %s`, s.Clause(), s.Bind(id), userCols)

	var u entity.User
	err := r.q.QueryRow(ctx, query, s.Args()...).Scan(
		&u.ID, &u.PersonID, &u.CompanyID, &u.RoleID, &u.Username, &u.Email,
		&u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &u, nil
}

// SoftDelete desactiva el usuario.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET is_active = false, updated_at = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete user: %w", err)
	}
	return nil
}

const profileQuery = `
	SELECT u.id, u.username, u.email, u.person_id, u.company_id, u.role_id,
	       u.password_hash, u.last_login,
	       p.id, p.first_name, p.last_name, p.identification_number,
	       c.id, c.name,
	       r2.id, r2.name, r2.permissions
	FROM users u
	INNER JOIN persons p ON u.person_id = p.id
	INNER JOIN companies c ON u.company_id = c.id
	INNER JOIN roles r2 ON u.role_id = r2.id
	WHERE %s AND u.is_active = true`

// GetProfileByUsername obtiene el perfil completo para el flujo de login.
// Incluye el hash de contraseña.
func (r *UserRepo) GetProfileByUsername(ctx context.Context, username string) (*entity.AuthUser, error) {
	return r.scanProfile(ctx, fmt.Sprintf(profileQuery, "u.username = $1"), username)
}

// GetProfileByID obtiene el perfil completo del usuario autenticado.
func (r *UserRepo) GetProfileByID(ctx context.Context, id string) (*entity.AuthUser, error) {
	return r.scanProfile(ctx, fmt.Sprintf(profileQuery, "u.id = $1"), id)
}

func (r *UserRepo) scanProfile(ctx context.Context, query string, arg any) (*entity.AuthUser, error) {
	var u entity.AuthUser
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PersonID, &u.CompanyID, &u.RoleID,
		&u.PasswordHash, &u.LastLogin,
		&u.Person.ID, &u.Person.FirstName, &u.Person.LastName, &u.Person.IdentificationNumber,
		&u.Company.ID, &u.Company.Name,
		&u.Role.ID, &u.Role.Name, &u.Role.Permissions,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return &u, nil
}

// UpdateLastLogin registra el instante del login exitoso.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

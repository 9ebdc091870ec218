package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
)

type roleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) *roleRepository {
	return &roleRepository{db: db}
}

const roleColumns = `id, uid, name, default_role, created_at, updated_at`

func scanRole(scanner rowScanner) (*domain.Role, error) {
	role := &domain.Role{}
	var updatedAt sql.NullTime
	err := scanner.Scan(
		&role.ID,
		&role.UID,
		&role.Name,
		&role.IsDefault,
		&role.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		role.UpdatedAt = &updatedAt.Time
	}
	return role, nil
}

func (r *roleRepository) GetByUID(ctx context.Context, uid string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE uid = $1`

	role, err := scanRole(r.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRowNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1`

	role, err := scanRole(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRowNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) GetDefault(ctx context.Context) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE default_role`

	role, err := scanRole(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRowNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) GetAll(ctx context.Context) ([]*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) Save(ctx context.Context, role *domain.Role) error {
	return saveRole(ctx, r.db, role)
}

// SaveAll применяет все изменения в одной транзакции. Частичный порядок
// важен: роли сохраняются в переданной последовательности, так что при
// смене дефолта старая роль должна идти первой.
func (r *roleRepository) SaveAll(ctx context.Context, roles []*domain.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, role := range roles {
		if err := saveRole(ctx, tx, role); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func saveRole(ctx context.Context, executor DBExecutor, role *domain.Role) error {
	now := time.Now()

	if role.ID == 0 {
		query := `
			INSERT INTO roles (uid, name, default_role, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`
		return executor.QueryRowContext(ctx, query, role.UID, role.Name, role.IsDefault, now).
			Scan(&role.ID, &role.CreatedAt)
	}

	query := `
		UPDATE roles
		SET name = $2, default_role = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := executor.ExecContext(ctx, query, role.ID, role.Name, role.IsDefault, now)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrRowNotFound
	}

	role.UpdatedAt = &now
	return nil
}

func (r *roleRepository) DeleteByUID(ctx context.Context, uid string) error {
	query := `DELETE FROM roles WHERE uid = $1`

	result, err := r.db.ExecContext(ctx, query, uid)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrRowNotFound
	}
	return nil
}

func (r *roleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count)
	return count, err
}

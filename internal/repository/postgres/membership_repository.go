package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
)

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{db: db}
}

// Членство всегда читается вместе со своей ролью.
const membershipQuery = `
	SELECT m.id, m.uid, m.user_id, m.team_id, m.created_at, m.updated_at,
	       r.id, r.uid, r.name, r.default_role, r.created_at, r.updated_at
	FROM memberships m
	JOIN roles r ON r.id = m.role_id
`

func scanMembership(scanner rowScanner) (*domain.Membership, error) {
	membership := &domain.Membership{Role: &domain.Role{}}
	var membershipUpdatedAt, roleUpdatedAt sql.NullTime
	err := scanner.Scan(
		&membership.ID,
		&membership.UID,
		&membership.UserID,
		&membership.TeamID,
		&membership.CreatedAt,
		&membershipUpdatedAt,
		&membership.Role.ID,
		&membership.Role.UID,
		&membership.Role.Name,
		&membership.Role.IsDefault,
		&membership.Role.CreatedAt,
		&roleUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if membershipUpdatedAt.Valid {
		membership.UpdatedAt = &membershipUpdatedAt.Time
	}
	if roleUpdatedAt.Valid {
		membership.Role.UpdatedAt = &roleUpdatedAt.Time
	}
	return membership, nil
}

func (r *membershipRepository) GetByUID(ctx context.Context, uid string) (*domain.Membership, error) {
	query := membershipQuery + ` WHERE m.uid = $1`

	membership, err := scanMembership(r.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRowNotFound
		}
		return nil, err
	}
	return membership, nil
}

func (r *membershipRepository) GetAll(ctx context.Context) ([]*domain.Membership, error) {
	query := membershipQuery + ` ORDER BY m.id`
	return r.queryMemberships(ctx, query)
}

func (r *membershipRepository) GetByRoleUID(ctx context.Context, roleUID string) ([]*domain.Membership, error) {
	query := membershipQuery + ` WHERE r.uid = $1 ORDER BY m.id`
	return r.queryMemberships(ctx, query, roleUID)
}

func (r *membershipRepository) queryMemberships(ctx context.Context, query string, args ...any) ([]*domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}
	return memberships, rows.Err()
}

func (r *membershipRepository) GetByNaturalKey(ctx context.Context, userID, teamID, roleUID string) (*domain.Membership, error) {
	query := membershipQuery + ` WHERE m.user_id = $1 AND m.team_id = $2 AND r.uid = $3`

	membership, err := scanMembership(r.db.QueryRowContext(ctx, query, userID, teamID, roleUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRowNotFound
		}
		return nil, err
	}
	return membership, nil
}

func (r *membershipRepository) Save(ctx context.Context, membership *domain.Membership) error {
	if membership.Role == nil || membership.Role.ID == 0 {
		return fmt.Errorf("membership role is not resolved")
	}

	now := time.Now()

	if membership.ID == 0 {
		query := `
			INSERT INTO memberships (uid, user_id, team_id, role_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`
		return r.db.QueryRowContext(
			ctx,
			query,
			membership.UID,
			membership.UserID,
			membership.TeamID,
			membership.Role.ID,
			now,
		).Scan(&membership.ID, &membership.CreatedAt)
	}

	query := `
		UPDATE memberships
		SET user_id = $2, team_id = $3, role_id = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(
		ctx,
		query,
		membership.ID,
		membership.UserID,
		membership.TeamID,
		membership.Role.ID,
		now,
	)
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

	membership.UpdatedAt = &now
	return nil
}

func (r *membershipRepository) DeleteByUID(ctx context.Context, uid string) error {
	query := `DELETE FROM memberships WHERE uid = $1`

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

func (r *membershipRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memberships`).Scan(&count)
	return count, err
}

func (r *membershipRepository) CountByRoleUID(ctx context.Context, roleUID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM memberships m
		JOIN roles r ON r.id = m.role_id
		WHERE r.uid = $1
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, roleUID).Scan(&count)
	return count, err
}

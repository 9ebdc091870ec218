package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetRoleMembershipStats(ctx context.Context) ([]*domain.RoleMembershipStat, error) {
	query := `
		SELECT r.uid, r.name, COUNT(m.id) AS membership_count
		FROM roles r
		LEFT JOIN memberships m ON m.role_id = r.id
		GROUP BY r.uid, r.name
		ORDER BY r.name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.RoleMembershipStat, 0)
	for rows.Next() {
		stat := &domain.RoleMembershipStat{}
		if err := rows.Scan(&stat.RoleUID, &stat.RoleName, &stat.MembershipCount); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (r *statsRepository) GetTotals(ctx context.Context) (*domain.StoreTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM roles),
			(SELECT COUNT(*) FROM memberships)
	`

	totals := &domain.StoreTotals{}
	if err := r.db.QueryRowContext(ctx, query).Scan(&totals.Roles, &totals.Memberships); err != nil {
		return nil, err
	}
	return totals, nil
}

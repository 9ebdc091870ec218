package repository

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type StatsRepository interface {
	GetRoleMembershipStats(ctx context.Context) ([]*domain.RoleMembershipStat, error)
	GetTotals(ctx context.Context) (*domain.StoreTotals, error)
}

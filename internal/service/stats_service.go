package service

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type StatsService interface {
	GetTotals(ctx context.Context) (*domain.StoreTotals, error)
	GetRoleMembershipStats(ctx context.Context) ([]*domain.RoleMembershipStat, error)
}

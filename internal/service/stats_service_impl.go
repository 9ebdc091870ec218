package service

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetTotals(ctx context.Context) (*domain.StoreTotals, error) {
	totals, err := s.statsRepo.GetTotals(ctx)
	if err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgStatsHelp)
	}
	return totals, nil
}

func (s *statsService) GetRoleMembershipStats(ctx context.Context) ([]*domain.RoleMembershipStat, error) {
	stats, err := s.statsRepo.GetRoleMembershipStats(ctx)
	if err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgStatsHelp)
	}
	return stats, nil
}

package repository

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type MembershipRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Membership, error)
	GetAll(ctx context.Context) ([]*domain.Membership, error)
	GetByRoleUID(ctx context.Context, roleUID string) ([]*domain.Membership, error)
	// GetByNaturalKey ищет членство по тройке (userId, teamId, roleUid).
	GetByNaturalKey(ctx context.Context, userID, teamID, roleUID string) (*domain.Membership, error)
	Save(ctx context.Context, membership *domain.Membership) error
	DeleteByUID(ctx context.Context, uid string) error
	Count(ctx context.Context) (int, error)
	CountByRoleUID(ctx context.Context, roleUID string) (int, error)
}

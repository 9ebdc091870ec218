package service

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

// MembershipInput - входные данные создания членства. RoleUID опционален:
// пустое значение означает роль по умолчанию.
type MembershipInput struct {
	UserID  string
	TeamID  string
	RoleUID string
}

type MembershipService interface {
	FindByUID(ctx context.Context, uid string) (*domain.Membership, error)
	FindAll(ctx context.Context) ([]*domain.Membership, error)
	// FindRoleOfMembership возвращает роль членства с данным uid.
	FindRoleOfMembership(ctx context.Context, uid string) (*domain.Role, error)
	// FindMembershipsOfRole возвращает членства роли. Существование самой
	// роли не проверяется: для неизвестного uid список просто пуст.
	FindMembershipsOfRole(ctx context.Context, roleUID string) ([]*domain.Membership, error)
	Create(ctx context.Context, input *MembershipInput) (*domain.Membership, error)
	Delete(ctx context.Context, uid string) error
}

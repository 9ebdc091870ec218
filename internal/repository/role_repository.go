package repository

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

type RoleRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	// GetDefault возвращает единственную роль с установленным флагом
	// default_role или ErrRowNotFound, если такой роли нет.
	GetDefault(ctx context.Context) (*domain.Role, error)
	GetAll(ctx context.Context) ([]*domain.Role, error)
	Save(ctx context.Context, role *domain.Role) error
	// SaveAll сохраняет все роли в одной транзакции. Используется для
	// смены роли по умолчанию: промежуточное состояние с двумя или нулем
	// дефолтных ролей не должно быть наблюдаемым.
	SaveAll(ctx context.Context, roles []*domain.Role) error
	DeleteByUID(ctx context.Context, uid string) error
	Count(ctx context.Context) (int, error)
}

package service

import (
	"context"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

// RoleInput - входные данные создания или обновления роли.
// uid клиентом не передается: при создании он назначается сервером,
// при обновлении берется из пути запроса.
type RoleInput struct {
	Name      string
	IsDefault bool
}

type RoleService interface {
	FindByUID(ctx context.Context, uid string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]*domain.Role, error)
	// FindDefault возвращает роль по умолчанию. Ее отсутствие - деградация
	// данных, а не ошибка клиента.
	FindDefault(ctx context.Context) (*domain.Role, error)
	Create(ctx context.Context, input *RoleInput) (*domain.Role, error)
	Update(ctx context.Context, input *RoleInput, uid string) (*domain.Role, error)
	// SetDefault переносит флаг роли по умолчанию на роль с данным uid.
	// Идемпотентна для текущего дефолта. Обе затронутые роли сохраняются
	// одной транзакцией.
	SetDefault(ctx context.Context, uid string) (*domain.Role, error)
	Delete(ctx context.Context, uid string) error
}

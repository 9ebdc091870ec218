package domain

import "time"

// RoleNameMaxLength - предельная длина имени роли.
const RoleNameMaxLength = 150

// Role - роль, назначаемая участникам команд.
// ID - внутренний ключ хранилища, наружу никогда не отдается; UID - внешний
// идентификатор, назначается при создании и далее неизменен.
type Role struct {
	ID        int64
	UID       string
	Name      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

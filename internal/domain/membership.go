package domain

import "time"

// MembershipIDMaxLength - предельная длина userId и teamId.
const MembershipIDMaxLength = 40

// Membership связывает внешнего пользователя и внешнюю команду с ролью.
// UserID и TeamID ссылаются на сущности внешних сервисов и здесь не хранятся.
// Натуральный ключ - тройка (UserID, TeamID, Role.UID).
type Membership struct {
	ID        int64
	UID       string
	UserID    string
	TeamID    string
	Role      *Role
	CreatedAt time.Time
	UpdatedAt *time.Time
}

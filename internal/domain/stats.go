package domain

// RoleMembershipStat - количество членств, ссылающихся на роль.
type RoleMembershipStat struct {
	RoleUID         string
	RoleName        string
	MembershipCount int
}

// StoreTotals - суммарные счетчики хранилища.
type StoreTotals struct {
	Roles       int
	Memberships int
}

package handler

// APIError - единый формат ошибок всех ручек.
type APIError struct {
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Help         string `json:"help,omitempty"`
	HTTPStatus   int    `json:"httpStatus"`
	ReasonPhrase string `json:"reasonPhrase"`
	Path         string `json:"path,omitempty"`
	Timestamp    string `json:"timestamp"`
}

type RoleRequest struct {
	Name        string `json:"name"`
	DefaultRole bool   `json:"defaultRole"`
}

type RoleResponse struct {
	UID         string  `json:"uid"`
	Name        string  `json:"name"`
	DefaultRole bool    `json:"defaultRole"`
	CreatedAt   *string `json:"createdAt,omitempty"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
}

type RoleRef struct {
	UID string `json:"uid"`
}

type MembershipRequest struct {
	// uid клиента игнорируется: внешний идентификатор назначает сервер
	UID    string   `json:"uid,omitempty"`
	UserID string   `json:"userId"`
	TeamID string   `json:"teamId"`
	Role   *RoleRef `json:"role,omitempty"`
}

type MembershipResponse struct {
	UID       string       `json:"uid"`
	UserID    string       `json:"userId"`
	TeamID    string       `json:"teamId"`
	Role      RoleResponse `json:"role"`
	CreatedAt *string      `json:"createdAt,omitempty"`
	UpdatedAt *string      `json:"updatedAt,omitempty"`
}

type TotalsResponse struct {
	Roles       int `json:"roles"`
	Memberships int `json:"memberships"`
}

type RoleStatResponse struct {
	RoleUID         string `json:"roleUid"`
	RoleName        string `json:"roleName"`
	MembershipCount int    `json:"membershipCount"`
}

type StatsResponse struct {
	Totals TotalsResponse     `json:"totals"`
	Roles  []RoleStatResponse `json:"roles"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

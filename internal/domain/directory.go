package domain

// DirectoryUser - сводка пользователя из внешнего User API.
type DirectoryUser struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// DirectoryTeam - сводка команды из внешнего Team API.
type DirectoryTeam struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	TeamLeadID    string   `json:"teamLeadId"`
	TeamMemberIDs []string `json:"teamMemberIds"`
}

package handler

import (
	"time"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/service"
)

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func domainRoleToHTTP(role *domain.Role) RoleResponse {
	return RoleResponse{
		UID:         role.UID,
		Name:        role.Name,
		DefaultRole: role.IsDefault,
		CreatedAt:   formatTime(role.CreatedAt),
		UpdatedAt:   formatTimePtr(role.UpdatedAt),
	}
}

func domainRolesToHTTP(roles []*domain.Role) []RoleResponse {
	result := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		result = append(result, domainRoleToHTTP(role))
	}
	return result
}

func httpRoleToInput(req RoleRequest) *service.RoleInput {
	return &service.RoleInput{
		Name:      req.Name,
		IsDefault: req.DefaultRole,
	}
}

func domainMembershipToHTTP(membership *domain.Membership) MembershipResponse {
	return MembershipResponse{
		UID:       membership.UID,
		UserID:    membership.UserID,
		TeamID:    membership.TeamID,
		Role:      domainRoleToHTTP(membership.Role),
		CreatedAt: formatTime(membership.CreatedAt),
		UpdatedAt: formatTimePtr(membership.UpdatedAt),
	}
}

func domainMembershipsToHTTP(memberships []*domain.Membership) []MembershipResponse {
	result := make([]MembershipResponse, 0, len(memberships))
	for _, membership := range memberships {
		result = append(result, domainMembershipToHTTP(membership))
	}
	return result
}

func httpMembershipToInput(req MembershipRequest) *service.MembershipInput {
	input := &service.MembershipInput{
		UserID: req.UserID,
		TeamID: req.TeamID,
	}
	if req.Role != nil {
		input.RoleUID = req.Role.UID
	}
	return input
}

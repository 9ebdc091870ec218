package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/role-membership-service/internal/directory"
	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
	"github.com/bagdasarian/role-membership-service/internal/validation"
	"github.com/google/uuid"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	roleService    RoleService
	directory      directory.Client
}

// NewMembershipService создает новый экземпляр MembershipService.
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	roleService RoleService,
	directoryClient directory.Client,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		roleService:    roleService,
		directory:      directoryClient,
	}
}

func (s *membershipService) FindByUID(ctx context.Context, uid string) (*domain.Membership, error) {
	membership, err := s.membershipRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewNotFoundError(uid)
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipFindByUIDHelp, uid)
	}
	return membership, nil
}

func (s *membershipService) FindAll(ctx context.Context) ([]*domain.Membership, error) {
	memberships, err := s.membershipRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipFindAllHelp)
	}
	return memberships, nil
}

func (s *membershipService) FindRoleOfMembership(ctx context.Context, uid string) (*domain.Role, error) {
	membership, err := s.membershipRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewNotFoundError(uid)
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipFindRoleOfMembershipHelp, uid)
	}
	return membership.Role, nil
}

func (s *membershipService) FindMembershipsOfRole(ctx context.Context, roleUID string) ([]*domain.Membership, error) {
	memberships, err := s.membershipRepo.GetByRoleUID(ctx, roleUID)
	if err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipFindMembershipsOfRoleHelp, roleUID)
	}
	return memberships, nil
}

// Create проводит вход через весь конвейер проверок: обязательность и длина
// полей, существование пользователя и команды во внешних справочниках,
// разрешение роли, уникальность натурального ключа - и только затем пишет.
// uid членства всегда назначается сервером, значение клиента игнорируется.
func (s *membershipService) Create(ctx context.Context, input *MembershipInput) (*domain.Membership, error) {
	role, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	membership := &domain.Membership{
		UID:    uuid.NewString(),
		UserID: input.UserID,
		TeamID: input.TeamID,
		Role:   role,
	}

	if err := s.membershipRepo.Save(ctx, membership); err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipSaveHelp)
	}
	return membership, nil
}

func (s *membershipService) Delete(ctx context.Context, uid string) error {
	if err := s.membershipRepo.DeleteByUID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return domain.NewNotFoundError(uid)
		}
		return domain.NewDeleteFailedError(err, domain.MsgMembershipDeleteHelp, uid)
	}
	return nil
}

// validate возвращает разрешенную роль будущего членства. Порядок проверок
// фиксирован: локальные правила полей до любых удаленных вызовов, проверка
// пользователя до проверки команды.
func (s *membershipService) validate(ctx context.Context, input *MembershipInput) (*domain.Role, error) {
	if err := validation.Required(input.UserID, "userId"); err != nil {
		return nil, err
	}
	if err := validation.StringMaxLength(input.UserID, "userId", domain.MembershipIDMaxLength); err != nil {
		return nil, err
	}
	if err := validation.Required(input.TeamID, "teamId"); err != nil {
		return nil, err
	}
	if err := validation.StringMaxLength(input.TeamID, "teamId", domain.MembershipIDMaxLength); err != nil {
		return nil, err
	}

	user, err := s.directory.FindUserByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewReferenceNotFoundError("userId", input.UserID)
	}

	team, err := s.directory.FindTeamByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.NewReferenceNotFoundError("teamId", input.TeamID)
	}

	var role *domain.Role
	if input.RoleUID == "" {
		role, err = s.roleService.FindDefault(ctx)
	} else {
		role, err = s.roleService.FindByUID(ctx, input.RoleUID)
	}
	if err != nil {
		return nil, err
	}

	owner, err := s.membershipRepo.GetByNaturalKey(ctx, input.UserID, input.TeamID, role.UID)
	if err != nil && !errors.Is(err, repository.ErrRowNotFound) {
		return nil, domain.NewUnexpectedError(err, domain.MsgMembershipSaveHelp)
	}

	ownerUID := ""
	if owner != nil {
		ownerUID = owner.UID
	}
	if err := validation.Uniqueness("", ownerUID); err != nil {
		return nil, err
	}

	return role, nil
}

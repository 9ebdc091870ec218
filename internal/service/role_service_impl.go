package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
	"github.com/bagdasarian/role-membership-service/internal/validation"
	"github.com/google/uuid"
)

type roleService struct {
	roleRepo       repository.RoleRepository
	membershipRepo repository.MembershipRepository
}

// NewRoleService создает новый экземпляр RoleService. MembershipRepository
// нужен только для защиты от удаления роли, на которую ссылаются членства.
func NewRoleService(roleRepo repository.RoleRepository, membershipRepo repository.MembershipRepository) RoleService {
	return &roleService{
		roleRepo:       roleRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *roleService) FindByUID(ctx context.Context, uid string) (*domain.Role, error) {
	role, err := s.roleRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewNotFoundError(uid)
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleFindByUIDHelp, uid)
	}
	return role, nil
}

func (s *roleService) FindAll(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleFindAllHelp)
	}
	return roles, nil
}

func (s *roleService) FindDefault(ctx context.Context) (*domain.Role, error) {
	role, err := s.roleRepo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewDefaultRoleNotFoundError()
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleFindDefaultHelp)
	}
	return role, nil
}

func (s *roleService) Create(ctx context.Context, input *RoleInput) (*domain.Role, error) {
	if err := s.validate(ctx, input, ""); err != nil {
		return nil, err
	}

	role := &domain.Role{
		UID:       uuid.NewString(),
		Name:      input.Name,
		IsDefault: input.IsDefault,
	}

	if input.IsDefault {
		// снять флаг с текущего дефолта; его отсутствие - не ошибка
		current, err := s.roleRepo.GetDefault(ctx)
		if err != nil && !errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewUnexpectedError(err, domain.MsgRoleSaveHelp)
		}
		if current != nil {
			current.IsDefault = false
			if err := s.roleRepo.SaveAll(ctx, []*domain.Role{current, role}); err != nil {
				return nil, domain.NewUnexpectedError(err, domain.MsgRoleSaveHelp)
			}
			return role, nil
		}
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleSaveHelp)
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, input *RoleInput, uid string) (*domain.Role, error) {
	if err := s.validate(ctx, input, uid); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewNotFoundError(uid)
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleUpdateHelp, uid)
	}

	// update меняет только имя; флаг дефолта переносится через SetDefault
	role.Name = input.Name

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleUpdateHelp, uid)
	}
	return role, nil
}

func (s *roleService) SetDefault(ctx context.Context, uid string) (*domain.Role, error) {
	current, err := s.roleRepo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewDefaultRoleNotFoundError()
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleUpdateDefaultHelp)
	}

	if current.UID == uid {
		return current, nil
	}

	target, err := s.roleRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, domain.NewNotFoundError(uid)
		}
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleUpdateDefaultHelp)
	}

	// старый дефолт снимается первым, обе записи уходят одной транзакцией
	current.IsDefault = false
	target.IsDefault = true
	if err := s.roleRepo.SaveAll(ctx, []*domain.Role{current, target}); err != nil {
		return nil, domain.NewUnexpectedError(err, domain.MsgRoleUpdateDefaultHelp)
	}
	return target, nil
}

func (s *roleService) Delete(ctx context.Context, uid string) error {
	memberships, err := s.membershipRepo.CountByRoleUID(ctx, uid)
	if err != nil {
		return domain.NewUnexpectedError(err, domain.MsgRoleDeleteHelp, uid)
	}
	if memberships > 0 {
		return domain.NewRoleInUseError(uid, memberships)
	}

	if err := s.roleRepo.DeleteByUID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return domain.NewNotFoundError(uid)
		}
		return domain.NewDeleteFailedError(err, domain.MsgRoleDeleteHelp, uid)
	}
	return nil
}

// validate проверяет имя роли. uid - обновляемая роль (пустая строка при
// создании): проверка уникальности не считает конфликтом имя, которым
// цель обновления уже владеет.
func (s *roleService) validate(ctx context.Context, input *RoleInput, uid string) error {
	if err := validation.Required(input.Name, "name"); err != nil {
		return err
	}
	if err := validation.StringMaxLength(input.Name, "name", domain.RoleNameMaxLength); err != nil {
		return err
	}

	owner, err := s.roleRepo.GetByName(ctx, input.Name)
	if err != nil && !errors.Is(err, repository.ErrRowNotFound) {
		return domain.NewUnexpectedError(err, domain.MsgRoleSaveHelp)
	}

	ownerUID := ""
	if owner != nil {
		ownerUID = owner.UID
	}
	return validation.Uniqueness(uid, ownerUID)
}

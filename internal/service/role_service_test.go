package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleService_FindByUID(t *testing.T) {
	t.Run("роль найдена", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)
		ctx := context.Background()

		role := &domain.Role{ID: 1, UID: "uid-1", Name: "Admin"}
		mockRoleRepo.On("GetByUID", mock.Anything, "uid-1").Return(role, nil).Once()

		result, err := service.FindByUID(ctx, "uid-1")

		require.NoError(t, err)
		assert.Equal(t, role, result)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("ошибка: роль отсутствует", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetByUID", mock.Anything, "missing").Return(nil, repository.ErrRowNotFound).Once()

		_, err := service.FindByUID(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("сбой хранилища оборачивается в UNEXPECTED", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetByUID", mock.Anything, "uid-1").Return(nil, errors.New("connection reset")).Once()

		_, err := service.FindByUID(context.Background(), "uid-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnexpected))

		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.MsgRoleFindByUIDHelp, domainErr.HelpKey)
	})
}

func TestRoleService_FindDefault(t *testing.T) {
	t.Run("роль по умолчанию найдена", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		role := &domain.Role{ID: 1, UID: "uid-1", Name: "Member", IsDefault: true}
		mockRoleRepo.On("GetDefault", mock.Anything).Return(role, nil).Once()

		result, err := service.FindDefault(context.Background())

		require.NoError(t, err)
		assert.Equal(t, role, result)
	})

	t.Run("ошибка: в пустом хранилище дефолта нет", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetDefault", mock.Anything).Return(nil, repository.ErrRowNotFound).Once()

		_, err := service.FindDefault(context.Background())

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDefaultRoleNotFound))
	})
}

func TestRoleService_Create(t *testing.T) {
	t.Run("успешное создание обычной роли", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("Save", mock.Anything, mock.MatchedBy(func(role *domain.Role) bool {
			return role.Name == "Admin" && !role.IsDefault && role.UID != ""
		})).Return(nil).Once()

		role, err := service.Create(context.Background(), &RoleInput{Name: "Admin"})

		require.NoError(t, err)
		assert.Equal(t, "Admin", role.Name)
		assert.NotEmpty(t, role.UID)
		assert.False(t, role.IsDefault)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("создание дефолтной роли снимает флаг со старой", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		oldDefault := &domain.Role{ID: 1, UID: "uid-member", Name: "Member", IsDefault: true}

		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("GetDefault", mock.Anything).Return(oldDefault, nil).Once()
		mockRoleRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(roles []*domain.Role) bool {
			return len(roles) == 2 &&
				roles[0].UID == "uid-member" && !roles[0].IsDefault &&
				roles[1].Name == "Admin" && roles[1].IsDefault
		})).Return(nil).Once()

		role, err := service.Create(context.Background(), &RoleInput{Name: "Admin", IsDefault: true})

		require.NoError(t, err)
		assert.True(t, role.IsDefault)
		assert.False(t, oldDefault.IsDefault)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("создание дефолтной роли при отсутствии старой", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetByName", mock.Anything, "Member").Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("GetDefault", mock.Anything).Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("Save", mock.Anything, mock.MatchedBy(func(role *domain.Role) bool {
			return role.IsDefault
		})).Return(nil).Once()

		role, err := service.Create(context.Background(), &RoleInput{Name: "Member", IsDefault: true})

		require.NoError(t, err)
		assert.True(t, role.IsDefault)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("ошибка: имя обязательно", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		_, err := service.Create(context.Background(), &RoleInput{Name: ""})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRequired))
		mockRoleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: имя длиннее 150 символов", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		_, err := service.Create(context.Background(), &RoleInput{Name: strings.Repeat("a", 151)})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMaxLength))
	})

	t.Run("ошибка: имя уже занято", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		existing := &domain.Role{ID: 1, UID: "uid-1", Name: "Admin"}
		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(existing, nil).Once()

		_, err := service.Create(context.Background(), &RoleInput{Name: "Admin"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUniqueness))
		mockRoleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestRoleService_Update(t *testing.T) {
	t.Run("успешное обновление", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		existing := &domain.Role{ID: 1, UID: "uid-1", Name: "Admin"}
		mockRoleRepo.On("GetByName", mock.Anything, "Administrator").Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("GetByUID", mock.Anything, "uid-1").Return(existing, nil).Once()
		mockRoleRepo.On("Save", mock.Anything, existing).Return(nil).Once()

		role, err := service.Update(context.Background(), &RoleInput{Name: "Administrator"}, "uid-1")

		require.NoError(t, err)
		assert.Equal(t, "Administrator", role.Name)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("обновление со своим же именем не конфликтует", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		existing := &domain.Role{ID: 1, UID: "uid-1", Name: "Admin"}
		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(existing, nil).Once()
		mockRoleRepo.On("GetByUID", mock.Anything, "uid-1").Return(existing, nil).Once()
		mockRoleRepo.On("Save", mock.Anything, existing).Return(nil).Once()

		_, err := service.Update(context.Background(), &RoleInput{Name: "Admin"}, "uid-1")

		require.NoError(t, err)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("ошибка: имя занято другой ролью", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		other := &domain.Role{ID: 2, UID: "uid-2", Name: "Admin"}
		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(other, nil).Once()

		_, err := service.Update(context.Background(), &RoleInput{Name: "Admin"}, "uid-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUniqueness))
	})

	t.Run("ошибка: цель обновления отсутствует", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetByName", mock.Anything, "Admin").Return(nil, repository.ErrRowNotFound).Once()
		mockRoleRepo.On("GetByUID", mock.Anything, "missing").Return(nil, repository.ErrRowNotFound).Once()

		_, err := service.Update(context.Background(), &RoleInput{Name: "Admin"}, "missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestRoleService_SetDefault(t *testing.T) {
	t.Run("перенос флага на другую роль", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		current := &domain.Role{ID: 1, UID: "uid-member", Name: "Member", IsDefault: true}
		target := &domain.Role{ID: 2, UID: "uid-admin", Name: "Admin"}

		mockRoleRepo.On("GetDefault", mock.Anything).Return(current, nil).Once()
		mockRoleRepo.On("GetByUID", mock.Anything, "uid-admin").Return(target, nil).Once()
		mockRoleRepo.On("SaveAll", mock.Anything, mock.MatchedBy(func(roles []*domain.Role) bool {
			// старый дефолт идет первым и уже без флага
			return len(roles) == 2 &&
				roles[0].UID == "uid-member" && !roles[0].IsDefault &&
				roles[1].UID == "uid-admin" && roles[1].IsDefault
		})).Return(nil).Once()

		result, err := service.SetDefault(context.Background(), "uid-admin")

		require.NoError(t, err)
		assert.Equal(t, "uid-admin", result.UID)
		assert.True(t, result.IsDefault)
		assert.False(t, current.IsDefault)
		mockRoleRepo.AssertExpectations(t)
	})

	t.Run("идемпотентность: цель уже дефолт", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		current := &domain.Role{ID: 1, UID: "uid-member", Name: "Member", IsDefault: true}
		mockRoleRepo.On("GetDefault", mock.Anything).Return(current, nil).Once()

		result, err := service.SetDefault(context.Background(), "uid-member")

		require.NoError(t, err)
		assert.Equal(t, current, result)
		mockRoleRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
		mockRoleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: цель отсутствует, состояние не меняется", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		current := &domain.Role{ID: 1, UID: "uid-member", Name: "Member", IsDefault: true}
		mockRoleRepo.On("GetDefault", mock.Anything).Return(current, nil).Once()
		mockRoleRepo.On("GetByUID", mock.Anything, "missing").Return(nil, repository.ErrRowNotFound).Once()

		_, err := service.SetDefault(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.True(t, current.IsDefault)
		mockRoleRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: текущего дефолта нет", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockRoleRepo.On("GetDefault", mock.Anything).Return(nil, repository.ErrRowNotFound).Once()

		_, err := service.SetDefault(context.Background(), "uid-admin")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDefaultRoleNotFound))
	})
}

func TestRoleService_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockMembershipRepo.On("CountByRoleUID", mock.Anything, "uid-1").Return(0, nil).Once()
		mockRoleRepo.On("DeleteByUID", mock.Anything, "uid-1").Return(nil).Once()

		err := service.Delete(context.Background(), "uid-1")

		require.NoError(t, err)
		mockRoleRepo.AssertExpectations(t)
		mockMembershipRepo.AssertExpectations(t)
	})

	t.Run("ошибка: на роль ссылаются членства", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockMembershipRepo.On("CountByRoleUID", mock.Anything, "uid-1").Return(3, nil).Once()

		err := service.Delete(context.Background(), "uid-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRoleInUse))
		mockRoleRepo.AssertNotCalled(t, "DeleteByUID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: роль отсутствует", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockMembershipRepo.On("CountByRoleUID", mock.Anything, "missing").Return(0, nil).Once()
		mockRoleRepo.On("DeleteByUID", mock.Anything, "missing").Return(repository.ErrRowNotFound).Once()

		err := service.Delete(context.Background(), "missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("сбой хранилища оборачивается в DELETE_FAILED", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockMembershipRepo := new(MockMembershipRepository)
		service := NewRoleService(mockRoleRepo, mockMembershipRepo)

		mockMembershipRepo.On("CountByRoleUID", mock.Anything, "uid-1").Return(0, nil).Once()
		mockRoleRepo.On("DeleteByUID", mock.Anything, "uid-1").Return(errors.New("disk failure")).Once()

		err := service.Delete(context.Background(), "uid-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDeleteFailed))
	})
}

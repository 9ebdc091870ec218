package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/role-membership-service/internal/domain"
	"github.com/bagdasarian/role-membership-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMembershipRepo создает мок БД и репозиторий для Membership
func setupMembershipRepo(t *testing.T) (*membershipRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMembershipRepository(db), mock
}

var membershipColumns = []string{
	"id", "uid", "user_id", "team_id", "created_at", "updated_at",
	"id", "uid", "name", "default_role", "created_at", "updated_at",
}

func TestMembershipRepository_GetByUID(t *testing.T) {
	t.Run("членство читается вместе с ролью", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(membershipColumns).
			AddRow(1, "m-1", "user-1", "team-1", createdAt, nil,
				5, "role-5", "Developer", false, createdAt, nil)
		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("m-1").
			WillReturnRows(rows)

		membership, err := repo.GetByUID(context.Background(), "m-1")

		require.NoError(t, err)
		assert.Equal(t, "m-1", membership.UID)
		assert.Equal(t, "user-1", membership.UserID)
		assert.Equal(t, "team-1", membership.TeamID)
		require.NotNil(t, membership.Role)
		assert.Equal(t, int64(5), membership.Role.ID)
		assert.Equal(t, "Developer", membership.Role.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("членство не найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		membership, err := repo.GetByUID(context.Background(), "missing")

		require.Error(t, err)
		assert.Nil(t, membership)
		assert.ErrorIs(t, err, repository.ErrRowNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_GetByNaturalKey(t *testing.T) {
	t.Run("связка найдена", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(membershipColumns).
			AddRow(1, "m-1", "user-1", "team-1", createdAt, nil,
				5, "role-5", "Developer", false, createdAt, nil)
		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("user-1", "team-1", "role-5").
			WillReturnRows(rows)

		membership, err := repo.GetByNaturalKey(context.Background(), "user-1", "team-1", "role-5")

		require.NoError(t, err)
		assert.Equal(t, "m-1", membership.UID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("связка свободна", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("user-1", "team-1", "role-5").
			WillReturnError(sql.ErrNoRows)

		membership, err := repo.GetByNaturalKey(context.Background(), "user-1", "team-1", "role-5")

		require.Error(t, err)
		assert.Nil(t, membership)
		assert.ErrorIs(t, err, repository.ErrRowNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_GetByRoleUID(t *testing.T) {
	t.Run("список членств роли", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(membershipColumns).
			AddRow(1, "m-1", "user-1", "team-1", createdAt, nil,
				5, "role-5", "Developer", false, createdAt, nil).
			AddRow(2, "m-2", "user-2", "team-1", createdAt, nil,
				5, "role-5", "Developer", false, createdAt, nil)
		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("role-5").
			WillReturnRows(rows)

		memberships, err := repo.GetByRoleUID(context.Background(), "role-5")

		require.NoError(t, err)
		require.Len(t, memberships, 2)
		assert.Equal(t, "user-1", memberships[0].UserID)
		assert.Equal(t, "user-2", memberships[1].UserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("у роли нет членств", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectQuery("SELECT m.id, m.uid, m.user_id, m.team_id").
			WithArgs("role-5").
			WillReturnRows(sqlmock.NewRows(membershipColumns))

		memberships, err := repo.GetByRoleUID(context.Background(), "role-5")

		require.NoError(t, err)
		assert.Len(t, memberships, 0, "пустой список - не ошибка")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_Save(t *testing.T) {
	t.Run("вставка нового членства", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		now := time.Now()
		membership := &domain.Membership{
			UID:    "m-1",
			UserID: "user-1",
			TeamID: "team-1",
			Role:   &domain.Role{ID: 5, UID: "role-5"},
		}

		rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, now)
		mock.ExpectQuery("INSERT INTO memberships").
			WithArgs("m-1", "user-1", "team-1", int64(5), sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Save(context.Background(), membership)

		require.NoError(t, err)
		assert.Equal(t, int64(11), membership.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("роль не разрешена", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		membership := &domain.Membership{UID: "m-1", UserID: "user-1", TeamID: "team-1"}

		err := repo.Save(context.Background(), membership)

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_DeleteByUID(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectExec("DELETE FROM memberships WHERE uid").
			WithArgs("m-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteByUID(context.Background(), "m-1")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("членство не найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectExec("DELETE FROM memberships WHERE uid").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteByUID(context.Background(), "missing")

		assert.ErrorIs(t, err, repository.ErrRowNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_CountByRoleUID(t *testing.T) {
	t.Run("подсчёт членств роли", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		rows := sqlmock.NewRows([]string{"count"}).AddRow(3)
		mock.ExpectQuery("SELECT COUNT").
			WithArgs("role-5").
			WillReturnRows(rows)

		count, err := repo.CountByRoleUID(context.Background(), "role-5")

		require.NoError(t, err)
		assert.Equal(t, 3, count)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/songs-service/internal/models"
	"github.com/pribylovaa/songs-service/internal/storage"
)

func TestUpdateUser_SelfOnly(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	email := "new@example.com"
	_, err := svc.UpdateUser(context.Background(), "bob", "alice", UpdateUserInput{Email: &email})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateUser_Partial(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := activeUser(t, "alice", 0)
	user.FirstName = "Alice"
	user.LastName = "Smith"

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(user, nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			require.Equal(t, "new@example.com", u.Email)
			require.Equal(t, "Alice", u.FirstName)
			require.False(t, u.UpdatedAt.IsZero())
			return nil
		})

	email := "New@Example.com"
	got, err := svc.UpdateUser(context.Background(), "alice", "alice", UpdateUserInput{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(activeUser(t, "alice", 0), nil)
	st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	email := "taken@example.com"
	_, err := svc.UpdateUser(context.Background(), "alice", "alice", UpdateUserInput{Email: &email})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestDeleteUser_RemovesCollection(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	gomock.InOrder(
		st.EXPECT().DeleteUser(gomock.Any(), "alice").Return(nil),
		st.EXPECT().DeleteSongsByOwner(gomock.Any(), "alice").Return(nil),
	)

	require.NoError(t, svc.DeleteUser(context.Background(), "alice", "alice"))
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.DeleteUser(context.Background(), "bob", "alice")
	require.ErrorIs(t, err, ErrPermissionDenied)
}

// Потеря зачистки песен не ломает удаление аккаунта.
func TestDeleteUser_CleanupFailureTolerated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().DeleteUser(gomock.Any(), "alice").Return(nil)
	st.EXPECT().DeleteSongsByOwner(gomock.Any(), "alice").Return(errors.New("db down"))

	require.NoError(t, svc.DeleteUser(context.Background(), "alice", "alice"))
}

func TestSetUserActive(t *testing.T) {
	t.Parallel()

	t.Run("deactivate", func(t *testing.T) {
		t.Parallel()

		svc, st, ctrl := newSvc(t)
		defer ctrl.Finish()

		st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(activeUser(t, "alice", 0), nil)
		st.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *models.User) error {
				require.False(t, u.IsActive)
				return nil
			})

		user, err := svc.SetUserActive(context.Background(), "alice", "alice", false)
		require.NoError(t, err)
		require.False(t, user.IsActive)
	})

	t.Run("noop_when_already_active", func(t *testing.T) {
		t.Parallel()

		svc, st, ctrl := newSvc(t)
		defer ctrl.Finish()

		st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(activeUser(t, "alice", 0), nil)

		user, err := svc.SetUserActive(context.Background(), "alice", "alice", true)
		require.NoError(t, err)
		require.True(t, user.IsActive)
	})

	t.Run("self_only", func(t *testing.T) {
		t.Parallel()

		svc, _, ctrl := newSvc(t)
		defer ctrl.Finish()

		_, err := svc.SetUserActive(context.Background(), "bob", "alice", false)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	want := []models.User{*activeUser(t, "alice", 0), *activeUser(t, "bob", 0)}
	st.EXPECT().ListUsers(gomock.Any()).Return(want, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
}

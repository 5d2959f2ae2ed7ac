package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository/mocks"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestGetProfileVisibility(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewProfilesService(profilesRepo)
	owner := uuid.New()
	private := &entity.UserProfile{UserID: owner, Username: "hidden", IsPublic: false}
	ctx := context.Background()

	t.Run("owner sees private profile", func(t *testing.T) {
		profilesRepo.EXPECT().GetByUsername(gomock.Any(), "hidden").Return(private, nil)
		p, err := serv.GetProfileByUsername(ctx, owner, "Hidden")
		assert.NoError(t, err)
		assert.Equal(t, private, p)
	})
	t.Run("others don't", func(t *testing.T) {
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), owner).Return(private, nil)
		_, err := serv.GetProfileByUserID(ctx, uuid.New(), owner)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("missing", func(t *testing.T) {
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), owner).Return(nil, errorvalues.ErrProfileNotFound)
		_, err := serv.GetCurrentProfile(ctx, owner)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
}

func TestUpdateProfileService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewProfilesService(profilesRepo)
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.UpdateProfileRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "username lower-cased and text sanitized",
			Error: nil,
			Req:   service.UpdateProfileRequest{Username: ptr("New_Name"), Bio: ptr("<b>runner</b> ")},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "new_name", &uid).Return(false, nil)
				profilesRepo.EXPECT().Update(gomock.Any(), uid, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, upd *entity.ProfileUpdate) (*entity.UserProfile, error) {
						assert.Equal(t, "new_name", *upd.Username)
						assert.Equal(t, "runner", *upd.Bio)
						assert.Nil(t, upd.FirstName)
						return &entity.UserProfile{UserID: uid, Username: *upd.Username, Bio: *upd.Bio}, nil
					})
			},
		},
		{
			Desc:  "username taken",
			Error: errorvalues.ErrUsernameTaken,
			Req:   service.UpdateProfileRequest{Username: ptr("jane")},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "jane", &uid).Return(true, nil)
			},
		},
		{
			Desc:         "invalid username",
			Error:        errorvalues.ErrValidation,
			Req:          service.UpdateProfileRequest{Username: ptr("no spaces allowed")},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "invalid theme",
			Error:        errorvalues.ErrValidation,
			Req:          service.UpdateProfileRequest{ThemePreference: ptr(entity.ThemePreference("neon"))},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "invalid date of birth",
			Error:        errorvalues.ErrValidation,
			Req:          service.UpdateProfileRequest{DateOfBirth: ptr("12/03/1990")},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "race lost on unique index",
			Error: errorvalues.ErrUsernameTaken,
			Req:   service.UpdateProfileRequest{Username: ptr("jane")},
			MockPrepFunc: func() {
				profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "jane", &uid).Return(false, nil)
				profilesRepo.EXPECT().Update(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrUsernameTaken)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.UpdateProfile(ctx, uid, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsUsernameAvailable(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewProfilesService(profilesRepo)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("format checked before storage", func(t *testing.T) {
		for _, username := range []string{"ab", "this_is_way_too_long_for_it", "has-dash", ""} {
			_, err := serv.IsUsernameAvailable(ctx, username, nil)
			assert.ErrorIs(t, err, errorvalues.ErrValidation, username)
		}
	})
	t.Run("own username is available", func(t *testing.T) {
		profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "jane", &uid).Return(false, nil)
		ok, err := serv.IsUsernameAvailable(ctx, "Jane", &uid)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("taken", func(t *testing.T) {
		profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "jane", (*uuid.UUID)(nil)).Return(true, nil)
		ok, err := serv.IsUsernameAvailable(ctx, "jane", nil)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("db error", func(t *testing.T) {
		profilesRepo.EXPECT().UsernameTaken(gomock.Any(), "jane", (*uuid.UUID)(nil)).Return(false, errors.New("db error"))
		_, err := serv.IsUsernameAvailable(ctx, "jane", nil)
		assert.Error(t, err)
	})
}

func TestSearchUsers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewProfilesService(profilesRepo)
	ctx := context.Background()
	jane := &entity.UserProfile{UserID: uuid.New(), Username: "jane", FirstName: "Jane", LastName: "Doe", ShowRealName: true, IsPublic: true}

	t.Run("limit capped and display name derived", func(t *testing.T) {
		profilesRepo.EXPECT().Search(gomock.Any(), "ja", 50).Return([]*entity.UserProfile{jane}, nil)
		users, err := serv.SearchUsers(ctx, " ja ", 500)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Jane Doe", users[0].DisplayName)
	})
	t.Run("default limit", func(t *testing.T) {
		profilesRepo.EXPECT().Search(gomock.Any(), "ja", 10).Return([]*entity.UserProfile{}, nil)
		_, err := serv.SearchUsers(ctx, "ja", 0)
		assert.NoError(t, err)
	})
	t.Run("blank query", func(t *testing.T) {
		users, err := serv.SearchUsers(ctx, "   ", 10)
		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestGetBulkPublicUsers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewProfilesService(profilesRepo)
	a := &entity.UserProfile{UserID: uuid.New(), Username: "alice"}
	b := &entity.UserProfile{UserID: uuid.New(), Username: "bob", FirstName: "Bob", ShowRealName: true}
	ids := []uuid.UUID{a.UserID, b.UserID, uuid.New()}

	profilesRepo.EXPECT().GetByUserIDs(gomock.Any(), ids).Return([]*entity.UserProfile{a, b}, nil)
	users, err := serv.GetBulkPublicUsers(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[a.UserID].DisplayName)
	assert.Equal(t, "Bob", users[b.UserID].DisplayName)
}

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

func TestCreateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	uid := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.CreateHabitRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Req:   service.CreateHabitRequest{Title: " <b>Meditate</b> ", Description: "10 minutes", IsPrivate: true},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), &entity.Habit{
					UserID:      uid,
					Title:       "Meditate",
					Description: "10 minutes",
					IsPrivate:   true,
				}).Return(&entity.Habit{ID: uuid.New(), UserID: uid, Title: "Meditate"}, nil)
			},
		},
		{
			Desc:         "error empty title",
			Error:        errorvalues.ErrValidation,
			Req:          service.CreateHabitRequest{},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error markup only title",
			Error:        errorvalues.ErrValidation,
			Req:          service.CreateHabitRequest{Title: "<script></script>"},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error habit exists",
			Error: errorvalues.ErrHabitExists,
			Req:   service.CreateHabitRequest{Title: "Meditate"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrHabitExists)
			},
		},
		{
			Desc:  "error unknown category",
			Error: errorvalues.ErrValidation,
			Req:   service.CreateHabitRequest{Title: "Meditate", CategoryID: ptr(uuid.New())},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown category")))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.CreateHabit(ctx, uid, &tc.Req)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestGetHabitVisibility(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	owner, stranger := uuid.New(), uuid.New()
	private := &entity.Habit{ID: uuid.New(), UserID: owner, IsPrivate: true}
	public := &entity.Habit{ID: uuid.New(), UserID: owner}
	repo.EXPECT().GetByID(gomock.Any(), private.ID).Return(private, nil).AnyTimes()
	repo.EXPECT().GetByID(gomock.Any(), public.ID).Return(public, nil).AnyTimes()
	ctx := context.Background()

	_, err := serv.GetHabit(ctx, owner, private.ID)
	assert.NoError(t, err)
	_, err = serv.GetHabit(ctx, stranger, private.ID)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	_, err = serv.GetHabit(ctx, stranger, public.ID)
	assert.NoError(t, err)
}

func TestUpdateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	owner := uuid.New()
	habitID := uuid.New()
	stored := func() *entity.Habit {
		return &entity.Habit{ID: habitID, UserID: owner, Title: "Run", Description: "5k", IsPrivate: true}
	}

	testCases := []struct {
		Desc         string
		Error        error
		UID          uuid.UUID
		Req          service.UpdateHabitRequest
		MockPrepFunc func()
	}{
		{
			Desc: "only given fields change",
			UID:  owner,
			Req:  service.UpdateHabitRequest{Title: ptr("Run daily"), IsPrivate: ptr(false)},
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(stored(), nil)
				repo.EXPECT().Update(gomock.Any(), &entity.Habit{
					ID: habitID, UserID: owner, Title: "Run daily", Description: "5k", IsPrivate: false,
				}).Return(&entity.Habit{ID: habitID}, nil)
			},
		},
		{
			Desc:  "error blank title",
			Error: errorvalues.ErrValidation,
			UID:   owner,
			Req:   service.UpdateHabitRequest{Title: ptr("   ")},
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(stored(), nil)
			},
		},
		{
			Desc:  "error someone else's private habit",
			Error: errorvalues.ErrHabitNotFound,
			UID:   uuid.New(),
			Req:   service.UpdateHabitRequest{Title: ptr("Mine now")},
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(stored(), nil)
			},
		},
		{
			Desc:  "error someone else's public habit",
			Error: errorvalues.ErrWrongOwner,
			UID:   uuid.New(),
			Req:   service.UpdateHabitRequest{Title: ptr("Mine now")},
			MockPrepFunc: func() {
				h := stored()
				h.IsPrivate = false
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(h, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.UpdateHabit(ctx, tc.UID, habitID, &tc.Req)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestDeleteHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	owner := uuid.New()
	habitID := uuid.New()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, UserID: owner}, nil)
		repo.EXPECT().Delete(gomock.Any(), habitID, owner).Return(nil)
		assert.NoError(t, serv.DeleteHabit(ctx, owner, habitID))
	})
	t.Run("error not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		assert.ErrorIs(t, serv.DeleteHabit(ctx, owner, habitID), errorvalues.ErrHabitNotFound)
	})
	t.Run("error db", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{ID: habitID, UserID: owner}, nil)
		repo.EXPECT().Delete(gomock.Any(), habitID, owner).Return(errors.New("conn closed"))
		err := serv.DeleteHabit(ctx, owner, habitID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestHabitListingLimits(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	serv := service.NewHabitsService(repo)
	uid := uuid.New()
	ctx := context.Background()

	repo.EXPECT().ListByUser(gomock.Any(), uid, 50, 0).Return([]*entity.Habit{}, nil)
	_, err := serv.GetUserHabits(ctx, uid, service.PaginationOpts{Offset: -3})
	assert.NoError(t, err)

	repo.EXPECT().ListByUser(gomock.Any(), uid, 100, 20).Return([]*entity.Habit{}, nil)
	_, err = serv.GetUserHabits(ctx, uid, service.PaginationOpts{Limit: 1000, Offset: 20})
	assert.NoError(t, err)

	repo.EXPECT().ListPublic(gomock.Any(), "journal", 10).Return([]*entity.Habit{}, nil)
	_, err = serv.GetPublicHabits(ctx, "  journal ", 10)
	assert.NoError(t, err)
}

package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/selfhq/internal/api"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/internal/service/mocks"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHabitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{HabitsService: hService})
	req := service.CreateHabitRequest{Title: "Journal", IsPrivate: true}

	testCases := []struct {
		Desc         string
		Body         []byte
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "created",
			Body:         marshal(t, req),
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, &req).
					Return(&entity.Habit{ID: uuid.New(), UserID: userID, Title: "Journal", IsPrivate: true}, nil)
			},
		},
		{
			Desc:         "duplicate title",
			Body:         marshal(t, req),
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, &req).Return(nil, errorvalues.ErrHabitExists)
			},
		},
		{
			Desc:         "bad body",
			Body:         []byte(`{"title":`),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.CreateHabit(rr, authed(http.MethodPost, "/api/v1/habits", bytes.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestHabitHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{HabitsService: hService})
	habitID := uuid.New()
	target := "/api/v1/habits/" + habitID.String()

	t.Run("someone else's private habit", func(t *testing.T) {
		hService.EXPECT().GetHabit(gomock.Any(), userID, habitID).Return(nil, errorvalues.ErrHabitNotFound)
		req := authed(http.MethodGet, target, nil)
		req.SetPathValue("id", habitID.String())
		rr := httptest.NewRecorder()
		serv.GetHabit(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("pagination from query", func(t *testing.T) {
		hService.EXPECT().GetUserHabits(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 20}).
			Return([]*entity.Habit{{ID: habitID}}, nil)
		rr := httptest.NewRecorder()
		serv.GetUserHabits(rr, authed(http.MethodGet, "/api/v1/habits?limit=10&offset=20", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var habits []entity.Habit
		decode(t, rr, &habits)
		assert.Len(t, habits, 1)
	})
	t.Run("public search", func(t *testing.T) {
		hService.EXPECT().GetPublicHabits(gomock.Any(), "walk", 0).Return([]*entity.Habit{}, nil)
		rr := httptest.NewRecorder()
		serv.GetPublicHabits(rr, authed(http.MethodGet, "/api/v1/habits/public?q=walk", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("update foreign habit", func(t *testing.T) {
		hService.EXPECT().UpdateHabit(gomock.Any(), userID, habitID, gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
		req := authed(http.MethodPatch, target, bytes.NewReader([]byte(`{"title":"mine"}`)))
		req.SetPathValue("id", habitID.String())
		rr := httptest.NewRecorder()
		serv.UpdateHabit(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("delete", func(t *testing.T) {
		hService.EXPECT().DeleteHabit(gomock.Any(), userID, habitID).Return(nil)
		req := authed(http.MethodDelete, target, nil)
		req.SetPathValue("id", habitID.String())
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("bad id", func(t *testing.T) {
		req := authed(http.MethodDelete, "/api/v1/habits/nope", nil)
		req.SetPathValue("id", "nope")
		rr := httptest.NewRecorder()
		serv.DeleteHabit(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestHabitCheckHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockHabitChecksServiceI(ctrl)
	serv := api.New(&api.ServicesList{ChecksService: cService})
	habitID := uuid.New()
	target := "/api/v1/habits/" + habitID.String() + "/checks"

	testCases := []struct {
		Desc         string
		Method       string
		Target       string
		Body         []byte
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "check today without body",
			Method:       http.MethodPost,
			Target:       target,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CheckHabit(gomock.Any(), userID, habitID, "").Return(nil)
			},
		},
		{
			Desc:         "check given date",
			Method:       http.MethodPost,
			Target:       target,
			Body:         []byte(`{"date":"2025-03-10"}`),
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CheckHabit(gomock.Any(), userID, habitID, "2025-03-10").Return(nil)
			},
		},
		{
			Desc:         "already checked",
			Method:       http.MethodPost,
			Target:       target,
			Body:         []byte(`{"date":"2025-03-10"}`),
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().CheckHabit(gomock.Any(), userID, habitID, "2025-03-10").Return(errorvalues.ErrCheckExists)
			},
		},
		{
			Desc:         "future date",
			Method:       http.MethodPost,
			Target:       target,
			Body:         []byte(`{"date":"2999-01-01"}`),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().CheckHabit(gomock.Any(), userID, habitID, "2999-01-01").Return(errorvalues.ErrCheckDateNotAllowed)
			},
		},
		{
			Desc:         "malformed body",
			Method:       http.MethodPost,
			Target:       target,
			Body:         []byte(`{"date":`),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "uncheck by query",
			Method:       http.MethodDelete,
			Target:       target + "?date=2025-03-10",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				cService.EXPECT().UncheckHabit(gomock.Any(), userID, habitID, "2025-03-10").Return(nil)
			},
		},
		{
			Desc:         "uncheck missing check",
			Method:       http.MethodDelete,
			Target:       target + "?date=2025-03-11",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().UncheckHabit(gomock.Any(), userID, habitID, "2025-03-11").Return(errorvalues.ErrCheckNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			req := authed(tc.Method, tc.Target, bytes.NewReader(tc.Body))
			req.SetPathValue("id", habitID.String())
			rr := httptest.NewRecorder()
			if tc.Method == http.MethodPost {
				serv.CheckHabit(rr, req)
			} else {
				serv.UncheckHabit(rr, req)
			}
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("checks window", func(t *testing.T) {
		cService.EXPECT().GetHabitChecks(gomock.Any(), userID, habitID, "2025-03-01", "2025-03-31").
			Return([]*entity.HabitCheck{{HabitID: habitID, CheckDate: "2025-03-02"}}, nil)
		req := authed(http.MethodGet, target+"?from=2025-03-01&to=2025-03-31", nil)
		req.SetPathValue("id", habitID.String())
		rr := httptest.NewRecorder()
		serv.GetHabitChecks(rr, req)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var checks []entity.HabitCheck
		decode(t, rr, &checks)
		require.Len(t, checks, 1)
		assert.Equal(t, "2025-03-02", checks[0].CheckDate)
	})
	t.Run("stats", func(t *testing.T) {
		last := "2025-03-12"
		cService.EXPECT().GetHabitStats(gomock.Any(), userID, habitID).
			Return(&entity.HabitStats{HabitID: habitID, TotalChecks: 3, CurrentStreak: 2, LongestStreak: 2, LastCheck: &last}, nil)
		req := authed(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/stats", nil)
		req.SetPathValue("id", habitID.String())
		rr := httptest.NewRecorder()
		serv.GetHabitStats(rr, req)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.HabitStats
		decode(t, rr, &stats)
		assert.Equal(t, 2, stats.CurrentStreak)
	})
}

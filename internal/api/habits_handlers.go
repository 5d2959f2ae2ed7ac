package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/httputil"
)

type CheckBody struct {
	Date string `json:"date"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req service.CreateHabitRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "create habit")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) GetUserHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	})
	if err != nil {
		writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) GetPublicHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	habits, err := s.habitsService.GetPublicHabits(ctx, r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "get public habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req service.UpdateHabitRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "update habit")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, uid, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.habitsService.DeleteHabit(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted")
}

// readCheckDate takes the date from the query string or an optional JSON body.
// An empty result means today.
func readCheckDate(r *http.Request) (string, error) {
	if d := r.URL.Query().Get("date"); d != "" {
		return d, nil
	}
	var body CheckBody
	if err := httputil.ReadJSON(r, &body); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
		return "", err
	}
	return body.Date, nil
}

func (s *Server) CheckHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	date, err := readCheckDate(r)
	if err != nil {
		badBody(w, r, "check habit")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.checksService.CheckHabit(ctx, uid, id, date); err != nil {
		writeServiceError(w, logger, "check habit", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("habit checked", slog.String("date", date))
}

func (s *Server) UncheckHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	date, err := readCheckDate(r)
	if err != nil {
		badBody(w, r, "uncheck habit")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.checksService.UncheckHabit(ctx, uid, id, date); err != nil {
		writeServiceError(w, logger, "uncheck habit", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetHabitChecks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	checks, err := s.checksService.GetHabitChecks(ctx, uid, id, q.Get("from"), q.Get("to"))
	if err != nil {
		writeServiceError(w, logger, "get habit checks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, checks)
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	stats, err := s.checksService.GetHabitStats(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

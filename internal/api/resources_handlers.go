package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/selfhq/internal/service"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/limbo/selfhq/pkg/httputil"
)

type VoteBody struct {
	VoteType entity.VoteType `json:"vote_type"`
}

type UserVoteResponse struct {
	VoteType *entity.VoteType `json:"vote_type"`
}

// resourceFilters reads list filters from the query string. Unknown enum values
// are passed on and match nothing.
func resourceFilters(r *http.Request) (*entity.ResourceFilters, error) {
	q := r.URL.Query()
	filters := entity.ResourceFilters{
		Search:       q.Get("search"),
		Tags:         queryList(r, "tags"),
		FeaturedOnly: q.Get("featured") == "true",
		Limit:        queryInt(r, "limit"),
	}
	if v := q.Get("type"); v != "" {
		t := entity.ResourceType(v)
		filters.Type = &t
	}
	if v := q.Get("difficulty"); v != "" {
		d := entity.DifficultyLevel(v)
		filters.DifficultyLevel = &d
	}
	if v := q.Get("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		filters.CategoryID = &id
	}
	if v := q.Get("rating_min"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		filters.RatingMin = &rating
	}
	return &filters, nil
}

func (s *Server) GetResources(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	filters, err := resourceFilters(r)
	if err != nil {
		logger.Error("get resources error: invalid filters", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid filters", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	resources, err := s.resourcesService.GetResources(ctx, filters)
	if err != nil {
		writeServiceError(w, logger, "get resources", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resources)
}

// GetResource also counts a view, attributed to the caller when signed in.
func (s *Server) GetResource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.resourcesService.GetResource(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "get resource", err)
		return
	}
	if err = s.resourcesService.RecordResourceView(ctx, id, optionalUID(r)); err != nil {
		logger.Warn("recording resource view failed", slog.String("error", err.Error()))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) GetFeaturedResources(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	resources, err := s.resourcesService.GetFeaturedResources(ctx, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "get featured resources", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resources)
}

func (s *Server) GetPopularResources(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	resources, err := s.resourcesService.GetPopularResources(ctx, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, logger, "get popular resources", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resources)
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	categories, err := s.resourcesService.GetCategories(ctx)
	if err != nil {
		writeServiceError(w, logger, "get categories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, categories)
}

func (s *Server) GetResourceStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	stats, err := s.resourcesService.GetResourceStats(ctx)
	if err != nil {
		writeServiceError(w, logger, "get resource stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetUserResources(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()
	resources, err := s.resourcesService.GetUserResources(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get user resources", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resources)
}

func (s *Server) SubmitResource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	var req service.ResourceRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "submit resource")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.resourcesService.SubmitResource(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "submit resource", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("resource submitted", slog.String("resource_id", res.ID.String()))
}

func (s *Server) UpdateResource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req service.ResourceRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "update resource")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.resourcesService.UpdateResource(ctx, uid, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update resource", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) DeleteResource(w http.ResponseWriter, r *http.Request) {
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
	if err := s.resourcesService.DeleteResource(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete resource", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("resource deleted")
}

func (s *Server) VoteOnResource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req VoteBody
	if err := httputil.ReadJSON(r, &req); err != nil {
		badBody(w, r, "vote")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	result, err := s.resourcesService.VoteOnResource(ctx, uid, id, req.VoteType)
	if err != nil {
		writeServiceError(w, logger, "vote", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
}

func (s *Server) GetUserVote(w http.ResponseWriter, r *http.Request) {
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
	vote, err := s.resourcesService.GetUserVote(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get vote", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UserVoteResponse{VoteType: vote})
}

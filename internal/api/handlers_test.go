package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"
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

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	userID = uuid.New()
	email  = "jane@example.com"
)

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	defer rr.Result().Body.Close()
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(v))
}

// authed returns a request made by userID, as if it passed AuthMiddleware.
func authed(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(api.WithUID(req.Context(), userID))
}

type stubJWT struct {
	token string
	err   error
}

func (s stubJWT) GenerateToken(user *entity.User) (string, error) {
	return s.token, s.err
}

func (s stubJWT) ParseToken(tokenString string) (*api.JWTClaims, error) {
	return nil, errorvalues.ErrInvalidToken
}

func TestSignUpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAuthServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AuthService: aService,
		JwtService:  stubJWT{token: "signed"},
	})
	req := service.SignUpRequest{Email: email, Password: "long_password"}
	body := marshal(t, req)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				aService.EXPECT().SignUp(gomock.Any(), &req).Return(&entity.User{ID: userID, Email: email}, nil)
			},
			Body: body,
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				aService.EXPECT().SignUp(gomock.Any(), &req).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("password too short")))
			},
			Body: body,
		},
		{
			Desc:         "email taken",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				aService.EXPECT().SignUp(gomock.Any(), &req).Return(nil, errorvalues.ErrUserExists)
			},
			Body: body,
		},
		{
			Desc:         "internal",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				aService.EXPECT().SignUp(gomock.Any(), &req).Return(nil, errors.New("db is down"))
			},
			Body: body,
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte(`{"email":`),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.SignUp(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusCreated {
				var resp api.AuthResponse
				decode(t, rr, &resp)
				assert.Equal(t, userID.String(), resp.UserID)
				assert.Equal(t, "signed", resp.Token)
			}
		})
	}
}

func TestSignInHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAuthServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AuthService: aService,
		JwtService:  stubJWT{token: "signed"},
	})
	body := marshal(t, api.SignInRequest{Email: email, Password: "long_password"})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "signed in", ExpectedCode: http.StatusOK},
		{Desc: "wrong password", ExpectedCode: http.StatusForbidden, Err: errorvalues.ErrWrongCredentials},
		{Desc: "unknown email", ExpectedCode: http.StatusNotFound, Err: errorvalues.ErrUserNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			if tc.Err != nil {
				aService.EXPECT().SignIn(gomock.Any(), email, "long_password").Return(nil, tc.Err)
			} else {
				aService.EXPECT().SignIn(gomock.Any(), email, "long_password").Return(&entity.User{ID: userID}, nil)
			}
			rr := httptest.NewRecorder()
			serv.SignIn(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", bytes.NewReader(body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("token error", func(t *testing.T) {
		failing := api.New(&api.ServicesList{
			AuthService: aService,
			JwtService:  stubJWT{err: errors.New("no key")},
		})
		aService.EXPECT().SignIn(gomock.Any(), email, "long_password").Return(&entity.User{ID: userID}, nil)
		rr := httptest.NewRecorder()
		failing.SignIn(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", bytes.NewReader(body)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestSignOutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAuthServiceI(ctrl)
	serv := api.New(&api.ServicesList{AuthService: aService})
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	t.Run("revoked", func(t *testing.T) {
		aService.EXPECT().SignOut(gomock.Any(), "jti-1", expires).Return(nil)
		req := authed(http.MethodPost, "/api/v1/auth/signout", nil)
		req = req.WithContext(api.WithClaims(req.Context(), &api.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1", ExpiresAt: jwt.NewNumericDate(expires)},
		}))
		rr := httptest.NewRecorder()
		serv.SignOut(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("no claims", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.SignOut(rr, authed(http.MethodPost, "/api/v1/auth/signout", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAuthServiceI(ctrl)
	serv := api.New(&api.ServicesList{AuthService: aService})
	body := marshal(t, api.DeleteAccountRequest{Password: "long_password"})

	t.Run("deleted", func(t *testing.T) {
		aService.EXPECT().DeleteAccount(gomock.Any(), userID, "long_password").Return(nil)
		rr := httptest.NewRecorder()
		serv.DeleteAccount(rr, authed(http.MethodDelete, "/api/v1/auth/account", bytes.NewReader(body)))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("wrong password", func(t *testing.T) {
		aService.EXPECT().DeleteAccount(gomock.Any(), userID, "long_password").Return(errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.DeleteAccount(rr, authed(http.MethodDelete, "/api/v1/auth/account", bytes.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.DeleteAccount(rr, httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

type pinger struct {
	err error
}

func (p pinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		serv := api.New(&api.ServicesList{DB: pinger{}})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("db down", func(t *testing.T) {
		serv := api.New(&api.ServicesList{DB: pinger{err: errors.New("refused")}})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Result().StatusCode)
	})
}

func TestProfileHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockProfilesServiceI(ctrl)
	serv := api.New(&api.ServicesList{ProfilesService: pService})

	t.Run("by username", func(t *testing.T) {
		pService.EXPECT().GetProfileByUsername(gomock.Any(), userID, "jane").
			Return(&entity.UserProfile{UserID: userID, Username: "jane"}, nil)
		req := authed(http.MethodGet, "/api/v1/profiles/by-username/jane", nil)
		req.SetPathValue("username", "jane")
		rr := httptest.NewRecorder()
		serv.GetProfileByUsername(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("private profile", func(t *testing.T) {
		other := uuid.New()
		pService.EXPECT().GetProfileByUserID(gomock.Any(), userID, other).Return(nil, errorvalues.ErrProfileNotFound)
		req := authed(http.MethodGet, "/api/v1/profiles/"+other.String(), nil)
		req.SetPathValue("id", other.String())
		rr := httptest.NewRecorder()
		serv.GetProfileByUserID(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("malformed id", func(t *testing.T) {
		req := authed(http.MethodGet, "/api/v1/profiles/nope", nil)
		req.SetPathValue("id", "nope")
		rr := httptest.NewRecorder()
		serv.GetProfileByUserID(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("username taken on update", func(t *testing.T) {
		username := "taken"
		pService.EXPECT().UpdateProfile(gomock.Any(), userID, &service.UpdateProfileRequest{Username: &username}).
			Return(nil, errorvalues.ErrUsernameTaken)
		rr := httptest.NewRecorder()
		serv.UpdateProfile(rr, authed(http.MethodPatch, "/api/v1/profiles/me", bytes.NewReader([]byte(`{"username":"taken"}`))))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("username availability", func(t *testing.T) {
		pService.EXPECT().IsUsernameAvailable(gomock.Any(), "Jane_Doe", &userID).Return(true, nil)
		rr := httptest.NewRecorder()
		serv.CheckUsername(rr, authed(http.MethodGet, "/api/v1/profiles/username-available?username=Jane_Doe", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.UsernameAvailabilityResponse
		decode(t, rr, &resp)
		assert.Equal(t, "jane_doe", resp.Username)
		assert.True(t, resp.Available)
	})
	t.Run("bulk users keyed by id", func(t *testing.T) {
		other := uuid.New()
		pService.EXPECT().GetBulkPublicUsers(gomock.Any(), []uuid.UUID{other}).
			Return(map[uuid.UUID]*entity.PublicUser{other: {ID: other, Username: "bob"}}, nil)
		body := marshal(t, api.BulkUsersRequest{UserIDs: []uuid.UUID{other}})
		rr := httptest.NewRecorder()
		serv.GetBulkPublicUsers(rr, authed(http.MethodPost, "/api/v1/profiles/bulk", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		resp := make(map[string]map[string]any)
		decode(t, rr, &resp)
		assert.Equal(t, "bob", resp[other.String()]["username"])
	})
	t.Run("bulk users over the cap", func(t *testing.T) {
		ids := make([]uuid.UUID, 101)
		for i := range ids {
			ids[i] = uuid.New()
		}
		body := marshal(t, api.BulkUsersRequest{UserIDs: ids})
		rr := httptest.NewRecorder()
		serv.GetBulkPublicUsers(rr, authed(http.MethodPost, "/api/v1/profiles/bulk", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestFriendHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	fService := mocks.NewMockFriendsServiceI(ctrl)
	serv := api.New(&api.ServicesList{FriendsService: fService})
	target := uuid.New()

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "sent", ExpectedCode: http.StatusCreated},
		{Desc: "requests disabled", ExpectedCode: http.StatusForbidden, Err: errorvalues.ErrFriendRequestsDisabled},
		{Desc: "already connected", ExpectedCode: http.StatusConflict, Err: errorvalues.ErrConnectionExists},
		{Desc: "self request", ExpectedCode: http.StatusBadRequest, Err: errorvalues.ErrValidation},
	}
	body := marshal(t, api.FriendRequestBody{UserID: target})
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			if tc.Err != nil {
				fService.EXPECT().SendFriendRequest(gomock.Any(), userID, target).Return(nil, tc.Err)
			} else {
				fService.EXPECT().SendFriendRequest(gomock.Any(), userID, target).
					Return(&entity.FriendConnection{ID: uuid.New(), RequesterID: userID, AddresseeID: target, Status: entity.FriendPending}, nil)
			}
			rr := httptest.NewRecorder()
			serv.SendFriendRequest(rr, authed(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader(body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("missing user id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.SendFriendRequest(rr, authed(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader([]byte(`{}`))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("responding to someone else's request", func(t *testing.T) {
		connID := uuid.New()
		fService.EXPECT().RespondToFriendRequest(gomock.Any(), userID, connID, entity.FriendAccepted).
			Return(nil, errorvalues.ErrWrongOwner)
		req := authed(http.MethodPatch, "/api/v1/friends/requests/"+connID.String(), bytes.NewReader([]byte(`{"status":"accepted"}`)))
		req.SetPathValue("id", connID.String())
		rr := httptest.NewRecorder()
		serv.RespondToFriendRequest(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("expired invitation", func(t *testing.T) {
		fService.EXPECT().AcceptInvitationByCode(gomock.Any(), userID, "abc").Return(nil, errorvalues.ErrInvitationExpired)
		rr := httptest.NewRecorder()
		serv.AcceptInvitation(rr, authed(http.MethodPost, "/api/v1/friends/invitations/accept",
			bytes.NewReader([]byte(`{"invitation_code":"abc"}`))))
		assert.Equal(t, http.StatusGone, rr.Result().StatusCode)
	})
}

func TestChallengeHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{ChallengesService: cService})
	challengeID := uuid.New()

	t.Run("create", func(t *testing.T) {
		cService.EXPECT().CreateChallenge(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, req *service.CreateChallengeRequest) (*entity.Challenge, error) {
				assert.Equal(t, entity.ChallengeActivityCount, req.Type)
				assert.JSONEq(t, `{"target_count":10,"activity_name":"push-ups"}`, string(req.Parameters))
				return &entity.Challenge{ID: challengeID, CreatorID: userID, Type: req.Type}, nil
			})
		body := []byte(`{"title":"Push","challenge_type":"activity_count",` +
			`"parameters":{"target_count":10,"activity_name":"push-ups"},` +
			`"start_date":"2025-03-10","end_date":"2025-04-10"}`)
		rr := httptest.NewRecorder()
		serv.CreateChallenge(rr, authed(http.MethodPost, "/api/v1/challenges", bytes.NewReader(body)))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "joined", ExpectedCode: http.StatusCreated},
		{Desc: "full", ExpectedCode: http.StatusConflict, Err: errorvalues.ErrChallengeFull},
		{Desc: "already in", ExpectedCode: http.StatusConflict, Err: errorvalues.ErrAlreadyParticipating},
		{Desc: "missing", ExpectedCode: http.StatusNotFound, Err: errorvalues.ErrChallengeNotFound},
	}
	for _, tc := range testCases {
		t.Run("join: "+tc.Desc, func(t *testing.T) {
			if tc.Err != nil {
				cService.EXPECT().JoinChallenge(gomock.Any(), userID, challengeID).Return(nil, tc.Err)
			} else {
				cService.EXPECT().JoinChallenge(gomock.Any(), userID, challengeID).
					Return(&entity.ChallengeParticipant{ChallengeID: challengeID, UserID: userID, Status: entity.ParticipantAccepted}, nil)
			}
			req := authed(http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/join", nil)
			req.SetPathValue("id", challengeID.String())
			rr := httptest.NewRecorder()
			serv.JoinChallenge(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("progress is passed through raw", func(t *testing.T) {
		cService.EXPECT().UpdateChallengeProgress(gomock.Any(), userID, challengeID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID, raw json.RawMessage) (*entity.ChallengeParticipant, error) {
				assert.JSONEq(t, `{"count":42}`, string(raw))
				return &entity.ChallengeParticipant{ChallengeID: challengeID, UserID: userID}, nil
			})
		req := authed(http.MethodPut, "/api/v1/challenges/"+challengeID.String()+"/progress",
			bytes.NewReader([]byte(`{"progress":{"count":42}}`)))
		req.SetPathValue("id", challengeID.String())
		rr := httptest.NewRecorder()
		serv.UpdateChallengeProgress(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("delete by non-creator", func(t *testing.T) {
		cService.EXPECT().DeleteChallenge(gomock.Any(), userID, challengeID).Return(errorvalues.ErrNotChallengeCreator)
		req := authed(http.MethodDelete, "/api/v1/challenges/"+challengeID.String(), nil)
		req.SetPathValue("id", challengeID.String())
		rr := httptest.NewRecorder()
		serv.DeleteChallenge(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("invalid transition", func(t *testing.T) {
		cService.EXPECT().RespondToChallengeInvitation(gomock.Any(), userID, challengeID, entity.ParticipantAccepted).
			Return(nil, errorvalues.ErrInvalidTransition)
		req := authed(http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/respond",
			bytes.NewReader([]byte(`{"status":"accepted"}`)))
		req.SetPathValue("id", challengeID.String())
		rr := httptest.NewRecorder()
		serv.RespondToChallengeInvitation(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("public list limit", func(t *testing.T) {
		cService.EXPECT().GetPublicChallenges(gomock.Any(), 5).Return([]*entity.Challenge{}, nil)
		rr := httptest.NewRecorder()
		serv.GetPublicChallenges(rr, authed(http.MethodGet, "/api/v1/challenges/public?limit=5", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestReflectionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockReflectionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{ReflectionsService: rService})

	t.Run("draft flag is split from the body", func(t *testing.T) {
		rService.EXPECT().SaveReflection(gomock.Any(), userID, gomock.Any(), true).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, req *service.SaveReflectionRequest, _ bool) (*entity.Reflection, error) {
				require.NotNil(t, req.ValuesAlignment)
				assert.Equal(t, 7, *req.ValuesAlignment)
				assert.Equal(t, []string{"family"}, req.GratitudeItems)
				return &entity.Reflection{UserID: userID, WeekOf: "2025-03-10", IsDraft: true}, nil
			})
		body := []byte(`{"values_alignment":7,"gratitude_items":["family"],"is_draft":true}`)
		rr := httptest.NewRecorder()
		serv.SaveReflection(rr, authed(http.MethodPut, "/api/v1/reflections/current", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("rating out of range", func(t *testing.T) {
		rService.EXPECT().SaveReflection(gomock.Any(), userID, gomock.Any(), false).Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.SaveReflection(rr, authed(http.MethodPut, "/api/v1/reflections/current",
			bytes.NewReader([]byte(`{"values_alignment":11}`))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("week not found", func(t *testing.T) {
		rService.EXPECT().GetReflectionForWeek(gomock.Any(), userID, "2025-03-10").Return(nil, errorvalues.ErrReflectionNotFound)
		req := authed(http.MethodGet, "/api/v1/reflections/week/2025-03-10", nil)
		req.SetPathValue("week", "2025-03-10")
		rr := httptest.NewRecorder()
		serv.GetReflectionForWeek(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("stats", func(t *testing.T) {
		rService.EXPECT().GetReflectionStats(gomock.Any(), userID).
			Return(&entity.ReflectionStats{TotalReflections: 3, AverageValuesAlignment: 7}, nil)
		rr := httptest.NewRecorder()
		serv.GetReflectionStats(rr, authed(http.MethodGet, "/api/v1/reflections/stats", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.ReflectionStats
		decode(t, rr, &stats)
		assert.Equal(t, 3, stats.TotalReflections)
	})
}

func TestResourceHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockResourcesServiceI(ctrl)
	serv := api.New(&api.ServicesList{ResourcesService: rService})
	resourceID := uuid.New()

	t.Run("filters from query", func(t *testing.T) {
		categoryID := uuid.New()
		rating := 4
		kind := entity.ResourceBook
		level := entity.DifficultyBeginner
		rService.EXPECT().GetResources(gomock.Any(), &entity.ResourceFilters{
			Type:            &kind,
			CategoryID:      &categoryID,
			DifficultyLevel: &level,
			RatingMin:       &rating,
			FeaturedOnly:    true,
			Search:          "habits",
			Tags:            []string{"focus", "sleep"},
			Limit:           5,
		}).Return([]*entity.Resource{}, nil)
		target := "/api/v1/resources?type=book&difficulty=beginner&rating_min=4&featured=true" +
			"&search=habits&tags=focus,sleep&limit=5&category_id=" + categoryID.String()
		rr := httptest.NewRecorder()
		serv.GetResources(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("malformed category", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetResources(rr, httptest.NewRequest(http.MethodGet, "/api/v1/resources?category_id=x", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("anonymous view", func(t *testing.T) {
		rService.EXPECT().GetResource(gomock.Any(), resourceID).Return(&entity.Resource{ID: resourceID}, nil)
		rService.EXPECT().RecordResourceView(gomock.Any(), resourceID, gomock.Nil()).Return(nil)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/"+resourceID.String(), nil)
		req.SetPathValue("id", resourceID.String())
		rr := httptest.NewRecorder()
		serv.GetResource(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("failed view count still serves", func(t *testing.T) {
		rService.EXPECT().GetResource(gomock.Any(), resourceID).Return(&entity.Resource{ID: resourceID}, nil)
		rService.EXPECT().RecordResourceView(gomock.Any(), resourceID, &userID).Return(errors.New("timeout"))
		req := authed(http.MethodGet, "/api/v1/resources/"+resourceID.String(), nil)
		req.SetPathValue("id", resourceID.String())
		rr := httptest.NewRecorder()
		serv.GetResource(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("vote", func(t *testing.T) {
		up := entity.Upvote
		rService.EXPECT().VoteOnResource(gomock.Any(), userID, resourceID, entity.Upvote).
			Return(&entity.VoteResult{ResourceID: resourceID, Upvotes: 1, UserVote: &up}, nil)
		req := authed(http.MethodPost, "/api/v1/resources/"+resourceID.String()+"/vote",
			bytes.NewReader([]byte(`{"vote_type":"upvote"}`)))
		req.SetPathValue("id", resourceID.String())
		rr := httptest.NewRecorder()
		serv.VoteOnResource(rr, req)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result entity.VoteResult
		decode(t, rr, &result)
		assert.Equal(t, 1, result.Upvotes)
	})
	t.Run("no vote yet", func(t *testing.T) {
		rService.EXPECT().GetUserVote(gomock.Any(), userID, resourceID).Return(nil, nil)
		req := authed(http.MethodGet, "/api/v1/resources/"+resourceID.String()+"/vote", nil)
		req.SetPathValue("id", resourceID.String())
		rr := httptest.NewRecorder()
		serv.GetUserVote(rr, req)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.JSONEq(t, `{"vote_type":null}`, rr.Body.String())
	})
	t.Run("update someone else's", func(t *testing.T) {
		rService.EXPECT().UpdateResource(gomock.Any(), userID, resourceID, gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
		req := authed(http.MethodPut, "/api/v1/resources/"+resourceID.String(),
			bytes.NewReader([]byte(`{"title":"t","resource_type":"book"}`)))
		req.SetPathValue("id", resourceID.String())
		rr := httptest.NewRecorder()
		serv.UpdateResource(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

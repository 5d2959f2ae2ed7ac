package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/selfhq/internal/error_values"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	pool := repository.Connect(setupTestDB(t))
	users := repository.NewUsersRepoWithConn(pool)
	friends := repository.NewFriendsRepoWithConn(pool)
	challenges := repository.NewChallengesRepoWithConn(pool)
	reflections := repository.NewReflectionsRepoWithConn(pool)
	resources := repository.NewResourcesRepoWithConn(pool)
	habits := repository.NewHabitsRepoWithConn(pool)
	checks := repository.NewHabitChecksRepoWithConn(pool)
	ctx := context.Background()

	ids := make([]uuid.UUID, 6)
	for i := range ids {
		id, err := users.CreateWithProfile(ctx,
			&entity.User{Email: fmt.Sprintf("user%d@example.com", i), PasswordHash: "pass_hash"},
			&entity.UserProfile{Username: fmt.Sprintf("user_%d", i)},
		)
		require.NoError(t, err)
		ids[i] = id
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.CreateWithProfile(ctx,
			&entity.User{Email: "user0@example.com", PasswordHash: "pass_hash"},
			&entity.UserProfile{Username: "someone_else"},
		)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("friend pair is unique in both directions", func(t *testing.T) {
		_, err := friends.CreateRequest(ctx, ids[0], ids[1])
		require.NoError(t, err)
		_, err = friends.CreateRequest(ctx, ids[1], ids[0])
		assert.ErrorIs(t, err, errorvalues.ErrConnectionExists)
		_, err = friends.CreateRequest(ctx, ids[2], ids[2])
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("concurrent joins respect capacity", func(t *testing.T) {
		limit := 2
		ch, err := challenges.Create(ctx, &entity.Challenge{
			CreatorID:       ids[0],
			Title:           "Morning run",
			Type:            entity.ChallengeDuration,
			Parameters:      entity.DurationParams{Activity: "running", TargetMinutes: 600},
			StartDate:       "2025-03-03",
			EndDate:         "2025-03-30",
			IsPublic:        true,
			MaxParticipants: &limit,
		}, nil)
		require.NoError(t, err)

		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			joined int
			full   int
		)
		for _, uid := range ids[1:] {
			wg.Add(1)
			go func(uid uuid.UUID) {
				defer wg.Done()
				_, err := challenges.Join(ctx, ch.ID, uid)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					joined++
				case assert.ErrorIs(t, err, errorvalues.ErrChallengeFull):
					full++
				}
			}(uid)
		}
		wg.Wait()
		assert.Equal(t, limit, joined)
		assert.Equal(t, len(ids)-1-limit, full)

		got, err := challenges.GetByID(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, limit, got.ParticipantCount)
		assert.Equal(t, entity.DurationParams{Activity: "running", TargetMinutes: 600}, got.Parameters)
	})
	t.Run("reflection upsert keeps one row per week", func(t *testing.T) {
		first, err := reflections.Upsert(ctx, &entity.Reflection{UserID: ids[0], WeekOf: "2025-03-10", IsDraft: true})
		require.NoError(t, err)
		now := time.Now()
		second, err := reflections.Upsert(ctx, &entity.Reflection{
			UserID:         ids[0],
			WeekOf:         "2025-03-10",
			WeekWins:       "finished the book",
			GratitudeItems: []string{"sleep"},
			SubmittedAt:    &now,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.False(t, second.IsDraft)

		all, err := reflections.ListByUser(ctx, ids[0], 10)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		_, err = reflections.Upsert(ctx, &entity.Reflection{UserID: ids[0], WeekOf: "2025-03-12"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("vote toggling", func(t *testing.T) {
		res, err := resources.Create(ctx, &entity.Resource{
			UserID: ids[0],
			Title:  "Deep Work",
			Type:   entity.ResourceBook,
		})
		require.NoError(t, err)
		result, err := resources.Vote(ctx, res.ID, ids[1], entity.Upvote)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Upvotes)
		result, err = resources.Vote(ctx, res.ID, ids[1], entity.Downvote)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Upvotes)
		assert.Equal(t, 1, result.Downvotes)
		result, err = resources.Vote(ctx, res.ID, ids[1], entity.Downvote)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Downvotes)
		assert.Nil(t, result.UserVote)
	})
	t.Run("habit checks are unique per day", func(t *testing.T) {
		h, err := habits.Create(ctx, &entity.Habit{UserID: ids[2], Title: "Cold shower", IsPrivate: true})
		require.NoError(t, err)
		_, err = habits.Create(ctx, &entity.Habit{UserID: ids[2], Title: "Cold shower"})
		assert.ErrorIs(t, err, errorvalues.ErrHabitExists)

		for _, d := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
			require.NoError(t, checks.Create(ctx, h.ID, d))
		}
		assert.ErrorIs(t, checks.Create(ctx, h.ID, "2025-03-11"), errorvalues.ErrCheckExists)
		assert.ErrorIs(t, checks.Create(ctx, uuid.New(), "2025-03-11"), errorvalues.ErrHabitNotFound)

		dates, err := checks.ListDates(ctx, h.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-12", "2025-03-11", "2025-03-10"}, dates)
		inRange, err := checks.ListByDateRange(ctx, h.ID, "2025-03-11", "2025-03-31")
		require.NoError(t, err)
		assert.Len(t, inRange, 2)

		public, err := habits.ListPublic(ctx, "cold", 10)
		require.NoError(t, err)
		assert.Empty(t, public)

		require.NoError(t, habits.Delete(ctx, h.ID, ids[2]))
		dates, err = checks.ListDates(ctx, h.ID)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})
	t.Run("account deletion cascades", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, ids[5]))
		_, err := users.FindByID(ctx, ids[5])
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("selfhq"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

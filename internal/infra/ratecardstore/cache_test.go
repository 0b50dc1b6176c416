//go:build integration

package ratecardstore_test

import (
	"context"
	"testing"
	"time"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/infra/ratecardstore"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/tests/common/builder"
	sharedmock "coworking-reservations/tests/mock/shared"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/mock/gomock"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	endpoint, err := c.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCachedStore(t *testing.T) {
	rdb := startRedis(t)
	ctx := context.Background()
	meetingRoom := ratecard.SpaceType("meeting-room")

	t.Run("success: 2回目はキャッシュから返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockRateCardStore(ctrl)
		next.EXPECT().FindBySpaceType(gomock.Any(), meetingRoom).Return(builder.NewRateCardBuilder().MustBuild(), nil).Times(1)
		store := ratecardstore.NewCachedStore(next, rdb, time.Minute)
		require.NoError(t, store.Invalidate(ctx, meetingRoom))

		first, err := store.FindBySpaceType(ctx, meetingRoom)
		require.NoError(t, err)
		second, err := store.FindBySpaceType(ctx, meetingRoom)
		require.NoError(t, err)

		assert.Equal(t, first.Params().MaxCapacity, second.Params().MaxCapacity)
		assert.True(t, first.Hourly().Equal(*second.Hourly()))
	})

	t.Run("success: 無効化後は読み直す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockRateCardStore(ctrl)
		next.EXPECT().FindBySpaceType(gomock.Any(), meetingRoom).Return(builder.NewRateCardBuilder().MustBuild(), nil).Times(2)
		store := ratecardstore.NewCachedStore(next, rdb, time.Minute)
		require.NoError(t, store.Invalidate(ctx, meetingRoom))

		_, err := store.FindBySpaceType(ctx, meetingRoom)
		require.NoError(t, err)
		require.NoError(t, store.Invalidate(ctx, meetingRoom))
		_, err = store.FindBySpaceType(ctx, meetingRoom)
		require.NoError(t, err)
	})

	t.Run("error: 未登録はキャッシュしない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockRateCardStore(ctrl)
		next.EXPECT().FindBySpaceType(gomock.Any(), ratecard.SpaceType("sauna")).
			Return(nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card")).Times(2)
		store := ratecardstore.NewCachedStore(next, rdb, time.Minute)

		for range 2 {
			_, err := store.FindBySpaceType(ctx, ratecard.SpaceType("sauna"))
			assert.Equal(t, errs.KindRateCardNotFound, errs.KindOf(err))
		}
	})

	t.Run("success: 壊れたキャッシュは捨てる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockRateCardStore(ctrl)
		next.EXPECT().FindBySpaceType(gomock.Any(), meetingRoom).Return(builder.NewRateCardBuilder().MustBuild(), nil)
		store := ratecardstore.NewCachedStore(next, rdb, time.Minute)
		require.NoError(t, rdb.Set(ctx, "ratecard:meeting-room", "{not json", time.Minute).Err())

		card, err := store.FindBySpaceType(ctx, meetingRoom)

		require.NoError(t, err)
		assert.Equal(t, meetingRoom, card.SpaceType())
	})
}

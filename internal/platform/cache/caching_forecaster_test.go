package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy_backend/internal/feature/forecast/domain/entity"
)

type mockForecaster struct {
	ForecastFunc func(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error)
	calls        int
}

func (m *mockForecaster) Forecast(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error) {
	m.calls++
	return m.ForecastFunc(ctx, series, days)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func samplePoints() []entity.ForecastPoint {
	return []entity.ForecastPoint{
		{Date: time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC), Price: 52},
		{Date: time.Date(2020, 7, 2, 0, 0, 0, 0, time.UTC), Price: 53},
	}
}

func TestCachingForecaster_MissThenHit(t *testing.T) {
	_, rdb := newTestRedis(t)

	inner := &mockForecaster{
		ForecastFunc: func(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error) {
			assert.Equal(t, "Oil", series)
			assert.Equal(t, 7, days)
			return samplePoints(), nil
		},
	}
	cf := NewCachingForecaster(rdb, inner, "")

	first, err := cf.Forecast(context.Background(), "Oil", 7)
	require.NoError(t, err)
	assert.Equal(t, samplePoints(), first)
	assert.Equal(t, 1, inner.calls)

	// The second identical query is served from Redis.
	second, err := cf.Forecast(context.Background(), "Oil", 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingForecaster_KeyVariesWithQuery(t *testing.T) {
	_, rdb := newTestRedis(t)

	inner := &mockForecaster{
		ForecastFunc: func(ctx context.Context, series string, days int) ([]entity.ForecastPoint, error) {
			return samplePoints(), nil
		},
	}
	cf := NewCachingForecaster(rdb, inner, "")

	_, err := cf.Forecast(context.Background(), "Oil", 7)
	require.NoError(t, err)
	_, err = cf.Forecast(context.Background(), "Oil", 14)
	require.NoError(t, err)
	_, err = cf.Forecast(context.Background(), "Gas", 7)
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls, "different series or horizon means a different key")
}

func TestCachingForecaster_CorruptEntryRecovers(t *testing.T) {
	mr, rdb := newTestRedis(t)

	cf := NewCachingForecaster(rdb, &mockForecaster{
		ForecastFunc: func(context.Context, string, int) ([]entity.ForecastPoint, error) {
			return samplePoints(), nil
		},
	}, "")

	key := cf.cacheKey("Oil", 7)
	require.NoError(t, mr.Set(key, "{not json"))

	got, err := cf.Forecast(context.Background(), "Oil", 7)
	require.NoError(t, err)
	assert.Equal(t, samplePoints(), got)

	// The corrupt entry was replaced by a valid one.
	raw, err := mr.Get(key)
	require.NoError(t, err)
	var stored []entity.ForecastPoint
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, samplePoints(), stored)
}

func TestCachingForecaster_InnerErrorNotCached(t *testing.T) {
	mr, rdb := newTestRedis(t)

	inner := &mockForecaster{
		ForecastFunc: func(context.Context, string, int) ([]entity.ForecastPoint, error) {
			return nil, context.DeadlineExceeded
		},
	}
	cf := NewCachingForecaster(rdb, inner, "")

	_, err := cf.Forecast(context.Background(), "Oil", 7)
	assert.Error(t, err)
	assert.Empty(t, mr.Keys())
}

func TestCachingForecaster_Invalidate(t *testing.T) {
	mr, rdb := newTestRedis(t)

	cf := NewCachingForecaster(rdb, &mockForecaster{
		ForecastFunc: func(context.Context, string, int) ([]entity.ForecastPoint, error) {
			return samplePoints(), nil
		},
	}, "")

	ctx := context.Background()
	_, err := cf.Forecast(ctx, "Oil", 7)
	require.NoError(t, err)
	_, err = cf.Forecast(ctx, "Oil", 14)
	require.NoError(t, err)
	_, err = cf.Forecast(ctx, "Gas", 7)
	require.NoError(t, err)
	require.Len(t, mr.Keys(), 3)

	require.NoError(t, cf.Invalidate(ctx, "Oil"))

	// Only the Gas entry survives.
	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], ":Gas:")
}

func TestCachingForecaster_NilClientBypasses(t *testing.T) {
	inner := &mockForecaster{
		ForecastFunc: func(context.Context, string, int) ([]entity.ForecastPoint, error) {
			return samplePoints(), nil
		},
	}
	cf := NewCachingForecaster(nil, inner, "")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		got, err := cf.Forecast(ctx, "Oil", 7)
		require.NoError(t, err)
		assert.Equal(t, samplePoints(), got)
	}
	assert.Equal(t, 2, inner.calls, "without Redis every call reaches the model")

	assert.NoError(t, cf.Invalidate(ctx, "Oil"))
}

func TestCachingForecaster_EntryExpiresAtMidnight(t *testing.T) {
	mr, rdb := newTestRedis(t)

	cf := NewCachingForecaster(rdb, &mockForecaster{
		ForecastFunc: func(context.Context, string, int) ([]entity.ForecastPoint, error) {
			return samplePoints(), nil
		},
	}, "")

	_, err := cf.Forecast(context.Background(), "Oil", 7)
	require.NoError(t, err)

	ttl := mr.TTL(cf.cacheKey("Oil", 7))
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 24*time.Hour)
}

func TestTimeUntilMidnightUTC(t *testing.T) {
	t.Parallel()

	d := TimeUntilMidnightUTC()
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}

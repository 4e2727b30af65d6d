package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/fetchsched/pkg/domain"
)

func TestProviderRepository_CreateProvider(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)

	in := domain.ProviderInput{Name: "ipma", URL: "https://api.example.com/day0.json", Frequency: 1000 * time.Second, IsActive: true}
	p, err := repos.Provider.CreateProvider(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, p.ID)
	assert.Equal(t, "ipma", p.Name)
	assert.Equal(t, in.URL, p.URL)
	assert.Equal(t, 1000*time.Second, p.Frequency)
	assert.True(t, p.IsActive)
	assert.Nil(t, p.LastFetch)

	got, err := repos.Provider.GetProvider(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	t.Run("ids are unique", func(t *testing.T) {
		other, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "x", URL: "https://api.example.com/day1.json",
			Frequency: time.Minute})
		require.NoError(t, err)
		assert.NotEqual(t, p.ID, other.ID)
		assert.False(t, other.IsActive)
	})

	t.Run("duplicate url", func(t *testing.T) {
		_, err := repos.Provider.CreateProvider(ctx, in)
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("sub-millisecond frequency rejected by schema", func(t *testing.T) {
		_, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "tiny", URL: "https://tiny.example.com", Frequency: time.Microsecond})
		require.Error(t, err)
	})
}

func TestProviderRepository_UpdateProvider(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)

	p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "a", URL: "http://a.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)
	last := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repos.Provider.UpdateLastFetch(ctx, p.ID, last))

	updated, err := repos.Provider.UpdateProvider(ctx, p.ID, domain.ProviderInput{Name: "b", URL: "http://b.example.com",
		Frequency: 2 * time.Hour, IsActive: false})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "b", updated.Name)
	assert.Equal(t, "http://b.example.com", updated.URL)
	assert.Equal(t, 2*time.Hour, updated.Frequency)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.LastFetch, "last fetch kept on update")
	assert.True(t, last.Equal(*updated.LastFetch))

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Provider.UpdateProvider(ctx, 9999, domain.ProviderInput{Name: "x", URL: "http://x.example.com", Frequency: time.Minute})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("url taken by another provider", func(t *testing.T) {
		other, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "c", URL: "http://c.example.com", Frequency: time.Minute})
		require.NoError(t, err)
		_, err = repos.Provider.UpdateProvider(ctx, other.ID, domain.ProviderInput{Name: "c", URL: "http://b.example.com", Frequency: time.Minute})
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestProviderRepository_DeleteProvider(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)

	p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "a", URL: "http://a.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)
	keep, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "b", URL: "http://b.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.RawData.AppendRawData(ctx, p.ID, at, `{"v":1}`))
	require.NoError(t, repos.RawData.AppendRawData(ctx, keep.ID, at, `{"v":2}`))

	require.NoError(t, repos.Provider.DeleteProvider(ctx, p.ID))

	_, err = repos.Provider.GetProvider(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	count, err := repos.RawData.CountRawDataRange(ctx, p.ID, at, at)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "raw data removed with provider")
	count, err = repos.RawData.CountRawDataRange(ctx, keep.ID, at, at)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "other provider's data kept")

	// missing provider is fine
	require.NoError(t, repos.Provider.DeleteProvider(ctx, p.ID))
	require.NoError(t, repos.Provider.DeleteProvider(ctx, 12345))
}

func TestProviderRepository_GetProvider_NotFound(t *testing.T) {
	repos := setupTestDB(t)
	_, err := repos.Provider.GetProvider(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProviderRepository_Listing(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)

	count, err := repos.Provider.CountProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var ids []int64
	for i := range 5 {
		p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: fmt.Sprintf("p%d", i),
			URL: fmt.Sprintf("http://example.com/%d", i), Frequency: time.Minute, IsActive: i%2 == 0})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	t.Run("count", func(t *testing.T) {
		count, err := repos.Provider.CountProviders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("active only, ordered by id", func(t *testing.T) {
		active, err := repos.Provider.GetActiveProviders(ctx)
		require.NoError(t, err)
		require.Len(t, active, 3)
		assert.Equal(t, []int64{ids[0], ids[2], ids[4]}, []int64{active[0].ID, active[1].ID, active[2].ID})
		for _, p := range active {
			assert.True(t, p.IsActive)
		}
	})

	t.Run("window", func(t *testing.T) {
		page, err := repos.Provider.GetProviders(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, ids[2], page[0].ID)
		assert.Equal(t, ids[3], page[1].ID)

		tail, err := repos.Provider.GetProviders(ctx, 2, 4)
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, ids[4], tail[0].ID)

		empty, err := repos.Provider.GetProviders(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestProviderRepository_UpdateLastFetch(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)

	p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "a", URL: "http://a.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)

	// non-UTC input is stored as the same instant
	at := time.Date(2024, 6, 1, 15, 30, 0, 123456000, time.FixedZone("WEST", 3600))
	require.NoError(t, repos.Provider.UpdateLastFetch(ctx, p.ID, at))

	got, err := repos.Provider.GetProvider(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastFetch)
	assert.True(t, at.Equal(*got.LastFetch), "got %v, want %v", got.LastFetch, at)
	assert.Equal(t, time.UTC, got.LastFetch.Location())

	err = repos.Provider.UpdateLastFetch(ctx, 777, at)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

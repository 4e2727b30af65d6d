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

func TestRawDataRepository_AppendRawData(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)
	p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "a", URL: "http://a.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "object", body: `{"temp": 21.5, "city": "Lisboa"}`},
		{name: "array", body: `[1,2,3]`},
		{name: "scalar", body: `"text"`},
		{name: "html", body: `<html><body>hi</body></html>`, wantErr: domain.ErrInvalidBody},
		{name: "truncated json", body: `{"temp": 21.5`, wantErr: domain.ErrInvalidBody},
		{name: "empty", body: ``, wantErr: domain.ErrInvalidBody},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := at.Add(time.Duration(i) * time.Minute)
			err := repos.RawData.AppendRawData(ctx, p.ID, ts, tt.body)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				count, err := repos.RawData.CountRawDataRange(ctx, p.ID, ts, ts)
				require.NoError(t, err)
				assert.Equal(t, 0, count)
				return
			}
			require.NoError(t, err)
			records, err := repos.RawData.GetRawDataRange(ctx, p.ID, ts, ts, 10, 0)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.JSONEq(t, tt.body, records[0].Data)
			assert.Equal(t, p.ID, records[0].ProviderID)
			assert.True(t, ts.Equal(records[0].FetchTime))
		})
	}

	t.Run("unknown provider rejected by foreign key", func(t *testing.T) {
		err := repos.RawData.AppendRawData(ctx, 9999, at, `{}`)
		require.Error(t, err)
	})
}

func TestRawDataRepository_Range(t *testing.T) {
	ctx := context.Background()
	repos := setupTestDB(t)
	p, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "a", URL: "http://a.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)
	other, err := repos.Provider.CreateProvider(ctx, domain.ProviderInput{Name: "b", URL: "http://b.example.com", Frequency: time.Minute, IsActive: true})
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// inserted out of order, hourly records for 10 hours
	for _, h := range []int{5, 0, 9, 1, 7, 3, 2, 8, 4, 6} {
		require.NoError(t, repos.RawData.AppendRawData(ctx, p.ID, base.Add(time.Duration(h)*time.Hour), fmt.Sprintf(`{"h":%d}`, h)))
	}
	require.NoError(t, repos.RawData.AppendRawData(ctx, other.ID, base.Add(3*time.Hour), `{"other":true}`))

	hours := func(records []domain.RawData) []int {
		res := make([]int, len(records))
		for i, r := range records {
			res[i] = int(r.FetchTime.Sub(base) / time.Hour)
		}
		return res
	}

	t.Run("inclusive both ends, ordered", func(t *testing.T) {
		begin, end := base.Add(2*time.Hour), base.Add(5*time.Hour)
		records, err := repos.RawData.GetRawDataRange(ctx, p.ID, begin, end, 100, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4, 5}, hours(records))
		for _, r := range records {
			assert.Equal(t, p.ID, r.ProviderID)
			assert.Equal(t, time.UTC, r.FetchTime.Location())
		}

		count, err := repos.RawData.CountRawDataRange(ctx, p.ID, begin, end)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("range given in another zone", func(t *testing.T) {
		zone := time.FixedZone("EST", -5*3600)
		records, err := repos.RawData.GetRawDataRange(ctx, p.ID, base.Add(8*time.Hour).In(zone), base.Add(20*time.Hour).In(zone), 100, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{8, 9}, hours(records))
	})

	t.Run("window", func(t *testing.T) {
		records, err := repos.RawData.GetRawDataRange(ctx, p.ID, base, base.Add(24*time.Hour), 3, 3)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5}, hours(records))

		count, err := repos.RawData.CountRawDataRange(ctx, p.ID, base, base.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 10, count, "count independent of window")
	})

	t.Run("sub-second boundaries", func(t *testing.T) {
		ts := base.Add(30*time.Hour + 500*time.Millisecond)
		require.NoError(t, repos.RawData.AppendRawData(ctx, p.ID, ts, `{"frac":true}`))

		records, err := repos.RawData.GetRawDataRange(ctx, p.ID, ts, ts, 10, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, ts.Equal(records[0].FetchTime))

		records, err = repos.RawData.GetRawDataRange(ctx, p.ID, base.Add(30*time.Hour), base.Add(30*time.Hour+499*time.Millisecond), 10, 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("empty range", func(t *testing.T) {
		records, err := repos.RawData.GetRawDataRange(ctx, p.ID, base.Add(-48*time.Hour), base.Add(-24*time.Hour), 10, 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

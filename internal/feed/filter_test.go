package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickgig-backend/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func ids(jobs []domain.Job) []domain.JobID {
	out := make([]domain.JobID, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestParseConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := ParseConfig("", "", false, "")
		assert.Equal(t, SortNewest, cfg.Sort)
		assert.Nil(t, cfg.MinPay)
	})

	t.Run("Non-numeric min pay is ignored", func(t *testing.T) {
		cfg := ParseConfig("", "abc", false, "High Pay")
		assert.Nil(t, cfg.MinPay)
		assert.Equal(t, SortHighPay, cfg.Sort)
	})

	t.Run("Numeric min pay", func(t *testing.T) {
		cfg := ParseConfig("", " 600 ", true, "Nearby")
		require.NotNil(t, cfg.MinPay)
		assert.Equal(t, 600.0, *cfg.MinPay)
		assert.True(t, cfg.FoodOnly)
		assert.Equal(t, SortNearby, cfg.Sort)
	})

	t.Run("Unknown sort falls back to Newest", func(t *testing.T) {
		cfg := ParseConfig("", "", false, "Weirdest")
		assert.Equal(t, SortNewest, cfg.Sort)
	})
}

func TestApply_SortAndMinPay(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	// J: pay 500, older, unknown distance. K: pay 800, newer, 3.2 km away.
	j := domain.Job{ID: "job-j", Title: "Warehouse shift", Amount: 500, CreatedAt: t0}
	k := domain.Job{ID: "job-k", Title: "Catering help", Amount: 800, CreatedAt: t1, DistanceKm: floatPtr(3.2)}
	jobs := []domain.Job{j, k}

	t.Run("High pay", func(t *testing.T) {
		got := Apply(jobs, Config{Sort: SortHighPay})
		assert.Equal(t, []domain.JobID{"job-k", "job-j"}, ids(got))
	})

	t.Run("Nearby puts unknown distance last", func(t *testing.T) {
		got := Apply(jobs, Config{Sort: SortNearby})
		assert.Equal(t, []domain.JobID{"job-k", "job-j"}, ids(got))
	})

	t.Run("Min pay is inclusive", func(t *testing.T) {
		got := Apply(jobs, Config{Sort: SortNewest, MinPay: floatPtr(600)})
		assert.Equal(t, []domain.JobID{"job-k"}, ids(got))

		got = Apply(jobs, Config{Sort: SortNewest, MinPay: floatPtr(500)})
		assert.Len(t, got, 2)
	})
}

func TestApply_QueryMatchesTitleOrLocation(t *testing.T) {
	now := time.Now()
	jobs := []domain.Job{
		{ID: "a", Title: "Delivery rider", Location: "Indiranagar", CreatedAt: now},
		{ID: "b", Title: "Event setup", Location: "Koramangala", CreatedAt: now.Add(-time.Minute)},
		{ID: "c", Title: "Kora weaving demo", Location: "HSR Layout", CreatedAt: now.Add(-2 * time.Minute)},
	}

	got := Apply(jobs, Config{Query: "kora", Sort: SortNewest})
	assert.Equal(t, []domain.JobID{"b", "c"}, ids(got))

	got = Apply(jobs, Config{Query: "RIDER", Sort: SortNewest})
	assert.Equal(t, []domain.JobID{"a"}, ids(got))
}

func TestApply_FoodOnly(t *testing.T) {
	now := time.Now()
	jobs := []domain.Job{
		{ID: "a", HasFood: true, CreatedAt: now},
		{ID: "b", HasFood: false, CreatedAt: now},
	}

	got := Apply(jobs, Config{FoodOnly: true, Sort: SortNewest})
	assert.Equal(t, []domain.JobID{"a"}, ids(got))
}

func TestApply_UnknownDistanceKeepsNewestOrder(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "far", Amount: 100, CreatedAt: t0, DistanceKm: floatPtr(9.5)},
		{ID: "unknown-old", Amount: 900, CreatedAt: t0.Add(-time.Hour)},
		{ID: "near", Amount: 200, CreatedAt: t0.Add(-2 * time.Hour), DistanceKm: floatPtr(1.1)},
		{ID: "unknown-new", Amount: 50, CreatedAt: t0.Add(time.Hour)},
	}

	got := Apply(jobs, Config{Sort: SortNearby})
	assert.Equal(t, []domain.JobID{"near", "far", "unknown-new", "unknown-old"}, ids(got))
}

func TestApply_Idempotent(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "b", Amount: 300, CreatedAt: t0},
		{ID: "a", Amount: 300, CreatedAt: t0}, // identical sort keys except id
		{ID: "c", Amount: 700, CreatedAt: t0.Add(time.Minute), DistanceKm: floatPtr(2)},
	}

	for _, mode := range []SortMode{SortNewest, SortHighPay, SortNearby} {
		cfg := Config{Sort: mode}
		once := Apply(jobs, cfg)
		twice := Apply(once, cfg)
		assert.Equal(t, ids(once), ids(twice), "sort mode %s", mode)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t0 := time.Now()
	jobs := []domain.Job{
		{ID: "b", Amount: 100, CreatedAt: t0},
		{ID: "a", Amount: 900, CreatedAt: t0.Add(-time.Hour)},
	}

	_ = Apply(jobs, Config{Sort: SortHighPay})
	assert.Equal(t, domain.JobID("b"), jobs[0].ID)
	assert.Equal(t, domain.JobID("a"), jobs[1].ID)
}

// Package feed turns the raw set of open jobs into the filtered, sorted view
// a client renders. It is a pure transform: no fetching, no side effects.
package feed

import (
	"sort"
	"strconv"
	"strings"

	"quickgig-backend/internal/domain"
)

type SortMode string

const (
	SortNewest  SortMode = "Newest"
	SortHighPay SortMode = "High Pay"
	SortNearby  SortMode = "Nearby"
)

// Config is one filter/sort selection. Filter dimensions are ANDed; a nil
// MinPay means the pay dimension is inactive.
type Config struct {
	Query    string
	MinPay   *float64
	FoodOnly bool
	Sort     SortMode
}

// ParseConfig builds a Config from raw client input. A min-pay value that is
// not numeric disables that dimension instead of failing the request, and an
// unrecognized sort falls back to Newest.
func ParseConfig(query, minPay string, foodOnly bool, sort string) Config {
	cfg := Config{
		Query:    strings.TrimSpace(query),
		FoodOnly: foodOnly,
		Sort:     SortNewest,
	}
	switch SortMode(sort) {
	case SortHighPay, SortNearby:
		cfg.Sort = SortMode(sort)
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(minPay), 64); err == nil {
		cfg.MinPay = &v
	}
	return cfg
}

// Apply filters and sorts jobs per cfg. The input is assumed to be already
// restricted to open jobs not owned by the viewer. The result is
// deterministic for a given input set: ties break by creation time (newest
// first) and then by id, so applying the same config twice yields the same
// sequence.
func Apply(jobs []domain.Job, cfg Config) []domain.Job {
	query := strings.ToLower(cfg.Query)

	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if query != "" &&
			!strings.Contains(strings.ToLower(job.Title), query) &&
			!strings.Contains(strings.ToLower(job.Location), query) {
			continue
		}
		if cfg.MinPay != nil && job.Amount < *cfg.MinPay {
			continue
		}
		if cfg.FoodOnly && !job.HasFood {
			continue
		}
		out = append(out, job)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], cfg.Sort)
	})
	return out
}

func less(a, b domain.Job, mode SortMode) bool {
	switch mode {
	case SortHighPay:
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
	case SortNearby:
		// Jobs with unknown distance sort after every job with a known
		// distance and keep Newest order among themselves.
		switch {
		case a.DistanceKm != nil && b.DistanceKm != nil:
			if *a.DistanceKm != *b.DistanceKm {
				return *a.DistanceKm < *b.DistanceKm
			}
		case a.DistanceKm != nil:
			return true
		case b.DistanceKm != nil:
			return false
		}
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}

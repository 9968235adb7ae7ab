package service

import (
	"context"
	"fmt"
	"time"

	"quickgig-backend/internal/cache"
	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/feed"
	"quickgig-backend/internal/geo"
	"quickgig-backend/internal/repository"
)

// feedCacheKey holds the full open-jobs list; per-viewer shaping (exclusion,
// distance, filters) happens after the cache so one entry serves everyone.
const (
	feedCacheKey = "feed:open_jobs"
	feedCacheTTL = 30 * time.Second
)

type jobService struct {
	jobRepo repository.JobRepository
	cache   *cache.Cache
}

func NewJobService(jobRepo repository.JobRepository, c *cache.Cache) JobService {
	return &jobService{jobRepo: jobRepo, cache: c}
}

func (s *jobService) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *jobService) UpdateJob(ctx context.Context, actorID domain.UserID, job *domain.Job) error {
	existing, err := s.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if existing.OwnerID != actorID {
		return ErrNotOwner
	}
	job.OwnerID = existing.OwnerID
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *jobService) DeleteJob(ctx context.Context, actorID domain.UserID, id domain.JobID) error {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}
	if existing.OwnerID != actorID {
		return ErrNotOwner
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *jobService) GetJob(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) ListMyJobs(ctx context.Context, ownerID domain.UserID) ([]domain.Job, error) {
	return s.jobRepo.ListByOwner(ctx, ownerID)
}

func (s *jobService) GetFeed(ctx context.Context, viewerID domain.UserID, viewerLat, viewerLong *float64, cfg feed.Config) ([]domain.Job, error) {
	var all []domain.Job
	err := s.cache.Aside(ctx, feedCacheKey, &all, feedCacheTTL, func() error {
		jobs, err := s.jobRepo.ListOpen(ctx)
		if err != nil {
			return err
		}
		all = jobs
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}

	visible := make([]domain.Job, 0, len(all))
	for _, job := range all {
		if job.OwnerID == viewerID {
			continue
		}
		job.DistanceKm = distanceFrom(viewerLat, viewerLong, job)
		visible = append(visible, job)
	}

	return feed.Apply(visible, cfg), nil
}

// distanceFrom computes viewer-to-job distance, or nil when either side has
// no coordinates.
func distanceFrom(viewerLat, viewerLong *float64, job domain.Job) *float64 {
	if viewerLat == nil || viewerLong == nil || job.Latitude == nil || job.Longitude == nil {
		return nil
	}
	km := geo.Kilometers(
		geo.Point{Lat: *viewerLat, Long: *viewerLong},
		geo.Point{Lat: *job.Latitude, Long: *job.Longitude},
	)
	return &km
}

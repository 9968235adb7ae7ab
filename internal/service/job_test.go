package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickgig-backend/internal/domain"
	"quickgig-backend/internal/feed"
)

func ptr(f float64) *float64 { return &f }

func TestJobService_GetFeed(t *testing.T) {
	ctx := context.Background()
	viewerID := domain.UserID("viewer-1")

	jobs := []domain.Job{
		{ID: "job-own", OwnerID: viewerID, Title: "My own posting", Status: domain.JobStatusOpen},
		{ID: "job-near", OwnerID: "owner-2", Title: "Catering help", Status: domain.JobStatusOpen,
			Latitude: ptr(12.9716), Longitude: ptr(77.5946)},
		{ID: "job-nocoords", OwnerID: "owner-3", Title: "Warehouse shift", Status: domain.JobStatusOpen},
	}

	t.Run("ExcludesOwnJobsAndAnnotatesDistance", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("ListOpen", ctx).Return(jobs, nil)
		svc := NewJobService(jobRepo, nil)

		// Viewer stands at the same coordinates as job-near.
		out, err := svc.GetFeed(ctx, viewerID, ptr(12.9716), ptr(77.5946), feed.Config{Sort: feed.SortNewest})
		assert.NoError(t, err)
		assert.Len(t, out, 2)
		for _, job := range out {
			assert.NotEqual(t, viewerID, job.OwnerID)
		}

		byID := map[domain.JobID]domain.Job{}
		for _, job := range out {
			byID[job.ID] = job
		}
		near := byID["job-near"]
		assert.NotNil(t, near.DistanceKm)
		assert.InDelta(t, 0, *near.DistanceKm, 0.001)
		assert.Nil(t, byID["job-nocoords"].DistanceKm)
	})

	t.Run("NoViewerLocationLeavesDistanceUnknown", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("ListOpen", ctx).Return(jobs, nil)
		svc := NewJobService(jobRepo, nil)

		out, err := svc.GetFeed(ctx, viewerID, nil, nil, feed.Config{Sort: feed.SortNearby})
		assert.NoError(t, err)
		for _, job := range out {
			assert.Nil(t, job.DistanceKm)
		}
	})
}

func TestJobService_OwnerGuards(t *testing.T) {
	ctx := context.Background()
	jobID := domain.JobID("job-1")
	ownerID := domain.UserID("owner-1")

	existing := &domain.Job{ID: jobID, OwnerID: ownerID, Status: domain.JobStatusOpen}

	t.Run("UpdateByNonOwner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(existing, nil)
		svc := NewJobService(jobRepo, nil)

		err := svc.UpdateJob(ctx, "user-9", &domain.Job{ID: jobID})
		assert.ErrorIs(t, err, ErrNotOwner)
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("DeleteByNonOwner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(existing, nil)
		svc := NewJobService(jobRepo, nil)

		err := svc.DeleteJob(ctx, "user-9", jobID)
		assert.ErrorIs(t, err, ErrNotOwner)
		jobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("UpdateKeepsOwner", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", ctx, jobID).Return(existing, nil)
		jobRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		svc := NewJobService(jobRepo, nil)

		// The incoming payload may not carry the owner; the stored one wins.
		incoming := &domain.Job{ID: jobID, Title: "Edited"}
		assert.NoError(t, svc.UpdateJob(ctx, ownerID, incoming))
		assert.Equal(t, ownerID, incoming.OwnerID)
	})
}

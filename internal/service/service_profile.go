package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/cinetrack/internal/logger"
	"github.com/MKhiriev/cinetrack/internal/store"
	"github.com/MKhiriev/cinetrack/models"
)

type profileService struct {
	watchlist store.WatchlistRepository

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService that summarizes the
// watchlist read from the given repository.
func NewProfileService(watchlist store.WatchlistRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		watchlist: watchlist,
		logger:    logger,
	}
}

// GetProfile returns the account data together with the watchlist summary.
func (s *profileService) GetProfile(ctx context.Context, user models.User) (models.ProfileResponse, error) {
	entries, err := s.watchlist.GetWatchlist(ctx, user.ID)
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("error getting watchlist for profile: %w", err)
	}

	return models.ProfileResponse{
		Name:           user.Name,
		Email:          user.Email,
		CreatedAt:      user.CreatedAt,
		ProfileSummary: ComputeProfileSummary(entries),
	}, nil
}

// ComputeProfileSummary aggregates a watchlist: the runtime total, the entry
// count and the mean of the non-zero ratings rounded to one decimal place.
func ComputeProfileSummary(entries []models.WatchlistEntry) models.ProfileSummary {
	summary := models.ProfileSummary{MoviesWatchedCount: len(entries)}

	var ratingSum, rated int
	for _, e := range entries {
		summary.TotalWatchTimeMinutes += e.Runtime
		if e.Rating > 0 {
			ratingSum += e.Rating
			rated++
		}
	}

	if rated > 0 {
		summary.AverageRating = math.Round(float64(ratingSum)/float64(rated)*10) / 10
	}

	return summary
}

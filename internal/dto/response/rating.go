package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	PackageID string    `json:"packageId"`
	UserRef   string    `json:"userRef"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar,omitempty"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingStatsResponse struct {
	Rating       float64 `json:"rating"`
	TotalRatings int64   `json:"totalRatings"`
}

type CanReviewResponse struct {
	CanReview bool   `json:"canReview"`
	Message   string `json:"message"`
}

// Helper converter
func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		PackageID: rating.PackageID.String(),
		UserRef:   rating.UserRef.String(),
		Username:  rating.Username,
		Avatar:    rating.Avatar,
		Rating:    rating.Rating,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
	}
}
